package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chw708/teresa-api/schema"
)

type Chat interface {
	AppendChatMessage(message schema.ChatMessage) error
	ListChatHistory(owner string, limit int64) ([]schema.ChatMessage, error)
}

func (m *mongoDB) AppendChatMessage(message schema.ChatMessage) error {
	c := m.client.Database(m.database).Collection(schema.ChatCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := c.InsertOne(ctx, &message)
	return err
}

// ListChatHistory returns the most recent messages in chronological order.
func (m *mongoDB) ListChatHistory(owner string, limit int64) ([]schema.ChatMessage, error) {
	c := m.client.Database(m.database).Collection(schema.ChatCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// _id breaks ties so a user message and its reply written within the
	// same millisecond keep their insertion order
	opts := options.Find().SetSort(bson.D{{Key: "ts", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}

	messages := []schema.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	// stored newest first, returned oldest first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
