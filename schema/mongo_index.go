package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer creates the indexes the store relies on.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

// IndexAll builds every index this service depends on. Safe to run
// repeatedly; mongo treats identical index specs as a no-op.
func (m *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	db := client.Database(m.database)

	if _, err := db.Collection(DailyEntryCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.WithError(err).Error("fail to create checkin index")
		return err
	}

	if _, err := db.Collection(QuestionSheetCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: -1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.WithError(err).Error("fail to create question sheet index")
		return err
	}

	if _, err := db.Collection(ChatCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}, {Key: "ts", Value: -1}},
	}); err != nil {
		log.WithError(err).Error("fail to create chat index")
		return err
	}

	return nil
}
