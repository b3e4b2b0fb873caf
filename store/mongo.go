package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 5 * time.Second

// HealthStore is everything the API layer needs from persistence.
type HealthStore interface {
	CheckIn
	Question
	Chat

	Ping() error
	Close()
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore connects to mongodb and returns the combined store.
func NewMongoStore(connURI, database string) (HealthStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(connURI)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.WithError(err).Error("fail to connect mongodb")
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.WithError(err).Error("fail to ping mongodb")
		return nil, err
	}

	return &mongoDB{
		client:   client,
		database: database,
	}, nil
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

func (m *mongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := m.client.Disconnect(ctx); err != nil {
		log.WithError(err).Error("fail to disconnect mongodb")
	}
}
