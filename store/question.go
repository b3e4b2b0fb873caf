package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chw708/teresa-api/schema"
)

type Question interface {
	GetDailySheet(date string) (*schema.QuestionSheet, error)
	SaveDailySheet(sheet schema.QuestionSheet) error
}

// GetDailySheet returns the question sheet cached for the given date, or
// nil when no sheet has been generated yet.
func (m *mongoDB) GetDailySheet(date string) (*schema.QuestionSheet, error) {
	c := m.client.Database(m.database).Collection(schema.QuestionSheetCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var sheet schema.QuestionSheet
	err := c.FindOne(ctx, bson.M{"date": date}).Decode(&sheet)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

// SaveDailySheet stores the day's sheet. Upsert keyed on date so question
// ids stay stable for every client that asks during that day.
func (m *mongoDB) SaveDailySheet(sheet schema.QuestionSheet) error {
	if sheet.Date == "" {
		return fmt.Errorf("sheet date should not be empty")
	}

	c := m.client.Database(m.database).Collection(schema.QuestionSheetCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"date": sheet.Date}
	update := bson.M{"$setOnInsert": sheet}
	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx, query, update, opts)
	return err
}
