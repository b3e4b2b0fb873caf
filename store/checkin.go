package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chw708/teresa-api/schema"
)

type CheckIn interface {
	SaveMorning(owner string, date string, record schema.CheckInRecord, result schema.ScoreResult, stretches []schema.StretchPick) error
	SaveMidday(owner string, date string, record schema.MiddayCheckIn) error
	SaveNight(owner string, date string, record schema.NightCheckIn) error
	GetDailyEntry(owner, date string) (*schema.DailyEntry, error)
	ListHistory(owner string, limit int64) ([]schema.DailyEntry, error)
	GetScoreAverage(owner string, start, end time.Time) (float64, error)
}

// SaveMorning upserts the day's entry with the morning record and its
// computed result. One entry per owner and calendar date; a re-submitted
// morning replaces the previous one instead of appending.
func (m *mongoDB) SaveMorning(owner string, date string, record schema.CheckInRecord, result schema.ScoreResult, stretches []schema.StretchPick) error {
	return m.upsertDailyEntry(owner, date, bson.M{
		"morning":   record,
		"result":    result,
		"stretches": stretches,
	})
}

func (m *mongoDB) SaveMidday(owner string, date string, record schema.MiddayCheckIn) error {
	return m.upsertDailyEntry(owner, date, bson.M{"midday": record})
}

func (m *mongoDB) SaveNight(owner string, date string, record schema.NightCheckIn) error {
	return m.upsertDailyEntry(owner, date, bson.M{"night": record})
}

func (m *mongoDB) upsertDailyEntry(owner, date string, fields bson.M) error {
	c := m.client.Database(m.database).Collection(schema.DailyEntryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	fields["updated_at"] = time.Now().Unix()

	query := bson.M{"owner": owner, "date": date}
	update := bson.M{
		"$set": fields,
		"$setOnInsert": bson.M{
			"owner": owner,
			"date":  date,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx, query, update, opts)
	return err
}

func (m *mongoDB) GetDailyEntry(owner, date string) (*schema.DailyEntry, error) {
	c := m.client.Database(m.database).Collection(schema.DailyEntryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var entry schema.DailyEntry
	err := c.FindOne(ctx, bson.M{"owner": owner, "date": date}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListHistory returns the owner's entries, newest first.
func (m *mongoDB) ListHistory(owner string, limit int64) ([]schema.DailyEntry, error) {
	c := m.client.Database(m.database).Collection(schema.DailyEntryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"date": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}

	entries := []schema.DailyEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetScoreAverage averages the scored entries inside [start, end] for the
// trend dashboard. Days without a morning submission simply do not count.
func (m *mongoDB) GetScoreAverage(owner string, start, end time.Time) (float64, error) {
	c := m.client.Database(m.database).Collection(schema.DailyEntryCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	startDate := start.UTC().Format("2006-01-02")
	endDate := end.UTC().Format("2006-01-02")
	pipeline := mongo.Pipeline{
		AggregationMatch(bson.M{
			"owner":  owner,
			"date":   bson.M{"$gte": startDate, "$lte": endDate},
			"result": bson.M{"$exists": true},
		}),
		AggregationGroup("$owner", bson.D{
			bson.E{
				Key: "avg",
				Value: bson.M{
					"$avg": "$result.score",
				},
			},
		}),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	if !cursor.Next(ctx) {
		return 0, nil
	}

	var result struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.Decode(&result); err != nil {
		return 0, err
	}

	return result.Avg, nil
}
