package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Defaults for the MongoDB backend.
const (
	// DefaultDatabase is the database name when MongoOptions leaves it empty.
	DefaultDatabase = "packedbubble"

	// chartsCollection holds the chart documents.
	chartsCollection = "charts"
)

// MongoStore is a MongoDB-backed chart store for deployments. Multiple
// server instances can share charts through a single MongoDB instance.
type MongoStore struct {
	client *mongo.Client
	charts *mongo.Collection
}

// MongoOptions configures the MongoDB connection.
type MongoOptions struct {
	URI      string // connection string, e.g. "mongodb://localhost:27017"
	Database string // database name; "" selects DefaultDatabase
}

// NewMongoStore connects to MongoDB, verifies the connection with a ping,
// and ensures the created_at index used by ListCharts.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := opts.Database
	if db == "" {
		db = DefaultDatabase
	}
	s := &MongoStore{
		client: client,
		charts: client.Database(db).Collection(chartsCollection),
	}

	_, err = s.charts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create created_at index: %w", err)
	}
	return s, nil
}

func (s *MongoStore) SaveChart(ctx context.Context, c *Chart) error {
	c.UpdatedAt = time.Now().UTC()
	_, err := s.charts.ReplaceOne(ctx,
		bson.M{"_id": c.ID}, c, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save chart %s: %w", c.ID, err)
	}
	return nil
}

func (s *MongoStore) GetChart(ctx context.Context, id string) (*Chart, error) {
	var c Chart
	err := s.charts.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get chart %s: %w", id, err)
	}
	return &c, nil
}

func (s *MongoStore) ListCharts(ctx context.Context, limit int) ([]*Chart, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		findOpts = findOpts.SetLimit(int64(limit))
	}

	cur, err := s.charts.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list charts: %w", err)
	}
	defer cur.Close(ctx)

	var out []*Chart
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode charts: %w", err)
	}
	return out, nil
}

func (s *MongoStore) DeleteChart(ctx context.Context, id string) error {
	res, err := s.charts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete chart %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
