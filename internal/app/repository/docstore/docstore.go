// Package docstore is the MongoDB implementation of the taxonomy store.
package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names are shared with the existing Node deployment.
const (
	categoriesColl       = "categories"
	symptomsColl         = "symptoms"
	causesColl           = "causes"
	actionsColl          = "recommendedactions"
	detectionMethodsColl = "detectionmethods"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and pings it so a bad URI fails here and not on the
// first request.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

// EnsureIndexes creates the unique name indexes and the symptom reference
// indexes.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string]mongo.IndexModel{
		categoriesColl:       {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		symptomsColl:         {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		causesColl:           {Keys: bson.D{{Key: "symptom", Value: 1}}},
		actionsColl:          {Keys: bson.D{{Key: "symptom", Value: 1}}},
		detectionMethodsColl: {Keys: bson.D{{Key: "symptom", Value: 1}}},
	}
	for coll, model := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
