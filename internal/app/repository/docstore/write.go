package docstore

import (
	"context"
	"fmt"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var allCollections = []string{detectionMethodsColl, actionsColl, causesColl, symptomsColl, categoriesColl}

func (s *Store) Clear(ctx context.Context) error {
	for _, coll := range allCollections {
		if _, err := s.db.Collection(coll).DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("clear %s: %w", coll, err)
		}
	}
	return nil
}

func (s *Store) InsertCategory(ctx context.Context, c taxonomy.Category) (string, error) {
	return s.insert(ctx, categoriesColl, categoryDoc{Name: c.Name, Description: c.Description})
}

func (s *Store) InsertSymptom(ctx context.Context, categoryID, name string) (string, error) {
	id, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return "", fmt.Errorf("invalid category id %q: %w", categoryID, err)
	}
	return s.insert(ctx, symptomsColl, symptomDoc{Category: id, Name: name})
}

func (s *Store) InsertCauses(ctx context.Context, symptomID string, causes []string) error {
	id, err := primitive.ObjectIDFromHex(symptomID)
	if err != nil {
		return fmt.Errorf("invalid symptom id %q: %w", symptomID, err)
	}
	_, err = s.insert(ctx, causesColl, causeDoc{Symptom: id, Causes: causes})
	return err
}

func (s *Store) InsertActions(ctx context.Context, symptomID string, actions []string) error {
	id, err := primitive.ObjectIDFromHex(symptomID)
	if err != nil {
		return fmt.Errorf("invalid symptom id %q: %w", symptomID, err)
	}
	_, err = s.insert(ctx, actionsColl, actionDoc{Symptom: id, Actions: actions})
	return err
}

func (s *Store) InsertDetectionMethods(ctx context.Context, symptomID string, methods []string) error {
	id, err := primitive.ObjectIDFromHex(symptomID)
	if err != nil {
		return fmt.Errorf("invalid symptom id %q: %w", symptomID, err)
	}
	_, err = s.insert(ctx, detectionMethodsColl, detectionMethodDoc{Symptom: id, Methods: methods})
	return err
}

func (s *Store) insert(ctx context.Context, coll string, doc interface{}) (string, error) {
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id %T", coll, res.InsertedID)
	}
	return id.Hex(), nil
}

func (s *Store) Counts(ctx context.Context) (repository.Counts, error) {
	var c repository.Counts
	for _, q := range []struct {
		coll string
		dest *int64
	}{
		{categoriesColl, &c.Categories},
		{symptomsColl, &c.Symptoms},
		{causesColl, &c.Causes},
		{actionsColl, &c.Actions},
		{detectionMethodsColl, &c.DetectionMethods},
	} {
		n, err := s.db.Collection(q.coll).CountDocuments(ctx, bson.D{})
		if err != nil {
			return repository.Counts{}, fmt.Errorf("count %s: %w", q.coll, err)
		}
		*q.dest = n
	}
	return c, nil
}

var _ repository.Store = (*Store)(nil)
