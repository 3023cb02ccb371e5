package docstore

import (
	"context"
	"errors"
	"strings"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// caseInsensitive is a strength-2 collation: compares letters, ignores case.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// byInsertion sorts on _id; ObjectIDs grow with insertion time.
var byInsertion = bson.D{{Key: "_id", Value: 1}}

func (s *Store) Categories(ctx context.Context) ([]taxonomy.Category, error) {
	cur, err := s.db.Collection(categoriesColl).Find(ctx, bson.D{}, options.Find().SetSort(byInsertion))
	if err != nil {
		return nil, err
	}
	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	categories := make([]taxonomy.Category, 0, len(docs))
	for _, d := range docs {
		categories = append(categories, taxonomy.Category{Name: d.Name, Description: d.Description})
	}
	return categories, nil
}

func (s *Store) FindCategory(ctx context.Context, name string) (taxonomy.Category, error) {
	d, err := s.getCategory(ctx, name)
	if err != nil {
		return taxonomy.Category{}, err
	}
	return taxonomy.Category{Name: d.Name, Description: d.Description}, nil
}

func (s *Store) getCategory(ctx context.Context, name string) (categoryDoc, error) {
	var d categoryDoc
	err := s.db.Collection(categoriesColl).
		FindOne(ctx, bson.D{{Key: "name", Value: strings.TrimSpace(name)}}, options.FindOne().SetCollation(caseInsensitive)).
		Decode(&d)
	return d, notFound(err)
}

func (s *Store) SymptomsOf(ctx context.Context, category string) ([]string, error) {
	c, err := s.getCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return s.symptomNames(ctx, bson.D{{Key: "category", Value: c.ID}})
}

func (s *Store) SymptomNames(ctx context.Context) ([]string, error) {
	return s.symptomNames(ctx, bson.D{})
}

func (s *Store) symptomNames(ctx context.Context, filter bson.D) ([]string, error) {
	cur, err := s.db.Collection(symptomsColl).Find(ctx, filter, options.Find().SetSort(byInsertion))
	if err != nil {
		return nil, err
	}
	var docs []symptomDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}

func (s *Store) symptomID(ctx context.Context, name string) (primitive.ObjectID, error) {
	var d symptomDoc
	err := s.db.Collection(symptomsColl).FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&d)
	if err != nil {
		return primitive.NilObjectID, notFound(err)
	}
	return d.ID, nil
}

func (s *Store) CausesOf(ctx context.Context, symptom string) ([]string, error) {
	var d causeDoc
	if err := s.findBySymptom(ctx, causesColl, symptom, &d); err != nil {
		return nil, err
	}
	return d.Causes, nil
}

func (s *Store) ActionsOf(ctx context.Context, symptom string) ([]string, error) {
	var d actionDoc
	if err := s.findBySymptom(ctx, actionsColl, symptom, &d); err != nil {
		return nil, err
	}
	return d.Actions, nil
}

func (s *Store) DetectionMethodsOf(ctx context.Context, symptom string) ([]string, error) {
	var d detectionMethodDoc
	if err := s.findBySymptom(ctx, detectionMethodsColl, symptom, &d); err != nil {
		return nil, err
	}
	return d.Methods, nil
}

func (s *Store) findBySymptom(ctx context.Context, coll, symptom string, dest interface{}) error {
	id, err := s.symptomID(ctx, symptom)
	if err != nil {
		return err
	}
	err = s.db.Collection(coll).FindOne(ctx, bson.D{{Key: "symptom", Value: id}}).Decode(dest)
	return notFound(err)
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}
