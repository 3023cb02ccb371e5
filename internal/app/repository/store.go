package repository

import (
	"context"
	"errors"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"
)

// ErrNotFound is returned by lookups that match nothing.
var ErrNotFound = errors.New("not found")

// Reader is the read side of the taxonomy store used by the HTTP layer.
// Category lookups are case-insensitive, symptom lookups are exact.
type Reader interface {
	Categories(ctx context.Context) ([]taxonomy.Category, error)
	FindCategory(ctx context.Context, name string) (taxonomy.Category, error)
	SymptomsOf(ctx context.Context, category string) ([]string, error)
	SymptomNames(ctx context.Context) ([]string, error)
	CausesOf(ctx context.Context, symptom string) ([]string, error)
	ActionsOf(ctx context.Context, symptom string) ([]string, error)
	DetectionMethodsOf(ctx context.Context, symptom string) ([]string, error)
}

// Writer is the write side used by the seed loader. Identifiers are opaque
// strings so both backends can hand out their native keys.
type Writer interface {
	Clear(ctx context.Context) error
	InsertCategory(ctx context.Context, c taxonomy.Category) (string, error)
	InsertSymptom(ctx context.Context, categoryID, name string) (string, error)
	InsertCauses(ctx context.Context, symptomID string, causes []string) error
	InsertActions(ctx context.Context, symptomID string, actions []string) error
	InsertDetectionMethods(ctx context.Context, symptomID string, methods []string) error
	Counts(ctx context.Context) (Counts, error)
}

type Store interface {
	Reader
	Writer
}

// Counts holds the number of records per collection.
type Counts struct {
	Categories       int64 `json:"categories"`
	Symptoms         int64 `json:"symptoms"`
	Causes           int64 `json:"causes"`
	Actions          int64 `json:"recommended_actions"`
	DetectionMethods int64 `json:"detection_methods"`
}
