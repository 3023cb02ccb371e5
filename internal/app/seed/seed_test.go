package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository/repotest"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"
)

func TestLoader_LoadsWholeTable(t *testing.T) {
	repo := repotest.NewSQLite(t)
	ctx := context.Background()

	report, err := NewLoader(repo, taxonomy.Data).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Report{Categories: 8, Symptoms: 19, Causes: 19, Actions: 19, DetectionMethods: 3}, report)

	for _, c := range taxonomy.Data.Categories {
		got, err := repo.SymptomsOf(ctx, c.Name)
		require.NoError(t, err)
		assert.Equal(t, taxonomy.Data.Symptoms[c.Name], got, c.Name)
	}

	for symptom, want := range taxonomy.Data.Causes {
		got, err := repo.CausesOf(ctx, symptom)
		require.NoError(t, err)
		assert.Equal(t, want, got, symptom)
	}
}

func TestLoader_IsIdempotent(t *testing.T) {
	repo := repotest.NewSQLite(t)
	ctx := context.Background()
	loader := NewLoader(repo, taxonomy.Data)

	_, err := loader.Load(ctx)
	require.NoError(t, err)
	first, err := repo.Counts(ctx)
	require.NoError(t, err)

	_, err = loader.Load(ctx)
	require.NoError(t, err)
	second, err := repo.Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, repository.Counts{Categories: 8, Symptoms: 19, Causes: 19, Actions: 19, DetectionMethods: 3}, second)
}

func TestLoader_RejectsInvalidTable(t *testing.T) {
	repo := repotest.NewSQLite(t)
	table := taxonomy.Table{
		Categories: []taxonomy.Category{{Name: "A"}},
		Symptoms:   map[string][]string{"B": {"s"}},
	}

	_, err := NewLoader(repo, table).Load(context.Background())
	assert.Error(t, err)
}

// flakyWriter fails selected operations of an otherwise working store.
type flakyWriter struct {
	repository.Writer
	failClear   bool
	failActions int // fail the nth InsertActions call, 1-based
	actions     int
}

var errBoom = errors.New("boom")

func (w *flakyWriter) Clear(ctx context.Context) error {
	if w.failClear {
		return errBoom
	}
	return w.Writer.Clear(ctx)
}

func (w *flakyWriter) InsertActions(ctx context.Context, symptomID string, actions []string) error {
	w.actions++
	if w.actions == w.failActions {
		return errBoom
	}
	return w.Writer.InsertActions(ctx, symptomID, actions)
}

func TestLoader_ClearFailureAborts(t *testing.T) {
	repo := repotest.NewSQLite(t)
	w := &flakyWriter{Writer: repo, failClear: true}

	report, err := NewLoader(w, taxonomy.Data).Load(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, Report{}, report)
}

func TestLoader_BatchFailureStopsOnlyThatBatch(t *testing.T) {
	repo := repotest.NewSQLite(t)
	w := &flakyWriter{Writer: repo, failActions: 3}
	ctx := context.Background()

	report, err := NewLoader(w, taxonomy.Data).Load(ctx)
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "recommended actions")

	assert.Equal(t, 19, report.Causes)
	assert.Equal(t, 2, report.Actions)
	assert.Equal(t, 3, report.DetectionMethods)

	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Actions)
	assert.Equal(t, int64(3), counts.DetectionMethods)
}
