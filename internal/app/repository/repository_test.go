package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository/repotest"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"
)

func seedKafka(t *testing.T, repo *repository.Repository) {
	t.Helper()
	ctx := context.Background()

	catID, err := repo.InsertCategory(ctx, taxonomy.Category{Name: "Kafka Issues", Description: "broker problems"})
	require.NoError(t, err)
	_, err = repo.InsertCategory(ctx, taxonomy.Category{Name: "Pricing"})
	require.NoError(t, err)

	startup, err := repo.InsertSymptom(ctx, catID, "Kafka Startup Error")
	require.NoError(t, err)
	_, err = repo.InsertSymptom(ctx, catID, "Huge amount of logs getting accumulated")
	require.NoError(t, err)

	require.NoError(t, repo.InsertCauses(ctx, startup, []string{"Error in broker listener configuration", "Kafka logs exceeding disk limit"}))
	require.NoError(t, repo.InsertActions(ctx, startup, []string{"Correct broker listener configurations", "Clean up excessive logs"}))
}

func TestRepository_Categories(t *testing.T) {
	repo := repotest.NewSQLite(t)
	seedKafka(t, repo)

	got, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []taxonomy.Category{
		{Name: "Kafka Issues", Description: "broker problems"},
		{Name: "Pricing"},
	}, got)
}

func TestRepository_FindCategoryIgnoresCase(t *testing.T) {
	repo := repotest.NewSQLite(t)
	seedKafka(t, repo)
	ctx := context.Background()

	c, err := repo.FindCategory(ctx, "  kafka ISSUES ")
	require.NoError(t, err)
	assert.Equal(t, "Kafka Issues", c.Name)

	_, err = repo.FindCategory(ctx, "Networking")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_SymptomsOf(t *testing.T) {
	repo := repotest.NewSQLite(t)
	seedKafka(t, repo)
	ctx := context.Background()

	symptoms, err := repo.SymptomsOf(ctx, "kafka issues")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kafka Startup Error", "Huge amount of logs getting accumulated"}, symptoms)

	symptoms, err = repo.SymptomsOf(ctx, "Pricing")
	require.NoError(t, err)
	assert.Empty(t, symptoms)

	_, err = repo.SymptomsOf(ctx, "Unknown")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_ListsBySymptom(t *testing.T) {
	repo := repotest.NewSQLite(t)
	seedKafka(t, repo)
	ctx := context.Background()

	causes, err := repo.CausesOf(ctx, "Kafka Startup Error")
	require.NoError(t, err)
	assert.Equal(t, []string{"Error in broker listener configuration", "Kafka logs exceeding disk limit"}, causes)

	actions, err := repo.ActionsOf(ctx, "Kafka Startup Error")
	require.NoError(t, err)
	assert.Equal(t, []string{"Correct broker listener configurations", "Clean up excessive logs"}, actions)

	_, err = repo.DetectionMethodsOf(ctx, "Kafka Startup Error")
	assert.ErrorIs(t, err, repository.ErrNotFound, "symptom exists but has no record")

	_, err = repo.CausesOf(ctx, "Huge amount of logs getting accumulated")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.CausesOf(ctx, "kafka startup error")
	assert.ErrorIs(t, err, repository.ErrNotFound, "symptom lookup is exact")
}

func TestRepository_ClearAndCounts(t *testing.T) {
	repo := repotest.NewSQLite(t)
	seedKafka(t, repo)
	ctx := context.Background()

	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.Counts{Categories: 2, Symptoms: 2, Causes: 1, Actions: 1}, counts)

	require.NoError(t, repo.Clear(ctx))
	counts, err = repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.Counts{}, counts)
}

func TestRepository_UniqueNames(t *testing.T) {
	repo := repotest.NewSQLite(t)
	ctx := context.Background()

	_, err := repo.InsertCategory(ctx, taxonomy.Category{Name: "Pricing"})
	require.NoError(t, err)
	_, err = repo.InsertCategory(ctx, taxonomy.Category{Name: "Pricing"})
	assert.Error(t, err)
}

func TestRepository_InsertRejectsMalformedIDs(t *testing.T) {
	repo := repotest.NewSQLite(t)

	_, err := repo.InsertSymptom(context.Background(), "abc", "x")
	assert.Error(t, err)
}
