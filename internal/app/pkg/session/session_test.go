package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosis_Merge(t *testing.T) {
	d := &Diagnosis{RejectedCategories: []string{"Kafka Issues"}}
	d.Merge([]string{"kafka issues", " Pricing ", "", "File Upload", "pricing"})

	assert.Equal(t, []string{"Kafka Issues", "Pricing", "File Upload"}, d.RejectedCategories)
}

func TestNewStoreWithClient_DefaultTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	s := NewStoreWithClient(client, 0)
	assert.Equal(t, 24*time.Hour, s.ttl)

	s = NewStoreWithClient(client, time.Hour)
	assert.Equal(t, time.Hour, s.ttl)
}

// Runs against a live server only when TRIAGE_TEST_REDIS_ADDR is set.
func TestStore_AgainstRedis(t *testing.T) {
	addr := os.Getenv("TRIAGE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TRIAGE_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	s := NewStoreWithClient(redis.NewClient(&redis.Options{Addr: addr}), time.Minute)
	defer s.Close()

	id := uuid.NewString()
	empty, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, empty.RejectedCategories)

	d := &Diagnosis{Descriptions: []string{"kafka will not start"}}
	d.Merge([]string{"Pricing"})
	require.NoError(t, s.Save(ctx, id, d))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"kafka will not start"}, got.Descriptions)
	assert.Equal(t, []string{"Pricing"}, got.RejectedCategories)
	assert.False(t, got.UpdatedAt.IsZero())

	require.NoError(t, s.Delete(ctx, id))
	got, err = s.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.Descriptions)
}
