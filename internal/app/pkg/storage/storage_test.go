package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/config"
)

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "sqlite"})
	assert.EqualError(t, err, `unknown storage driver "sqlite"`)
}
