// Package storage opens the taxonomy store selected in the configuration.
package storage

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/config"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository/docstore"
)

// Backend is an opened store plus the driver specific schema and
// shutdown steps.
type Backend struct {
	Store repository.Store

	driver  string
	migrate func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// Open connects to MongoDB or Postgres depending on cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		docs, err := docstore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.WithField("database", cfg.MongoDatabase).Info("connected to mongo")
		return &Backend{
			Store:   docs,
			driver:  cfg.Driver,
			migrate: docs.EnsureIndexes,
			close:   docs.Close,
		}, nil

	case config.DriverPostgres:
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect database: %w", err)
		}
		repo := repository.New(db)
		log.Info("connected to postgres")
		return &Backend{
			Store:   repo,
			driver:  cfg.Driver,
			migrate: func(context.Context) error { return repo.Migrate() },
			close:   func(context.Context) error { return repo.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func (b *Backend) Driver() string {
	return b.driver
}

// Migrate creates tables for Postgres and indexes for MongoDB. Both are
// safe to repeat.
func (b *Backend) Migrate(ctx context.Context) error {
	return b.migrate(ctx)
}

func (b *Backend) Close(ctx context.Context) error {
	return b.close(ctx)
}
