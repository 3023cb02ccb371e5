package repository

import (
	"fmt"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/ds"

	"gorm.io/gorm"
)

// Repository is the relational Store backed by gorm.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the taxonomy tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(ds.Models()...); err != nil {
		return fmt.Errorf("migrate taxonomy tables: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ Store = (*Repository)(nil)
