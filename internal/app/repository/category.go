package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/ds"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"

	"gorm.io/gorm"
)

func (r *Repository) Categories(ctx context.Context) ([]taxonomy.Category, error) {
	var rows []ds.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	categories := make([]taxonomy.Category, 0, len(rows))
	for _, c := range rows {
		categories = append(categories, taxonomy.Category{Name: c.Name, Description: c.Description})
	}
	return categories, nil
}

func (r *Repository) FindCategory(ctx context.Context, name string) (taxonomy.Category, error) {
	c, err := r.getCategory(ctx, name)
	if err != nil {
		return taxonomy.Category{}, err
	}
	return taxonomy.Category{Name: c.Name, Description: c.Description}, nil
}

func (r *Repository) getCategory(ctx context.Context, name string) (ds.Category, error) {
	var c ds.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Category{}, ErrNotFound
	}
	if err != nil {
		return ds.Category{}, err
	}
	return c, nil
}
