package repository

import (
	"context"
	"errors"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/ds"

	"gorm.io/gorm"
)

// SymptomsOf returns the symptoms of a category in insertion order.
func (r *Repository) SymptomsOf(ctx context.Context, category string) ([]string, error) {
	c, err := r.getCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	var names []string
	err = r.db.WithContext(ctx).Model(&ds.Symptom{}).
		Where("category_id = ?", c.ID).
		Order("id").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *Repository) SymptomNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&ds.Symptom{}).Order("id").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *Repository) getSymptom(ctx context.Context, name string) (ds.Symptom, error) {
	var s ds.Symptom
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Symptom{}, ErrNotFound
	}
	if err != nil {
		return ds.Symptom{}, err
	}
	return s, nil
}
