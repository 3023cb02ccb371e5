package repository

import (
	"context"
	"errors"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) CausesOf(ctx context.Context, symptom string) ([]string, error) {
	s, err := r.getSymptom(ctx, symptom)
	if err != nil {
		return nil, err
	}
	var c ds.Cause
	if err := r.firstBySymptom(ctx, s.ID, &c); err != nil {
		return nil, err
	}
	return c.Causes, nil
}

func (r *Repository) ActionsOf(ctx context.Context, symptom string) ([]string, error) {
	s, err := r.getSymptom(ctx, symptom)
	if err != nil {
		return nil, err
	}
	var a ds.RecommendedAction
	if err := r.firstBySymptom(ctx, s.ID, &a); err != nil {
		return nil, err
	}
	return a.Actions, nil
}

func (r *Repository) DetectionMethodsOf(ctx context.Context, symptom string) ([]string, error) {
	s, err := r.getSymptom(ctx, symptom)
	if err != nil {
		return nil, err
	}
	var m ds.DetectionMethod
	if err := r.firstBySymptom(ctx, s.ID, &m); err != nil {
		return nil, err
	}
	return m.Methods, nil
}

func (r *Repository) firstBySymptom(ctx context.Context, symptomID uint, dest interface{}) error {
	err := r.db.WithContext(ctx).Where("symptom_id = ?", symptomID).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
