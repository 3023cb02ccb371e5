package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/ds"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"

	"gorm.io/gorm/clause"
)

// Clear removes every taxonomy row, children first.
func (r *Repository) Clear(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	for _, table := range []string{"detection_methods", "recommended_actions", "causes", "symptoms", "categories"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (r *Repository) InsertCategory(ctx context.Context, c taxonomy.Category) (string, error) {
	row := ds.Category{Name: c.Name, Description: c.Description}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return formatID(row.ID), nil
}

func (r *Repository) InsertSymptom(ctx context.Context, categoryID, name string) (string, error) {
	id, err := parseID(categoryID)
	if err != nil {
		return "", err
	}
	row := ds.Symptom{CategoryID: id, Name: name}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return "", err
	}
	return formatID(row.ID), nil
}

func (r *Repository) InsertCauses(ctx context.Context, symptomID string, causes []string) error {
	id, err := parseID(symptomID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&ds.Cause{SymptomID: id, Causes: causes}).Error
}

func (r *Repository) InsertActions(ctx context.Context, symptomID string, actions []string) error {
	id, err := parseID(symptomID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&ds.RecommendedAction{SymptomID: id, Actions: actions}).Error
}

func (r *Repository) InsertDetectionMethods(ctx context.Context, symptomID string, methods []string) error {
	id, err := parseID(symptomID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&ds.DetectionMethod{SymptomID: id, Methods: methods}).Error
}

func (r *Repository) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	db := r.db.WithContext(ctx)
	for _, q := range []struct {
		model interface{}
		dest  *int64
	}{
		{&ds.Category{}, &c.Categories},
		{&ds.Symptom{}, &c.Symptoms},
		{&ds.Cause{}, &c.Causes},
		{&ds.RecommendedAction{}, &c.Actions},
		{&ds.DetectionMethod{}, &c.DetectionMethods},
	} {
		if err := db.Model(q.model).Count(q.dest).Error; err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseID(id string) (uint, error) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return uint(v), nil
}
