// Package seed copies the static taxonomy into a store.
package seed

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/repository"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"
)

// Report counts what one Load inserted.
type Report struct {
	Categories       int `json:"categories"`
	Symptoms         int `json:"symptoms"`
	Causes           int `json:"causes"`
	Actions          int `json:"recommended_actions"`
	DetectionMethods int `json:"detection_methods"`
}

type Loader struct {
	store repository.Writer
	table taxonomy.Table
}

func NewLoader(store repository.Writer, table taxonomy.Table) *Loader {
	return &Loader{store: store, table: table}
}

// Load clears the store and inserts the whole table. Clearing, categories
// and symptoms are all-or-nothing: a failure there aborts the load. The
// per-symptom lists are independent batches; a failure stops only the
// batch it happened in and is reported in the joined error.
func (l *Loader) Load(ctx context.Context) (Report, error) {
	var report Report

	if err := l.table.Validate(); err != nil {
		return report, fmt.Errorf("invalid taxonomy: %w", err)
	}

	log.Info("clearing old taxonomy data")
	if err := l.store.Clear(ctx); err != nil {
		return report, fmt.Errorf("clear store: %w", err)
	}

	categoryIDs := make(map[string]string, len(l.table.Categories))
	for _, c := range l.table.Categories {
		id, err := l.store.InsertCategory(ctx, c)
		if err != nil {
			return report, fmt.Errorf("insert category %q: %w", c.Name, err)
		}
		categoryIDs[c.Name] = id
		report.Categories++
		log.WithField("category", c.Name).Debug("inserted category")
	}

	symptomIDs := make(map[string]string)
	for _, c := range l.table.Categories {
		for _, name := range l.table.Symptoms[c.Name] {
			id, err := l.store.InsertSymptom(ctx, categoryIDs[c.Name], name)
			if err != nil {
				return report, fmt.Errorf("insert symptom %q: %w", name, err)
			}
			symptomIDs[name] = id
			report.Symptoms++
			log.WithField("symptom", name).Debug("inserted symptom")
		}
	}

	batches := []struct {
		kind   string
		lists  map[string][]string
		insert func(context.Context, string, []string) error
		count  *int
	}{
		{"causes", l.table.Causes, l.store.InsertCauses, &report.Causes},
		{"recommended actions", l.table.Actions, l.store.InsertActions, &report.Actions},
		{"detection methods", l.table.DetectionMethods, l.store.InsertDetectionMethods, &report.DetectionMethods},
	}

	var errs []error
	for _, b := range batches {
		n, err := l.insertLists(ctx, symptomIDs, b.lists, b.insert)
		*b.count = n
		if err != nil {
			log.WithError(err).WithField("batch", b.kind).Error("batch aborted")
			errs = append(errs, fmt.Errorf("insert %s: %w", b.kind, err))
			continue
		}
		log.WithFields(log.Fields{"batch": b.kind, "count": n}).Info("inserted batch")
	}

	if err := errors.Join(errs...); err != nil {
		return report, err
	}

	log.WithFields(log.Fields{
		"categories": report.Categories,
		"symptoms":   report.Symptoms,
	}).Info("taxonomy upload complete")
	return report, nil
}

// insertLists walks symptoms in table order so runs are reproducible.
// Lists keyed by symptoms that were not inserted are skipped.
func (l *Loader) insertLists(ctx context.Context, symptomIDs map[string]string, lists map[string][]string,
	insert func(context.Context, string, []string) error) (int, error) {
	n := 0
	for _, name := range l.table.SymptomNames() {
		values, ok := lists[name]
		if !ok {
			continue
		}
		id, ok := symptomIDs[name]
		if !ok {
			continue
		}
		if err := insert(ctx, id, values); err != nil {
			return n, fmt.Errorf("symptom %q: %w", name, err)
		}
		n++
	}
	return n, nil
}
