package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataIsConsistent(t *testing.T) {
	require.NoError(t, Data.Validate())

	assert.Len(t, Data.Categories, 8)
	assert.Len(t, Data.SymptomNames(), 19)
	assert.Len(t, Data.Causes, 19)
	assert.Len(t, Data.Actions, 19)
	assert.Len(t, Data.DetectionMethods, 3)
}

func TestSymptomNamesOrder(t *testing.T) {
	names := Data.SymptomNames()
	require.NotEmpty(t, names)
	assert.Equal(t, "Slow loading times", names[0])
	assert.Equal(t, "Incorrect pricing applied", names[len(names)-1])
}

func TestFindCategory(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "exact", input: "Kafka Issues", want: "Kafka Issues", wantOK: true},
		{name: "lower case", input: "kafka issues", want: "Kafka Issues", wantOK: true},
		{name: "padded", input: "  Pricing ", want: "Pricing", wantOK: true},
		{name: "unknown", input: "Networking", wantOK: false},
		{name: "prefix only", input: "Kafka", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Data.FindCategory(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, c.Name)
			}
		})
	}
}

func TestValidateRejectsBrokenReferences(t *testing.T) {
	tests := []struct {
		name  string
		table Table
	}{
		{
			name: "symptom under unknown category",
			table: Table{
				Categories: []Category{{Name: "A"}},
				Symptoms:   map[string][]string{"B": {"s1"}},
			},
		},
		{
			name: "duplicate symptom",
			table: Table{
				Categories: []Category{{Name: "A"}, {Name: "B"}},
				Symptoms:   map[string][]string{"A": {"s1"}, "B": {"s1"}},
			},
		},
		{
			name: "cause for unknown symptom",
			table: Table{
				Categories: []Category{{Name: "A"}},
				Symptoms:   map[string][]string{"A": {"s1"}},
				Causes:     map[string][]string{"s2": {"c"}},
			},
		},
		{
			name: "duplicate category",
			table: Table{
				Categories: []Category{{Name: "A"}, {Name: "A"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.table.Validate())
		})
	}
}
