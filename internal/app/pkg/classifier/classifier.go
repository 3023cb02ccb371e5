// Package classifier builds the triage prompts and turns model output into
// typed results.
package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/llm"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"
)

// ErrMalformedResponse means the model answered with something that is not
// the JSON we asked for.
var ErrMalformedResponse = errors.New("malformed model response")

type Suggestion struct {
	Category    string `json:"category"`
	Explanation string `json:"explanation,omitempty"`
}

// Categorization is either a final category or a ranked list of
// suggestions with a follow-up question.
type Categorization struct {
	FinalCategory    string       `json:"final_category,omitempty"`
	Explanation      string       `json:"explanation,omitempty"`
	Suggestions      []Suggestion `json:"suggestions,omitempty"`
	FollowUpQuestion string       `json:"follow_up_question,omitempty"`
}

type Refinement struct {
	AdditionalInfo bool `json:"additional_info"`
	Elimination    bool `json:"elimination"`
}

type SymptomMatch struct {
	Symptom string `json:"matched_symptom"`
	Known   bool   `json:"known"`
}

type Classifier struct {
	llm llm.Completer
}

func New(c llm.Completer) *Classifier {
	return &Classifier{llm: c}
}

// Remaining drops rejected categories, ignoring case.
func Remaining(categories []taxonomy.Category, rejected []string) []taxonomy.Category {
	out := make([]taxonomy.Category, 0, len(categories))
	for _, c := range categories {
		if !containsFold(rejected, c.Name) {
			out = append(out, c)
		}
	}
	return out
}

// Categorize asks the model to place description into one of categories.
// Callers must pass at least one category. Suggestions naming anything
// outside categories are dropped; names are returned in stored spelling.
func (c *Classifier) Categorize(ctx context.Context, description string, previous []string, categories []taxonomy.Category) (Categorization, error) {
	raw, err := c.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: agentPrompt + " " + categorizeInstruction},
		{Role: llm.RoleUser, Content: categorizePrompt(description, previous, categories)},
	})
	if err != nil {
		return Categorization{}, err
	}

	var result Categorization
	if err := decode(raw, &result); err != nil {
		return Categorization{}, err
	}

	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}

	if result.FinalCategory != "" {
		if name, ok := canonical(names, result.FinalCategory); ok {
			result.FinalCategory = name
		} else {
			result.FinalCategory = ""
		}
	}

	kept := result.Suggestions[:0]
	for _, s := range result.Suggestions {
		if name, ok := canonical(names, s.Category); ok {
			s.Category = name
			kept = append(kept, s)
		}
	}
	result.Suggestions = kept

	if result.FinalCategory == "" && len(result.Suggestions) == 0 && result.FollowUpQuestion == "" {
		return Categorization{}, fmt.Errorf("%w: no usable category in %q", ErrMalformedResponse, raw)
	}
	return result, nil
}

// Refine labels a follow-up message. Anything that is neither label leaves
// both flags false.
func (c *Classifier) Refine(ctx context.Context, message string) (Refinement, error) {
	raw, err := c.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: refineInstruction},
		{Role: llm.RoleUser, Content: message},
	})
	if err != nil {
		return Refinement{}, err
	}
	label := strings.ToLower(raw)
	return Refinement{
		AdditionalInfo: strings.Contains(label, "additional_info"),
		Elimination:    strings.Contains(label, "elimination"),
	}, nil
}

// MatchSymptom picks the known symptom closest to description.
func (c *Classifier) MatchSymptom(ctx context.Context, description string, symptoms []string) (SymptomMatch, error) {
	raw, err := c.llm.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: agentPrompt + " " + matchInstruction},
		{Role: llm.RoleUser, Content: matchPrompt(description, symptoms)},
	})
	if err != nil {
		return SymptomMatch{}, err
	}

	var out struct {
		Symptom string `json:"symptom"`
	}
	if err := decode(raw, &out); err != nil {
		return SymptomMatch{}, err
	}
	out.Symptom = strings.TrimSpace(out.Symptom)
	if out.Symptom == "" {
		return SymptomMatch{}, fmt.Errorf("%w: empty symptom in %q", ErrMalformedResponse, raw)
	}

	if name, ok := canonical(symptoms, out.Symptom); ok {
		return SymptomMatch{Symptom: name, Known: true}, nil
	}
	return SymptomMatch{Symptom: out.Symptom}, nil
}

func decode(raw string, dest interface{}) error {
	body := llm.ExtractJSON(raw)
	if body == "" {
		return fmt.Errorf("%w: no JSON object in %q", ErrMalformedResponse, raw)
	}
	if err := json.Unmarshal([]byte(body), dest); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func canonical(names []string, name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

func containsFold(list []string, name string) bool {
	_, ok := canonical(list, name)
	return ok
}
