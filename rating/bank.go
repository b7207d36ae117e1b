package rating

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyBank         = errors.New("question bank has no categories")
	ErrDuplicateQuestion = errors.New("duplicate question id")
	ErrUnknownCategory   = errors.New("question references unknown category")
)

// Question is one Likert statement tagged with the category it measures
type Question struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Category  string `json:"category" yaml:"category"`
	Construct string `json:"construct,omitempty" yaml:"construct"`
	Reverse   bool   `json:"reverse" yaml:"reverse"`
}

// Bank is a static questionnaire. Categories fixes display and tie order.
type Bank struct {
	Name       string              `json:"name"`
	Title      string              `json:"title"`
	Categories []string            `json:"categories"`
	Questions  []Question          `json:"questions"`
	Keywords   map[string][]string `json:"-"`
}

// Validate checks that every question id is unique and belongs to exactly
// one declared category
func (b *Bank) Validate() error {
	if len(b.Categories) == 0 {
		return fmt.Errorf("%s: %w", b.Name, ErrEmptyBank)
	}
	known := make(map[string]bool, len(b.Categories))
	for _, c := range b.Categories {
		known[c] = true
	}
	seen := make(map[string]bool, len(b.Questions))
	for _, q := range b.Questions {
		if seen[q.ID] {
			return fmt.Errorf("%s: %w: %s", b.Name, ErrDuplicateQuestion, q.ID)
		}
		seen[q.ID] = true
		if !known[q.Category] {
			return fmt.Errorf("%s: %w: %s -> %s", b.Name, ErrUnknownCategory, q.ID, q.Category)
		}
	}
	for c := range b.Keywords {
		if !known[c] {
			return fmt.Errorf("%s: %w: keyword table %s", b.Name, ErrUnknownCategory, c)
		}
	}
	return nil
}

// HasKeywords reports whether free text can nudge this bank's scores
func (b *Bank) HasKeywords() bool {
	return len(b.Keywords) > 0
}

// Question returns the question with the given id
func (b *Bank) Question(id string) (Question, bool) {
	for _, q := range b.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ByCategory groups questions under their category, in bank order
func (b *Bank) ByCategory() map[string][]Question {
	out := make(map[string][]Question, len(b.Categories))
	for _, q := range b.Questions {
		out[q.Category] = append(out[q.Category], q)
	}
	return out
}

// KeywordBumps returns the additive nudge per category: one weight for each
// distinct trigger word found in the text. Matching is plain case-insensitive
// substring containment, so "art" also matches "heart".
func (e *Engine) KeywordBumps(bank *Bank, freeText string) map[string]float64 {
	bumps := make(map[string]float64, len(bank.Categories))
	for _, c := range bank.Categories {
		bumps[c] = 0
	}
	text := strings.ToLower(freeText)
	if text == "" || !bank.HasKeywords() {
		return bumps
	}
	for category, words := range bank.Keywords {
		matched := 0
		for _, w := range words {
			if strings.Contains(text, strings.ToLower(w)) {
				matched++
			}
		}
		bumps[category] = float64(matched) * e.Config.KeywordWeight
	}
	return bumps
}
