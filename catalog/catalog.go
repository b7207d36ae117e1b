// Package catalog holds the static question banks and narrative tables.
package catalog

import (
	"errors"
	"strings"

	"archetypeagent/rating"
)

const (
	ModelArchetype = "archetype"
	ModelJungian   = "jungian"
)

var ErrUnknownModel = errors.New("unknown assessment model")

// Narrative is the descriptive text shown next to a category score
type Narrative struct {
	Tagline string `json:"tagline" bson:"tagline"`
	Gifts   string `json:"gifts" bson:"gifts"`
	Shadows string `json:"shadows" bson:"shadows"`
	Growth  string `json:"growth" bson:"growth"`
}

// Models lists the available assessment models
func Models() []string {
	return []string{ModelArchetype, ModelJungian}
}

// Lookup returns the question bank for a model key
func Lookup(model string) (*rating.Bank, error) {
	switch strings.ToLower(strings.TrimSpace(model)) {
	case ModelArchetype:
		return archetypeBank, nil
	case ModelJungian:
		return jungianBank, nil
	default:
		return nil, ErrUnknownModel
	}
}

// Archetypes returns the 12-archetype bank
func Archetypes() *rating.Bank { return archetypeBank }

// Jungian returns the Jungian dimensions bank
func Jungian() *rating.Bank { return jungianBank }

// NarrativeFor returns the narrative for an archetype or dimension. Unknown
// names yield an empty placeholder.
func NarrativeFor(name string) Narrative {
	if n, ok := archetypeNarratives[name]; ok {
		return n
	}
	if n, ok := jungianNarratives[name]; ok {
		return n
	}
	if n, ok := jungianNarratives[categoryKey(name)]; ok {
		return n
	}
	return Narrative{}
}

// DisplayName turns a category key into a label: "shadow_integration" -> "Shadow Integration"
func DisplayName(category string) string {
	words := strings.Fields(strings.ReplaceAll(category, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func categoryKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}
