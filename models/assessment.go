package models

import (
	"time"

	"archetypeagent/catalog"
	"archetypeagent/rating"
)

// Insight is generated commentary, or the fallback text when generation failed
type Insight struct {
	Text      string `json:"text" bson:"text"`
	Available bool   `json:"available" bson:"available"`
	Status    string `json:"status" bson:"status"`
}

// NarrativeSummary pairs a category with its descriptive text
type NarrativeSummary struct {
	Category    string  `json:"category" bson:"category"`
	DisplayName string  `json:"displayName" bson:"displayName"`
	Score       float64 `json:"score" bson:"score"`
	catalog.Narrative `bson:",inline"`
}

// Assessment is one scored submission. It is built once and never mutated.
type Assessment struct {
	ID         string                  `json:"id" bson:"_id"`
	Model      string                  `json:"model" bson:"model"`
	Title      string                  `json:"title" bson:"title"`
	Responses  rating.Responses        `json:"responses" bson:"responses"`
	FreeText   string                  `json:"freeText" bson:"freeText"`
	Result     rating.Result           `json:"result" bson:"result"`
	Narratives []NarrativeSummary      `json:"narratives" bson:"narratives"`
	Profile    *catalog.JungianProfile `json:"profile,omitempty" bson:"profile,omitempty"`
	Insight    *Insight                `json:"insight,omitempty" bson:"insight,omitempty"`
	FollowUp   *Insight                `json:"followUp,omitempty" bson:"followUp,omitempty"`
	CreatedAt  time.Time               `json:"createdAt" bson:"createdAt"`
}
