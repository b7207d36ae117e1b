package services

import (
	"encoding/json"
	"fmt"
	"time"

	"archetypeagent/catalog"
	"archetypeagent/models"
	"archetypeagent/rating"
)

const (
	archetypeDisclaimer = "Symbolic, reflective tool. Not a diagnosis or medical advice."
	jungianDisclaimer   = "Comprehensive Jungian depth-psychological analysis for personal growth and self-understanding. Not for clinical diagnosis."
)

// RankedScore is one entry of the exported top list
type RankedScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// Report is the downloadable JSON document of one assessment
type Report struct {
	ID          string                    `json:"id"`
	Timestamp   string                    `json:"timestamp"`
	Model       string                    `json:"model"`
	Top         []RankedScore             `json:"top3"`
	Scores      map[string]float64        `json:"scores"`
	RawScores   map[string]float64        `json:"raw_scores"`
	Summary     []models.NarrativeSummary `json:"summary"`
	Profile     *catalog.JungianProfile   `json:"profile,omitempty"`
	Insight     string                    `json:"insight,omitempty"`
	FollowUp    string                    `json:"follow_up,omitempty"`
	Explanation string                    `json:"explanation"`
	Notes       string                    `json:"notes"`
	Responses   rating.Responses          `json:"responses"`
	Disclaimer  string                    `json:"disclaimer"`
}

// BuildReport assembles the export document for an assessment
func BuildReport(a *models.Assessment) Report {
	report := Report{
		ID:          a.ID,
		Timestamp:   a.CreatedAt.Format(time.RFC3339),
		Model:       a.Model,
		Scores:      a.Result.NormalizedScores(),
		RawScores:   a.Result.RawScores(),
		Summary:     a.Narratives,
		Profile:     a.Profile,
		Explanation: a.Result.Explanation,
		Notes:       a.FreeText,
		Responses:   a.Responses,
		Disclaimer:  archetypeDisclaimer,
	}
	for _, s := range a.Result.Top {
		report.Top = append(report.Top, RankedScore{Category: s.Category, Score: s.Normalized})
	}
	if a.Insight != nil {
		report.Insight = a.Insight.Text
	}
	if a.FollowUp != nil {
		report.FollowUp = a.FollowUp.Text
	}
	if a.Model == catalog.ModelJungian {
		report.Disclaimer = jungianDisclaimer
	}
	return report
}

// EncodeReport renders the report as indented JSON
func EncodeReport(r Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return data, nil
}

// ReportFilename is the download name of an assessment's report
func ReportFilename(a *models.Assessment) string {
	stamp := a.CreatedAt.Format("20060102_1504")
	if a.Model == catalog.ModelJungian {
		return fmt.Sprintf("jungian_analysis_%s.json", stamp)
	}
	return fmt.Sprintf("archetype_report_%s.json", stamp)
}
