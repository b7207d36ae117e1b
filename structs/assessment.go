package structs

type SubmitAssessmentRequest struct {
	Responses      map[string]int `json:"responses" binding:"omitempty,dive,min=1,max=7"`
	FreeText       string         `json:"freeText" binding:"max=4000"`
	IncludeInsight bool           `json:"includeInsight"`
}

type QuestionGroup struct {
	Category    string         `json:"category"`
	DisplayName string         `json:"displayName"`
	Questions   []QuestionView `json:"questions"`
}

type QuestionView struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Construct string `json:"construct,omitempty"`
}

type QuestionnaireResponse struct {
	Model  string          `json:"model"`
	Title  string          `json:"title"`
	Scale  ScaleInfo       `json:"scale"`
	Groups []QuestionGroup `json:"groups"`
}

type ScaleInfo struct {
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Default int    `json:"default"`
	Legend  string `json:"legend"`
}

type StatusResponse struct {
	Insight       string   `json:"insight"`
	InsightOnline bool     `json:"insightOnline"`
	SessionStore  string   `json:"sessionStore"`
	Archive       bool     `json:"archive"`
	Models        []string `json:"models"`
}
