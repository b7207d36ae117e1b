package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"archetypeagent/catalog"
	"archetypeagent/internal/session"
	"archetypeagent/models"
	"archetypeagent/rating"
	"archetypeagent/structs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

// Archive is long-term storage for exported assessments
type Archive interface {
	Save(ctx context.Context, assessment models.Assessment) error
	Find(ctx context.Context, id string) (*models.Assessment, error)
}

// AssessmentDeps are the collaborators of the assessment pipeline. Generator
// and Archive may be nil.
type AssessmentDeps struct {
	Engine         *rating.Engine
	Generator      TextGenerator
	InsightTimeout time.Duration
	Store          session.Store
	ResultTTL      time.Duration
	Archive        Archive
	Logger         *zap.Logger
	Now            func() time.Time
}

var deps AssessmentDeps

// InitAssessmentService wires the pipeline collaborators. Missing pieces fall
// back to defaults: the default engine, an in-memory store and a no-op logger.
func InitAssessmentService(d AssessmentDeps) {
	if d.Engine == nil {
		d.Engine = rating.New(nil)
	}
	if d.Store == nil {
		d.Store = session.NewMemoryStore()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.InsightTimeout <= 0 {
		d.InsightTimeout = 30 * time.Second
	}
	deps = d
}

// SubmitAssessment scores a submission, attaches narratives and optional AI
// commentary, and stores the resulting assessment
func SubmitAssessment(ctx context.Context, model string, responses rating.Responses, freeText string, includeInsight bool) (*models.Assessment, error) {
	bank, err := catalog.Lookup(model)
	if err != nil {
		return nil, err
	}
	if responses == nil {
		responses = rating.Responses{}
	}

	result := deps.Engine.Score(bank, responses, freeText)
	assessment := models.Assessment{
		ID:        uuid.NewString(),
		Model:     bank.Name,
		Title:     bank.Title,
		Responses: responses,
		FreeText:  freeText,
		Result:    result,
		CreatedAt: deps.Now().UTC(),
	}

	switch bank.Name {
	case catalog.ModelJungian:
		profile := catalog.Profile(result)
		assessment.Profile = &profile
		assessment.Narratives = summarize(result.Scores)
		if includeInsight {
			insight := RequestInsight(ctx, deps.Generator, deps.InsightTimeout,
				JungianAnalysisPrompt(profile, bank, responses, freeText), jungianAnalysisOptions, insightFallback)
			assessment.Insight = &insight
			if insight.Available {
				practice := RequestInsight(ctx, deps.Generator, deps.InsightTimeout,
					IntegrationPracticePrompt(profile), integrationOptions, integrationFallback)
				assessment.FollowUp = &practice
			}
		}
	default:
		assessment.Narratives = summarize(result.Top)
		if includeInsight {
			insight := RequestInsight(ctx, deps.Generator, deps.InsightTimeout,
				ArchetypeInsightPrompt(result, freeText), archetypeInsightOptions, insightFallback)
			assessment.Insight = &insight
			if len(result.Top) > 0 {
				primary := result.Top[0].Category
				reflection := RequestInsight(ctx, deps.Generator, deps.InsightTimeout,
					DailyReflectionPrompt(primary), dailyReflectionOptions, dailyReflectionFallback(primary))
				assessment.FollowUp = &reflection
			}
		}
	}

	if assessment.Insight != nil && !assessment.Insight.Available {
		deps.Logger.Warn("insight unavailable",
			zap.String("assessment", assessment.ID),
			zap.String("status", assessment.Insight.Status))
	}

	persist(ctx, assessment)
	deps.Logger.Info("assessment scored",
		zap.String("assessment", assessment.ID),
		zap.String("model", assessment.Model),
		zap.Int("answered", len(responses)),
		zap.Bool("insight", includeInsight))
	return &assessment, nil
}

func summarize(scores []rating.CategoryScore) []models.NarrativeSummary {
	out := make([]models.NarrativeSummary, 0, len(scores))
	for _, s := range scores {
		out = append(out, models.NarrativeSummary{
			Category:    s.Category,
			DisplayName: catalog.DisplayName(s.Category),
			Score:       s.Normalized,
			Narrative:   catalog.NarrativeFor(s.Category),
		})
	}
	return out
}

// persist writes the assessment to the session store and the archive. Storage
// failures are logged; the caller still gets its result.
func persist(ctx context.Context, assessment models.Assessment) {
	data, err := json.Marshal(assessment)
	if err != nil {
		deps.Logger.Error("encode assessment", zap.String("assessment", assessment.ID), zap.Error(err))
		return
	}
	if err := deps.Store.Put(ctx, assessment.ID, data, deps.ResultTTL); err != nil {
		deps.Logger.Error("session store write failed", zap.String("assessment", assessment.ID), zap.Error(err))
	}
	if deps.Archive != nil {
		if err := deps.Archive.Save(ctx, assessment); err != nil {
			deps.Logger.Error("archive write failed", zap.String("assessment", assessment.ID), zap.Error(err))
		}
	}
}

// GetAssessment loads a submitted assessment from the session store, falling
// back to the archive once the session entry has expired
func GetAssessment(ctx context.Context, id string) (*models.Assessment, error) {
	data, err := deps.Store.Get(ctx, id)
	switch {
	case err == nil:
		var assessment models.Assessment
		if err := json.Unmarshal(data, &assessment); err != nil {
			return nil, fmt.Errorf("decode assessment %s: %w", id, err)
		}
		return &assessment, nil
	case !errors.Is(err, session.ErrNotFound):
		deps.Logger.Warn("session store read failed", zap.String("assessment", id), zap.Error(err))
	}

	if deps.Archive == nil {
		return nil, ErrAssessmentNotFound
	}
	assessment, err := deps.Archive.Find(ctx, id)
	if err != nil {
		deps.Logger.Debug("archive lookup failed", zap.String("assessment", id), zap.Error(err))
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

// Questions lists a model's questionnaire grouped by category in display order
func Questions(model string) (*structs.QuestionnaireResponse, error) {
	bank, err := catalog.Lookup(model)
	if err != nil {
		return nil, err
	}
	cfg := deps.Engine.Config
	resp := &structs.QuestionnaireResponse{
		Model: bank.Name,
		Title: bank.Title,
		Scale: structs.ScaleInfo{
			Min:     cfg.ScaleMin,
			Max:     cfg.ScaleMax,
			Default: cfg.Neutral,
			Legend:  fmt.Sprintf("%d = Strongly Disagree, %d = Strongly Agree", cfg.ScaleMin, cfg.ScaleMax),
		},
	}
	grouped := bank.ByCategory()
	for _, category := range bank.Categories {
		group := structs.QuestionGroup{Category: category, DisplayName: catalog.DisplayName(category)}
		for _, q := range grouped[category] {
			group.Questions = append(group.Questions, structs.QuestionView{ID: q.ID, Text: q.Text, Construct: q.Construct})
		}
		resp.Groups = append(resp.Groups, group)
	}
	return resp, nil
}

// Status describes the insight generator and storage backends. With probe set
// the generator is called once to confirm it answers.
func Status(ctx context.Context, probe bool) structs.StatusResponse {
	online, store, archive := InsightStatus()
	status := structs.StatusResponse{
		Insight:       "AI insight offline: no API key configured",
		InsightOnline: online,
		SessionStore:  store,
		Archive:       archive,
		Models:        catalog.Models(),
	}
	if !online {
		return status
	}
	status.Insight = "AI insight configured"
	if probe {
		if err := ProbeGenerator(ctx); err != nil {
			deps.Logger.Warn("generator probe failed", zap.Error(err))
			status.InsightOnline = false
			status.Insight = fmt.Sprintf("AI insight unreachable: %v", err)
		} else {
			status.Insight = "AI insight online"
		}
	}
	return status
}

// InsightStatus reports whether a text generator is configured, and which
// session store and archive are in use
func InsightStatus() (online bool, store string, archive bool) {
	return deps.Generator != nil, deps.Store.Kind(), deps.Archive != nil
}

// ProbeGenerator sends a tiny prompt to check the text generator end to end
func ProbeGenerator(ctx context.Context) error {
	if deps.Generator == nil {
		return errGeneratorUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, deps.InsightTimeout)
	defer cancel()
	_, err := deps.Generator.GenerateText(ctx, "Hello", GenerationOptions{Temperature: 0, MaxOutputTokens: 5})
	return err
}
