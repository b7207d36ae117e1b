package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"archetypeagent/catalog"
	"archetypeagent/models"
	"archetypeagent/rating"
)

var (
	archetypeInsightOptions = GenerationOptions{Temperature: 0.8, MaxOutputTokens: 600}
	dailyReflectionOptions  = GenerationOptions{Temperature: 0.7, MaxOutputTokens: 100}
	jungianAnalysisOptions  = GenerationOptions{Temperature: 0.8, MaxOutputTokens: 1200}
	integrationOptions      = GenerationOptions{Temperature: 0.7, MaxOutputTokens: 200}
)

const (
	insightFallback     = "Unable to generate insight at this time."
	resonanceLimit      = 5
	highResonanceRating = 6
	lowResonanceRating  = 2
)

// RequestInsight sends the prompt under the given timeout and returns the
// generated text. Any failure yields the fallback text and a status message.
func RequestInsight(ctx context.Context, gen TextGenerator, timeout time.Duration, prompt string, opts GenerationOptions, fallback string) models.Insight {
	if gen == nil {
		return models.Insight{Text: fallback, Status: "AI insight offline: text generation is not configured."}
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	text, err := gen.GenerateText(ctx, prompt, opts)
	if err != nil {
		return models.Insight{Text: fallback, Status: fmt.Sprintf("AI insight temporarily unavailable. Error: %v", err)}
	}
	if strings.TrimSpace(text) == "" {
		return models.Insight{Text: fallback, Status: "AI insight returned no text."}
	}
	return models.Insight{Text: text, Available: true, Status: "ok"}
}

func formatScoreList(scores []rating.CategoryScore) string {
	parts := make([]string, 0, len(scores))
	for _, s := range scores {
		parts = append(parts, fmt.Sprintf("%s (%.1f)", catalog.DisplayName(s.Category), s.Normalized))
	}
	return strings.Join(parts, ", ")
}

// ArchetypeInsightPrompt asks for a personalized reading of the top archetypes
func ArchetypeInsightPrompt(res rating.Result, freeText string) string {
	return fmt.Sprintf(`You are a wise Jungian psychologist and archetype expert. A person has taken an archetype assessment with these results:

Top Archetypes: %s
Least Expressed Archetypes: %s

Personal reflection: "%s"

Please provide a thoughtful, personalized analysis that includes:

1. **Current Life Phase**: What psychological/spiritual development phase are they likely in?

2. **Integration Opportunity**: How can they balance their dominant archetypes with their less expressed ones?

3. **Shadow Work**: What shadow aspects might they need to acknowledge based on their profile?

4. **Growth Direction**: What specific steps would support their individuation process?

5. **Archetypal Tension**: What creative tension exists between their top archetypes that could fuel growth?

Keep the tone warm, insightful, and empowering. Focus on growth and integration rather than problems. Make it feel personally relevant and actionable.

Length: 3-4 paragraphs maximum.`,
		formatScoreList(res.Top), formatScoreList(res.Bottom), freeText)
}

// DailyReflectionPrompt asks for one reflection question for the primary archetype
func DailyReflectionPrompt(archetype string) string {
	return fmt.Sprintf(`As a Jungian psychologist, create a thoughtful daily reflection question for someone whose primary archetype is %s.

The question should:
- Be personally meaningful and introspective
- Connect to their archetype's growth edge
- Be practical for daily self-reflection
- Encourage integration of their archetype's gifts while addressing potential shadows

Provide just the question, nothing else. Make it thought-provoking but not overwhelming.`, archetype)
}

func dailyReflectionFallback(archetype string) string {
	return fmt.Sprintf("How can I embody the best qualities of the %s today?", archetype)
}

// resonances lists up to resonanceLimit questions rated at or above high
// (or at or below low when high is false), in bank order
func resonances(bank *rating.Bank, responses rating.Responses, high bool) []string {
	var out []string
	for _, q := range bank.Questions {
		r, ok := responses[q.ID]
		if !ok {
			continue
		}
		if (high && r >= highResonanceRating) || (!high && r <= lowResonanceRating) {
			out = append(out, fmt.Sprintf("%s: %s", q.Category, q.Text))
		}
		if len(out) == resonanceLimit {
			break
		}
	}
	return out
}

func joinOrNone(lines []string) string {
	if len(lines) == 0 {
		return "None identified"
	}
	return strings.Join(lines, "\n")
}

// JungianAnalysisPrompt asks for a depth-psychological analysis of the profile
func JungianAnalysisPrompt(p catalog.JungianProfile, bank *rating.Bank, responses rating.Responses, freeText string) string {
	return fmt.Sprintf(`You are Carl Jung providing a comprehensive depth-psychological analysis. This person has completed an assessment based on your theoretical framework.

**JUNGIAN PSYCHOLOGICAL PROFILE:**

**Individuation Stage:** %s

**Core Dimensions:**
- Shadow Integration: %.1f/7
- Anima/Animus Balance: %.1f/7
- Persona Authenticity: %.1f/7

**Consciousness Dynamics:**
- Ego Consciousness: %.1f/7
- Personal Unconscious: %.1f/7
- Collective Unconscious: %.1f/7

**Psychological Type Profile:**
- Introversion: %.1f/7
- Extraversion: %.1f/7
- Thinking: %.1f/7
- Feeling: %.1f/7
- Sensation: %.1f/7
- Intuition: %.1f/7

**Strong Resonances (Conscious Identification):**
%s

**Weak Resonances (Potential Shadow Material):**
%s

**Personal Reflection:** "%s"

**PROVIDE DEPTH-PSYCHOLOGICAL ANALYSIS:**

1. **Individuation Assessment**: Where they are in becoming psychologically whole

2. **Shadow Work**: What rejected aspects need conscious integration

3. **Anima/Animus Development**: How to balance inner masculine/feminine

4. **Transcendent Function**: Bridging conscious-unconscious divide

5. **Compensation Patterns**: What the unconscious is trying to balance

6. **Next Developmental Phase**: Specific inner work for continued individuation

Use authentic Jungian concepts: enantiodromia, projection, complexes, synchronicity, etc. Write with psychological sophistication and compassionate insight.

**Length**: 3 substantial paragraphs.`,
		p.IndividuationStage,
		p.ShadowIntegration, p.AnimaAnimusBalance, p.PersonaAuthenticity,
		p.ConsciousnessLevels[catalog.EgoConsciousness],
		p.ConsciousnessLevels[catalog.PersonalUnconscious],
		p.ConsciousnessLevels[catalog.CollectiveUnconscious],
		p.PsychologicalType[catalog.Introversion],
		p.PsychologicalType[catalog.Extraversion],
		p.PsychologicalType[catalog.Thinking],
		p.PsychologicalType[catalog.Feeling],
		p.PsychologicalType[catalog.Sensation],
		p.PsychologicalType[catalog.Intuition],
		joinOrNone(resonances(bank, responses, true)),
		joinOrNone(resonances(bank, responses, false)),
		freeText,
	)
}

// IntegrationPracticePrompt asks for one inner-work practice for the stage
func IntegrationPracticePrompt(p catalog.JungianProfile) string {
	return fmt.Sprintf(`As Carl Jung, recommend ONE specific active imagination or inner work practice for someone at the "%s" stage with shadow integration level %.1f/7. Make it practical for daily psychological development. 2-3 sentences.`,
		p.IndividuationStage, p.ShadowIntegration)
}

const integrationFallback = "Spend ten minutes each evening writing down one strong reaction from the day and the part of yourself it might be pointing to."
