package rating

import (
	"math"
	"sort"
)

const (
	defaultScaleMin      = 1
	defaultScaleMax      = 7
	defaultNeutral       = 4
	defaultKeywordWeight = 0.15
	defaultSteepness     = 6.0
	defaultCenter        = 0.5
	defaultTopN          = 3
	degenerateScore      = 50.0
)

// Config holds the scoring parameters shared by every bank
type Config struct {
	ScaleMin      int     `json:"scale_min" yaml:"scaleMin"`
	ScaleMax      int     `json:"scale_max" yaml:"scaleMax"`
	Neutral       int     `json:"neutral" yaml:"neutral"`
	KeywordWeight float64 `json:"keyword_weight" yaml:"keywordWeight"`
	Steepness     float64 `json:"steepness" yaml:"steepness"`
	Center        float64 `json:"center" yaml:"center"`
	TopN          int     `json:"top_n" yaml:"topN"`
}

// DefaultConfig returns the parameters of the 7-point questionnaire
func DefaultConfig() *Config {
	return &Config{
		ScaleMin:      defaultScaleMin,
		ScaleMax:      defaultScaleMax,
		Neutral:       defaultNeutral,
		KeywordWeight: defaultKeywordWeight,
		Steepness:     defaultSteepness,
		Center:        defaultCenter,
		TopN:          defaultTopN,
	}
}

// Responses maps question id to a Likert rating
type Responses map[string]int

// CategoryScore is the derived score of one category
type CategoryScore struct {
	Category   string  `json:"category" bson:"category"`
	Raw        float64 `json:"raw" bson:"raw"`
	Bump       float64 `json:"bump" bson:"bump"`
	Adjusted   float64 `json:"adjusted" bson:"adjusted"`
	Normalized float64 `json:"normalized" bson:"normalized"`
}

// Result is the outcome of scoring one submission. Scores are in bank order.
type Result struct {
	Bank        string          `json:"bank" bson:"bank"`
	Scores      []CategoryScore `json:"scores" bson:"scores"`
	Top         []CategoryScore `json:"top" bson:"top"`
	Bottom      []CategoryScore `json:"bottom" bson:"bottom"`
	Explanation string          `json:"explanation" bson:"explanation"`
}

// Score returns the score for a category and whether it exists
func (r Result) Score(category string) (CategoryScore, bool) {
	for _, s := range r.Scores {
		if s.Category == category {
			return s, true
		}
	}
	return CategoryScore{}, false
}

// RawScores returns the unadjusted category means keyed by category
func (r Result) RawScores() map[string]float64 {
	out := make(map[string]float64, len(r.Scores))
	for _, s := range r.Scores {
		out[s.Category] = s.Raw
	}
	return out
}

// NormalizedScores returns the display scores keyed by category
func (r Result) NormalizedScores() map[string]float64 {
	out := make(map[string]float64, len(r.Scores))
	for _, s := range r.Scores {
		out[s.Category] = s.Normalized
	}
	return out
}

// Engine scores response sets against question banks
type Engine struct {
	Config *Config
}

// New creates a scoring engine with configuration
func New(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{Config: config}
}

// Score runs the full pass: aggregate, keyword nudges, normalize, rank
func (e *Engine) Score(bank *Bank, responses Responses, freeText string) Result {
	raw := e.Aggregate(bank, responses)
	bumps := e.KeywordBumps(bank, freeText)

	adjusted := make(map[string]float64, len(raw))
	for category, mean := range raw {
		adjusted[category] = mean + bumps[category]
	}
	normalized := e.Normalize(adjusted)

	scores := make([]CategoryScore, 0, len(bank.Categories))
	for _, category := range bank.Categories {
		scores = append(scores, CategoryScore{
			Category:   category,
			Raw:        raw[category],
			Bump:       bumps[category],
			Adjusted:   adjusted[category],
			Normalized: normalized[category],
		})
	}

	ranked := e.Rank(scores)
	n := e.Config.TopN
	if n <= 0 || n > len(ranked) {
		n = len(ranked)
	}
	bottom := make([]CategoryScore, 0, n)
	for i := len(ranked) - 1; i >= len(ranked)-n; i-- {
		bottom = append(bottom, ranked[i])
	}

	explanation := "Scores reflect your questionnaire averages, rescaled so the strongest and weakest categories stand apart."
	if bank.HasKeywords() {
		explanation = "Scores reflect your questionnaire averages with small text-based nudges for archetypal keywords."
	}

	return Result{
		Bank:        bank.Name,
		Scores:      scores,
		Top:         ranked[:n],
		Bottom:      bottom,
		Explanation: explanation,
	}
}

// Aggregate computes the mean rating of each category after reverse scoring.
// Missing responses count as the neutral midpoint.
func (e *Engine) Aggregate(bank *Bank, responses Responses) map[string]float64 {
	sums := make(map[string]float64, len(bank.Categories))
	counts := make(map[string]int, len(bank.Categories))
	for _, q := range bank.Questions {
		val, ok := responses[q.ID]
		if !ok {
			val = e.Config.Neutral
		}
		val = e.clamp(val)
		if q.Reverse {
			val = ReverseScore(val, e.Config.ScaleMax)
		}
		sums[q.Category] += float64(val)
		counts[q.Category]++
	}

	means := make(map[string]float64, len(bank.Categories))
	for _, category := range bank.Categories {
		if counts[category] == 0 {
			means[category] = float64(e.Config.Neutral)
			continue
		}
		means[category] = sums[category] / float64(counts[category])
	}
	return means
}

// Normalize rescales raw scores onto the 0-100 display scale. The min/max
// rescale is squashed through a logistic curve so the extremes separate.
func (e *Engine) Normalize(raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	if len(raw) == 0 {
		return out
	}

	vmin, vmax := math.Inf(1), math.Inf(-1)
	for _, v := range raw {
		vmin = math.Min(vmin, v)
		vmax = math.Max(vmax, v)
	}
	if vmax == vmin {
		for k := range raw {
			out[k] = degenerateScore
		}
		return out
	}

	for k, v := range raw {
		lin := (v - vmin) / (vmax - vmin)
		sig := 1 / (1 + math.Exp(-e.Config.Steepness*(lin-e.Config.Center)))
		out[k] = round2(sig * 100)
	}
	return out
}

// Rank orders scores by normalized value, highest first. Equal scores keep
// their input order.
func (e *Engine) Rank(scores []CategoryScore) []CategoryScore {
	ranked := make([]CategoryScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Normalized > ranked[j].Normalized
	})
	return ranked
}

func (e *Engine) clamp(val int) int {
	if val < e.Config.ScaleMin {
		return e.Config.ScaleMin
	}
	if val > e.Config.ScaleMax {
		return e.Config.ScaleMax
	}
	return val
}

// ReverseScore maps a rating to its reverse-scored value on a scale with the
// given number of points. Out-of-range values are clamped.
func ReverseScore(raw, points int) int {
	if points < 2 {
		return raw
	}
	if raw < 1 {
		raw = 1
	}
	if raw > points {
		raw = points
	}
	return (points + 1) - raw
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
