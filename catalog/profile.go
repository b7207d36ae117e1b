package catalog

import (
	"sort"

	"archetypeagent/rating"
)

// JungianProfile is the depth-psychology reading derived from a jungian result.
// Values are raw means on the 1-7 scale.
type JungianProfile struct {
	IndividuationStage  string             `json:"individuation_stage" bson:"individuationStage"`
	IndividuationLevel  float64            `json:"individuation_level" bson:"individuationLevel"`
	ShadowIntegration   float64            `json:"shadow_integration" bson:"shadowIntegration"`
	AnimaAnimusBalance  float64            `json:"anima_animus_balance" bson:"animaAnimusBalance"`
	PersonaAuthenticity float64            `json:"persona_authenticity" bson:"personaAuthenticity"`
	ConsciousnessLevels map[string]float64 `json:"consciousness_levels" bson:"consciousnessLevels"`
	PsychologicalType   map[string]float64 `json:"psychological_type" bson:"psychologicalType"`
	DominantAttitude    string             `json:"dominant_attitude" bson:"dominantAttitude"`
	FunctionHierarchy   []string           `json:"function_hierarchy" bson:"functionHierarchy"`
}

var typeFunctions = []string{Thinking, Feeling, Sensation, Intuition}

// Profile derives the Jungian reading from a scored jungian result
func Profile(res rating.Result) JungianProfile {
	raw := res.RawScores()
	get := func(k string) float64 {
		if v, ok := raw[k]; ok {
			return v
		}
		return 4
	}

	p := JungianProfile{
		ShadowIntegration:   get(ShadowIntegration),
		AnimaAnimusBalance:  get(AnimaAnimusBalance),
		PersonaAuthenticity: get(PersonaAuthenticity),
		ConsciousnessLevels: map[string]float64{
			EgoConsciousness:      get(EgoConsciousness),
			PersonalUnconscious:   get(PersonalUnconscious),
			CollectiveUnconscious: get(CollectiveUnconscious),
		},
		PsychologicalType: map[string]float64{
			Introversion: get(Introversion),
			Extraversion: get(Extraversion),
		},
	}
	for _, f := range typeFunctions {
		p.PsychologicalType[f] = get(f)
	}

	p.IndividuationLevel = (p.ShadowIntegration + p.AnimaAnimusBalance + p.PersonaAuthenticity) / 3
	p.IndividuationStage = IndividuationStage(p.IndividuationLevel)

	p.DominantAttitude = Extraversion
	if p.PsychologicalType[Introversion] > p.PsychologicalType[Extraversion] {
		p.DominantAttitude = Introversion
	}

	p.FunctionHierarchy = append([]string(nil), typeFunctions...)
	sort.SliceStable(p.FunctionHierarchy, func(i, j int) bool {
		return p.PsychologicalType[p.FunctionHierarchy[i]] > p.PsychologicalType[p.FunctionHierarchy[j]]
	})
	return p
}

// IndividuationStage labels an individuation level on the 1-7 scale
func IndividuationStage(level float64) string {
	switch {
	case level < 3.0:
		return "Persona Identification"
	case level < 4.5:
		return "Shadow Encounter"
	case level < 5.5:
		return "Anima/Animus Integration"
	default:
		return "Approaching the Self"
	}
}
