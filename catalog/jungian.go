package catalog

import "archetypeagent/rating"

// Jungian dimension keys
const (
	ShadowIntegration     = "shadow_integration"
	AnimaAnimusBalance    = "anima_animus_balance"
	PersonaAuthenticity   = "persona_authenticity"
	EgoConsciousness      = "ego_consciousness"
	PersonalUnconscious   = "personal_unconscious"
	CollectiveUnconscious = "collective_unconscious"
	Introversion          = "introversion"
	Extraversion          = "extraversion"
	Thinking              = "thinking"
	Feeling               = "feeling"
	Sensation             = "sensation"
	Intuition             = "intuition"
)

var jungianBank = &rating.Bank{
	Name:  ModelJungian,
	Title: "Jungian Depth Psychology Assessment",
	Categories: []string{
		ShadowIntegration, AnimaAnimusBalance, PersonaAuthenticity,
		EgoConsciousness, PersonalUnconscious, CollectiveUnconscious,
		Introversion, Extraversion, Thinking, Feeling, Sensation, Intuition,
	},
	Questions: []rating.Question{
		{ID: "j1", Text: "I can name traits in myself that I used to deny or dislike.", Category: ShadowIntegration, Construct: "shadow acknowledgement"},
		{ID: "j2", Text: "When someone irritates me strongly, I ask what it mirrors in me.", Category: ShadowIntegration, Construct: "projection awareness"},
		{ID: "j3", Text: "People who annoy me are simply wrong; it has nothing to do with me.", Category: ShadowIntegration, Construct: "projection", Reverse: true},

		{ID: "j4", Text: "I am comfortable expressing both assertive and receptive sides of myself.", Category: AnimaAnimusBalance, Construct: "contrasexual integration"},
		{ID: "j5", Text: "I draw on qualities usually associated with the other gender without discomfort.", Category: AnimaAnimusBalance, Construct: "inner other"},
		{ID: "j6", Text: "My partners tend to carry qualities I feel I completely lack.", Category: AnimaAnimusBalance, Construct: "anima/animus projection", Reverse: true},

		{ID: "j7", Text: "The way I behave in public closely matches who I am in private.", Category: PersonaAuthenticity, Construct: "persona congruence"},
		{ID: "j8", Text: "I can step out of my social role when it no longer fits the situation.", Category: PersonaAuthenticity, Construct: "persona flexibility"},
		{ID: "j9", Text: "Without my title or role I would not know who I am.", Category: PersonaAuthenticity, Construct: "persona identification", Reverse: true},

		{ID: "j10", Text: "I can clearly observe my own thoughts and emotions as they arise.", Category: EgoConsciousness, Construct: "self-observation"},
		{ID: "j11", Text: "I make deliberate choices rather than being carried by moods.", Category: EgoConsciousness, Construct: "ego strength"},
		{ID: "j12", Text: "I often find myself acting in ways I cannot explain afterwards.", Category: EgoConsciousness, Construct: "autonomous complexes", Reverse: true},

		{ID: "j13", Text: "My dreams are vivid and I often remember them.", Category: PersonalUnconscious, Construct: "dream recall"},
		{ID: "j14", Text: "I notice recurring emotional patterns that trace back to my past.", Category: PersonalUnconscious, Construct: "complex awareness"},
		{ID: "j15", Text: "Slips of the tongue and sudden moods tell me something about myself.", Category: PersonalUnconscious, Construct: "unconscious signals"},

		{ID: "j16", Text: "Myths, fairy tales, and ancient symbols feel personally meaningful to me.", Category: CollectiveUnconscious, Construct: "archetypal resonance"},
		{ID: "j17", Text: "I have experienced meaningful coincidences that felt more than chance.", Category: CollectiveUnconscious, Construct: "synchronicity"},
		{ID: "j18", Text: "I sometimes feel connected to something far larger than my own life.", Category: CollectiveUnconscious, Construct: "numinous experience"},

		{ID: "j19", Text: "I recharge by spending time alone with my own thoughts.", Category: Introversion, Construct: "inward libido"},
		{ID: "j20", Text: "My inner world of ideas and images feels more real than outer events.", Category: Introversion, Construct: "subjective orientation"},
		{ID: "j21", Text: "Long stretches of solitude leave me drained and restless.", Category: Introversion, Construct: "solitude tolerance", Reverse: true},

		{ID: "j22", Text: "I gain energy from being around people and activity.", Category: Extraversion, Construct: "outward libido"},
		{ID: "j23", Text: "I think best by talking things through with others.", Category: Extraversion, Construct: "objective orientation"},
		{ID: "j24", Text: "Crowds and social events quickly exhaust me.", Category: Extraversion, Construct: "social stamina", Reverse: true},

		{ID: "j25", Text: "I decide by weighing logic and consistency over personal values.", Category: Thinking, Construct: "rational judgement"},
		{ID: "j26", Text: "I enjoy building clear frameworks to explain how things work.", Category: Thinking, Construct: "conceptual ordering"},
		{ID: "j27", Text: "Impersonal analysis of a problem feels cold and unhelpful to me.", Category: Thinking, Construct: "analytic preference", Reverse: true},

		{ID: "j28", Text: "I judge situations by how they affect the people involved.", Category: Feeling, Construct: "value judgement"},
		{ID: "j29", Text: "Harmony and emotional truth guide my important decisions.", Category: Feeling, Construct: "relational valuing"},
		{ID: "j30", Text: "I rarely consider my feelings when making a serious choice.", Category: Feeling, Construct: "value weighting", Reverse: true},

		{ID: "j31", Text: "I trust concrete facts and what I can see, hear, and touch.", Category: Sensation, Construct: "concrete perception"},
		{ID: "j32", Text: "I notice physical details in my surroundings that others miss.", Category: Sensation, Construct: "present-moment awareness"},
		{ID: "j33", Text: "I often overlook practical details until they cause problems.", Category: Sensation, Construct: "detail attention", Reverse: true},

		{ID: "j34", Text: "I sense possibilities and hidden connections before they are obvious.", Category: Intuition, Construct: "pattern perception"},
		{ID: "j35", Text: "Hunches about the future often turn out to be right.", Category: Intuition, Construct: "anticipation"},
		{ID: "j36", Text: "I prefer to stick with what is proven rather than imagine alternatives.", Category: Intuition, Construct: "possibility seeking", Reverse: true},
	},
}

var jungianNarratives = map[string]Narrative{
	ShadowIntegration: {
		Tagline: "Meeting the rejected parts of yourself with curiosity.",
		Gifts:   "Honesty, reduced projection, access to withheld energy.",
		Shadows: "Blaming others, moral rigidity, sudden eruptions.",
		Growth:  "Track strong reactions to others and ask what they reveal about you.",
	},
	AnimaAnimusBalance: {
		Tagline: "A working relationship with the inner other.",
		Gifts:   "Emotional range, creativity, balanced relationships.",
		Shadows: "Idealizing partners, moodiness, opinionated rigidity.",
		Growth:  "Dialogue with the inner figure instead of seeking it in others.",
	},
	PersonaAuthenticity: {
		Tagline: "Wearing the social mask without becoming it.",
		Gifts:   "Adaptability, sincerity, grounded social presence.",
		Shadows: "Over-identification with roles, hollow performance.",
		Growth:  "Let your roles serve you; notice where the mask has grown tight.",
	},
	EgoConsciousness: {
		Tagline: "A steady center that can witness inner life.",
		Gifts:   "Self-awareness, deliberate choice, resilience.",
		Shadows: "Inflation, rigid control, dismissing the unconscious.",
		Growth:  "Pair clarity with humility toward what you do not yet know.",
	},
	PersonalUnconscious: {
		Tagline: "Listening to dreams, moods, and forgotten memories.",
		Gifts:   "Psychological insight, access to personal history.",
		Shadows: "Being flooded by complexes, rumination.",
		Growth:  "Keep a dream journal and look for recurring motifs.",
	},
	CollectiveUnconscious: {
		Tagline: "Resonance with the shared images of humanity.",
		Gifts:   "Symbolic imagination, sense of meaning, spiritual depth.",
		Shadows: "Inflation by archetypes, losing touch with ordinary life.",
		Growth:  "Ground big symbols in small daily acts.",
	},
	Introversion: {
		Tagline: "Energy that flows toward the inner world.",
		Gifts:   "Depth, reflection, independent judgement.",
		Shadows: "Withdrawal, neglect of outer demands.",
		Growth:  "Bring inner insight into shared, visible form.",
	},
	Extraversion: {
		Tagline: "Energy that flows toward people and events.",
		Gifts:   "Engagement, responsiveness, social ease.",
		Shadows: "Restlessness, dependence on outer stimulation.",
		Growth:  "Make room for solitude to hear your own voice.",
	},
	Thinking: {
		Tagline: "Ordering the world through logic.",
		Gifts:   "Clarity, fairness, structured problem solving.",
		Shadows: "Coldness, neglect of feeling values.",
		Growth:  "Ask what matters, not only what is true.",
	},
	Feeling: {
		Tagline: "Judging by value and relationship.",
		Gifts:   "Warmth, ethical sensitivity, harmony.",
		Shadows: "Conflict avoidance, sentimentality.",
		Growth:  "Let clear reasoning protect the values you hold.",
	},
	Sensation: {
		Tagline: "Perceiving what is concretely present.",
		Gifts:   "Realism, practicality, embodied presence.",
		Shadows: "Missing the bigger picture, resistance to change.",
		Growth:  "Give imagination a seat next to the facts.",
	},
	Intuition: {
		Tagline: "Perceiving what could be.",
		Gifts:   "Vision, pattern recognition, foresight.",
		Shadows: "Impracticality, neglect of the body and details.",
		Growth:  "Anchor your visions in concrete next steps.",
	},
}
