package catalog

import "archetypeagent/rating"

// Archetype names, in display order
const (
	Innocent    = "Innocent"
	Everyperson = "Everyperson"
	Hero        = "Hero"
	Caregiver   = "Caregiver"
	Explorer    = "Explorer"
	Outlaw      = "Outlaw"
	Lover       = "Lover"
	Creator     = "Creator"
	Jester      = "Jester"
	Sage        = "Sage"
	Magician    = "Magician"
	Ruler       = "Ruler"
)

var archetypeBank = &rating.Bank{
	Name:  ModelArchetype,
	Title: "Jungian Archetype Agent",
	Categories: []string{
		Innocent, Everyperson, Hero, Caregiver, Explorer, Outlaw,
		Lover, Creator, Jester, Sage, Magician, Ruler,
	},
	Questions: []rating.Question{
		{ID: "q1", Text: "I naturally trust life and look for the good in people.", Category: Innocent},
		{ID: "q2", Text: "I feel most myself when things are simple, pure, and harmonious.", Category: Innocent},
		{ID: "q3", Text: "I value belonging and being relatable more than being exceptional.", Category: Everyperson},
		{ID: "q4", Text: "I'm happiest when the group feels safe, included, and equal.", Category: Everyperson},
		{ID: "q5", Text: "I'm driven to prove myself through achievement and courage.", Category: Hero},
		{ID: "q6", Text: "I like hard challenges, they bring out my best self.", Category: Hero},
		{ID: "q7", Text: "Protecting and caring for others is central to who I am.", Category: Caregiver},
		{ID: "q8", Text: "I often take responsibility for others' wellbeing.", Category: Caregiver},
		{ID: "q9", Text: "Freedom and self-discovery matter more to me than stability.", Category: Explorer},
		{ID: "q10", Text: "I get restless without novelty, travel, or new horizons.", Category: Explorer},
		{ID: "q11", Text: "When systems are unjust, I'm willing to break rules to change them.", Category: Outlaw},
		{ID: "q12", Text: "I'm allergic to control, conformity, and hypocrisy.", Category: Outlaw},
		{ID: "q13", Text: "Sensuality, intimacy, and beauty are core to my life force.", Category: Lover},
		{ID: "q14", Text: "I create connection through tenderness, presence, and desire.", Category: Lover},
		{ID: "q15", Text: "I feel compelled to make things (art, systems, content, products).", Category: Creator},
		{ID: "q16", Text: "Originality and aesthetics matter to me more than efficiency.", Category: Creator},
		{ID: "q17", Text: "I use humor, play, and mischief to shift people's energy.", Category: Jester},
		{ID: "q18", Text: "Life is too short to be serious all the time.", Category: Jester},
		{ID: "q19", Text: "I'm driven by truth, understanding, and making sense of reality.", Category: Sage},
		{ID: "q20", Text: "I naturally analyze, research, and think in systems.", Category: Sage},
		{ID: "q21", Text: "I catalyze transformation, my presence changes the room.", Category: Magician},
		{ID: "q22", Text: "I work with symbols, meaning, and energy to create results.", Category: Magician},
		{ID: "q23", Text: "I like to organize people and resources toward a vision.", Category: Ruler},
		{ID: "q24", Text: "I value sovereignty, standards, and setting the tone.", Category: Ruler},
	},
	Keywords: map[string][]string{
		Innocent:    {"pure", "hope", "faith", "grace", "goodness", "optimism"},
		Everyperson: {"community", "together", "belonging", "relatable", "down to earth", "humble"},
		Hero:        {"win", "compete", "challenge", "discipline", "courage", "athlete"},
		Caregiver:   {"nurture", "protect", "heal", "support", "mother", "service"},
		Explorer:    {"freedom", "adventure", "travel", "wander", "novelty", "wild"},
		Outlaw:      {"rebel", "revolution", "break rules", "disrupt", "fight", "justice"},
		Lover:       {"sensual", "intimate", "beauty", "desire", "erotic", "pleasure"},
		Creator:     {"create", "art", "design", "build", "aesthetic", "compose"},
		Jester:      {"funny", "play", "humor", "mischief", "joy", "banter"},
		Sage:        {"truth", "analysis", "research", "wisdom", "philosophy", "inquiry"},
		Magician:    {"transform", "alchemy", "energy", "ritual", "symbol", "manifest"},
		Ruler:       {"lead", "sovereign", "organize", "standard", "authority", "govern"},
	},
}

var archetypeNarratives = map[string]Narrative{
	Innocent: {
		Tagline: "Trust, simplicity, and the holy 'yes' to life.",
		Gifts:   "Optimism, faith, moral clarity, restorative presence.",
		Shadows: "Naivete, avoidance of conflict, spiritual bypassing.",
		Growth:  "Build boundaries. Let your goodness have a spine.",
	},
	Everyperson: {
		Tagline: "Belonging, empathy, and honest ordinariness.",
		Gifts:   "Relatability, loyalty, community glue.",
		Shadows: "People-pleasing, fear of standing out.",
		Growth:  "Practice brave authenticity, even when it sets you apart.",
	},
	Hero: {
		Tagline: "Courage, mastery, and devotion to the hard path.",
		Gifts:   "Discipline, grit, execution under pressure.",
		Shadows: "Workaholism, zero-sum thinking, contempt for rest.",
		Growth:  "Let tenderness and recovery amplify your power.",
	},
	Caregiver: {
		Tagline: "Protection, generosity, and sacred stewardship.",
		Gifts:   "Compassion, reliability, safe harbor for others.",
		Shadows: "Martyrdom, burnout, enabling.",
		Growth:  "Care for yourself as fiercely as you care for others.",
	},
	Explorer: {
		Tagline: "Freedom, discovery, and the road beyond the map.",
		Gifts:   "Independence, novelty, adaptive intelligence.",
		Shadows: "Restlessness, commitment phobia.",
		Growth:  "Choose a north star to keep wandering meaningful.",
	},
	Outlaw: {
		Tagline: "Truth with teeth. Reform through disruption.",
		Gifts:   "Courage to defy, a keen nose for pretense, catalytic force.",
		Shadows: "Reactivity, scorched-earth, isolation.",
		Growth:  "Aim your fire: design before you detonate.",
	},
	Lover: {
		Tagline: "Presence, beauty, and the art of devotion.",
		Gifts:   "Magnetism, intimacy, aesthetic intelligence.",
		Shadows: "Enmeshment, vanity, addiction to validation.",
		Growth:  "Choose deep nourishment over shallow attention.",
	},
	Creator: {
		Tagline: "Originality, elegance, and making the invisible visible.",
		Gifts:   "Imagination, craft, taste, invention.",
		Shadows: "Perfectionism, procrastination via tinkering.",
		Growth:  "Ship the work. Let the world iterate with you.",
	},
	Jester: {
		Tagline: "Holy mischief and joy as medicine.",
		Gifts:   "Levity, spontaneity, social alchemy.",
		Shadows: "Deflection through humor, irresponsibility.",
		Growth:  "Use play to reveal truth, not run from it.",
	},
	Sage: {
		Tagline: "Seeing what is. Serving truth over comfort.",
		Gifts:   "Clarity, insight, rigorous thinking.",
		Shadows: "Analysis paralysis, detachment from feeling.",
		Growth:  "Let wisdom touch the body: practice applied knowing.",
	},
	Magician: {
		Tagline: "Transformation, pattern-weaving, and timing.",
		Gifts:   "Synchronicity, meaning-making, energetic precision.",
		Shadows: "Manipulation, grandiosity, spiritual theatrics.",
		Growth:  "Anchor your power in service and integrity.",
	},
	Ruler: {
		Tagline: "Sovereignty, standards, and elegant order.",
		Gifts:   "Leadership, structure, resourcing, protection.",
		Shadows: "Control, rigidity, elitism.",
		Growth:  "Rule by designing trust, not demanding it.",
	},
}
