package analysis

// Marker tiers are checked in slice order; a later tier that matches
// overrides the archetype label while the score only ratchets upward.
type markerTier struct {
	label   string
	floor   float64
	markers []string
}

var consciousnessTiers = []markerTier{
	{"Victim", 0.2, []string{"can't", "impossible", "stuck", "trapped", "helpless", "unfair", "why me"}},
	{"Warrior", 0.4, []string{"trying", "struggling", "fighting", "difficult", "hard", "managing"}},
	{"Creator", 0.7, []string{"choosing", "creating", "manifesting", "intending", "designing", "building"}},
	{"Sage", 0.9, []string{"allowing", "flowing", "trusting", "surrendering", "being", "witnessing"}},
}

var emotionalTiers = []markerTier{
	{"reactive", 0.3, []string{"angry", "frustrated", "upset", "mad", "hate", "can't stand"}},
	{"responsive", 0.6, []string{"feel", "sense", "notice", "aware", "understand", "recognize"}},
	{"integrated", 0.8, []string{"compassion", "acceptance", "peace", "love", "gratitude", "joy"}},
	{"transcendent", 0.95, []string{"oneness", "unity", "bliss", "divine", "sacred", "infinite"}},
}

var spiritualTiers = []markerTier{
	{"material", 0.2, []string{"money", "success", "achievement", "status", "possession", "security"}},
	{"emotional", 0.4, []string{"relationship", "love", "connection", "family", "friendship", "belonging"}},
	{"mental", 0.6, []string{"understanding", "knowledge", "learning", "growth", "wisdom", "insight"}},
	{"spiritual", 0.8, []string{"purpose", "meaning", "soul", "divine", "universe", "consciousness"}},
	{"cosmic", 0.95, []string{"galactic", "multidimensional", "quantum", "infinite", "eternal", "source"}},
}

type chakra struct {
	name     string
	keywords []string
}

var chakras = []chakra{
	{"Root", []string{"security", "survival", "grounding", "stability", "fear"}},
	{"Sacral", []string{"creativity", "sexuality", "pleasure", "emotion", "flow"}},
	{"Solar", []string{"power", "confidence", "will", "control", "identity"}},
	{"Heart", []string{"love", "compassion", "connection", "healing", "forgiveness"}},
	{"Throat", []string{"communication", "truth", "expression", "voice", "speaking"}},
	{"Third Eye", []string{"intuition", "vision", "insight", "psychic", "seeing"}},
	{"Crown", []string{"spiritual", "divine", "consciousness", "enlightenment", "unity"}},
}

var flowIndicators = []string{"flow", "ease", "natural", "effortless", "smooth", "harmony"}

var changeWords = []string{"ready", "change", "transform", "new", "different", "evolve"}

var recurringThemes = []string{"love", "work", "family", "change", "fear", "growth", "relationship", "money", "health", "purpose"}

var creativeKeywords = []string{"creativity", "art", "expression", "beauty", "inspiration"}

var shadowMap = map[string][]string{
	"Victim":  {"Powerlessness", "Blame", "Helplessness"},
	"Warrior": {"Aggression", "Impatience", "Conflict"},
	"Creator": {"Perfectionism", "Control", "Ego"},
	"Sage":    {"Detachment", "Superiority", "Isolation"},
	"Seeker":  {"Restlessness", "Dissatisfaction", "Escapism"},
}
