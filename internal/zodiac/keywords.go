package zodiac

// SignKeywords maps each sign to its fixed keyword list. The lists are domain
// data, not derivable logic; keep them in sync with the scoring thresholds
// tuned against them.
var SignKeywords = map[Sign][]string{
	Aries:       {"action", "start", "begin", "lead", "fight", "courage", "bold", "first", "pioneer", "energy", "fire", "passion", "drive", "initiative", "competitive"},
	Taurus:      {"stable", "steady", "comfort", "security", "money", "material", "earth", "practical", "stubborn", "luxury", "beauty", "sensual", "slow", "reliable"},
	Gemini:      {"communicate", "talk", "think", "learn", "curious", "quick", "change", "adapt", "social", "mental", "ideas", "information", "versatile", "witty"},
	Cancer:      {"home", "family", "mother", "nurture", "care", "emotional", "sensitive", "protect", "comfort", "intuitive", "moody", "past", "memory", "feelings"},
	Leo:         {"creative", "shine", "center", "attention", "dramatic", "proud", "generous", "heart", "performance", "leadership", "confidence", "royal", "sun", "radiant"},
	Virgo:       {"perfect", "detail", "analyze", "organize", "service", "health", "work", "practical", "critical", "precise", "helpful", "systematic", "pure", "modest"},
	Libra:       {"balance", "harmony", "relationship", "partner", "beauty", "fair", "justice", "peace", "diplomatic", "social", "aesthetic", "cooperation", "elegant"},
	Scorpio:     {"deep", "intense", "transform", "mystery", "power", "secret", "death", "rebirth", "passionate", "magnetic", "psychic", "hidden", "penetrating"},
	Sagittarius: {"freedom", "adventure", "travel", "philosophy", "truth", "expand", "explore", "optimistic", "spiritual", "higher", "meaning", "wisdom", "journey"},
	Capricorn:   {"achieve", "goal", "ambition", "structure", "authority", "responsibility", "discipline", "mountain", "climb", "success", "traditional", "mature"},
	Aquarius:    {"unique", "different", "future", "technology", "humanitarian", "rebel", "innovative", "group", "friendship", "eccentric", "progressive", "detached"},
	Pisces:      {"dream", "intuitive", "spiritual", "compassionate", "artistic", "escape", "flow", "emotional", "psychic", "sacrifice", "boundless", "mystical"},
}

// PlanetaryKeywords maps each planetary category to its keyword list.
var PlanetaryKeywords = map[Planet][]string{
	Mars:    {"anger", "fight", "aggressive", "warrior", "conflict", "assertive", "competitive", "direct"},
	Venus:   {"love", "beauty", "relationship", "harmony", "pleasure", "artistic", "romantic", "attractive"},
	Mercury: {"communication", "quick", "mental", "clever", "information", "travel", "messenger", "witty"},
	Moon:    {"emotional", "intuitive", "nurturing", "cyclical", "receptive", "subconscious", "maternal"},
	Sun:     {"confident", "radiant", "central", "vital", "creative", "leadership", "ego", "identity"},
	Jupiter: {"expand", "optimistic", "philosophical", "generous", "abundant", "wisdom", "growth"},
	Saturn:  {"discipline", "structure", "limitation", "responsibility", "authority", "traditional", "mature"},
	Uranus:  {"sudden", "revolutionary", "innovative", "eccentric", "breakthrough", "shocking", "progressive"},
	Neptune: {"mystical", "dreamy", "illusion", "spiritual", "compassionate", "artistic", "escapist"},
	Pluto:   {"transformation", "power", "death", "rebirth", "intense", "hidden", "regeneration"},
}

// SignBonus is a weighted contribution a planetary keyword match adds to a
// sign's score.
type SignBonus struct {
	Sign   Sign
	Weight float64
}

// PlanetSignBonuses maps each planet to the one or two signs its keyword
// matches boost, with fixed weights.
var PlanetSignBonuses = map[Planet][]SignBonus{
	Mars:    {{Aries, 0.8}, {Scorpio, 0.5}},
	Venus:   {{Taurus, 0.8}, {Libra, 0.8}},
	Mercury: {{Gemini, 0.8}, {Virgo, 0.8}},
	Moon:    {{Cancer, 0.8}},
	Sun:     {{Leo, 0.8}},
	Jupiter: {{Sagittarius, 0.8}, {Pisces, 0.5}},
	Saturn:  {{Capricorn, 0.8}, {Aquarius, 0.5}},
	Uranus:  {{Aquarius, 0.8}},
	Neptune: {{Pisces, 0.8}},
	Pluto:   {{Scorpio, 0.8}},
}
