package zodiac

// The tables below are fixed one-to-one lookups keyed by sun sign. They are
// transcribed domain content; the default strings cover out-of-table keys so
// lookups stay total.

// NorthNodes maps each sun sign to its north node label.
var NorthNodes = map[Sign]string{
	Aries:       "Libra - Learning cooperation and balance",
	Taurus:      "Scorpio - Embracing transformation and depth",
	Gemini:      "Sagittarius - Seeking higher wisdom and meaning",
	Cancer:      "Capricorn - Building structure and authority",
	Leo:         "Aquarius - Serving the collective consciousness",
	Virgo:       "Pisces - Developing intuition and compassion",
	Libra:       "Aries - Cultivating independence and leadership",
	Scorpio:     "Taurus - Finding stability and simplicity",
	Sagittarius: "Gemini - Mastering communication and details",
	Capricorn:   "Cancer - Nurturing emotional intelligence",
	Aquarius:    "Leo - Expressing authentic creativity",
	Pisces:      "Virgo - Grounding dreams in practical service",
}

// DefaultNorthNode covers signs missing from NorthNodes.
const DefaultNorthNode = "Evolutionary growth path"

// SouthNodes maps each sun sign to its south node label.
var SouthNodes = map[Sign]string{
	Aries:       "Libra - Past life mastery of relationships",
	Taurus:      "Scorpio - Karmic understanding of power",
	Gemini:      "Sagittarius - Previous wisdom teaching",
	Cancer:      "Capricorn - Authority from past incarnations",
	Leo:         "Aquarius - Collective service experience",
	Virgo:       "Pisces - Spiritual devotion mastery",
	Libra:       "Aries - Warrior energy from past lives",
	Scorpio:     "Taurus - Material world mastery",
	Sagittarius: "Gemini - Communication gifts carried forward",
	Capricorn:   "Cancer - Nurturing wisdom from past",
	Aquarius:    "Leo - Creative leadership experience",
	Pisces:      "Virgo - Service and healing mastery",
}

// DefaultSouthNode covers signs missing from SouthNodes.
const DefaultSouthNode = "Karmic gifts from past lives"

// EvolutionaryThemes maps each sun sign to its evolutionary theme.
var EvolutionaryThemes = map[Sign]string{
	Aries:       "Pioneering consciousness - breaking through old paradigms",
	Taurus:      "Grounding new earth frequencies - stabilizing change",
	Gemini:      "Bridging dimensions - translating cosmic information",
	Cancer:      "Nurturing collective healing - emotional alchemy",
	Leo:         "Radiating authentic self - creative leadership",
	Virgo:       "Perfecting service to evolution - practical mysticism",
	Libra:       "Harmonizing opposites - relationship as spiritual path",
	Scorpio:     "Transforming shadow into light - death/rebirth mastery",
	Sagittarius: "Expanding consciousness - philosophical evolution",
	Capricorn:   "Building new structures - responsible leadership",
	Aquarius:    "Innovating for humanity - collective awakening",
	Pisces:      "Dissolving illusions - compassionate transcendence",
}

// DefaultEvolutionaryTheme covers signs missing from EvolutionaryThemes.
const DefaultEvolutionaryTheme = "Unique evolutionary path"

// SoulPurposes maps each sun sign to its soul purpose statement.
var SoulPurposes = map[Sign]string{
	Aries:       "To initiate new cycles of consciousness and inspire others to break free from limitation",
	Taurus:      "To anchor higher frequencies into physical reality and create sustainable abundance",
	Gemini:      "To connect diverse perspectives and facilitate communication between different worlds",
	Cancer:      "To heal ancestral patterns and nurture the collective emotional body",
	Leo:         "To express divine creativity and inspire others to shine their authentic light",
	Virgo:       "To perfect systems of service and help others integrate spiritual wisdom practically",
	Libra:       "To create harmony and teach the art of conscious relationship",
	Scorpio:     "To transform collective shadow and guide others through deep healing",
	Sagittarius: "To expand human consciousness and share universal wisdom",
	Capricorn:   "To build structures that support collective evolution and responsible stewardship",
	Aquarius:    "To innovate solutions for humanity and anchor future consciousness",
	Pisces:      "To dissolve separation and embody unconditional love and compassion",
}

// DefaultSoulPurpose covers signs missing from SoulPurposes.
const DefaultSoulPurpose = "To contribute your unique gifts to collective evolution"

// CurrentLessons maps each sun sign to its three current lessons.
var CurrentLessons = map[Sign][]string{
	Aries:       {"Balancing independence with cooperation", "Channeling warrior energy constructively", "Leading with heart wisdom"},
	Taurus:      {"Embracing change while maintaining stability", "Sharing resources generously", "Finding security within"},
	Gemini:      {"Deepening beyond surface connections", "Integrating scattered knowledge", "Speaking truth with compassion"},
	Cancer:      {"Setting healthy emotional boundaries", "Healing without absorbing others' pain", "Trusting intuitive guidance"},
	Leo:         {"Expressing creativity without ego attachment", "Sharing spotlight with others", "Leading through authentic example"},
	Virgo:       {"Accepting imperfection in service", "Trusting intuition alongside analysis", "Serving without martyrdom"},
	Libra:       {"Making decisions from inner knowing", "Maintaining self while in relationship", "Creating harmony without people-pleasing"},
	Scorpio:     {"Transforming without destroying", "Sharing power rather than controlling", "Healing through vulnerability"},
	Sagittarius: {"Grounding wisdom in practical action", "Teaching through lived experience", "Expanding without losing focus"},
	Capricorn:   {"Leading with compassion", "Building without rigidity", "Achieving while nurturing relationships"},
	Aquarius:    {"Balancing innovation with tradition", "Connecting individually while serving collectively", "Grounding visions in reality"},
	Pisces:      {"Maintaining boundaries while being compassionate", "Discerning truth from illusion", "Serving without sacrificing self"},
}

// DefaultCurrentLessons covers signs missing from CurrentLessons.
var DefaultCurrentLessons = []string{"Integrating your unique gifts", "Serving your highest purpose", "Balancing self and others"}

// KarmicPatterns maps each sun sign to its three karmic patterns.
var KarmicPatterns = map[Sign][]string{
	Aries:       {"Impatience with others' pace", "Tendency to act before thinking", "Difficulty with collaboration"},
	Taurus:      {"Resistance to necessary change", "Attachment to material security", "Stubbornness in beliefs"},
	Gemini:      {"Scattered energy and focus", "Superficial connections", "Avoiding emotional depth"},
	Cancer:      {"Over-nurturing others", "Emotional manipulation", "Living in the past"},
	Leo:         {"Need for constant validation", "Drama and attention-seeking", "Pride blocking growth"},
	Virgo:       {"Perfectionism and criticism", "Worry and anxiety patterns", "Serving others while neglecting self"},
	Libra:       {"Avoiding conflict and decisions", "People-pleasing patterns", "Losing self in relationships"},
	Scorpio:     {"Control and manipulation", "Holding grudges", "Fear of vulnerability"},
	Sagittarius: {"Preaching without practicing", "Avoiding commitment", "Intellectual arrogance"},
	Capricorn:   {"Workaholism and achievement addiction", "Emotional coldness", "Authoritarian tendencies"},
	Aquarius:    {"Emotional detachment", "Rebelliousness without purpose", "Superiority complex"},
	Pisces:      {"Victim consciousness", "Escapism and avoidance", "Boundary dissolution"},
}

// DefaultKarmicPatterns covers signs missing from KarmicPatterns.
var DefaultKarmicPatterns = []string{"Patterns ready for transformation", "Old habits seeking evolution", "Shadow aspects becoming conscious"}

// GalacticAlignment returns the categorical relationship of a sun sign to the
// galactic center at 27 degrees Sagittarius.
func GalacticAlignment(sun Sign) string {
	switch sun {
	case Sagittarius:
		return "Direct alignment with Galactic Center - you're a cosmic download receiver"
	case Gemini:
		return "Opposition to Galactic Center - you translate cosmic wisdom for others"
	case Virgo, Pisces:
		return "Square to Galactic Center - you challenge and refine cosmic information"
	case Leo, Libra:
		return "Supportive angle to Galactic Center - you harmonize with cosmic frequencies"
	default:
		return "Unique relationship with Galactic Center - your own cosmic mission"
	}
}
