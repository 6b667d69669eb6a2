package zodiac

// Sign is one of the twelve fixed symbolic category labels used as a
// classification target for text and chart data.
type Sign string

const (
	Aries       Sign = "Aries"
	Taurus      Sign = "Taurus"
	Gemini      Sign = "Gemini"
	Cancer      Sign = "Cancer"
	Leo         Sign = "Leo"
	Virgo       Sign = "Virgo"
	Libra       Sign = "Libra"
	Scorpio     Sign = "Scorpio"
	Sagittarius Sign = "Sagittarius"
	Capricorn   Sign = "Capricorn"
	Aquarius    Sign = "Aquarius"
	Pisces      Sign = "Pisces"
)

// Signs lists all twelve signs in their fixed table order. Score ties in the
// energy analyzer resolve to the earlier sign in this order, and the chart
// deriver indexes into it modulo 12.
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// GalacticCenterSign is the neutral fallback classification when no keyword
// matches: the galactic center sits at 27 degrees Sagittarius.
const GalacticCenterSign = Sagittarius

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	for _, sign := range Signs {
		if s == sign {
			return true
		}
	}
	return false
}

// Planet is one of the ten planetary keyword categories.
type Planet string

const (
	Mars    Planet = "Mars"
	Venus   Planet = "Venus"
	Mercury Planet = "Mercury"
	Moon    Planet = "Moon"
	Sun     Planet = "Sun"
	Jupiter Planet = "Jupiter"
	Saturn  Planet = "Saturn"
	Uranus  Planet = "Uranus"
	Neptune Planet = "Neptune"
	Pluto   Planet = "Pluto"
)

// Planets lists the planetary categories in their fixed table order.
var Planets = []Planet{
	Mars, Venus, Mercury, Moon, Sun, Jupiter, Saturn, Uranus, Neptune, Pluto,
}
