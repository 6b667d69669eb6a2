package tarot

import "github.com/astroscan/astroscan/internal/zodiac"

// correspondences assigns a zodiac sign to each major arcana card.
var correspondences = map[string]zodiac.Sign{
	"The Fool":           zodiac.Aquarius,
	"The Magician":       zodiac.Gemini,
	"The High Priestess": zodiac.Cancer,
	"The Empress":        zodiac.Taurus,
	"The Emperor":        zodiac.Aries,
	"The Hierophant":     zodiac.Taurus,
	"The Lovers":         zodiac.Gemini,
	"The Chariot":        zodiac.Cancer,
	"Strength":           zodiac.Leo,
	"The Hermit":         zodiac.Virgo,
	"Wheel of Fortune":   zodiac.Sagittarius,
	"Justice":            zodiac.Libra,
	"The Hanged Man":     zodiac.Pisces,
	"Death":              zodiac.Scorpio,
	"Temperance":         zodiac.Sagittarius,
	"The Devil":          zodiac.Capricorn,
	"The Tower":          zodiac.Aries,
	"The Star":           zodiac.Aquarius,
	"The Moon":           zodiac.Pisces,
	"The Sun":            zodiac.Leo,
	"Judgement":          zodiac.Scorpio,
	"The World":          zodiac.Capricorn,
}

// Correspondence returns the zodiac sign associated with a card name, if it
// has one. Minor arcana cards have none.
func Correspondence(cardName string) (zodiac.Sign, bool) {
	sign, ok := correspondences[cardName]
	return sign, ok
}
