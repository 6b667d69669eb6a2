package tarot

import (
	"fmt"
	"math/rand/v2"

	"github.com/astroscan/astroscan/internal/errors"
)

// Deck is an ordered card collection supporting uniform draws.
type Deck []Card

// Draw samples n distinct cards uniformly. Drawing more cards than the deck
// holds is rejected.
func (d Deck) Draw(n int) ([]Card, error) {
	if n <= 0 {
		return nil, errors.NewInvalidInput("draw count must be positive")
	}
	if n > len(d) {
		return nil, errors.NewInvalidInput(fmt.Sprintf("cannot draw %d cards from a %d-card deck", n, len(d)))
	}

	idx := rand.Perm(len(d))
	drawn := make([]Card, n)
	for i := 0; i < n; i++ {
		drawn[i] = d[idx[i]]
	}
	return drawn, nil
}

type namedKeywords struct {
	name     string
	keywords [2]string
}

var majorArcana = []namedKeywords{
	{"The Fool", [2]string{"new beginnings", "adventure"}},
	{"The Magician", [2]string{"manifestation", "willpower"}},
	{"The High Priestess", [2]string{"intuition", "mystery"}},
	{"The Empress", [2]string{"abundance", "nurturing"}},
	{"The Emperor", [2]string{"authority", "structure"}},
	{"The Hierophant", [2]string{"tradition", "wisdom"}},
	{"The Lovers", [2]string{"love", "harmony"}},
	{"The Chariot", [2]string{"control", "determination"}},
	{"Strength", [2]string{"courage", "inner strength"}},
	{"The Hermit", [2]string{"introspection", "guidance"}},
	{"Wheel of Fortune", [2]string{"change", "destiny"}},
	{"Justice", [2]string{"balance", "fairness"}},
	{"The Hanged Man", [2]string{"surrender", "perspective"}},
	{"Death", [2]string{"transformation", "endings"}},
	{"Temperance", [2]string{"balance", "moderation"}},
	{"The Devil", [2]string{"temptation", "bondage"}},
	{"The Tower", [2]string{"upheaval", "revelation"}},
	{"The Star", [2]string{"hope", "inspiration"}},
	{"The Moon", [2]string{"illusion", "intuition"}},
	{"The Sun", [2]string{"joy", "success"}},
	{"Judgement", [2]string{"rebirth", "awakening"}},
	{"The World", [2]string{"completion", "fulfillment"}},
}

var minorRanks = []string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Page", "Knight", "Queen", "King",
}

var suitThemes = map[string]string{
	"Wands":     "passion",
	"Cups":      "emotions",
	"Swords":    "clarity",
	"Pentacles": "stability",
}

var rankThemes = map[string]string{
	"Ace": "new potential", "Two": "balance", "Three": "growth",
	"Four": "foundation", "Five": "conflict", "Six": "harmony",
	"Seven": "reflection", "Eight": "movement", "Nine": "fulfillment",
	"Ten": "completion", "Page": "curiosity", "Knight": "action",
	"Queen": "mastery", "King": "leadership",
}

// Overrides carried from the hand-written fallback cards; the generated
// keywords for these three differ from the originals.
var minorOverrides = map[string][2]string{
	"Ace of Cups":   {"new love", "emotions"},
	"Two of Cups":   {"partnership", "connection"},
	"Three of Cups": {"celebration", "friendship"},
}

// BuiltinDeck builds the full 78-card deck used when the remote catalog is
// unreachable.
func BuiltinDeck() Deck {
	deck := make(Deck, 0, 78)
	for _, m := range majorArcana {
		deck = append(deck, builtinCard(m.name, "Major Arcana", m.keywords))
	}
	for _, suit := range []string{"Wands", "Cups", "Swords", "Pentacles"} {
		for _, rank := range minorRanks {
			name := rank + " of " + suit
			keywords, ok := minorOverrides[name]
			if !ok {
				keywords = [2]string{rankThemes[rank], suitThemes[suit]}
			}
			deck = append(deck, builtinCard(name, suit, keywords))
		}
	}
	return deck
}

func builtinCard(name, suit string, keywords [2]string) Card {
	return Card{
		Name:     name,
		Suit:     suit,
		Keywords: []string{keywords[0], keywords[1]},
		Upright:  fmt.Sprintf("Positive energy related to %s", keywords[0]),
		Reversed: fmt.Sprintf("Blocked or internal %s", keywords[0]),
		Element:  ElementForSuit(suit),
	}
}
