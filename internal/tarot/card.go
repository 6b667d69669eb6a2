// Package tarot provides the card catalog: a remote deck fetched from the
// public tarot API with a builtin deck as fallback.
package tarot

import (
	"fmt"
	"regexp"
	"strings"
)

// Card is a single tarot card in its internal shape.
type Card struct {
	Name        string   `json:"name"`
	Suit        string   `json:"suit"`
	Keywords    []string `json:"keywords"`
	Upright     string   `json:"upright"`
	Reversed    string   `json:"reversed"`
	Element     string   `json:"element"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
}

// apiCard mirrors the wire shape of the public tarot API.
type apiCard struct {
	Name      string `json:"name"`
	NameShort string `json:"name_short"`
	Type      string `json:"type"`
	Suit      string `json:"suit,omitempty"`
	MeaningUp string `json:"meaning_up"`
	MeaningRv string `json:"meaning_rev"`
	Desc      string `json:"desc"`
}

type apiResponse struct {
	NHits int       `json:"nhits"`
	Cards []apiCard `json:"cards"`
}

// ElementForSuit maps a suit name to its element by substring, so both
// "Cups" and "Suit of Chalices" resolve to Water. Anything unrecognized is
// Spirit, which also covers the major arcana.
func ElementForSuit(suit string) string {
	s := strings.ToLower(suit)
	switch {
	case strings.Contains(s, "wand") || strings.Contains(s, "rod"):
		return "Fire"
	case strings.Contains(s, "cup") || strings.Contains(s, "chalice"):
		return "Water"
	case strings.Contains(s, "sword"):
		return "Air"
	case strings.Contains(s, "pentacle") || strings.Contains(s, "coin"):
		return "Earth"
	default:
		return "Spirit"
	}
}

var romanNumeral = regexp.MustCompile(`^[ivxlcdm]+\.?$`)
var numeric = regexp.MustCompile(`^[0-9]+\.?$`)

// extractKeywords pulls short keyword phrases from an upright-meaning
// string. Meanings arrive comma-separated; numeric and roman-numeral tokens
// are card numbering noise and get dropped.
func extractKeywords(meaning string) []string {
	var keywords []string
	for _, part := range strings.FieldsFunc(meaning, func(r rune) bool {
		return r == ',' || r == ';' || r == '.'
	}) {
		phrase := strings.ToLower(strings.TrimSpace(part))
		if phrase == "" || numeric.MatchString(phrase) || romanNumeral.MatchString(phrase) {
			continue
		}
		keywords = append(keywords, phrase)
		if len(keywords) == 4 {
			break
		}
	}
	return keywords
}

func imageURL(nameShort string) string {
	slug := strings.ReplaceAll(strings.ToLower(nameShort), " ", "")
	return fmt.Sprintf("https://sacred-texts.com/tarot/pkt/img/%s.jpg", slug)
}

// convert maps an API card to the internal shape.
func convert(a apiCard) Card {
	suit := a.Suit
	if suit == "" {
		suit = a.Type
	}
	keywords := extractKeywords(a.MeaningUp)
	if len(keywords) == 0 {
		keywords = []string{a.NameShort}
	}
	return Card{
		Name:        a.Name,
		Suit:        suit,
		Keywords:    keywords,
		Upright:     a.MeaningUp,
		Reversed:    a.MeaningRv,
		Element:     ElementForSuit(suit),
		Image:       imageURL(a.NameShort),
		Description: a.Desc,
	}
}
