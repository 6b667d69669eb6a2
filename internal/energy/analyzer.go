// Package energy scores free text against the zodiac lexicons and reports
// which sign's vocabulary dominates it.
package energy

import (
	"sort"
	"strings"

	"github.com/astroscan/astroscan/internal/zodiac"
)

// Signature is the result of analyzing a piece of text.
type Signature struct {
	PrimarySign   zodiac.Sign `json:"primary_sign"`
	SecondarySign zodiac.Sign `json:"secondary_sign,omitempty"`
	Intensity     float64     `json:"intensity"`
	Keywords      []string    `json:"keywords"`
}

// matchCount counts words that match a keyword in either direction: a word
// containing the keyword or the keyword containing the word. "loving" matches
// "love" and so does "lov".
func matchCount(words []string, keyword string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(w, keyword) || strings.Contains(keyword, w) {
			n++
		}
	}
	return n
}

func neutralSignature() Signature {
	return Signature{
		PrimarySign: zodiac.GalacticCenterSign,
		Intensity:   0.2,
		Keywords:    []string{},
	}
}

// Analyze scores text against the sign and planetary keyword tables and
// returns the dominant signature. Text with no matches at all gets the
// neutral Sagittarius signature at intensity 0.2.
func Analyze(text string) Signature {
	words := strings.Fields(strings.ToLower(text))

	scores := make(map[zodiac.Sign]float64, len(zodiac.Signs))
	var found []string

	for _, sign := range zodiac.Signs {
		for _, kw := range zodiac.SignKeywords[sign] {
			if n := matchCount(words, kw); n > 0 {
				scores[sign] += float64(n)
				found = append(found, kw)
			}
		}
	}

	for _, planet := range zodiac.Planets {
		for _, kw := range zodiac.PlanetaryKeywords[planet] {
			n := matchCount(words, kw)
			if n == 0 {
				continue
			}
			found = append(found, kw)
			for _, bonus := range zodiac.PlanetSignBonuses[planet] {
				scores[bonus.Sign] += float64(n) * bonus.Weight
			}
		}
	}

	// Sort candidates by score descending. The stable sort over the fixed
	// Signs order makes earlier signs win ties.
	var ranked []zodiac.Sign
	for _, sign := range zodiac.Signs {
		if scores[sign] > 0 {
			ranked = append(ranked, sign)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	if len(ranked) == 0 {
		return neutralSignature()
	}

	sig := Signature{PrimarySign: ranked[0]}
	if len(ranked) > 1 {
		sig.SecondarySign = ranked[1]
	}

	density := float64(len(found)) / float64(max(len(words), 1))
	sig.Intensity = clamp(density*2+0.3, 0.2, 1.0)

	if len(found) > 5 {
		found = found[:5]
	}
	sig.Keywords = found
	return sig
}

// AnalyzeCumulative joins several responses and analyzes them as one text,
// then boosts the intensity for response count. Each response adds 0.1 up to
// a 0.3 boost; the total stays capped at 1.0.
func AnalyzeCumulative(responses []string) Signature {
	if len(responses) == 0 {
		return neutralSignature()
	}

	sig := Analyze(strings.Join(responses, " "))

	boost := float64(len(responses)) * 0.1
	if boost > 0.3 {
		boost = 0.3
	}
	sig.Intensity = clamp(sig.Intensity+boost, 0, 1.0)
	return sig
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
