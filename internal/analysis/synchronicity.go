package analysis

import (
	"strings"

	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/tarot"
)

// synchronicity accumulates alignment bonuses on a 0.5 base, capped at 1.0.
func synchronicity(chart *astro.Chart, cards []tarot.Card, responses []string, profile PsychologicalProfile) float64 {
	score := 0.5

	if chart != nil {
		score += 0.2
		if strings.Contains(chart.GalacticAlignment, "Direct") {
			score += 0.1
		}

		for _, card := range cards {
			sign, ok := tarot.Correspondence(card.Name)
			if !ok {
				continue
			}
			if sign == chart.SunSign || sign == chart.MoonSign || sign == chart.RisingSign {
				score += 0.1
			}
		}
	}

	if profile.SpiritualAwareness > 0.7 {
		score += 0.1
	}
	if profile.ConsciousnessLevel > 0.7 {
		score += 0.1
	}

	if len(responses) > 0 {
		total := 0
		for _, r := range responses {
			total += len(r)
		}
		if float64(total)/float64(len(responses)) > 100 {
			score += 0.1
		}
	}

	return minf(score, 1.0)
}
