package analysis

import (
	"fmt"
	"strings"

	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/tarot"
	"github.com/astroscan/astroscan/internal/zodiac"
)

func analyzeSignature(allText string, chart *astro.Chart, cards []tarot.Card) EnergeticSignature {
	activation := make(map[string]float64, len(chakras))
	for _, c := range chakras {
		n := countMatches(allText, c.keywords)
		activation[c.name] = minf(float64(n)*0.2+0.3, 1.0)
	}

	primary := zodiac.GalacticCenterSign
	if chart != nil {
		primary = chart.SunSign
	}

	var secondary []zodiac.Sign
	for _, card := range cards {
		if sign, ok := tarot.Correspondence(card.Name); ok {
			secondary = append(secondary, sign)
		}
	}

	return EnergeticSignature{
		PrimaryFrequency:     primary,
		SecondaryFrequencies: secondary,
		Blockages:            blockages(activation),
		FlowStates:           flowStates(allText),
		ChakraActivation:     activation,
		AuricField:           auricField(activation),
	}
}

// blockages lists underactive chakras in wheel order, root to crown.
func blockages(activation map[string]float64) []string {
	var out []string
	for _, c := range chakras {
		if activation[c.name] < 0.4 {
			out = append(out, fmt.Sprintf("%s chakra underactive", c.name))
		}
	}
	return out
}

func flowStates(allText string) []string {
	var out []string
	for _, indicator := range flowIndicators {
		if strings.Contains(allText, indicator) {
			out = append(out, fmt.Sprintf("%s state detected", indicator))
		}
	}
	return out
}

func auricField(activation map[string]float64) string {
	var sum float64
	for _, v := range activation {
		sum += v
	}
	avg := sum / float64(len(activation))
	switch {
	case avg > 0.8:
		return "Radiant and expansive"
	case avg > 0.6:
		return "Balanced and clear"
	case avg > 0.4:
		return "Developing and strengthening"
	default:
		return "Contracted and healing"
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
