package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/astroscan/astroscan/internal/astro"
)

// buildInsights assembles the ranked action list: a fixed immediate step,
// one step per challenge, the long-term entry, and an astrological entry
// when a chart exists. Sorted by priority descending, top five kept. The
// sort is stable so equal priorities keep assembly order.
func buildInsights(profile PsychologicalProfile, stage EvolutionaryStage, challenges []Challenge, chart *astro.Chart) []ActionableInsight {
	insights := []ActionableInsight{{
		Category:        "immediate",
		Action:          "Begin daily 10-minute mindfulness practice",
		Reasoning:       "Increases present-moment awareness and emotional regulation",
		ExpectedOutcome: "Greater clarity and emotional stability within 2 weeks",
		Timing:          "Start today",
		Priority:        1,
	}}

	for _, challenge := range challenges {
		insights = append(insights, ActionableInsight{
			Category:        "short-term",
			Action:          challenge.TransformationPath,
			Reasoning:       fmt.Sprintf("Addresses core %s challenge: %s", challenge.Type, challenge.Description),
			ExpectedOutcome: fmt.Sprintf("Significant improvement in %s well-being", challenge.Type),
			Timing:          challenge.Timeframe,
			Priority:        challenge.Intensity,
		})
	}

	insights = append(insights, ActionableInsight{
		Category:        "long-term",
		Action:          "Develop consistent spiritual practice aligned with your path",
		Reasoning:       fmt.Sprintf("Your evolutionary stage (%s) is ready for deeper spiritual work", stage.CurrentLevel),
		ExpectedOutcome: "Accelerated spiritual growth and purpose clarity",
		Timing:          "6-12 months",
		Priority:        0.8,
	})

	if chart != nil {
		node, _, _ := strings.Cut(chart.NorthNode, " - ")
		insights = append(insights, ActionableInsight{
			Category:        "spiritual",
			Action:          fmt.Sprintf("Work with your %s North Node energy", node),
			Reasoning:       "Aligns with your soul's evolutionary direction",
			ExpectedOutcome: "Accelerated soul growth and life purpose fulfillment",
			Timing:          "Ongoing",
			Priority:        0.9,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority > insights[j].Priority
	})
	if len(insights) > 5 {
		insights = insights[:5]
	}
	return insights
}
