package analysis

import (
	"fmt"
	"strings"

	"github.com/astroscan/astroscan/internal/astro"
)

// identifyChallenges applies the fixed challenge rules in order and keeps
// the first three that fire.
func identifyChallenges(allText string, profile PsychologicalProfile) []Challenge {
	var challenges []Challenge

	if profile.EmotionalMaturity < 0.6 {
		challenges = append(challenges, Challenge{
			Type:               "emotional",
			Description:        "Emotional reactivity and regulation",
			RootCause:          "Unprocessed emotional patterns from past experiences",
			TransformationPath: "Mindfulness practice and emotional awareness development",
			Timeframe:          "3-6 months",
			Intensity:          1 - profile.EmotionalMaturity,
		})
	}

	if profile.MentalClarity < 0.6 {
		challenges = append(challenges, Challenge{
			Type:               "mental",
			Description:        "Mental clarity and decision-making",
			RootCause:          "Overthinking and mental confusion",
			TransformationPath: "Meditation and mental discipline practices",
			Timeframe:          "2-4 months",
			Intensity:          1 - profile.MentalClarity,
		})
	}

	if profile.SpiritualAwareness < 0.5 {
		challenges = append(challenges, Challenge{
			Type:               "spiritual",
			Description:        "Spiritual disconnection and purpose confusion",
			RootCause:          "Lack of spiritual practice and inner connection",
			TransformationPath: "Spiritual exploration and practice development",
			Timeframe:          "6-12 months",
			Intensity:          1 - profile.SpiritualAwareness,
		})
	}

	if strings.Contains(allText, "relationship") || strings.Contains(allText, "people") || strings.Contains(allText, "family") {
		challenges = append(challenges, Challenge{
			Type:               "relational",
			Description:        "Relationship dynamics and boundaries",
			RootCause:          "Unclear boundaries and communication patterns",
			TransformationPath: "Conscious communication and boundary setting",
			Timeframe:          "4-8 months",
			Intensity:          0.6,
		})
	}

	if len(challenges) > 3 {
		challenges = challenges[:3]
	}
	return challenges
}

func detectPatterns(allText string, chart *astro.Chart) []Pattern {
	var patterns []Pattern

	for _, theme := range recurringThemes {
		if !strings.Contains(allText, theme) {
			continue
		}
		patterns = append(patterns, Pattern{
			Name:        fmt.Sprintf("%s Pattern", theme),
			Description: fmt.Sprintf("Recurring focus on %s indicates a core life theme", theme),
			Origin:      "Soul-level programming and past-life experiences",
			Manifestation: []string{
				fmt.Sprintf("Repeated %s situations", theme),
				fmt.Sprintf("Strong emotional charge around %s", theme),
			},
			BreakingPoint: fmt.Sprintf("Conscious awareness and choice around %s", theme),
			NewPattern:    fmt.Sprintf("Mastery and wisdom in %s area", theme),
		})
	}

	if chart != nil {
		description := "Core karmatic lesson"
		if len(chart.KarmicPatterns) > 0 {
			description = chart.KarmicPatterns[0]
		}
		newPattern := "Evolved consciousness"
		if len(chart.CurrentLessons) > 0 {
			newPattern = chart.CurrentLessons[0]
		}
		patterns = append(patterns, Pattern{
			Name:          "Karmatic Pattern",
			Description:   description,
			Origin:        "Past-life experiences and soul contracts",
			Manifestation: []string{"Repetitive life situations", "Emotional triggers", "Relationship patterns"},
			BreakingPoint: "Conscious choice and new responses",
			NewPattern:    newPattern,
		})
	}

	if len(patterns) > 3 {
		patterns = patterns[:3]
	}
	return patterns
}
