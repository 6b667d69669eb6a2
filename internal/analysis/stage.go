package analysis

import "github.com/astroscan/astroscan/internal/astro"

var nextEvolution = map[string]string{
	"Awakening":   "Integration",
	"Integration": "Service",
	"Service":     "Mastery",
	"Mastery":     "Transcendence",
}

func analyzeStage(allText string, chart *astro.Chart, profile PsychologicalProfile) EvolutionaryStage {
	level := "Awakening"
	if profile.ConsciousnessLevel > 0.8 {
		level = "Integration"
	}
	if profile.SpiritualAwareness > 0.8 {
		level = "Service"
	}
	if profile.ConsciousnessLevel > 0.9 && profile.SpiritualAwareness > 0.9 {
		level = "Mastery"
	}

	next, ok := nextEvolution[level]
	if !ok {
		next = "Continued growth"
	}

	lessons := []string{"Self-awareness", "Compassion", "Authenticity"}
	purpose := "Learning and growth through experience"
	if chart != nil {
		lessons = chart.KarmicPatterns
		purpose = chart.SoulPurpose
	}

	return EvolutionaryStage{
		CurrentLevel:       level,
		NextEvolution:      next,
		KarmicLessons:      lessons,
		SoulAge:            soulAge(profile),
		IncarnationPurpose: purpose,
		ReadinessForChange: readinessForChange(allText, profile),
	}
}

// soulAge bands the sum of spiritual awareness and consciousness.
func soulAge(profile PsychologicalProfile) string {
	complexity := profile.SpiritualAwareness + profile.ConsciousnessLevel
	switch {
	case complexity > 1.6:
		return "Old Soul"
	case complexity > 1.2:
		return "Mature Soul"
	case complexity > 0.8:
		return "Young Soul"
	default:
		return "New Soul"
	}
}

func readinessForChange(allText string, profile PsychologicalProfile) float64 {
	matches := countMatches(allText, changeWords)
	return minf(float64(matches)*0.2+profile.ConsciousnessLevel*0.5, 1.0)
}
