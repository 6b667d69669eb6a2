package analysis

import (
	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/tarot"
)

func determinePurpose(chart *astro.Chart, cards []tarot.Card, profile PsychologicalProfile) SoulPurpose {
	mission := "Awakening consciousness and serving others"
	lessons := []string{"Authentic communication", "Healthy boundaries"}
	if chart != nil {
		mission = chart.SoulPurpose
		lessons = chart.CurrentLessons
	}

	return SoulPurpose{
		PrimaryMission: mission,
		SecondaryMissions: []string{
			"Healing ancestral patterns",
			"Creative expression and inspiration",
			"Teaching through example",
		},
		Gifts:               naturalGifts(profile, cards),
		ServicePath:         servicePath(profile, chart),
		CreativeExpression:  creativeExpression(cards, profile),
		RelationshipLessons: lessons,
	}
}

// naturalGifts collects threshold gifts then card-keyword gifts, deduplicated
// with first occurrence kept.
func naturalGifts(profile PsychologicalProfile, cards []tarot.Card) []string {
	var gifts []string
	if profile.SpiritualAwareness > 0.7 {
		gifts = append(gifts, "Spiritual insight")
	}
	if profile.EmotionalMaturity > 0.7 {
		gifts = append(gifts, "Emotional wisdom")
	}
	if profile.MentalClarity > 0.7 {
		gifts = append(gifts, "Mental clarity")
	}
	if profile.ConsciousnessLevel > 0.7 {
		gifts = append(gifts, "Conscious awareness")
	}

	for _, card := range cards {
		if hasKeyword(card, "creativity") {
			gifts = append(gifts, "Creative expression")
		}
		if hasKeyword(card, "healing") {
			gifts = append(gifts, "Healing abilities")
		}
		if hasKeyword(card, "wisdom") {
			gifts = append(gifts, "Teaching wisdom")
		}
	}

	seen := make(map[string]bool, len(gifts))
	deduped := gifts[:0]
	for _, g := range gifts {
		if !seen[g] {
			seen[g] = true
			deduped = append(deduped, g)
		}
	}
	return deduped
}

func hasKeyword(card tarot.Card, keyword string) bool {
	for _, k := range card.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

func servicePath(profile PsychologicalProfile, chart *astro.Chart) string {
	switch {
	case profile.SpiritualAwareness > 0.8:
		return "Spiritual teaching and guidance"
	case profile.EmotionalMaturity > 0.8:
		return "Emotional healing and support"
	case profile.MentalClarity > 0.8:
		return "Mental clarity and wisdom sharing"
	}
	if chart != nil {
		return chart.SoulPurpose
	}
	return "Service through personal example"
}

func creativeExpression(cards []tarot.Card, profile PsychologicalProfile) string {
	for _, card := range cards {
		for _, kw := range creativeKeywords {
			if hasKeyword(card, kw) {
				return "Artistic and creative expression"
			}
		}
	}
	if profile.SpiritualAwareness > 0.7 {
		return "Spiritual and mystical expression"
	}
	if profile.EmotionalMaturity > 0.7 {
		return "Emotional and relational expression"
	}
	return "Authentic self-expression"
}
