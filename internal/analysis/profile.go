package analysis

import "strings"

func countMatches(text string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(text, m) {
			n++
		}
	}
	return n
}

// scoreTiers walks the tiers in order. Every matching tier ratchets the
// score up to its floor and takes over the label, so the label belongs to
// the last matching tier even when an earlier one set the score.
func scoreTiers(text string, tiers []markerTier, base float64, baseLabel string) (float64, string) {
	score, label := base, baseLabel
	for _, tier := range tiers {
		if countMatches(text, tier.markers) > 0 {
			if tier.floor > score {
				score = tier.floor
			}
			label = tier.label
		}
	}
	return score, label
}

func analyzeProfile(allText string) PsychologicalProfile {
	consciousness, archetype := scoreTiers(allText, consciousnessTiers, 0.5, "Seeker")
	emotional, _ := scoreTiers(allText, emotionalTiers, 0.5, "")
	spiritual, _ := scoreTiers(allText, spiritualTiers, 0.5, "")

	return PsychologicalProfile{
		DominantArchetype:  archetype,
		ShadowAspects:      shadowAspects(archetype),
		ConsciousnessLevel: consciousness,
		EmotionalMaturity:  emotional,
		MentalClarity:      mentalClarity(allText),
		SpiritualAwareness: spiritual,
		IntegrationNeeded:  integrationNeeded(consciousness, emotional, spiritual),
	}
}

// mentalClarity scores coherence from mean sentence length, clamped to
// [0.3, 0.9]. Empty text bottoms out at 0.3.
func mentalClarity(allText string) float64 {
	sentences := strings.FieldsFunc(allText, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var kept int
	var totalWords int
	for _, s := range sentences {
		if strings.TrimSpace(s) == "" {
			continue
		}
		kept++
		totalWords += len(strings.Fields(s))
	}
	if kept == 0 {
		return 0.3
	}
	avg := float64(totalWords) / float64(kept)
	return clamp((avg-5)/15, 0.3, 0.9)
}

func shadowAspects(archetype string) []string {
	if aspects, ok := shadowMap[archetype]; ok {
		return append([]string(nil), aspects...)
	}
	return []string{"Unknown patterns"}
}

func integrationNeeded(consciousness, emotional, spiritual float64) []string {
	var needs []string
	if consciousness < 0.6 {
		needs = append(needs, "Consciousness expansion")
	}
	if emotional < 0.6 {
		needs = append(needs, "Emotional healing")
	}
	if spiritual < 0.6 {
		needs = append(needs, "Spiritual development")
	}
	if abs(consciousness-emotional) > 0.3 {
		needs = append(needs, "Mind-heart integration")
	}
	if abs(spiritual-consciousness) > 0.3 {
		needs = append(needs, "Spiritual-mental alignment")
	}
	return needs
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
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
