package energy

import "strings"

// Depth markers. Matching is one-directional here: a word counts when it
// contains the marker, so "feeling" counts for "feel".
var (
	vulnerabilityWords = []string{"feel", "scared", "confused", "hurt", "lost", "uncertain", "struggling", "worried"}
	specificityWords   = []string{"because", "when", "since", "after", "during", "while", "yesterday", "today", "recently"}
	personalWords      = []string{"i", "me", "my", "myself"}
	actionWords        = []string{"will", "going", "ready", "want", "need", "plan", "decide", "trying"}
	themeWords         = []string{"love", "work", "family", "relationship", "money", "health", "purpose", "growth", "change", "fear"}
)

// DepthProfile describes how substantively a person answered a question.
type DepthProfile struct {
	Depth        float64  `json:"depth"`
	Authenticity float64  `json:"authenticity"`
	Readiness    float64  `json:"readiness"`
	Themes       []string `json:"themes"`
}

func countContaining(words []string, markers []string) int {
	n := 0
	for _, w := range words {
		for _, m := range markers {
			if strings.Contains(w, m) {
				n++
				break
			}
		}
	}
	return n
}

// AnalyzeDepth scores a response for emotional depth, first-person
// authenticity, and readiness to act, and extracts its life themes.
func AnalyzeDepth(response string) DepthProfile {
	lower := strings.ToLower(response)
	words := strings.Fields(lower)
	total := float64(max(len(words), 1))

	vulnerability := countContaining(words, vulnerabilityWords)
	specificity := countContaining(words, specificityWords)
	depth := clamp(float64(vulnerability+specificity)/total*5+0.3, 0, 1.0)

	// Personal pronouns must match exactly so "mine" and "mystery" don't
	// inflate the count.
	personal := 0
	for _, w := range words {
		for _, p := range personalWords {
			if w == p {
				personal++
				break
			}
		}
	}
	authenticity := clamp(float64(personal)/total*4+0.4, 0, 1.0)

	action := countContaining(words, actionWords)
	readiness := clamp(float64(action)/total*4+0.3, 0, 1.0)

	themes := []string{}
	for _, theme := range themeWords {
		if strings.Contains(lower, theme) {
			themes = append(themes, theme)
		}
	}

	return DepthProfile{
		Depth:        depth,
		Authenticity: authenticity,
		Readiness:    readiness,
		Themes:       themes,
	}
}
