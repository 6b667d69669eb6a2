package reading

import "strings"

// Situation is what the person is actually talking about, pulled from their
// own words.
type Situation struct {
	Type      string `json:"type,omitempty"`
	Details   string `json:"details,omitempty"`
	KeyPhrase string `json:"key_phrase,omitempty"`
	Emotion   string `json:"emotion"`
}

type situationRule struct {
	kind     string
	triggers []string
	details  []string
}

// Rules are checked in order; the first match wins.
var situationRules = []situationRule{
	{"relationship",
		[]string{"relationship", "partner", "dating", "boyfriend", "girlfriend", "husband", "wife", "marriage", "love", "romantic"},
		[]string{"relationship", "partner", "dating", "love", "boyfriend", "girlfriend", "husband", "wife"}},
	{"work",
		[]string{"work", "job", "career", "boss", "office", "workplace", "business", "colleague"},
		[]string{"work", "job", "career", "boss", "office", "business"}},
	{"family",
		[]string{"family", "mother", "father", "mom", "dad", "parents", "sister", "brother", "children", "kids"},
		[]string{"family", "mother", "father", "mom", "dad", "parents"}},
	{"decision",
		[]string{"decision", "choose", "decide", "choice", "should i", "what should", "which"},
		[]string{"decision", "choose", "decide", "choice", "should"}},
	{"change",
		[]string{"change", "changing", "transition", "moving", "new", "different", "transform"},
		[]string{"change", "changing", "transition", "moving", "new"}},
	{"fear",
		[]string{"scared", "afraid", "worry", "worried", "anxious", "fear", "nervous"},
		[]string{"scared", "afraid", "worry", "anxious", "fear"}},
}

func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// ExtractSituation classifies the response history into a situation type,
// pulls out a representative phrase, and reads the emotional tone.
func ExtractSituation(responses []string) Situation {
	allText := strings.Join(responses, " ")
	lower := strings.ToLower(allText)

	situation := Situation{Emotion: "neutral"}

	var sentences []string
	for _, s := range splitSentences(allText) {
		if len(strings.TrimSpace(s)) > 10 {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) > 0 {
		situation.KeyPhrase = sentences[0]
		for _, s := range sentences {
			ls := strings.ToLower(s)
			if strings.Contains(ls, "i ") || strings.Contains(ls, "my ") || strings.Contains(ls, "we ") {
				situation.KeyPhrase = s
				break
			}
		}
		situation.KeyPhrase = strings.TrimSpace(situation.KeyPhrase)
	}

	for _, rule := range situationRules {
		if containsAny(lower, rule.triggers) {
			situation.Type = rule.kind
			situation.Details = firstSentenceContaining(allText, rule.details)
			break
		}
	}

	// Later tone rules override earlier ones.
	if strings.Contains(lower, "excited") || strings.Contains(lower, "happy") {
		situation.Emotion = "positive"
	}
	if strings.Contains(lower, "scared") || strings.Contains(lower, "worried") {
		situation.Emotion = "anxious"
	}
	if strings.Contains(lower, "frustrated") || strings.Contains(lower, "stuck") {
		situation.Emotion = "frustrated"
	}
	if strings.Contains(lower, "confused") || strings.Contains(lower, "unclear") {
		situation.Emotion = "confused"
	}

	return situation
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// firstSentenceContaining returns the first substantial sentence mentioning
// any keyword, checking keywords in order. Only the first match per keyword
// is considered.
func firstSentenceContaining(text string, keywords []string) string {
	sentences := splitSentences(text)
	for _, keyword := range keywords {
		for _, s := range sentences {
			if strings.Contains(strings.ToLower(s), keyword) {
				if trimmed := strings.TrimSpace(s); len(trimmed) > 10 {
					return trimmed
				}
				break
			}
		}
	}
	return ""
}
