package energy

import (
	"strings"
	"testing"

	"github.com/astroscan/astroscan/internal/zodiac"
)

func TestAnalyzeNeutralFallback(t *testing.T) {
	for _, text := range []string{"", "zzz qqq xxx", "   "} {
		got := Analyze(text)
		if got.PrimarySign != zodiac.Sagittarius {
			t.Errorf("Analyze(%q).PrimarySign = %s, want Sagittarius", text, got.PrimarySign)
		}
		if got.Intensity != 0.2 {
			t.Errorf("Analyze(%q).Intensity = %v, want 0.2", text, got.Intensity)
		}
		if len(got.Keywords) != 0 {
			t.Errorf("Analyze(%q).Keywords = %v, want empty", text, got.Keywords)
		}
		if got.SecondarySign != "" {
			t.Errorf("Analyze(%q).SecondarySign = %s, want empty", text, got.SecondarySign)
		}
	}
}

func TestAnalyzeDominantSign(t *testing.T) {
	tests := []struct {
		text string
		want zodiac.Sign
	}{
		{"deep intense transform mystery power", zodiac.Scorpio},
		{"home family mother nurture feelings", zodiac.Cancer},
		{"freedom adventure travel philosophy truth wisdom", zodiac.Sagittarius},
	}
	for _, tt := range tests {
		got := Analyze(tt.text)
		if got.PrimarySign != tt.want {
			t.Errorf("Analyze(%q).PrimarySign = %s, want %s", tt.text, got.PrimarySign, tt.want)
		}
		if got.Intensity <= 0.2 {
			t.Errorf("Analyze(%q).Intensity = %v, want > 0.2 for keyword-rich text", tt.text, got.Intensity)
		}
	}
}

func TestAnalyzeSubstringMatching(t *testing.T) {
	// "transforming" contains the keyword "transform".
	got := Analyze("transforming everything around")
	if got.PrimarySign != zodiac.Scorpio {
		t.Errorf("PrimarySign = %s, want Scorpio", got.PrimarySign)
	}
}

func TestAnalyzeIntensityBounds(t *testing.T) {
	texts := []string{
		"",
		"love",
		"love love love love love love",
		strings.Repeat("nothing remarkable here at all ", 20),
		"deep power transform intense mystery secret hidden psychic",
	}
	for _, text := range texts {
		got := Analyze(text)
		if got.Intensity < 0.2 || got.Intensity > 1.0 {
			t.Errorf("Analyze(%q).Intensity = %v, want within [0.2, 1.0]", text, got.Intensity)
		}
	}
}

func TestAnalyzeKeywordsCapped(t *testing.T) {
	got := Analyze("deep intense transform mystery power secret death rebirth passionate magnetic")
	if len(got.Keywords) > 5 {
		t.Errorf("len(Keywords) = %d, want at most 5", len(got.Keywords))
	}
}

func TestAnalyzeCumulative(t *testing.T) {
	responses := []string{"love and harmony in everything", "seeking love and peace"}
	joined := Analyze(strings.Join(responses, " "))
	cumulative := AnalyzeCumulative(responses)

	if cumulative.PrimarySign != joined.PrimarySign {
		t.Errorf("cumulative primary %s != joined primary %s", cumulative.PrimarySign, joined.PrimarySign)
	}
	if cumulative.Intensity < joined.Intensity {
		t.Errorf("cumulative intensity %v < single-pass %v", cumulative.Intensity, joined.Intensity)
	}
	if cumulative.Intensity > 1.0 {
		t.Errorf("cumulative intensity %v exceeds 1.0", cumulative.Intensity)
	}
}

func TestAnalyzeCumulativeEmpty(t *testing.T) {
	got := AnalyzeCumulative(nil)
	if got.PrimarySign != zodiac.Sagittarius || got.Intensity != 0.2 {
		t.Errorf("AnalyzeCumulative(nil) = %+v, want neutral signature", got)
	}
}

func TestAnalyzeCumulativeBoostCap(t *testing.T) {
	responses := []string{"love", "love", "love", "love", "love", "love"}
	single := Analyze(strings.Join(responses, " "))
	got := AnalyzeCumulative(responses)
	wantBoost := 0.3
	want := single.Intensity + wantBoost
	if want > 1.0 {
		want = 1.0
	}
	if got.Intensity != want {
		t.Errorf("Intensity = %v, want %v (boost capped at 0.3)", got.Intensity, want)
	}
}
