package analysis

import (
	"math"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/tarot"
	"github.com/astroscan/astroscan/internal/zodiac"
)

func testChart(t *testing.T) *astro.Chart {
	t.Helper()
	chart, err := astro.Calculate(astro.BirthData{Date: "1990-06-15", Time: "14:30", Location: "Paris"})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return chart
}

func TestPerformIdempotent(t *testing.T) {
	responses := []string{
		"I feel stuck and trapped in my relationship",
		"I am trying to change and grow, choosing a different path",
	}
	chart := testChart(t)
	cards, err := tarot.BuiltinDeck().Draw(3)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	a := Perform(responses, chart, cards)
	b := Perform(responses, chart, cards)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different analyses")
	}
}

func TestProfileArchetypeLastTierWins(t *testing.T) {
	tests := []struct {
		text          string
		wantArchetype string
		wantLevel     float64
	}{
		{"i feel stuck and trapped", "Victim", 0.5},
		{"i am trying and struggling", "Warrior", 0.5},
		{"i am choosing and creating my life", "Creator", 0.7},
		{"allowing and trusting the process", "Sage", 0.9},
		// Both victim and creator words: the score ratchets to the creator
		// floor and the label goes to the later tier.
		{"i feel stuck but i am creating something new", "Creator", 0.7},
		// Creator plus victim words in any textual order behave the same.
		{"creating my way out of feeling trapped", "Creator", 0.7},
		{"nothing notable here", "Seeker", 0.5},
	}
	for _, tt := range tests {
		profile := analyzeProfile(tt.text)
		if profile.DominantArchetype != tt.wantArchetype {
			t.Errorf("analyzeProfile(%q).DominantArchetype = %q, want %q", tt.text, profile.DominantArchetype, tt.wantArchetype)
		}
		if profile.ConsciousnessLevel != tt.wantLevel {
			t.Errorf("analyzeProfile(%q).ConsciousnessLevel = %v, want %v", tt.text, profile.ConsciousnessLevel, tt.wantLevel)
		}
	}
}

func TestProfileScoreNeverDrops(t *testing.T) {
	// A transcendent word after a victim word keeps the higher floor.
	profile := analyzeProfile("i feel trapped yet i am witnessing it all")
	if profile.ConsciousnessLevel != 0.9 {
		t.Errorf("ConsciousnessLevel = %v, want 0.9", profile.ConsciousnessLevel)
	}
	if profile.DominantArchetype != "Sage" {
		t.Errorf("DominantArchetype = %q, want Sage", profile.DominantArchetype)
	}
}

func TestMentalClarity(t *testing.T) {
	if got := mentalClarity(""); got != 0.3 {
		t.Errorf("mentalClarity(empty) = %v, want 0.3", got)
	}
	// Two words per sentence keeps clarity at the floor.
	if got := mentalClarity("too short. very terse."); got != 0.3 {
		t.Errorf("mentalClarity(short) = %v, want 0.3", got)
	}
	// 20 words in one sentence: (20-5)/15 = 1.0, clamped to 0.9.
	long := strings.Repeat("word ", 20)
	if got := mentalClarity(long); got != 0.9 {
		t.Errorf("mentalClarity(long) = %v, want 0.9", got)
	}
}

func TestShadowAspects(t *testing.T) {
	if got := shadowAspects("Creator"); got[0] != "Perfectionism" {
		t.Errorf("shadowAspects(Creator) = %v", got)
	}
	if got := shadowAspects("Nobody"); len(got) != 1 || got[0] != "Unknown patterns" {
		t.Errorf("shadowAspects(unknown) = %v", got)
	}
}

func TestChakraActivation(t *testing.T) {
	sig := analyzeSignature("love and compassion bring healing connection", nil, nil)
	// Four Heart keywords matched: 4*0.2+0.3 = 1.0 after capping.
	if sig.ChakraActivation["Heart"] != 1.0 {
		t.Errorf("Heart = %v, want 1.0", sig.ChakraActivation["Heart"])
	}
	// No Root keywords: baseline 0.3, which reads as underactive.
	if sig.ChakraActivation["Root"] != 0.3 {
		t.Errorf("Root = %v, want 0.3", sig.ChakraActivation["Root"])
	}
	found := false
	for _, b := range sig.Blockages {
		if b == "Root chakra underactive" {
			found = true
		}
	}
	if !found {
		t.Errorf("Blockages = %v, want Root listed", sig.Blockages)
	}
	if sig.PrimaryFrequency != zodiac.Sagittarius {
		t.Errorf("PrimaryFrequency = %s, want Sagittarius without a chart", sig.PrimaryFrequency)
	}
}

func TestFlowStates(t *testing.T) {
	sig := analyzeSignature("everything moves with ease and harmony", nil, nil)
	want := []string{"ease state detected", "harmony state detected"}
	if !reflect.DeepEqual(sig.FlowStates, want) {
		t.Errorf("FlowStates = %v, want %v", sig.FlowStates, want)
	}
}

func TestSecondaryFrequencies(t *testing.T) {
	cards := []tarot.Card{
		{Name: "Death"},
		{Name: "Ace of Cups"},
		{Name: "The Sun"},
	}
	sig := analyzeSignature("", nil, cards)
	want := []zodiac.Sign{zodiac.Scorpio, zodiac.Leo}
	if !reflect.DeepEqual(sig.SecondaryFrequencies, want) {
		t.Errorf("SecondaryFrequencies = %v, want %v", sig.SecondaryFrequencies, want)
	}
}

func TestEvolutionaryLadder(t *testing.T) {
	tests := []struct {
		consciousness, spiritual float64
		want, wantNext           string
	}{
		{0.5, 0.5, "Awakening", "Integration"},
		{0.9, 0.5, "Integration", "Service"},
		{0.5, 0.9, "Service", "Mastery"},
		{0.95, 0.95, "Mastery", "Transcendence"},
	}
	for _, tt := range tests {
		profile := PsychologicalProfile{ConsciousnessLevel: tt.consciousness, SpiritualAwareness: tt.spiritual}
		stage := analyzeStage("", nil, profile)
		if stage.CurrentLevel != tt.want || stage.NextEvolution != tt.wantNext {
			t.Errorf("stage(%v, %v) = %s/%s, want %s/%s",
				tt.consciousness, tt.spiritual, stage.CurrentLevel, stage.NextEvolution, tt.want, tt.wantNext)
		}
	}
}

func TestSoulAge(t *testing.T) {
	tests := []struct {
		spiritual, consciousness float64
		want                     string
	}{
		{0.9, 0.9, "Old Soul"},
		{0.7, 0.6, "Mature Soul"},
		{0.5, 0.5, "Young Soul"},
		{0.3, 0.3, "New Soul"},
	}
	for _, tt := range tests {
		profile := PsychologicalProfile{SpiritualAwareness: tt.spiritual, ConsciousnessLevel: tt.consciousness}
		if got := soulAge(profile); got != tt.want {
			t.Errorf("soulAge(%v+%v) = %q, want %q", tt.spiritual, tt.consciousness, got, tt.want)
		}
	}
}

func TestChallengesOrderAndCap(t *testing.T) {
	// Low on everything plus relational text fires all four rules; only the
	// first three survive.
	profile := PsychologicalProfile{EmotionalMaturity: 0.3, MentalClarity: 0.3, SpiritualAwareness: 0.3}
	challenges := identifyChallenges("my family and people around me", profile)
	if len(challenges) != 3 {
		t.Fatalf("len = %d, want 3", len(challenges))
	}
	wantTypes := []string{"emotional", "mental", "spiritual"}
	for i, c := range challenges {
		if c.Type != wantTypes[i] {
			t.Errorf("challenge[%d].Type = %q, want %q", i, c.Type, wantTypes[i])
		}
	}
	if challenges[0].Intensity != 0.7 {
		t.Errorf("emotional intensity = %v, want 0.7", challenges[0].Intensity)
	}
}

func TestRelationalChallenge(t *testing.T) {
	profile := PsychologicalProfile{EmotionalMaturity: 0.9, MentalClarity: 0.9, SpiritualAwareness: 0.9}
	challenges := identifyChallenges("my relationship is confusing", profile)
	if len(challenges) != 1 || challenges[0].Type != "relational" || challenges[0].Intensity != 0.6 {
		t.Errorf("challenges = %+v, want single relational at 0.6", challenges)
	}
}

func TestDetectPatterns(t *testing.T) {
	chart := testChart(t)
	patterns := detectPatterns("thinking about love and work and money", chart)
	if len(patterns) != 3 {
		t.Fatalf("len = %d, want 3 (capped)", len(patterns))
	}
	if patterns[0].Name != "love Pattern" || patterns[1].Name != "work Pattern" {
		t.Errorf("pattern names = %q, %q", patterns[0].Name, patterns[1].Name)
	}

	// With a chart and room left, the karmatic pattern gets appended.
	patterns = detectPatterns("thinking about love", chart)
	if len(patterns) != 2 || patterns[1].Name != "Karmatic Pattern" {
		t.Errorf("patterns = %+v, want love + Karmatic", patterns)
	}
	if patterns[1].Description != chart.KarmicPatterns[0] {
		t.Errorf("Karmatic description = %q", patterns[1].Description)
	}
}

func TestNaturalGiftsDedup(t *testing.T) {
	profile := PsychologicalProfile{SpiritualAwareness: 0.8, ConsciousnessLevel: 0.8}
	cards := []tarot.Card{
		{Name: "A", Keywords: []string{"wisdom"}},
		{Name: "B", Keywords: []string{"wisdom", "healing"}},
	}
	gifts := naturalGifts(profile, cards)
	want := []string{"Spiritual insight", "Conscious awareness", "Teaching wisdom", "Healing abilities"}
	if !reflect.DeepEqual(gifts, want) {
		t.Errorf("gifts = %v, want %v", gifts, want)
	}
}

func TestInsightsSortedAndCapped(t *testing.T) {
	profile := PsychologicalProfile{EmotionalMaturity: 0.3, MentalClarity: 0.3, SpiritualAwareness: 0.3}
	challenges := identifyChallenges("", profile)
	chart := testChart(t)
	insights := buildInsights(profile, EvolutionaryStage{CurrentLevel: "Awakening"}, challenges, chart)

	if len(insights) != 5 {
		t.Fatalf("len = %d, want 5", len(insights))
	}
	if insights[0].Priority != 1 || insights[0].Category != "immediate" {
		t.Errorf("top insight = %+v, want the mindfulness entry", insights[0])
	}
	for i := 1; i < len(insights); i++ {
		if insights[i].Priority > insights[i-1].Priority {
			t.Errorf("insights not sorted by priority: %v after %v", insights[i].Priority, insights[i-1].Priority)
		}
	}
	// The chart entry at 0.9 should outrank the 0.7 challenge entries.
	if !strings.Contains(insights[1].Action, "North Node") || insights[1].Priority != 0.9 {
		t.Errorf("second insight = %+v, want the North Node entry", insights[1])
	}
}

func TestSynchronicityCardCorrespondence(t *testing.T) {
	chart := testChart(t) // Gemini sun
	profile := PsychologicalProfile{}

	base := synchronicity(chart, nil, nil, profile)
	withMatch := synchronicity(chart, []tarot.Card{{Name: "The Magician"}}, nil, profile)
	if withMatch != base+0.1 {
		t.Errorf("matching card bonus: %v vs base %v, want +0.1", withMatch, base)
	}

	withMiss := synchronicity(chart, []tarot.Card{{Name: "Strength"}}, nil, profile)
	if chart.MoonSign != zodiac.Leo && chart.RisingSign != zodiac.Leo && withMiss != base {
		t.Errorf("non-matching card changed score: %v vs %v", withMiss, base)
	}
}

func TestSynchronicityNoChart(t *testing.T) {
	got := synchronicity(nil, nil, nil, PsychologicalProfile{})
	if got != 0.5 {
		t.Errorf("base synchronicity = %v, want 0.5", got)
	}
}

func TestSynchronicityResponseLengthBonus(t *testing.T) {
	long := []string{strings.Repeat("a", 150)}
	got := synchronicity(nil, nil, long, PsychologicalProfile{})
	if got != 0.6 {
		t.Errorf("synchronicity = %v, want 0.6 with long responses", got)
	}
}

func TestPerformRangesFuzz(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	vocab := []string{
		"love", "stuck", "creating", "trusting", "family", "money", "flow",
		"purpose", "galactic", "ready", "change", "power", "truth", "vision",
		"divine", "work", "health", "fear", "growth", "the", "and", "a", "of",
		"today", "feel", "i", "my", "harmony", "wisdom", "soul",
	}
	deck := tarot.BuiltinDeck()
	chart := testChart(t)

	for i := 0; i < 1000; i++ {
		var responses []string
		for r := 0; r < rng.IntN(4); r++ {
			var words []string
			for w := 0; w < 1+rng.IntN(30); w++ {
				words = append(words, vocab[rng.IntN(len(vocab))])
			}
			responses = append(responses, strings.Join(words, " "))
		}
		var usedChart *astro.Chart
		if rng.IntN(2) == 0 {
			usedChart = chart
		}
		cards, _ := deck.Draw(1 + rng.IntN(3))

		a := Perform(responses, usedChart, cards)

		unit := map[string]float64{
			"consciousness": a.PsychologicalProfile.ConsciousnessLevel,
			"emotional":     a.PsychologicalProfile.EmotionalMaturity,
			"clarity":       a.PsychologicalProfile.MentalClarity,
			"spiritual":     a.PsychologicalProfile.SpiritualAwareness,
			"readiness":     a.EvolutionaryStage.ReadinessForChange,
			"synchronicity": a.SynchronicityLevel,
		}
		for name, v := range unit {
			if v < 0 || v > 1 {
				t.Fatalf("case %d: %s = %v out of [0,1]", i, name, v)
			}
		}
		for name, v := range a.EnergeticSignature.ChakraActivation {
			if v < 0.3 || v > 1 {
				t.Fatalf("case %d: chakra %s = %v out of [0.3,1]", i, name, v)
			}
		}
		if len(a.CurrentChallenges) > 3 || len(a.HiddenPatterns) > 3 || len(a.ActionableInsights) > 5 {
			t.Fatalf("case %d: list caps violated", i)
		}
	}
}

func TestDeriveEnergyUpdate(t *testing.T) {
	a := DeepAnalysis{
		PsychologicalProfile: PsychologicalProfile{ConsciousnessLevel: 0.5},
		EvolutionaryStage:    EvolutionaryStage{ReadinessForChange: 0.5},
		EnergeticSignature: EnergeticSignature{
			PrimaryFrequency: zodiac.Aries,
			ChakraActivation: map[string]float64{"Heart": 0.9},
		},
	}
	update := DeriveEnergyUpdate(a)
	if update.Sign != zodiac.Leo {
		t.Errorf("Sign = %s, want Leo override on strong Heart", update.Sign)
	}
	// 0.7 + 0.1 + 0.05 + 0.1 = 0.95
	if math.Abs(update.Intensity-0.95) > 1e-9 {
		t.Errorf("Intensity = %v, want 0.95", update.Intensity)
	}
	if update.Message != "Leo energy at 95%" {
		t.Errorf("Message = %q", update.Message)
	}
}

func TestDeriveEnergyUpdateCap(t *testing.T) {
	a := DeepAnalysis{
		PsychologicalProfile: PsychologicalProfile{ConsciousnessLevel: 1.0},
		EvolutionaryStage:    EvolutionaryStage{ReadinessForChange: 1.0},
		EnergeticSignature: EnergeticSignature{
			PrimaryFrequency: zodiac.Aries,
			ChakraActivation: map[string]float64{"Heart": 1.0},
		},
	}
	update := DeriveEnergyUpdate(a)
	if update.Sign != zodiac.Leo {
		t.Errorf("Sign = %s, want Leo", update.Sign)
	}
	if update.Intensity != 1.0 {
		t.Errorf("Intensity = %v, want capped 1.0", update.Intensity)
	}
	// The message keeps the uncapped figure.
	if update.Message != "Leo energy at 110%" {
		t.Errorf("Message = %q", update.Message)
	}
}
