// Package analysis builds the composite deep-analysis profile out of the
// full response history, the birth chart, and the selected cards. Every
// score is a pure function of its inputs; the analysis is rebuilt from
// scratch on each call rather than updated incrementally.
package analysis

import (
	"strings"

	"github.com/astroscan/astroscan/internal/astro"
	"github.com/astroscan/astroscan/internal/tarot"
	"github.com/astroscan/astroscan/internal/zodiac"
)

// DeepAnalysis is the full composite result.
type DeepAnalysis struct {
	PsychologicalProfile PsychologicalProfile `json:"psychological_profile"`
	EnergeticSignature   EnergeticSignature   `json:"energetic_signature"`
	EvolutionaryStage    EvolutionaryStage    `json:"evolutionary_stage"`
	CurrentChallenges    []Challenge          `json:"current_challenges"`
	HiddenPatterns       []Pattern            `json:"hidden_patterns"`
	SoulPurpose          SoulPurpose          `json:"soul_purpose"`
	ActionableInsights   []ActionableInsight  `json:"actionable_insights"`
	SynchronicityLevel   float64              `json:"synchronicity_level"`
}

type PsychologicalProfile struct {
	DominantArchetype  string   `json:"dominant_archetype"`
	ShadowAspects      []string `json:"shadow_aspects"`
	ConsciousnessLevel float64  `json:"consciousness_level"`
	EmotionalMaturity  float64  `json:"emotional_maturity"`
	MentalClarity      float64  `json:"mental_clarity"`
	SpiritualAwareness float64  `json:"spiritual_awareness"`
	IntegrationNeeded  []string `json:"integration_needed"`
}

type EnergeticSignature struct {
	PrimaryFrequency     zodiac.Sign        `json:"primary_frequency"`
	SecondaryFrequencies []zodiac.Sign      `json:"secondary_frequencies"`
	Blockages            []string           `json:"blockages"`
	FlowStates           []string           `json:"flow_states"`
	ChakraActivation     map[string]float64 `json:"chakra_activation"`
	AuricField           string             `json:"auric_field"`
}

type EvolutionaryStage struct {
	CurrentLevel       string   `json:"current_level"`
	NextEvolution      string   `json:"next_evolution"`
	KarmicLessons      []string `json:"karmic_lessons"`
	SoulAge            string   `json:"soul_age"`
	IncarnationPurpose string   `json:"incarnation_purpose"`
	ReadinessForChange float64  `json:"readiness_for_change"`
}

type Challenge struct {
	Type               string  `json:"type"`
	Description        string  `json:"description"`
	RootCause          string  `json:"root_cause"`
	TransformationPath string  `json:"transformation_path"`
	Timeframe          string  `json:"timeframe"`
	Intensity          float64 `json:"intensity"`
}

type Pattern struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Origin        string   `json:"origin"`
	Manifestation []string `json:"manifestation"`
	BreakingPoint string   `json:"breaking_point"`
	NewPattern    string   `json:"new_pattern"`
}

type SoulPurpose struct {
	PrimaryMission      string   `json:"primary_mission"`
	SecondaryMissions   []string `json:"secondary_missions"`
	Gifts               []string `json:"gifts"`
	ServicePath         string   `json:"service_path"`
	CreativeExpression  string   `json:"creative_expression"`
	RelationshipLessons []string `json:"relationship_lessons"`
}

type ActionableInsight struct {
	Category        string  `json:"category"`
	Action          string  `json:"action"`
	Reasoning       string  `json:"reasoning"`
	ExpectedOutcome string  `json:"expected_outcome"`
	Timing          string  `json:"timing"`
	Priority        float64 `json:"priority"`
}

// Perform runs the whole engine. The chart may be nil when the person never
// submitted birth data; cards may be empty before the card-selection step.
func Perform(responses []string, chart *astro.Chart, cards []tarot.Card) DeepAnalysis {
	allText := strings.ToLower(strings.Join(responses, " "))

	profile := analyzeProfile(allText)
	signature := analyzeSignature(allText, chart, cards)
	stage := analyzeStage(allText, chart, profile)
	challenges := identifyChallenges(allText, profile)

	return DeepAnalysis{
		PsychologicalProfile: profile,
		EnergeticSignature:   signature,
		EvolutionaryStage:    stage,
		CurrentChallenges:    challenges,
		HiddenPatterns:       detectPatterns(allText, chart),
		SoulPurpose:          determinePurpose(chart, cards, profile),
		ActionableInsights:   buildInsights(profile, stage, challenges, chart),
		SynchronicityLevel:   synchronicity(chart, cards, responses, profile),
	}
}
