package analysis

import (
	"fmt"
	"math"

	"github.com/astroscan/astroscan/internal/zodiac"
)

// EnergyUpdate is the ambient-energy state derived from a finished analysis.
type EnergyUpdate struct {
	Sign      zodiac.Sign `json:"sign"`
	Intensity float64     `json:"intensity"`
	Message   string      `json:"message"`
}

// DeriveEnergyUpdate maps an analysis onto the ambient energy display. A
// strongly active upper chakra overrides the primary sign. The message uses
// the raw intensity before capping, so it can read above 100%.
func DeriveEnergyUpdate(a DeepAnalysis) EnergyUpdate {
	sign := a.EnergeticSignature.PrimaryFrequency
	intensity := 0.7
	intensity += a.PsychologicalProfile.ConsciousnessLevel * 0.2
	intensity += a.EvolutionaryStage.ReadinessForChange * 0.1

	chakras := a.EnergeticSignature.ChakraActivation
	switch {
	case chakras["Heart"] > 0.8:
		sign = zodiac.Leo
		intensity += 0.1
	case chakras["Third Eye"] > 0.8:
		sign = zodiac.Pisces
		intensity += 0.1
	case chakras["Throat"] > 0.8:
		sign = zodiac.Gemini
		intensity += 0.1
	}

	return EnergyUpdate{
		Sign:      sign,
		Intensity: minf(intensity, 1.0),
		Message:   fmt.Sprintf("%s energy at %d%%", sign, int(math.Round(intensity*100))),
	}
}
