package zodiac

import (
	"fmt"
	"time"
)

// EnergyProfile describes the ambient rendering quality of a sign or planet:
// a hex color, a tone frequency in Hz, and its musical note name.
type EnergyProfile struct {
	Color     string  `json:"color"`
	Frequency float64 `json:"frequency"`
	Note      string  `json:"note"`
}

var signEnergies = map[Sign]EnergyProfile{
	Aries:       {Color: "#4A0E0E", Frequency: 65.41, Note: "C2"},
	Taurus:      {Color: "#4A2A0E", Frequency: 69.30, Note: "C#2"},
	Gemini:      {Color: "#4A3A0E", Frequency: 73.42, Note: "D2"},
	Cancer:      {Color: "#4A4A0E", Frequency: 77.78, Note: "D#2"},
	Leo:         {Color: "#4A4A0E", Frequency: 82.41, Note: "E2"},
	Virgo:       {Color: "#2A4A2A", Frequency: 92.50, Note: "F#2"},
	Libra:       {Color: "#0E4A0E", Frequency: 87.31, Note: "F2"},
	Scorpio:     {Color: "#0E4A4A", Frequency: 98.00, Note: "G2"},
	Sagittarius: {Color: "#0E0E4A", Frequency: 103.83, Note: "G#2"},
	Capricorn:   {Color: "#2A0E4A", Frequency: 110.00, Note: "A2"},
	Aquarius:    {Color: "#4A0E4A", Frequency: 116.54, Note: "A#2"},
	Pisces:      {Color: "#4A0E3A", Frequency: 123.47, Note: "B2"},
}

// Each planet shares the profile of a sign it rules or resonates with.
var planetEnergies = map[Planet]EnergyProfile{
	Mars:    signEnergies[Aries],
	Mercury: signEnergies[Gemini],
	Venus:   signEnergies[Libra],
	Moon:    signEnergies[Sagittarius],
	Sun:     signEnergies[Leo],
	Jupiter: signEnergies[Aquarius],
	Saturn:  signEnergies[Capricorn],
	Uranus:  signEnergies[Aquarius],
	Neptune: signEnergies[Pisces],
	Pluto:   signEnergies[Scorpio],
}

// SignEnergy returns the energy profile for a sign. Unknown signs fall back
// to Sagittarius, matching the neutral default used elsewhere.
func SignEnergy(s Sign) EnergyProfile {
	if p, ok := signEnergies[s]; ok {
		return p
	}
	return signEnergies[Sagittarius]
}

// PlanetEnergy returns the energy profile for a planet, with the same
// Sagittarius fallback as SignEnergy.
func PlanetEnergy(p Planet) EnergyProfile {
	if e, ok := planetEnergies[p]; ok {
		return e
	}
	return signEnergies[Sagittarius]
}

// Gradient is a two-stop daily color gradient expressed in HSL.
type Gradient struct {
	ColorStart string `json:"color_start"`
	ColorEnd   string `json:"color_end"`
}

// DailyGradient derives a deterministic gradient from the day of the year,
// cycling the hue wheel once per year. Saturation and lightness are fixed so
// the palette stays vivid but dark.
func DailyGradient(now time.Time) Gradient {
	dayOfYear := now.YearDay()
	baseHue := int(float64(dayOfYear)/366*360 + 0.5)

	const saturation = 70
	const lightness = 45

	return Gradient{
		ColorStart: fmt.Sprintf("hsl(%d, %d%%, %d%%)", baseHue, saturation, lightness),
		ColorEnd:   fmt.Sprintf("hsl(%d, %d%%, %d%%)", (baseHue+40)%360, saturation, lightness-10),
	}
}
