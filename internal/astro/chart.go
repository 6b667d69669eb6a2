// Package astro derives a symbolic birth chart from birth data. The
// derivations are deliberately simplified lookups, not ephemeris astronomy.
package astro

import (
	"time"

	"github.com/astroscan/astroscan/internal/errors"
	"github.com/astroscan/astroscan/internal/zodiac"
)

// BirthData is the raw input for a chart calculation.
type BirthData struct {
	Date     string `json:"date"`     // 2006-01-02
	Time     string `json:"time"`     // 15:04
	Location string `json:"location"` // free-form place name
}

// Chart is the derived symbolic birth chart.
type Chart struct {
	SunSign           zodiac.Sign `json:"sun_sign"`
	MoonSign          zodiac.Sign `json:"moon_sign"`
	RisingSign        zodiac.Sign `json:"rising_sign"`
	NorthNode         string      `json:"north_node"`
	SouthNode         string      `json:"south_node"`
	GalacticAlignment string      `json:"galactic_alignment"`
	EvolutionaryTheme string      `json:"evolutionary_theme"`
	SoulPurpose       string      `json:"soul_purpose"`
	CurrentLessons    []string    `json:"current_lessons"`
	KarmicPatterns    []string    `json:"karmic_patterns"`
}

// Validate checks that birth data parses before any derivation runs.
func (b BirthData) Validate() error {
	if b.Date == "" {
		return errors.NewInvalidInput("birth date is required")
	}
	if _, err := time.Parse("2006-01-02", b.Date); err != nil {
		return errors.NewInvalidInput("birth date must be in YYYY-MM-DD format")
	}
	if b.Time == "" {
		return errors.NewInvalidInput("birth time is required")
	}
	if _, err := time.Parse("15:04", b.Time); err != nil {
		return errors.NewInvalidInput("birth time must be in HH:MM format")
	}
	if b.Location == "" {
		return errors.NewInvalidInput("birth location is required")
	}
	return nil
}

// Calculate derives the full chart. Malformed input is rejected rather than
// silently coerced.
func Calculate(b BirthData) (*Chart, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", b.Date)
	clock, _ := time.Parse("15:04", b.Time)

	sun := sunSign(int(date.Month()), date.Day())

	// Moon and rising are hash-style lookups into the sign wheel, keyed by
	// birth hour and by minute plus location length.
	moon := zodiac.Signs[clock.Hour()%12]
	rising := zodiac.Signs[(clock.Minute()+len(b.Location))%12]

	return &Chart{
		SunSign:           sun,
		MoonSign:          moon,
		RisingSign:        rising,
		NorthNode:         lookupOr(zodiac.NorthNodes, sun, zodiac.DefaultNorthNode),
		SouthNode:         lookupOr(zodiac.SouthNodes, sun, zodiac.DefaultSouthNode),
		GalacticAlignment: zodiac.GalacticAlignment(sun),
		EvolutionaryTheme: lookupOr(zodiac.EvolutionaryThemes, sun, zodiac.DefaultEvolutionaryTheme),
		SoulPurpose:       lookupOr(zodiac.SoulPurposes, sun, zodiac.DefaultSoulPurpose),
		CurrentLessons:    lookupSliceOr(zodiac.CurrentLessons, sun, zodiac.DefaultCurrentLessons),
		KarmicPatterns:    lookupSliceOr(zodiac.KarmicPatterns, sun, zodiac.DefaultKarmicPatterns),
	}, nil
}

func lookupOr(m map[zodiac.Sign]string, s zodiac.Sign, def string) string {
	if v, ok := m[s]; ok {
		return v
	}
	return def
}

func lookupSliceOr(m map[zodiac.Sign][]string, s zodiac.Sign, def []string) []string {
	if v, ok := m[s]; ok {
		return append([]string(nil), v...)
	}
	return append([]string(nil), def...)
}

func sunSign(month, day int) zodiac.Sign {
	switch {
	case (month == 3 && day >= 21) || (month == 4 && day <= 19):
		return zodiac.Aries
	case (month == 4 && day >= 20) || (month == 5 && day <= 20):
		return zodiac.Taurus
	case (month == 5 && day >= 21) || (month == 6 && day <= 20):
		return zodiac.Gemini
	case (month == 6 && day >= 21) || (month == 7 && day <= 22):
		return zodiac.Cancer
	case (month == 7 && day >= 23) || (month == 8 && day <= 22):
		return zodiac.Leo
	case (month == 8 && day >= 23) || (month == 9 && day <= 22):
		return zodiac.Virgo
	case (month == 9 && day >= 23) || (month == 10 && day <= 22):
		return zodiac.Libra
	case (month == 10 && day >= 23) || (month == 11 && day <= 21):
		return zodiac.Scorpio
	case (month == 11 && day >= 22) || (month == 12 && day <= 21):
		return zodiac.Sagittarius
	case (month == 12 && day >= 22) || (month == 1 && day <= 19):
		return zodiac.Capricorn
	case (month == 1 && day >= 20) || (month == 2 && day <= 18):
		return zodiac.Aquarius
	default:
		return zodiac.Pisces
	}
}
