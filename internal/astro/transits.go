package astro

import "time"

// CurrentTransits reports the seasonal cosmic-weather lines for the given
// moment. The caller supplies the clock so output stays reproducible.
func CurrentTransits(now time.Time) []string {
	month := now.Month()

	var transits []string
	if month >= time.November || month <= time.February {
		transits = append(transits, "Pluto in Capricorn - final degrees of systemic transformation")
	}
	if month >= time.March && month <= time.May {
		transits = append(transits, "Jupiter expanding consciousness through current sign")
	}

	transits = append(transits,
		"Galactic Center activation - evolutionary downloads available",
		"Collective awakening frequencies intensifying",
	)
	return transits
}
