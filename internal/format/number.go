// Package format renders game magnitudes for display.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var suffixes = []string{"K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No", "Dc"}

// Number abbreviates n with a K/M/B/... suffix.
// Values below 1000 are truncated to an integer; NaN and infinities render as "0".
// The decimal count follows the rounded mantissa: 2 below 10, 1 below 100, else 0.
func Number(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	if n < 1000 {
		t := math.Trunc(n)
		if t == 0 {
			// drops the sign of -0
			return "0"
		}
		return strconv.FormatFloat(t, 'f', 0, 64)
	}

	groups := int(math.Floor(math.Log10(n) / 3))
	scaled := n / math.Pow(1000, float64(groups))
	// Log10 can land one group off near exact powers of 1000
	if scaled < 1 {
		groups--
		scaled = n / math.Pow(1000, float64(groups))
	} else if scaled >= 1000 {
		groups++
		scaled = n / math.Pow(1000, float64(groups))
	}

	decimals := decimalsFor(scaled)
	rounded := roundTo(scaled, decimals)
	if rounded >= 1000 {
		groups++
		decimals = 2
		rounded = roundTo(rounded/1000, decimals)
	} else if d := decimalsFor(rounded); d != decimals {
		decimals = d
		rounded = roundTo(scaled, decimals)
	}

	return strconv.FormatFloat(rounded, 'f', decimals, 64) + suffix(groups)
}

func decimalsFor(v float64) int {
	switch {
	case v >= 100:
		return 0
	case v >= 10:
		return 1
	default:
		return 2
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func suffix(groups int) string {
	if groups <= len(suffixes) {
		return suffixes[groups-1]
	}
	return "e" + strconv.Itoa(groups*3)
}

// Grouped renders the integer part of n with the digit grouping of the given language,
// e.g. "1,234,567" for English. Unknown tags fall back to English.
func Grouped(n float64, lang string) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf("%d", int64(math.Trunc(n)))
}
