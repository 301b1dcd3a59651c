package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"small", 42, "42"},
		{"truncates below 1000", 999.9, "999"},
		{"upper small bound", 999, "999"},
		{"one thousand", 1000, "1.00K"},
		{"two decimals", 1500, "1.50K"},
		{"one decimal", 12_345, "12.3K"},
		{"no decimals", 123_456, "123K"},
		{"million", 1_000_000, "1.00M"},
		{"billion", 2_500_000_000, "2.50B"},
		{"trillion", 1e12, "1.00T"},
		{"decillion", 1e33, "1.00Dc"},
		{"beyond table", 1e36, "1.00e36"},
		{"far beyond table", 5e39, "5.00e39"},
		{"hundred sextillion", 1e23, "100Sx"},
		{"ten octillion", 1e28, "10.0Oc"},
		{"ten nonillion", 1e31, "10.0No"},
		{"rounds into next suffix", 999_999, "1.00M"},
		{"rounds into one decimal", 9_999, "10.0K"},
		{"rounds into no decimals", 99_960, "100K"},
		{"small negative", -0.5, "0"},
		{"nan", math.NaN(), "0"},
		{"inf", math.Inf(1), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Number(tt.in))
		})
	}
}

func TestNumber_PowersOfTen(t *testing.T) {
	mantissas := []string{"1.00", "10.0", "100"}
	for exp := 3; exp < 36; exp++ {
		// ARRANGE
		n := math.Pow(10, float64(exp))
		want := mantissas[exp%3] + suffixes[exp/3-1]

		// ACT
		got := Number(n)

		// ASSERT
		assert.Equal(t, want, got, "1e%d", exp)
	}
}

func TestGrouped(t *testing.T) {
	assert.Equal(t, "1,234,567", Grouped(1234567.9, "en"))
	assert.Equal(t, "999", Grouped(999, "en"))
	assert.Equal(t, "1,000", Grouped(1000, "not a tag!"))
	assert.Equal(t, "0", Grouped(math.NaN(), "en"))
}
