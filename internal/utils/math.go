package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// Roll draws once from rnd and reports whether the draw landed below chance.
// A chance of 0 never succeeds and a chance of 1 always does.
func Roll(rnd func() float64, chance float64) bool {
	return rnd() < chance
}

// PickIndex maps one draw from rnd onto [0, n). Returns -1 when n is zero.
func PickIndex(rnd func() float64, n int) int {
	if n <= 0 {
		return -1
	}
	i := int(math.Floor(rnd() * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Sequence returns a source that replays values in order and then repeats the last one.
// Used to script random draws.
func Sequence(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		if len(values) == 0 {
			return 0
		}
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}
