package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealNow(t *testing.T) {
	assert.False(t, Real{}.Now().IsZero())
}

func TestFakeAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := NewFake(start)
	assert.Equal(t, start, clk.Now())

	clk.Advance(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), clk.Now())

	later := start.Add(time.Hour)
	clk.Set(later)
	assert.Equal(t, later, clk.Now())
}
