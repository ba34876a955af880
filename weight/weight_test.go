package weight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedRoundTrip(t *testing.T) {
	f := NewFixed(12.3456)
	assert.InDelta(t, 12.3456, f.Float64(), 1e-4)

	sum := f + NewFixed(0.5)
	assert.InDelta(t, 12.8456, sum.Float64(), 1e-4)
}

func TestIsInf(t *testing.T) {
	lim := IntLimits()
	assert.False(t, IsInf(int64(5), lim))
	assert.True(t, IsInf(lim.PosInf, lim))
	fl := FixedLimits()
	assert.True(t, IsInf(fl.PosInf+1, fl))
}

func TestLessWithEps(t *testing.T) {
	lim := RealLimits()
	assert.False(t, Less(1.0000000001, 1.0, lim), "within eps should not be strictly less")
	assert.True(t, Less(0.5, 1.0, lim))
}

func TestRealAndFixedLimitsDistinctZero(t *testing.T) {
	ri := RealLimits()
	assert.Equal(t, 0.0, ri.Zero)
	fl := FixedLimits()
	assert.Equal(t, Fixed(0), fl.Zero)
}
