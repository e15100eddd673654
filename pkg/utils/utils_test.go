package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundToInt(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: 2.5, want: 3},
		{in: -2.5, want: -3},
		{in: 16, want: 16},
		{in: 0.4999, want: 0},
		{in: -0.5, want: -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundToInt(tt.in), "RoundToInt(%v)", tt.in)
	}
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.0, Finite(math.NaN()))
	assert.Equal(t, 0.0, Finite(math.Inf(1)))
	assert.Equal(t, 0.0, Finite(math.Inf(-1)))
	assert.Equal(t, 1.5, Finite(1.5))
}

func TestRatio_ZeroDenominator(t *testing.T) {
	assert.InDelta(t, 10/Epsilon, Ratio(10, 0), 1)
	assert.False(t, math.IsInf(Ratio(10, 0), 0))
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange("2024-01-01", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-01-15", end.Format("2006-01-02"))

	_, _, err = ParseDateRange("2024-01-15", "2024-01-01")
	assert.Error(t, err)

	_, _, err = ParseDateRange("15/01/2024", "2024-01-20")
	assert.Error(t, err)

	_, _, err = ParseDateRange("", "2024-01-20")
	assert.Error(t, err)
}

func TestGenerateRunID(t *testing.T) {
	id, err := GenerateRunID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
}
