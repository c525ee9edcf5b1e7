package fp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundingModeCodes(t *testing.T) {
	assert.Equal(t, RoundingMode(0), RoundingMode_ToNearest)
	assert.Equal(t, RoundingMode(1), RoundingMode_TowardsPlusInfinity)
	assert.Equal(t, RoundingMode(2), RoundingMode_TowardsMinusInfinity)
	assert.Equal(t, RoundingMode(3), RoundingMode_TowardsZero)
}

func TestParseRoundingMode(t *testing.T) {
	mode, err := ParseRoundingMode("TowardsZero")
	assert.NoError(t, err)
	assert.Equal(t, RoundingMode_TowardsZero, mode)

	mode, err = ParseRoundingMode("tonearest")
	assert.NoError(t, err)
	assert.Equal(t, RoundingMode_ToNearest, mode)

	_, err = ParseRoundingMode("sideways")
	assert.ErrorIs(t, err, ErrInvalidRoundingMode)
}
