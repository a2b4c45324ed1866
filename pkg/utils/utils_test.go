package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
	assert.Regexp(t, "^[A-Za-z0-9]+$", id)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{in: 0, expected: 0},
		{in: 1.005, expected: 1},
		{in: 1234.5678, expected: 1234.57},
		{in: -2.346, expected: -2.35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.in))
	}
}
