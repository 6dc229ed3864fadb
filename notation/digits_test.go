package notation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryptarithm/notation"
)

// TestDigit covers the base-36 alphabet boundaries and panics out of range.
func TestDigit(t *testing.T) {
	tests := []struct {
		name        string
		in          int
		want        rune
		shouldPanic bool
	}{
		{"zero", 0, '0', false},
		{"nine", 9, '9', false},
		{"ten", 10, 'a', false},
		{"max", 35, 'z', false},
		{"negative", -1, 0, true},
		{"tooHigh", 36, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { notation.Digit(tc.in) })
				return
			}
			assert.Equal(t, tc.want, notation.Digit(tc.in))
		})
	}
}

// TestDigitValue accepts either letter case and rejects non-digits.
func TestDigitValue(t *testing.T) {
	v, ok := notation.DigitValue('B')
	require.True(t, ok)
	assert.Equal(t, 11, v)
	v, ok = notation.DigitValue('b')
	require.True(t, ok)
	assert.Equal(t, 11, v)
	_, ok = notation.DigitValue('?')
	assert.False(t, ok)

	assert.True(t, notation.IsDigit('9', 10))
	assert.False(t, notation.IsDigit('A', 10))
	assert.True(t, notation.IsDigit('A', 12))
	assert.False(t, notation.IsDigit('0', 0))
}

// TestParseDigit canonicalizes case and reports invalid runes.
func TestParseDigit(t *testing.T) {
	d, err := notation.ParseDigit('F')
	require.NoError(t, err)
	assert.Equal(t, 'f', d)

	_, err = notation.ParseDigit('#')
	require.ErrorIs(t, err, notation.ErrDigitOutOfRange)
}
