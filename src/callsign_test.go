package wspr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalCallsign(t *testing.T) {
	tests := []struct {
		callsign string
		expected string
	}{
		{"K1ABC", " K1ABC"},  // 1x3
		{"AB1CDE", "AB1CDE"}, // 2x3
		{"G4JN", " G4JN "},   // 1x2
		{"KA1A", "KA1A  "},   // 2x1
		{"VK2AB", "VK2AB "},  // 2x2
		{"2E0ABC", "2E0ABC"}, // leading digit
		{"k6hx", " K6HX "},
		{" K6HX ", " K6HX "},
	}

	for _, tt := range tests {
		t.Run(tt.callsign, func(t *testing.T) {
			var call, err = CanonicalCallsign(tt.callsign)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, call)
			assert.Len(t, call, CALLSIGN_LEN)
		})
	}
}

func TestCanonicalCallsignErrors(t *testing.T) {
	tests := []struct {
		name     string
		callsign string
	}{
		{"empty", ""},
		{"single character", "K"},
		{"no digit in place", "ABCD"},
		{"digits in suffix", "1234"},
		{"1x too long", "K1ABCD"},
		{"2x too long", "AB1CDEF"},
		{"embedded blank", "K1A C"},
		{"digit in suffix", "K1AB9"},
		{"punctuation", "K1-AB"},
		{"compound", "K1ABC/P"},
		{"blank before digit", "A 1"},
		{"dotless i", "K1ıBC"},
		{"long s", "K1ſBC"},
		{"non-ASCII prefix", "ıK1BC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var call, err = CanonicalCallsign(tt.callsign)
			require.ErrorIs(t, err, ErrInvalidCallsign)
			assert.Empty(t, call)

			var n, packErr = PackCallsign(tt.callsign)
			require.ErrorIs(t, packErr, ErrInvalidCallsign)
			assert.Zero(t, n)
		})
	}
}

func TestAsciiUpper(t *testing.T) {
	var s, ok = asciiUpper("k1abc fn42")
	assert.True(t, ok)
	assert.Equal(t, "K1ABC FN42", s)

	// Unicode case mapping would turn these into I and S.
	_, ok = asciiUpper("ıA0")
	assert.False(t, ok)
	_, ok = asciiUpper("ſ")
	assert.False(t, ok)
}

func TestPackCallsign(t *testing.T) {
	tests := []struct {
		callsign string
		expected uint32
	}{
		{"K1ABC", 259047992},
		{"K6HX", 259152128},
		{"AB1CDE", 73045156},
		{"G4JNT", 258326623},
	}

	for _, tt := range tests {
		t.Run(tt.callsign, func(t *testing.T) {
			var n, err = PackCallsign(tt.callsign)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
			assert.Less(t, n, uint32(1<<CALLSIGN_BITS))
		})
	}
}

func TestCallsignCharacterValues(t *testing.T) {
	var v, ok = digitOrLetterValue('0')
	assert.True(t, ok)
	assert.Equal(t, uint32(0), v)

	v, _ = digitOrLetterValue('9')
	assert.Equal(t, uint32(9), v)
	v, _ = digitOrLetterValue('A')
	assert.Equal(t, uint32(10), v)
	v, _ = digitOrLetterValue('z')
	assert.Equal(t, uint32(35), v)
	v, _ = digitOrLetterValue(' ')
	assert.Equal(t, uint32(36), v)

	_, ok = digitOrLetterValue('/')
	assert.False(t, ok)

	v, ok = letterValue('a')
	assert.True(t, ok)
	assert.Equal(t, uint32(0), v)
	v, _ = letterValue('Z')
	assert.Equal(t, uint32(25), v)
	v, _ = letterValue(' ')
	assert.Equal(t, uint32(26), v)

	// Digits have no value in the suffix.
	_, ok = letterValue('5')
	assert.False(t, ok)
}

func TestCallsignCharValueRadix(t *testing.T) {
	// Blank is fine first, never second.
	var _, err = callsignCharValue(0, ' ')
	require.NoError(t, err)

	_, err = callsignCharValue(1, ' ')
	require.Error(t, err)

	// The third position is the digit.
	_, err = callsignCharValue(2, 'A')
	require.Error(t, err)
}
