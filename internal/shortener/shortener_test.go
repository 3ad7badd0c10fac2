package shortener_test

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encly/internal/shortener"
)

var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func TestNew(t *testing.T) {
	s, err := shortener.New(6)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Length())
}

func TestNew_InvalidLength(t *testing.T) {
	_, err := shortener.New(0)
	assert.ErrorIs(t, err, shortener.ErrInvalidLength)
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, shortener.Alphabet, 62)

	seen := make(map[rune]bool)
	for _, r := range shortener.Alphabet {
		assert.False(t, seen[r], "duplicate %q", r)
		seen[r] = true
	}
}

func TestGenerate_LengthAndCharset(t *testing.T) {
	for _, length := range []int{1, 6, 10, 32} {
		s, err := shortener.New(length)
		require.NoError(t, err)

		for range 200 {
			code, err := s.Generate()
			require.NoError(t, err)
			assert.Len(t, code, length)
			assert.Regexp(t, alphanumeric, code)
		}
	}
}

func TestGenerateLength_OverridesDefault(t *testing.T) {
	s, err := shortener.New(6)
	require.NoError(t, err)

	code, err := s.GenerateLength(12)
	require.NoError(t, err)
	assert.Len(t, code, 12)

	_, err = s.GenerateLength(0)
	assert.ErrorIs(t, err, shortener.ErrInvalidLength)
}

func TestGenerate_Distinct(t *testing.T) {
	s, err := shortener.New(6)
	require.NoError(t, err)

	codes := make(map[string]struct{}, 1000)
	for range 1000 {
		code, err := s.Generate()
		require.NoError(t, err)
		codes[code] = struct{}{}
	}
	// 62^6 codes; a collision among 1000 draws is vanishingly unlikely.
	assert.Len(t, codes, 1000)
}

func TestGenerate_RejectsBiasedBytes(t *testing.T) {
	// 248..255 are rejected, 0 -> 'A', 61 -> '9', 62 -> 'A' again.
	src := bytes.NewReader([]byte{255, 248, 0, 61, 62, 250, 1, 0, 0, 0, 0, 0, 0})
	s, err := shortener.New(4, shortener.WithRandom(src))
	require.NoError(t, err)

	code, err := s.Generate()
	require.NoError(t, err)
	assert.Equal(t, "A9AB", code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func TestGenerate_RandomSourceError(t *testing.T) {
	s, err := shortener.New(6, shortener.WithRandom(failingReader{}))
	require.NoError(t, err)

	_, err = s.Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy unavailable")
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"abc123", true},
		{"ABCxyz", true},
		{"abc12", false},
		{"abc1234", false},
		{"abc-12", false},
		{"abc 12", false},
		{"ábc123", false},
		{"", false},
		{strings.Repeat("a", 6), true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shortener.IsValid(tt.code, 6), "code %q", tt.code)
	}
}
