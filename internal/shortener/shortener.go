package shortener

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Bytes at or above this bound are rejected so that every alphabet index is
// equally likely (248 = 4 * 62).
const rejectionBound = 256 - 256%len(Alphabet)

var ErrInvalidLength = errors.New("code length must be positive")

// Shortener draws fixed-length codes uniformly from Alphabet. It does not
// guarantee uniqueness; the link store's unique constraint does.
type Shortener struct {
	length int
	random io.Reader
}

type Option func(*Shortener)

// WithRandom replaces the entropy source. Intended for tests.
func WithRandom(r io.Reader) Option {
	return func(s *Shortener) {
		s.random = r
	}
}

func New(length int, opts ...Option) (*Shortener, error) {
	if length < 1 {
		return nil, ErrInvalidLength
	}
	s := &Shortener{length: length, random: rand.Reader}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Shortener) Length() int {
	return s.length
}

func (s *Shortener) Generate() (string, error) {
	return s.GenerateLength(s.length)
}

func (s *Shortener) GenerateLength(length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	code := make([]byte, 0, length)
	buf := make([]byte, length+length/4+1)
	for len(code) < length {
		if _, err := io.ReadFull(s.random, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectionBound {
				continue
			}
			code = append(code, Alphabet[int(b)%len(Alphabet)])
			if len(code) == length {
				break
			}
		}
	}
	return string(code), nil
}

// IsValid reports whether code has the given length and only alphabet characters.
func IsValid(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
