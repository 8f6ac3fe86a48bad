package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// AlphanumericChars is the [A-Za-z0-9] alphabet used for keys and push ids.
const AlphanumericChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomSource draws uniform values from a cryptographically strong reader.
type RandomSource struct {
	reader io.Reader
}

// NewRandomSource returns a RandomSource reading from r, or from crypto/rand when r is nil.
func NewRandomSource(r io.Reader) *RandomSource {
	if r == nil {
		r = rand.Reader
	}
	return &RandomSource{reader: r}
}

// Intn returns a uniform integer in [0, n).
func (s *RandomSource) Intn(n int) (int, error) {
	if n < 1 {
		return 0, errors.New("upper bound must be at least 1")
	}
	v, err := rand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}

// Pick returns one byte drawn uniformly from alphabet.
func (s *RandomSource) Pick(alphabet string) (byte, error) {
	if alphabet == "" {
		return 0, errors.New("alphabet cannot be empty")
	}
	i, err := s.Intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// String returns length bytes drawn independently and uniformly from alphabet.
func (s *RandomSource) String(alphabet string, length int) (string, error) {
	if length < 1 {
		return "", errors.New("length must be at least 1")
	}

	out := make([]byte, length)
	for i := range out {
		c, err := s.Pick(alphabet)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		out[i] = c
	}
	return string(out), nil
}

// Alphanumeric returns a uniform [A-Za-z0-9] string of the given length.
func (s *RandomSource) Alphanumeric(length int) (string, error) {
	return s.String(AlphanumericChars, length)
}

// Shuffle applies a uniform Fisher-Yates permutation to b in place.
func (s *RandomSource) Shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := s.Intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
