// Package entropy provides the uniform random primitives that pattern
// generation draws from.
//
// Every generator receives an explicit Source rather than reaching for a
// package-level RNG, so tests can substitute a deterministic source and
// production code always runs against the OS CSPRNG.
package entropy

import (
	"crypto/rand"
	"math/big"
)

// Source produces unbiased random integers.
type Source interface {
	// IntRange returns a uniform integer in the half-open range [min, max).
	// Callers must guarantee max > min; the result is undefined otherwise.
	IntRange(min, max int) int
}

// Crypto is a Source backed by crypto/rand.
type Crypto struct{}

// NewCrypto returns a Source drawing from the operating system CSPRNG.
func NewCrypto() Crypto {
	return Crypto{}
}

// IntRange returns a uniform integer in [min, max).
func (Crypto) IntRange(min, max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		// crypto/rand reads from the kernel entropy pool and does not fail
		// on any supported platform.
		panic("entropy: crypto/rand read failed: " + err.Error())
	}
	return min + int(n.Int64())
}

// SampleOne picks one byte of s uniformly. s must be non-empty.
func SampleOne(src Source, s string) byte {
	return s[src.IntRange(0, len(s))]
}
