// Package entropy provides driven.Random implementations backed by the
// ChaCha8 generator from math/rand/v2.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.Random = (*Source)(nil)

// Source draws integers and bytes from one ChaCha8 stream.
type Source struct {
	chacha *rand.ChaCha8
	rnd    *rand.Rand
}

// New creates a source seeded from the operating system.
func New() *Source {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return NewSeeded(seed)
}

// NewSeeded creates a reproducible source.
func NewSeeded(seed [32]byte) *Source {
	chacha := rand.NewChaCha8(seed)
	return &Source{chacha: chacha, rnd: rand.New(chacha)}
}

// NewFromUint64 is NewSeeded with the seed spread from a single integer.
// Meant for tests.
func NewFromUint64(n uint64) *Source {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], n)
	return NewSeeded(seed)
}

// IntN returns a value in [0, n).
func (s *Source) IntN(n int) int {
	return s.rnd.IntN(n)
}

// Read fills p with random bytes.
func (s *Source) Read(p []byte) (int, error) {
	return s.chacha.Read(p)
}
