// Package random provides the explicit, seedable generator every game is
// driven by.
//
// Generators are built on a blake2xb extendable-output function keyed by the
// seed, so a seed fully determines the stream on every platform. A generator
// must not be shared between concurrently running games.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/xof/blake2xb"
)

// xofSource adapts a kyber XOF to rand.Source.
type xofSource struct {
	xof kyber.XOF
	buf [8]byte
}

func (s *xofSource) Uint64() uint64 {
	// blake2xb in unknown-length mode yields far more output than a game can
	// consume; a read error means the XOF was misused.
	if _, err := s.xof.Read(s.buf[:]); err != nil {
		panic(fmt.Sprintf("random: xof read: %v", err))
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// NewSource returns a deterministic source keyed by seed.
func NewSource(seed uint64) rand.Source {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return &xofSource{xof: blake2xb.New(key[:])}
}

// New returns a deterministic generator keyed by seed.
func New(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// NewSeed draws a high-entropy seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Derive returns the seed of the i-th game of a batch started from base.
// Consecutive indexes map to unrelated streams because every seed keys its
// own XOF.
func Derive(base uint64, i int) uint64 {
	return base + uint64(i)
}
