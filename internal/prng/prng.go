// Package prng provides deterministic pseudo-random sequences keyed by a
// 64-bit seed, backed by the ChaCha20 keystream.
//
// The same seed always yields the same values on every platform, which keeps
// property tests and demo runs reproducible.
package prng

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"
)

// Source is a deterministic stream of pseudo-random values.
// A Source is not safe for concurrent use.
type Source struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

// New returns a Source keyed by seed.
func New(seed uint64) *Source {
	key := make([]byte, chacha20.KeySize)
	binary.LittleEndian.PutUint64(key, seed)

	cipher, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		// key and nonce sizes are fixed above
		panic("prng: " + err.Error())
	}

	return &Source{cipher: cipher}
}

// Uint64 returns the next 64 bits of the keystream.
func (s *Source) Uint64() uint64 {
	s.buf = [8]byte{}
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Int63n returns a uniform value in [0, n). It returns 0 when n <= 0.
func (s *Source) Int63n(n int64) int64 {
	if n <= 0 {
		return 0
	}

	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v := s.Uint64()
		if v < limit {
			return int64(v % bound)
		}
	}
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Residues returns n uniform values in [0, q).
func (s *Source) Residues(n int, q int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = s.Int63n(q)
	}
	return out
}

// Complex returns n values whose real and imaginary parts are uniform in
// [-amplitude, amplitude).
func (s *Source) Complex(n int, amplitude float64) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		re := (2*s.Float64() - 1) * amplitude
		im := (2*s.Float64() - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}
