//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256bits

import (
	"fmt"
	"math/bits"
)

const (
	// BlockBits is the size of a SHA-256 block in bits.
	BlockBits = 512

	// DigestBits is the size of a SHA-256 digest in bits.
	DigestBits = 256

	// wordBits is the size of a SHA-256 word in bits.
	wordBits = 32

	rounds = 64
)

// State holds the eight chaining words of the SHA-256 computation.
type State [8]uint32

// iv is the SHA-256 initial hash value.
var iv = State{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// _K holds the SHA-256 round constants.
var _K = []uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// init validates the round constant table against the round count.
func init() {
	if len(_K) != rounds {
		panic(fmt.Sprintf("sha256bits: round constant mismatch: %d != %d",
			len(_K), rounds))
	}
	if len(iv)*wordBits != DigestBits {
		panic(fmt.Sprintf("sha256bits: state size mismatch: %d != %d",
			len(iv)*wordBits, DigestBits))
	}
}

// NewState returns the SHA-256 initial state.
func NewState() State {
	return iv
}

// StateFromBits creates a state from its 256-bit MSBFirst
// representation. The function panics if the length of bits is not
// DigestBits.
func StateFromBits(bits []bool) State {
	if len(bits) != DigestBits {
		panic(fmt.Sprintf("sha256bits: invalid state size: %d != %d",
			len(bits), DigestBits))
	}
	var s State
	for i := range s {
		s[i] = word(bits[i*wordBits:])
	}
	return s
}

// Bits returns the state as 256 bits in MSBFirst order.
func (s State) Bits() []bool {
	result := make([]bool, DigestBits)
	for i, w := range s {
		for j := 0; j < wordBits; j++ {
			result[i*wordBits+j] = w&(1<<uint(wordBits-1-j)) != 0
		}
	}
	return result
}

// word decodes the MSBFirst word from the beginning of bits.
func word(bits []bool) uint32 {
	var w uint32
	for i := 0; i < wordBits; i++ {
		w <<= 1
		if bits[i] {
			w |= 1
		}
	}
	return w
}

// Compress processes one 512-bit MSBFirst block and returns the next
// state. The function panics if the length of block is not BlockBits.
func Compress(state State, block []bool) State {
	if len(block) != BlockBits {
		panic(fmt.Sprintf("sha256bits: invalid block size: %d != %d",
			len(block), BlockBits))
	}

	// Message schedule.
	var w [rounds]uint32
	for i := 0; i < 16; i++ {
		w[i] = word(block[i*wordBits:])
	}
	for i := 16; i < rounds; i++ {
		v1 := w[i-2]
		t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
		v2 := w[i-15]
		t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
		w[i] = t1 + w[i-7] + t2 + w[i-16]
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3],
		state[4], state[5], state[6], state[7]

	for i := 0; i < rounds; i++ {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^
			bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + _K[i] + w[i]

		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^
			bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return State{
		state[0] + a,
		state[1] + b,
		state[2] + c,
		state[3] + d,
		state[4] + e,
		state[5] + f,
		state[6] + g,
		state[7] + h,
	}
}
