//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256bits

import (
	"fmt"
)

// Hash computes the SHA-256 digest of the LSBFirst bit sequence. The
// returned 256-bit digest is in LSBFirst order. The function fails
// with ErrInvalidLength if the length of bits is not a multiple of 8.
func Hash(bits []bool) ([]bool, error) {
	return Sum(LSBFirst, bits)
}

// HashStandard computes the SHA-256 digest of the MSBFirst bit
// sequence. The returned 256-bit digest is in MSBFirst order. The
// function fails with ErrInvalidLength if the length of bits is not a
// multiple of 8.
func HashStandard(bits []bool) ([]bool, error) {
	return Sum(MSBFirst, bits)
}

// Sum computes the SHA-256 digest of bits. Both the input and the
// returned digest use the bit order. The byte order of the digest is
// the same in both orders.
func Sum(order BitOrder, bits []bool) ([]bool, error) {
	if err := checkLength(bits); err != nil {
		return nil, err
	}

	var err error
	switch order {
	case LSBFirst:
		bits, err = ReverseBitOrder(bits)
		if err != nil {
			return nil, err
		}
	case MSBFirst:
	default:
		panic(fmt.Sprintf("sha256bits: invalid bit order %v", order))
	}

	digest := sum(bits).Bits()
	if order == LSBFirst {
		return ReverseBitOrder(digest)
	}
	return digest, nil
}

// sum pads the MSBFirst bit sequence and processes its blocks in
// order, returning the final state.
func sum(bits []bool) State {
	padded := Pad(bits)

	state := NewState()
	for len(padded) >= BlockBits {
		state = Compress(state, padded[:BlockBits])
		padded = padded[BlockBits:]
	}
	if len(padded) != 0 {
		panic(fmt.Sprintf("sha256bits: %d trailing bits after padding",
			len(padded)))
	}
	return state
}
