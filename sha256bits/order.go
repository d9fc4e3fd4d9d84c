//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256bits

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when a bit sequence does not hold a
// whole number of bytes.
var ErrInvalidLength = errors.New("sha256bits: bit length is not a multiple of 8")

// BitOrder specifies the order of bits within each byte of a bit
// sequence. Byte order is never affected by the bit order.
type BitOrder int

// Bit orders.
const (
	// LSBFirst lists the least significant bit of each byte first
	// ("little-endian mode").
	LSBFirst BitOrder = iota

	// MSBFirst lists the most significant bit of each byte first. This
	// is the order used by the SHA-256 standard.
	MSBFirst
)

func (o BitOrder) String() string {
	switch o {
	case LSBFirst:
		return "lsb-first"
	case MSBFirst:
		return "msb-first"
	default:
		return fmt.Sprintf("{BitOrder %d}", o)
	}
}

func checkLength(bits []bool) error {
	if len(bits)%8 != 0 {
		return fmt.Errorf("%w: %d bits", ErrInvalidLength, len(bits))
	}
	return nil
}

// ReverseBitOrder returns a new bit sequence where the bits of each
// byte are in reverse order. It converts sequences between LSBFirst
// and MSBFirst orders, and applying it twice returns the original
// sequence. The function fails with ErrInvalidLength if the length of
// bits is not a multiple of 8.
func ReverseBitOrder(bits []bool) ([]bool, error) {
	if err := checkLength(bits); err != nil {
		return nil, err
	}
	result := make([]bool, len(bits))
	for i := 0; i < len(bits); i += 8 {
		for j := 0; j < 8; j++ {
			result[i+j] = bits[i+7-j]
		}
	}
	return result, nil
}

// BytesToBits converts the byte slice into a bit sequence using the
// bit order.
func BytesToBits(data []byte, order BitOrder) []bool {
	bits := make([]bool, len(data)*8)
	for idx, b := range data {
		for bit := 0; bit < 8; bit++ {
			if b&(1<<uint(bit)) != 0 {
				bits[idx*8+bitIndex(order, bit)] = true
			}
		}
	}
	return bits
}

// BitsToBytes packs the bit sequence into bytes using the bit
// order. The function fails with ErrInvalidLength if the length of
// bits is not a multiple of 8.
func BitsToBytes(bits []bool, order BitOrder) ([]byte, error) {
	if err := checkLength(bits); err != nil {
		return nil, err
	}
	result := make([]byte, len(bits)/8)
	for idx, bit := range bits {
		if bit {
			result[idx/8] |= 1 << uint(bitIndex(order, idx%8))
		}
	}
	return result, nil
}

// bitIndex maps the bit significance within a byte to its position in
// the bit sequence and vice versa. The mapping is its own inverse.
func bitIndex(order BitOrder, bit int) int {
	switch order {
	case LSBFirst:
		return bit
	case MSBFirst:
		return 7 - bit
	default:
		panic(fmt.Sprintf("sha256bits: invalid bit order %v", order))
	}
}
