//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256bits

// lengthOffset is the bit offset of the length field in the last
// padded block.
const lengthOffset = BlockBits - 64

// Pad pads the MSBFirst bit sequence to a multiple of BlockBits. It
// appends a single 1 bit, 0 bits until the length is 448 mod 512, and
// the original bit count as a 64-bit big-endian integer. The input
// sequence is not modified.
func Pad(bits []bool) []bool {
	length := uint64(len(bits))

	// Padding. Add a 1 bit and 0 bits until 448 bits mod 512.
	zeros := (BlockBits + lengthOffset - 1 - length%BlockBits) % BlockBits

	padded := make([]bool, length+1+zeros+64)
	copy(padded, bits)
	padded[length] = true

	// Length in bits, big-endian.
	tail := padded[len(padded)-64:]
	for i := 0; i < 64; i++ {
		tail[i] = length&(1<<uint(63-i)) != 0
	}

	return padded
}
