//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha256bits implements the SHA-256 hash function over bit
// sequences where each bit is an explicit bool value. It is intended
// for bit-oriented computation models, such as boolean circuits, that
// must interoperate with byte-oriented SHA-256 implementations.
//
// The package supports two within-byte bit orders. Hash takes and
// returns sequences in LSBFirst order, which is the natural order for
// circuit inputs where bit i of a byte has weight 2^i. HashStandard
// takes and returns sequences in MSBFirst order, which is the order
// used by FIPS 180-4. The two functions differ only in the bit order
// conversion applied at their input and output; the byte order of the
// digest is the same for both.
//
// Example:
//
//	bits := sha256bits.BytesToBits([]byte("abc"), sha256bits.LSBFirst)
//	digest, err := sha256bits.Hash(bits)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := sha256bits.BitsToBytes(digest, sha256bits.LSBFirst)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%x\n", data)
//
// The length of all bit sequences passed to Hash, HashStandard, and
// Sum must be a multiple of 8. Other lengths fail with
// ErrInvalidLength.
package sha256bits
