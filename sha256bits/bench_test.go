//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256bits

import (
	"testing"
)

func benchmarkHash(b *testing.B, size int) {
	msg := BytesToBits(make([]byte, size), LSBFirst)
	b.SetBytes(int64(size))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Hash(msg); err != nil {
			b.Fatalf("Hash: %v", err)
		}
	}
}

func BenchmarkHash8(b *testing.B) {
	benchmarkHash(b, 8)
}

func BenchmarkHash1K(b *testing.B) {
	benchmarkHash(b, 1024)
}

func BenchmarkHash8K(b *testing.B) {
	benchmarkHash(b, 8192)
}

// BenchmarkCompress measures a single compression function call.
func BenchmarkCompress(b *testing.B) {
	state := NewState()
	block := patternBits(BlockBits)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		state = Compress(state, block)
	}
}
