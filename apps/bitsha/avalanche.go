//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/markkurossi/bitsha/sha256bits"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
	"golang.org/x/crypto/chacha20"
)

// maxAvalancheBytes bounds the length of the random messages.
const maxAvalancheBytes = 256

// stream is a deterministic ChaCha20 keystream used as the message
// source. The seed is repeated to fill the key and the nonce is zero.
type stream struct {
	cipher *chacha20.Cipher
}

func newStream(seed string) (*stream, error) {
	if len(seed) == 0 {
		return nil, errors.New("empty seed")
	}
	key := make([]byte, chacha20.KeySize)
	for i := range key {
		key[i] = seed[i%len(seed)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, err
	}
	return &stream{
		cipher: c,
	}, nil
}

// Read fills p with keystream bytes.
func (s *stream) Read(p []byte) (int, error) {
	clear(p)
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Intn returns a value in [0, n).
func (s *stream) Intn(n int) int {
	var buf [8]byte
	s.Read(buf[:])
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}

// AvalancheStats holds the number of flipped digest bits over a set of
// single-bit input changes.
type AvalancheStats struct {
	Trials int
	Total  int
	Min    int
	Max    int
}

// Mean returns the average number of flipped digest bits.
func (st AvalancheStats) Mean() float64 {
	if st.Trials == 0 {
		return 0
	}
	return float64(st.Total) / float64(st.Trials)
}

// Avalanche flips one random bit of 2^logTrials random messages and
// counts how many digest bits change.
func Avalanche(order sha256bits.BitOrder, logTrials int, seed string) (
	AvalancheStats, error) {

	if logTrials < 0 || logTrials > 24 {
		return AvalancheStats{}, fmt.Errorf("invalid trial count 2^%d", logTrials)
	}
	src, err := newStream(seed)
	if err != nil {
		return AvalancheStats{}, err
	}

	stats := AvalancheStats{
		Trials: 1 << logTrials,
		Min:    sha256bits.DigestBits,
	}
	for i := 0; i < stats.Trials; i++ {
		data := make([]byte, 1+src.Intn(maxAvalancheBytes))
		src.Read(data)
		bits := sha256bits.BytesToBits(data, order)

		d0, err := sha256bits.Sum(order, bits)
		if err != nil {
			return AvalancheStats{}, err
		}
		idx := src.Intn(len(bits))
		bits[idx] = !bits[idx]
		d1, err := sha256bits.Sum(order, bits)
		if err != nil {
			return AvalancheStats{}, err
		}

		var flipped int
		for j := range d0 {
			if d0[j] != d1[j] {
				flipped++
			}
		}
		stats.Total += flipped
		if flipped < stats.Min {
			stats.Min = flipped
		}
		if flipped > stats.Max {
			stats.Max = flipped
		}
	}
	return stats, nil
}

// PrintAvalanche prints the avalanche report to out.
func PrintAvalanche(out io.Writer, order sha256bits.BitOrder, logTrials int,
	stats AvalancheStats) {

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Order").SetAlign(tabulate.ML)
	tab.Header("Trials").SetAlign(tabulate.MR)
	tab.Header("Mean").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Min").SetAlign(tabulate.MR)
	tab.Header("Max").SetAlign(tabulate.MR)

	row := tab.Row()
	row.Column(order.String())
	row.Column("2" + superscript.Itoa(logTrials))
	row.Column(fmt.Sprintf("%.2f", stats.Mean())).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%.2f%%",
		stats.Mean()/float64(sha256bits.DigestBits)*100))
	row.Column(fmt.Sprintf("%d", stats.Min))
	row.Column(fmt.Sprintf("%d", stats.Max))

	tab.Print(out)
}
