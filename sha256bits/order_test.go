//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256bits

import (
	"errors"
	mrand "math/rand"
	"testing"
)

func parseBits(s string) []bool {
	var result []bool
	for _, r := range s {
		switch r {
		case '0':
			result = append(result, false)
		case '1':
			result = append(result, true)
		}
	}
	return result
}

func bitString(bits []bool) string {
	var result []byte
	for idx, bit := range bits {
		if idx > 0 && idx%8 == 0 {
			result = append(result, ' ')
		}
		if bit {
			result = append(result, '1')
		} else {
			result = append(result, '0')
		}
	}
	return string(result)
}

func equalBits(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func randomBits(rnd *mrand.Rand, n int) []bool {
	result := make([]bool, n)
	for i := range result {
		result[i] = rnd.Intn(2) == 1
	}
	return result
}

var reverseTests = []struct {
	in  string
	out string
}{
	{
		in:  "",
		out: "",
	},
	{
		in:  "10000000",
		out: "00000001",
	},
	{
		in:  "10110010 01101100",
		out: "01001101 00110110",
	},
	{
		in:  "11110000 00000001 10101010",
		out: "00001111 10000000 01010101",
	},
}

func TestReverseBitOrder(t *testing.T) {
	for idx, test := range reverseTests {
		in := parseBits(test.in)
		got, err := ReverseBitOrder(in)
		if err != nil {
			t.Fatalf("test %d: ReverseBitOrder: %v", idx, err)
		}
		if bitString(got) != test.out {
			t.Errorf("test %d: got %s, expected %s", idx, bitString(got), test.out)
		}
		if bitString(in) != test.in {
			t.Errorf("test %d: input modified: %s", idx, bitString(in))
		}
	}
}

func TestReverseBitOrderInvolution(t *testing.T) {
	rnd := mrand.New(mrand.NewSource(1))
	for i := 0; i < 100; i++ {
		bits := randomBits(rnd, rnd.Intn(64)*8)
		once, err := ReverseBitOrder(bits)
		if err != nil {
			t.Fatalf("ReverseBitOrder: %v", err)
		}
		twice, err := ReverseBitOrder(once)
		if err != nil {
			t.Fatalf("ReverseBitOrder: %v", err)
		}
		if !equalBits(twice, bits) {
			t.Fatalf("involution failed:\nhave %s\nwant %s",
				bitString(twice), bitString(bits))
		}
	}
}

func TestReverseBitOrderInvalidLength(t *testing.T) {
	for _, n := range []int{1, 7, 9, 15, 447, 511} {
		_, err := ReverseBitOrder(make([]bool, n))
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("length %d: got %v, expected ErrInvalidLength", n, err)
		}
	}
}

func TestBytesToBits(t *testing.T) {
	data := []byte{0b10110010, 0b00000001}

	lsb := BytesToBits(data, LSBFirst)
	if s := bitString(lsb); s != "01001101 10000000" {
		t.Errorf("LSBFirst: got %s", s)
	}
	msb := BytesToBits(data, MSBFirst)
	if s := bitString(msb); s != "10110010 00000001" {
		t.Errorf("MSBFirst: got %s", s)
	}
}

// TestBytesToBitsRoundTrip verifies BytesToBits is invertible through
// BitsToBytes in both bit orders.
func TestBytesToBitsRoundTrip(t *testing.T) {
	data := []byte{0b10110010, 0b01101100, 0x00, 0xff}
	for _, order := range []BitOrder{LSBFirst, MSBFirst} {
		got, err := BitsToBytes(BytesToBits(data, order), order)
		if err != nil {
			t.Fatalf("%v: BitsToBytes: %v", order, err)
		}
		if len(got) != len(data) {
			t.Fatalf("%v: length mismatch: got %d want %d",
				order, len(got), len(data))
		}
		for i := range data {
			if got[i] != data[i] {
				t.Fatalf("%v: byte %d mismatch: got %08b want %08b",
					order, i, got[i], data[i])
			}
		}
	}
}

func TestBitOrdersRelatedByReverse(t *testing.T) {
	data := []byte("bit order")
	reversed, err := ReverseBitOrder(BytesToBits(data, LSBFirst))
	if err != nil {
		t.Fatalf("ReverseBitOrder: %v", err)
	}
	if !equalBits(reversed, BytesToBits(data, MSBFirst)) {
		t.Fatalf("reversed LSBFirst bits differ from MSBFirst bits")
	}
}

func TestBitsToBytesInvalidLength(t *testing.T) {
	_, err := BitsToBytes(make([]bool, 5), LSBFirst)
	if !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("got %v, expected ErrInvalidLength", err)
	}
}

func TestBitOrderString(t *testing.T) {
	if s := LSBFirst.String(); s != "lsb-first" {
		t.Errorf("LSBFirst: got %q", s)
	}
	if s := MSBFirst.String(); s != "msb-first" {
		t.Errorf("MSBFirst: got %q", s)
	}
	if s := BitOrder(42).String(); s != "{BitOrder 42}" {
		t.Errorf("BitOrder(42): got %q", s)
	}
}
