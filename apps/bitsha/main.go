//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/bitsha/sha256bits"
)

// params specify the command parameters.
type params struct {
	Order     sha256bits.BitOrder
	Hex       bool
	Timing    bool
	Avalanche int
	Seed      string
}

func main() {
	le := flag.Bool("le", false, "Use LSB-first (little-endian) bit order")
	hexInput := flag.Bool("hex", false, "Arguments are hex-encoded bytes")
	timing := flag.Bool("timing", false, "Print timing report")
	avalanche := flag.Int("avalanche", -1,
		"Run 2^N single-bit-flip trials and print statistics")
	seed := flag.String("seed", "bitsha", "Avalanche message stream seed")
	flag.Parse()

	log.SetFlags(0)

	p := &params{
		Order:     sha256bits.MSBFirst,
		Hex:       *hexInput,
		Timing:    *timing,
		Avalanche: *avalanche,
		Seed:      *seed,
	}
	if *le {
		p.Order = sha256bits.LSBFirst
	}

	if p.Avalanche >= 0 {
		stats, err := Avalanche(p.Order, p.Avalanche, p.Seed)
		if err != nil {
			log.Fatalf("avalanche: %s", err)
		}
		PrintAvalanche(os.Stdout, p.Order, p.Avalanche, stats)
		return
	}

	if len(flag.Args()) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("failed to read input: %s", err)
		}
		if err := digest(p, data, "-"); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, arg := range flag.Args() {
		data := []byte(arg)
		if p.Hex {
			var err error
			data, err = hex.DecodeString(arg)
			if err != nil {
				log.Fatalf("invalid hex input '%s': %s", arg, err)
			}
		}
		if err := digest(p, data, arg); err != nil {
			log.Fatal(err)
		}
	}
}

// digest hashes data in the bit order of the params and prints the
// result in hex.
func digest(p *params, data []byte, label string) error {
	timing := NewTiming()

	bits := sha256bits.BytesToBits(data, p.Order)
	timing.Sample("Convert", BitCount(len(bits)))

	sum, err := sha256bits.Sum(p.Order, bits)
	if err != nil {
		return err
	}
	timing.Sample("Hash", BitCount(len(bits)))

	out, err := sha256bits.BitsToBytes(sum, p.Order)
	if err != nil {
		return err
	}
	timing.Sample("Render", BitCount(len(sum)))

	fmt.Printf("%x  %s\n", out, label)
	if p.Timing {
		timing.Print(os.Stdout)
	}
	return nil
}
