// Package blocks de-interleaves a flat codeword stream into the
// data+error-correction blocks defined by a QR code's version and error
// correction level, per ISO/IEC 18004 Annex I.
package blocks

import (
	"fmt"

	"github.com/jalphad/qrcode/qrcode/format"
)

// groupSpec is one layout group within a (version, ec level) block
// description: count blocks, each total codewords long, data of them
// payload, t the error-correction capacity.
type groupSpec struct {
	count, total, data, t int
}

// Block is one of a QR code's Reed-Solomon blocks after de-interleaving:
// its data codewords followed immediately by its error-correction
// codewords, plus the capacity and misdecode-protection bookkeeping
// needed to decode it.
type Block struct {
	Codewords []byte
	NData     int
	NError    int
	T         int
	P         int
}

// misdecodeProtection returns the p value for (version, ecLevel): the
// number of codewords reserved for detection-only use on small versions,
// per the hand-coded exception table the distilled spec calls out.
// Every other combination has p = 0.
func misdecodeProtection(version int, ecLevel format.ECLevel) int {
	if version == 1 {
		switch ecLevel {
		case format.Low:
			return 3
		case format.Medium:
			return 2
		default:
			return 1
		}
	}
	if version == 2 && ecLevel == format.Low {
		return 2
	}
	if version == 3 && ecLevel == format.Low {
		return 1
	}
	return 0
}

func ecIndex(ecLevel format.ECLevel) int {
	switch ecLevel {
	case format.Low:
		return 0
	case format.Medium:
		return 1
	case format.Quartile:
		return 2
	case format.High:
		return 3
	default:
		panic(fmt.Sprintf("blocks: invalid error correction level %d", int(ecLevel)))
	}
}

// Deinterleave splits a flat codeword stream into its per-block data and
// error-correction portions, round-robin across all blocks for the data
// codewords and then again for the error-correction codewords. version
// must be in [1,40] and codewords must have exactly the length the
// (version, ecLevel) layout demands.
func Deinterleave(codewords []byte, version int, ecLevel format.ECLevel) ([]Block, error) {
	if version < 1 || version > 40 {
		panic(fmt.Sprintf("blocks: invalid version %d", version))
	}

	groups := blockDescriptions[version-1][ecIndex(ecLevel)]
	p := misdecodeProtection(version, ecLevel)

	var result []Block
	totalData, totalError := 0, 0
	for _, g := range groups {
		for i := 0; i < g.count; i++ {
			result = append(result, Block{
				Codewords: make([]byte, g.total),
				NData:     g.data,
				NError:    g.total - g.data,
				T:         g.t,
				P:         p,
			})
			totalData += g.data
			totalError += g.total - g.data
		}
	}

	if len(codewords) != totalData+totalError {
		return nil, fmt.Errorf("blocks: expected %d codewords for version %d level %s, got %d",
			totalData+totalError, version, ecLevel, len(codewords))
	}

	pos := 0
	counters := make([]int, len(result))
	current := 0
	for pos < totalData {
		for counters[current] == result[current].NData {
			current = (current + 1) % len(result)
		}
		result[current].Codewords[counters[current]] = codewords[pos]
		counters[current]++
		current = (current + 1) % len(result)
		pos++
	}

	for i := range counters {
		counters[i] = 0
	}
	current = 0
	for pos < totalData+totalError {
		for counters[current] == result[current].NError {
			current = (current + 1) % len(result)
		}
		block := &result[current]
		block.Codewords[block.NData+counters[current]] = codewords[pos]
		counters[current]++
		current = (current + 1) % len(result)
		pos++
	}

	return result, nil
}
