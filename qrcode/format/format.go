// Package format decodes the format information (error correction level
// and data mask pattern) and, for versions 7 and above, the version
// information bits stored twice around a QR code's finder patterns,
// recovering from up to 3 bit errors via nearest-code BCH lookup.
package format

import (
	"fmt"

	"github.com/jalphad/qrcode/qrcode/bitmatrix"
)

// ECLevel is the error correction level encoded in a QR code's format
// information. Numeric values are this package's own enumeration, not the
// 2-bit field stored in the format information (L=01, M=00, Q=11, H=10,
// which DecodeFormat maps onto these), so they must not be compared
// ordinally.
type ECLevel int

const (
	High     ECLevel = 0
	Quartile ECLevel = 1
	Medium   ECLevel = 2
	Low      ECLevel = 3
)

func (l ECLevel) String() string {
	switch l {
	case High:
		return "H"
	case Quartile:
		return "Q"
	case Medium:
		return "M"
	case Low:
		return "L"
	default:
		return fmt.Sprintf("ECLevel(%d)", int(l))
	}
}

// formatCodes[x] is the 15-bit BCH-masked sequence encoding the 5-bit
// format value x (2 bits of EC level, 3 bits of mask pattern), per
// ISO/IEC 18004:2006 Annex C Table C.1.
var formatCodes = [32]uint16{
	0x5412, 0x5125, 0x5E7C, 0x5B4B, 0x45F9, 0x40CE, 0x4F97, 0x4AA0,
	0x77C4, 0x72F3, 0x7DAA, 0x789D, 0x662F, 0x6318, 0x6C41, 0x6976,
	0x1689, 0x13BE, 0x1CE7, 0x19D0, 0x0762, 0x0255, 0x0D0C, 0x083B,
	0x355F, 0x3068, 0x3F31, 0x3A06, 0x24B4, 0x2183, 0x2EDA, 0x2BED,
}

// versionCodes[x] is the 18-bit sequence encoding version (x + 7), per
// ISO/IEC 18004:2006 Annex D Table D.1. Only versions 7-40 carry version
// information in the symbol.
var versionCodes = [34]uint32{
	0x07C94, 0x085BC, 0x09A99, 0x0A4D3, 0x0BBF6, 0x0C762, 0x0D847, 0x0E60D,
	0x0F928, 0x10B78, 0x1145D, 0x12A17, 0x13532, 0x149A6, 0x15683, 0x168C9,
	0x177EC, 0x18EC4, 0x191E1, 0x1AFAB, 0x1B08E, 0x1CC1A, 0x1D33F, 0x1ED75,
	0x1F250, 0x209D5, 0x216F0, 0x228BA, 0x2379F, 0x24B0B, 0x2542E, 0x26A64,
	0x27541, 0x28C69,
}

func countDifferentBits32(a, b uint32, bits int) int {
	diff := 0
	for i := 0; i < bits; i++ {
		if (a & 1) != (b & 1) {
			diff++
		}
		a >>= 1
		b >>= 1
	}
	return diff
}

func black(bm *bitmatrix.BitMatrix, x, y int) uint32 {
	if bm.IsBlack(x, y) {
		return 1
	}
	return 0
}

func legalDimension(bm *bitmatrix.BitMatrix) bool {
	w, h := bm.Width(), bm.Height()
	return w == h && w >= 21 && w <= 177 && w%4 == 1
}

// Info is the decoded format information of a QR code.
type Info struct {
	ECLevel     ECLevel
	MaskPattern int
}

// DecodeFormat reads both copies of the format information from bm and
// recovers the original 5-bit value via nearest-code BCH lookup,
// tolerating up to 3 bit errors.
func DecodeFormat(bm *bitmatrix.BitMatrix) (Info, error) {
	if !legalDimension(bm) {
		return Info{}, fmt.Errorf("format: %dx%d is not a legal QR code dimension", bm.Width(), bm.Height())
	}

	format1 := black(bm, 0, 8)<<14 | black(bm, 1, 8)<<13 | black(bm, 2, 8)<<12 |
		black(bm, 3, 8)<<11 | black(bm, 4, 8)<<10 | black(bm, 5, 8)<<9 |
		black(bm, 7, 8)<<8 | black(bm, 8, 8)<<7 | black(bm, 8, 7)<<6 |
		black(bm, 8, 5)<<5 | black(bm, 8, 4)<<4 | black(bm, 8, 3)<<3 |
		black(bm, 8, 2)<<2 | black(bm, 8, 1)<<1 | black(bm, 8, 0)

	h := bm.Height()
	w := bm.Width()
	format2 := black(bm, 8, h-1)<<14 | black(bm, 8, h-2)<<13 | black(bm, 8, h-3)<<12 |
		black(bm, 8, h-4)<<11 | black(bm, 8, h-5)<<10 | black(bm, 8, h-6)<<9 |
		black(bm, 8, h-7)<<8 | black(bm, w-8, 8)<<7 | black(bm, w-7, 8)<<6 |
		black(bm, w-6, 8)<<5 | black(bm, w-5, 8)<<4 | black(bm, w-4, 8)<<3 |
		black(bm, w-3, 8)<<2 | black(bm, w-2, 8)<<1 | black(bm, w-1, 8)

	bestBitDifference := 32
	bestValue := -1
	for i, code := range formatCodes {
		c := uint32(code)
		if c == format1 || c == format2 {
			bestBitDifference = 0
			bestValue = i
			break
		}
		if d := countDifferentBits32(format1, c, 15); d < bestBitDifference {
			bestBitDifference, bestValue = d, i
		}
		if d := countDifferentBits32(format2, c, 15); d < bestBitDifference {
			bestBitDifference, bestValue = d, i
		}
	}

	if bestBitDifference > 3 {
		return Info{}, fmt.Errorf("format: could not decode format information")
	}

	var ec ECLevel
	switch (bestValue >> 3) & 3 {
	case 1:
		ec = Low
	case 0:
		ec = Medium
	case 3:
		ec = Quartile
	case 2:
		ec = High
	}

	return Info{ECLevel: ec, MaskPattern: bestValue & 7}, nil
}

// DecodeVersion returns the QR code's version (1-40). For dimensions
// below 45 (version < 7) the version follows directly from the
// dimension; for larger codes it recovers the redundantly-stored version
// information via nearest-code BCH lookup and cross-checks it against
// the dimension-implied version.
func DecodeVersion(bm *bitmatrix.BitMatrix) (int, error) {
	if !legalDimension(bm) {
		return 0, fmt.Errorf("format: %dx%d is not a legal QR code dimension", bm.Width(), bm.Height())
	}

	w, h := bm.Width(), bm.Height()
	dimensionVersion := (w - 17) / 4
	if w < 45 {
		return dimensionVersion, nil
	}

	version1 := black(bm, 5, h-9)<<17 | black(bm, 5, h-10)<<16 | black(bm, 5, h-11)<<15 |
		black(bm, 4, h-9)<<14 | black(bm, 4, h-10)<<13 | black(bm, 4, h-11)<<12 |
		black(bm, 3, h-9)<<11 | black(bm, 3, h-10)<<10 | black(bm, 3, h-11)<<9 |
		black(bm, 2, h-9)<<8 | black(bm, 2, h-10)<<7 | black(bm, 2, h-11)<<6 |
		black(bm, 1, h-9)<<5 | black(bm, 1, h-10)<<4 | black(bm, 1, h-11)<<3 |
		black(bm, 0, h-9)<<2 | black(bm, 0, h-10)<<1 | black(bm, 0, h-11)

	version2 := black(bm, w-9, 5)<<17 | black(bm, w-10, 5)<<16 | black(bm, w-11, 5)<<15 |
		black(bm, w-9, 4)<<14 | black(bm, w-10, 4)<<13 | black(bm, w-11, 4)<<12 |
		black(bm, w-9, 3)<<11 | black(bm, w-10, 3)<<10 | black(bm, w-11, 3)<<9 |
		black(bm, w-9, 2)<<8 | black(bm, w-10, 2)<<7 | black(bm, w-11, 2)<<6 |
		black(bm, w-9, 1)<<5 | black(bm, w-10, 1)<<4 | black(bm, w-11, 1)<<3 |
		black(bm, w-9, 0)<<2 | black(bm, w-10, 0)<<1 | black(bm, w-11, 0)

	bestBitDifference := 32
	bestValue := -1
	for i, code := range versionCodes {
		if code == version1 || code == version2 {
			bestBitDifference = 0
			bestValue = i + 7
			break
		}
		if d := countDifferentBits32(version1, code, 18); d < bestBitDifference {
			bestBitDifference, bestValue = d, i+7
		}
		if d := countDifferentBits32(version2, code, 18); d < bestBitDifference {
			bestBitDifference, bestValue = d, i+7
		}
	}

	if bestBitDifference > 3 {
		return 0, fmt.Errorf("format: could not decode version information")
	}
	if bestValue != dimensionVersion {
		return 0, fmt.Errorf("format: version information %d disagrees with dimension-implied version %d", bestValue, dimensionVersion)
	}

	return bestValue, nil
}
