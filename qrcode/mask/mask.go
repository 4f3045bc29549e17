// Package mask builds the function-module mask for a QR code: a matrix
// marking every module that is NOT data/error-correction payload (finder
// patterns, separators, timing patterns, format/version information, and
// alignment patterns), plus the eight data-masking predicates applied to
// the remaining modules.
package mask

import (
	"fmt"

	"github.com/jalphad/qrcode/qrcode/bitmatrix"
)

// alignmentPatterns[v] lists the alignment-pattern coordinate axis values
// for version v+1, terminated implicitly by the slice length (no trailing
// zero sentinel, unlike the C table this is grounded on).
var alignmentPatterns = [40][]int{
	{},
	{6, 18},
	{6, 22},
	{6, 26},
	{6, 30},
	{6, 34},
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
	{6, 30, 54},
	{6, 32, 58},
	{6, 34, 62},
	{6, 26, 46, 66},
	{6, 26, 48, 70},
	{6, 26, 50, 74},
	{6, 30, 54, 78},
	{6, 30, 56, 82},
	{6, 30, 58, 86},
	{6, 34, 62, 90},
	{6, 28, 50, 72, 94},
	{6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110},
	{6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126},
	{6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150},
	{6, 24, 50, 76, 106, 128, 154},
	{6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166},
	{6, 30, 58, 86, 114, 142, 170},
}

// FunctionModules returns a size x size matrix with every function
// module (everything that is not data/EC payload) set black, and every
// data module left white. size must be a valid QR code dimension: in
// [21,177] and congruent to 1 mod 4.
func FunctionModules(size int) (*bitmatrix.BitMatrix, error) {
	if size < 21 || size > 177 || size%4 != 1 {
		return nil, fmt.Errorf("mask: %d is not a legal QR code size", size)
	}

	bm := bitmatrix.New(size, size)

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			bm.SetBlack(x, y)
		}
	}
	for y := size - 8; y < size; y++ {
		for x := 0; x < 9; x++ {
			bm.SetBlack(x, y)
		}
	}
	for y := 0; y < 9; y++ {
		for x := size - 8; x < size; x++ {
			bm.SetBlack(x, y)
		}
	}

	for x := 8; x < size-8; x++ {
		bm.SetBlack(x, 6)
	}
	for y := 8; y < size-8; y++ {
		bm.SetBlack(6, y)
	}

	if size >= 45 {
		for y := size - 11; y < size-8; y++ {
			for x := 0; x < 6; x++ {
				bm.SetBlack(x, y)
			}
		}
		for y := 0; y < 6; y++ {
			for x := size - 11; x < size-8; x++ {
				bm.SetBlack(x, y)
			}
		}
	}

	version := (size - 17) / 4
	positions := alignmentPatterns[version-1]
	for _, x := range positions {
		for _, y := range positions {
			if x == 6 && y == 6 {
				continue
			}
			if x == 6 && y == size-7 {
				continue
			}
			if x == size-7 && y == 6 {
				continue
			}
			for ay := y - 1; ay <= y+1; ay++ {
				for ax := x - 1; ax <= x+1; ax++ {
					bm.SetBlack(ax, ay)
				}
			}
		}
	}

	return bm, nil
}

// Pattern is one of the eight data-masking predicates defined for QR
// codes, selected by the three-bit mask pattern field of the format
// information.
type Pattern int

// Applies reports whether data masking Pattern p flips the module at
// (x, y). Taken directly from ISO/IEC 18004's eight mask condition
// formulas.
func (p Pattern) Applies(x, y int) bool {
	switch p {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return (x*y)%2+(x*y)%3 == 0
	case 6:
		return ((x*y)%2+(x*y)%3)%2 == 0
	case 7:
		return ((x+y)%2+(x*y)%3)%2 == 0
	default:
		panic(fmt.Sprintf("mask: invalid data mask pattern %d", int(p)))
	}
}
