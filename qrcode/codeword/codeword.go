// Package codeword extracts 8-bit codewords from a sampled QR module
// grid by snake-scanning the data modules (skipping function modules)
// and unmasking each bit with the symbol's data mask pattern.
package codeword

import (
	"fmt"

	"github.com/jalphad/qrcode/qrcode/bitmatrix"
	"github.com/jalphad/qrcode/qrcode/mask"
)

func moveToNextDataModule(x, y *int, codewordMask *bitmatrix.BitMatrix, upwards, right *bool) {
	for {
		switch {
		case *right:
			*x--
			*right = false
		case *upwards:
			*right = true
			if *y > 0 {
				*x++
				*y--
			} else {
				*upwards = false
				*x--
				if *x == 6 {
					*x--
				}
			}
		default:
			*right = true
			if *y < codewordMask.Height()-1 {
				*x++
				*y++
			} else {
				*upwards = true
				*x--
				if *x == 6 {
					*x--
				}
			}
		}
		if !codewordMask.IsBlack(*x, *y) {
			return
		}
	}
}

func dataBit(modules *bitmatrix.BitMatrix, x, y int, pattern mask.Pattern) int {
	rawBit := 0
	if modules.IsBlack(x, y) {
		rawBit = 1
	}
	maskBit := 0
	if pattern.Applies(x, y) {
		maskBit = 1
	}
	return rawBit ^ maskBit
}

// Extract snake-scans modules (a sampled QR module grid) starting at its
// bottom-right corner, skipping every module marked in codewordMask,
// unmasking each remaining bit with pattern, and packing 8 bits per
// codeword MSB-first. modules and codewordMask must share the same
// dimension, a legal QR code size.
func Extract(modules, codewordMask *bitmatrix.BitMatrix, pattern mask.Pattern) ([]byte, error) {
	size := modules.Width()
	if modules.Height() != size || codewordMask.Width() != size || codewordMask.Height() != size || size%4 != 1 {
		return nil, fmt.Errorf("codeword: module and mask matrices must be equally sized, valid QR code dimensions")
	}

	dataModules := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !codewordMask.IsBlack(x, y) {
				dataModules++
			}
		}
	}
	n := dataModules / 8
	codewords := make([]byte, n)

	x, y := size-1, size-1
	upwards, right := true, true

	for i := 0; i < n; i++ {
		var codeword byte
		for bitPos := 7; bitPos >= 0; bitPos-- {
			bit := dataBit(modules, x, y, pattern)
			codeword |= byte(bit) << uint(bitPos)
			if i < n-1 || bitPos > 0 {
				moveToNextDataModule(&x, &y, codewordMask, &upwards, &right)
			}
		}
		codewords[i] = codeword
	}

	return codewords, nil
}
