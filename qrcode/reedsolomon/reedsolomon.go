// Package reedsolomon decodes one QR block's Reed-Solomon-protected
// codewords over GF(2^8), correcting up to the block's
// misdecode-protection-adjusted capacity.
//
// QR codeword bytes are the polynomial-basis bit-vector representation
// of a GF(2^8) element (bit i is the coefficient of x^i), not the
// discrete-log enumeration exercises/3-gfpn.Field.Element(value) returns
// for a plain int. This package therefore converts every codeword via
// gfpn.Field.ElementFromCoefficients/Element.CoefficientValues rather
// than reusing exercises/5-syndrome's byte-to-element conversion, and
// computes its own syndromes (exercises/5-syndrome assumes the same
// wrong byte convention) while still calling straight into
// exercises/6-berlekamp, exercises/7-chien, exercises/8-forney, and
// qrcode/correction for the shared polynomial algebra.
package reedsolomon

import (
	"fmt"
	"sync"

	"github.com/jalphad/qrcode/exercises/3-gfpn"
	"github.com/jalphad/qrcode/exercises/6-berlekamp"
	"github.com/jalphad/qrcode/exercises/7-chien"
	"github.com/jalphad/qrcode/exercises/8-forney"
	"github.com/jalphad/qrcode/qrcode/blocks"
	"github.com/jalphad/qrcode/qrcode/correction"
)

// qrPrimitivePoly is x^8+x^4+x^3+x^2+1, the QR Galois field's generating
// polynomial, lowest-degree-first.
var qrPrimitivePoly = []int{1, 0, 1, 1, 1, 0, 0, 0, 1}

var (
	fieldOnce sync.Once
	qrField   gfpn.Field
)

// field returns the process-wide GF(2^8) field used by every QR block,
// built lazily on first use. Construction is idempotent; callers may
// also force it eagerly at start-of-day by calling field once.
func field() gfpn.Field {
	fieldOnce.Do(func() {
		f, err := gfpn.NewField(2, 8, qrPrimitivePoly)
		if err != nil {
			panic(fmt.Sprintf("reedsolomon: building GF(2^8): %v", err))
		}
		qrField = f
	})
	return qrField
}

func byteToElement(f gfpn.Field, b byte) gfpn.Element {
	coeffs := make([]int, 8)
	for i := 0; i < 8; i++ {
		coeffs[i] = int((b >> uint(i)) & 1)
	}
	return f.ElementFromCoefficients(coeffs)
}

func elementToByte(e gfpn.Element) byte {
	var b byte
	for i, v := range e.CoefficientValues() {
		if v != 0 {
			b |= 1 << uint(i)
		}
	}
	return b
}

func powElement(f gfpn.Field, base gfpn.Element, n int) gfpn.Element {
	result := f.One()
	for i := 0; i < n; i++ {
		result = f.Mul(result, base)
	}
	return result
}

// computeSyndromes evaluates the received-codeword polynomial (elements
// ordered highest-degree-first, matching a QR block's codeword layout)
// at alpha^0..alpha^(numSyndromes-1) via Horner's method.
func computeSyndromes(f gfpn.Field, elements []gfpn.Element, numSyndromes int) []gfpn.Element {
	alpha := f.Primitive()
	syndromes := make([]gfpn.Element, numSyndromes)
	for i := 0; i < numSyndromes; i++ {
		x := powElement(f, alpha, i)
		result := f.Zero()
		for _, c := range elements {
			result = f.Add(f.Mul(result, x), c)
		}
		syndromes[i] = result
	}
	return syndromes
}

func hasErrors(syndromes []gfpn.Element) bool {
	for _, s := range syndromes {
		if !s.IsZero() {
			return true
		}
	}
	return false
}

// Decode corrects block's codewords in place using its own
// error-correction codewords, returning the number of corrected
// codewords. It reports a decoding error, leaving block unmodified, if
// the syndromes indicate more errors than the block's
// misdecode-protection-adjusted capacity can safely fix, or if the
// error-locator polynomial's roots don't check out.
func Decode(block *blocks.Block) (int, error) {
	f := field()
	n := block.NData + block.NError

	elements := make([]gfpn.Element, n)
	for i, b := range block.Codewords {
		elements[i] = byteToElement(f, b)
	}

	syndromes := computeSyndromes(f, elements, block.NError)
	if !hasErrors(syndromes) {
		return 0, nil
	}

	sigma := berlekamp.BerlekampMassey(f, syndromes)
	numErrors := sigma.Degree()
	if numErrors <= 0 {
		return 0, fmt.Errorf("reedsolomon: non-zero syndromes but no error locator found")
	}
	if numErrors > block.T {
		return 0, fmt.Errorf("reedsolomon: %d errors exceeds correction capacity %d", numErrors, block.T)
	}

	positions := chien.ChienSearch(f, sigma, f.Order()-1)
	if len(positions) != numErrors {
		return 0, fmt.Errorf("reedsolomon: chien search found %d roots, expected %d", len(positions), numErrors)
	}

	omega := forney.ComputeOmega(f, syndromes, sigma)
	magnitudes := forney.ComputeErrorMagnitudes(f, sigma, omega, positions)

	arrayPositions := make([]int, len(positions))
	for i, j := range positions {
		pos := n - 1 - j
		if pos < 0 || pos >= n {
			return 0, fmt.Errorf("reedsolomon: error position %d out of range for %d codewords", pos, n)
		}
		arrayPositions[i] = pos
	}

	corrected := correction.ApplyCorrections(f, elements, arrayPositions, magnitudes)

	// VerifyCorrection reads its slice lowest-degree first; corrected is
	// highest-degree first, like block.Codewords.
	lowestFirst := make([]gfpn.Element, n)
	for i, e := range corrected {
		lowestFirst[n-1-i] = e
	}
	if _, valid := correction.VerifyCorrection(f, lowestFirst, block.NError); !valid {
		return 0, fmt.Errorf("reedsolomon: correction failed to clear syndromes")
	}

	for i, e := range corrected {
		block.Codewords[i] = elementToByte(e)
	}

	return numErrors, nil
}
