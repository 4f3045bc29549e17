package syndrome

import (
	"github.com/jalphad/qrcode/exercises/3-gfpn"
)

// CalculateSyndromes computes the syndrome values for a received codeword
// This is the first step in Reed-Solomon decoding
//
// Parameters:
//   - field: The finite field GF(p^n) over which the code is defined
//   - received: The received codeword as a slice of bytes (each byte represents a field element index)
//   - numECSymbols: The number of error correction symbols (t in a t-error correcting code means 2t EC symbols)
//   - generatorRoot: The root used to generate the Reed-Solomon code (typically α, the primitive element)
//
// Returns:
//   - A slice of syndrome values [S_0, S_1, ..., S_{2t-1}]
//   - If all syndromes are zero, the codeword has no detectable errors
//
// Mathematical background:
//
//	For a received polynomial r(x) = c(x) + e(x) where c(x) is the codeword and e(x) is the error,
//	the syndrome S_i = r(α^i) for i = 0, 1, ..., 2t-1
//	If there are no errors, e(x) = 0, and all syndromes will be zero.
func CalculateSyndromes(
	field gfpn.Field,
	received []byte,
	numECSymbols int,
	generatorRoot gfpn.Element,
) []gfpn.Element {
	// received holds the codeword highest-degree-first, so build the element
	// sequence in that order and evaluate with Horner's method at each power
	// of the generator root.
	coeffs := make([]gfpn.Element, len(received))
	for i, b := range received {
		coeffs[i] = field.Element(int(b))
	}

	syndromes := make([]gfpn.Element, numECSymbols)
	for i := 0; i < numECSymbols; i++ {
		x := powElement(field, generatorRoot, i)
		result := field.Zero()
		for _, c := range coeffs {
			result = field.Add(field.Mul(result, x), c)
		}
		syndromes[i] = result
	}
	return syndromes
}

// HasErrors checks if any syndromes are non-zero
// Returns true if errors are detected, false otherwise
func HasErrors(syndromes []gfpn.Element) bool {
	for _, s := range syndromes {
		if !s.IsZero() {
			return true
		}
	}
	return false
}

// powElement raises a field element to a non-negative integer power by
// repeated multiplication; n is always small (at most 2t) for syndrome use.
func powElement(field gfpn.Field, base gfpn.Element, n int) gfpn.Element {
	result := field.One()
	for i := 0; i < n; i++ {
		result = field.Mul(result, base)
	}
	return result
}
