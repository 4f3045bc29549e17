package berlekamp

import (
	"github.com/jalphad/qrcode/exercises/3-gfpn"
	"github.com/jalphad/qrcode/exercises/4-gfpoly"
)

// BerlekampMassey computes the error locator polynomial from a syndrome sequence
//
// This is the core algorithm in Reed-Solomon decoding. Given a sequence of syndromes,
// it finds the minimal polynomial Lambda(x) that satisfies the key RS equation S(x)·Lambda(x) ≡ Omega(x) (mod x^(2t))
//
// Parameters:
//   - field: The finite field GF(p^n) over which the code is defined
//   - syndromes: The syndrome sequence [S_0, S_1, ..., S_{2t-1}]
//
// Returns:
//   - The error locator polynomial of minimal degree
//
// Algorithm: Berlekamp-Massey iterative algorithm
func BerlekampMassey(field gfpn.Field, syndromes []gfpn.Element) gfpoly.Polynomial {
	one := field.One()

	// C is the current connection (error locator) polynomial, B the locator
	// from the step before the last length change; both stored lowest-degree
	// first, matching the gfpoly convention.
	C := []gfpn.Element{one}
	B := []gfpn.Element{one}
	L := 0
	m := 1
	b := one

	for n := 0; n < len(syndromes); n++ {
		delta := syndromes[n]
		for i := 1; i <= L && i < len(C); i++ {
			delta = field.Add(delta, field.Mul(C[i], syndromes[n-i]))
		}

		if delta.IsZero() {
			m++
			continue
		}

		coef := field.Div(delta, b)
		next := subtractShifted(field, C, B, coef, m)

		if 2*L <= n {
			prevC := make([]gfpn.Element, len(C))
			copy(prevC, C)
			C = next
			L = n + 1 - L
			B = prevC
			b = delta
			m = 1
		} else {
			C = next
			m++
		}
	}

	return gfpoly.NewPolynomial(field, C)
}

// subtractShifted computes C - coef*x^m*B, coefficient-wise, lowest-degree first.
func subtractShifted(field gfpn.Field, C, B []gfpn.Element, coef gfpn.Element, m int) []gfpn.Element {
	n := len(C)
	if len(B)+m > n {
		n = len(B) + m
	}
	result := make([]gfpn.Element, n)
	for i := range result {
		if i < len(C) {
			result[i] = C[i]
		} else {
			result[i] = field.Zero()
		}
	}
	for i, coeff := range B {
		idx := i + m
		result[idx] = field.Sub(result[idx], field.Mul(coef, coeff))
	}
	return result
}
