package chien

import (
	"github.com/jalphad/qrcode/exercises/3-gfpn"
	"github.com/jalphad/qrcode/exercises/4-gfpoly"
)

// ChienSearch finds the roots of the error locator polynomial L(x)
//
// The Chien search algorithm systematically evaluates L(x) at all possible
// error positions to find where L(α^{-j}) = 0. These positions indicate
// where errors occurred in the received codeword.
//
// Mathematical background:
//
//	If an error occurred at position j, then X_j = α^j is an error locator.
//	The error locator polynomial L(x) has roots at X_j^{-1} = α^{-j}.
//	Chien search finds all j where L(α^{-j}) = 0.
//
// Algorithm (evaluation point stepped by α^{-1}):
//
//	Initialize: x ← 1 (= α^{-0})
//	For j = 0 to codewordLength-1:
//	    If L(x) = 0, then j is an error position
//	    Update: x ← x · α^{-1}
//
// Parameters:
//   - field: The finite field GF(p^n) over which the code is defined
//   - lambda: The error locator polynomial L(x)
//   - codewordLength: Length of the codeword (typically n = q-1)
//
// Returns:
//   - A slice of error positions [j_1, j_2, ..., j_ν]
func ChienSearch(field gfpn.Field, lambda gfpoly.Polynomial, codewordLength int) []int {
	alpha := field.Primitive()
	alphaInv := field.Div(field.One(), alpha)

	var positions []int
	x := field.One() // alpha^(-0)
	for j := 0; j < codewordLength; j++ {
		if lambda.Evaluate(x).IsZero() {
			positions = append(positions, j)
		}
		x = field.Mul(x, alphaInv)
	}
	return positions
}
