package forney

import (
	"github.com/jalphad/qrcode/exercises/3-gfpn"
	"github.com/jalphad/qrcode/exercises/4-gfpoly"
)

// ComputeOmega computes the error evaluator polynomial O(x) from syndromes and L(x)
//
// The error evaluator polynomial is derived from the key equation:
//
//	S(x) · L(x) ≡ O(x) (mod x^(2s))
//
// where S(x) is the syndrome polynomial and L(x) is the error locator polynomial.
//
// Since O(x) has degree < ν (where ν is the number of errors), we compute it as:
//
//	O(x) = [S(x) · L(x)]_{deg < ν}
//
// (the part of S(x) · L(x) with degree less than ν)
//
// Parameters:
//   - field: The finite field GF(p^n)
//   - syndromes: The syndrome sequence [S_0, S_1, ..., S_{2s-1}]
//   - lambda: The error locator polynomial L(x)
//
// Returns:
//   - The error evaluator polynomial O(x) of degree < deg(L)
func ComputeOmega(field gfpn.Field, syndromes []gfpn.Element, lambda gfpoly.Polynomial) gfpoly.Polynomial {
	s := gfpoly.NewPolynomial(field, syndromes)
	product := gfpoly.Multiply(s, lambda)

	nu := lambda.Degree()
	if nu < 0 {
		nu = 0
	}
	coeffs := product.Coefficients()
	if len(coeffs) > nu {
		coeffs = coeffs[:nu]
	}
	return gfpoly.NewPolynomial(field, coeffs)
}

// FormalDerivative computes the formal derivative of a polynomial over a finite field
//
// Example:
//   - In GF(2^n): (1 + x + x^2)' = 0 + 1 + 0 = 1
//   - In GF(3^n): (1 + x + x^2)' = 0 + 1 + 2x
//
// Parameters:
//   - poly: The polynomial to differentiate
//
// Returns:
//   - The formal derivative polynomial
func FormalDerivative(poly gfpoly.Polynomial) gfpoly.Polynomial {
	return gfpoly.FormalDerivative(poly)
}

// ComputeErrorMagnitudes computes error values at known positions using Forney's algorithm
//
// Forney's formula computes the error magnitude Yᵢ at position jᵢ:
//
//	Yᵢ = -Xᵢ · O(X_i^{-1}) / L'(X_i^{-1})
//
// where:
//   - X_i = α^j_i is the error locator
//   - O(x) is the error evaluator polynomial
//   - L'(x) is the formal derivative of the error locator polynomial
//
// In characteristic 2 fields, -a = a, so the formula becomes:
//
//	Yᵢ = Xᵢ · O(X_i^{-1}) / L'(X_i^{-1})
//
// Parameters:
//   - field: The finite field GF(p^n)
//   - lambda: The error locator polynomial L(x)
//   - omega: The error evaluator polynomial O(x)
//   - errorPositions: Error positions [j_1, j_2, ..., j_ν] from Chien search
//
// Returns:
//   - Error magnitudes [Y_1, Y_2, ..., Y_ν] at each error position
//   - Returns values in the same order as errorPositions
//
// Example:
//
//	// GF(8) with error at position 0, magnitude α³
//	field, _ := gfpn.NewField(2, 3, []int{1, 1, 0, 1})
//	lambda := gfpoly.NewPolynomial(field, []gfpn.Element{field.One(), field.One()}) // 1 + x
//	omega := gfpoly.NewPolynomial(field, []gfpn.Element{field.Element(4)})          // α^3
//	positions := []int{0}
//	magnitudes := ComputeErrorMagnitudes(field, lambda, omega, positions)
//	// magnitudes = [α^3]
func ComputeErrorMagnitudes(
	field gfpn.Field,
	lambda gfpoly.Polynomial,
	omega gfpoly.Polynomial,
	errorPositions []int,
) []gfpn.Element {
	lambdaPrime := FormalDerivative(lambda)
	alpha := field.Primitive()

	magnitudes := make([]gfpn.Element, len(errorPositions))
	for idx, j := range errorPositions {
		xj := powElement(field, alpha, j)
		xjInv := field.Div(field.One(), xj)
		numerator := field.Mul(xj, omega.Evaluate(xjInv))
		denominator := lambdaPrime.Evaluate(xjInv)
		magnitudes[idx] = field.Sub(field.Zero(), field.Div(numerator, denominator))
	}
	return magnitudes
}

// powElement raises base to a non-negative integer power by repeated
// multiplication; exponents here are bounded by the codeword length.
func powElement(field gfpn.Field, base gfpn.Element, n int) gfpn.Element {
	result := field.One()
	for i := 0; i < n; i++ {
		result = field.Mul(result, base)
	}
	return result
}
