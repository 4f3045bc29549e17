package arithpoly

import (
	"github.com/jalphad/qrcode/exercises/1-gf"
)

// Polynomial represents a polynomial with coefficients in GF(p)
// Coefficients are stored from lowest to highest degree
// e.g., [c0, c1, c2] represents c0 + c1*x + c2*x^2
type Polynomial []gf.Element

// PolyMul multiplies two polynomials over GF(p)
func PolyMul(field gf.Field, p1, p2 Polynomial) Polynomial {
	d1, d2 := degree(p1), degree(p2)
	if d1 < 0 || d2 < 0 {
		return Polynomial{}
	}
	result := make(Polynomial, d1+d2+1)
	for i := range result {
		result[i] = field.Element(0)
	}
	for i := 0; i <= d1; i++ {
		for j := 0; j <= d2; j++ {
			result[i+j] = field.Add(result[i+j], field.Mul(p1[i], p2[j]))
		}
	}
	return trimPoly(result)
}

// PolyDiv performs polynomial long division
// Returns quotient and remainder such that dividend = divisor * quotient + remainder
// Panics if divisor is zero polynomial
// field parameter is the GF(p) field that the coefficients belong to
func PolyDiv(field gf.Field, dividend, divisor Polynomial) (quotient, remainder Polynomial) {
	if isZeroPoly(divisor) {
		panic("division by zero polynomial")
	}

	divisorDeg := degree(divisor)
	leading := divisor[divisorDeg]

	rem := make(Polynomial, len(dividend))
	copy(rem, dividend)

	dividendDeg := degree(dividend)
	if dividendDeg < divisorDeg {
		return Polynomial{}, trimPoly(rem)
	}

	quot := make(Polynomial, dividendDeg-divisorDeg+1)
	for i := range quot {
		quot[i] = field.Element(0)
	}

	remDeg := dividendDeg
	for remDeg >= divisorDeg {
		coeff := field.Div(rem[remDeg], leading)
		shift := remDeg - divisorDeg
		quot[shift] = coeff
		for i := 0; i <= divisorDeg; i++ {
			rem[shift+i] = field.Sub(rem[shift+i], field.Mul(coeff, divisor[i]))
		}
		remDeg = degree(rem[:remDeg+1])
	}

	return trimPoly(quot), trimPoly(rem)
}

// degree returns the degree of the polynomial (-1 for zero polynomial)
func degree(p Polynomial) int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Value() != 0 {
			return i
		}
	}
	return -1
}

// trimPoly removes leading zero coefficients
func trimPoly(p Polynomial) Polynomial {
	deg := degree(p)
	if deg < 0 {
		return Polynomial{}
	}
	return p[:deg+1]
}

// isZeroPoly checks if polynomial is zero
func isZeroPoly(p Polynomial) bool {
	for _, coeff := range p {
		if coeff.Value() != 0 {
			return false
		}
	}
	return true
}
