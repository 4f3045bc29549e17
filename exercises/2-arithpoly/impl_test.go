package arithpoly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/exercises/1-gf"
	"github.com/jalphad/qrcode/exercises/2-arithpoly"
)

func TestPolyMul(t *testing.T) {
	field := gf.NewField(5)
	// (1 + x) * (1 + x) = 1 + 2x + x^2
	p := arithpoly.Polynomial{field.Element(1), field.Element(1)}
	result := arithpoly.PolyMul(field, p, p)

	require.Len(t, result, 3)
	require.EqualValues(t, 1, result[0].Value())
	require.EqualValues(t, 2, result[1].Value())
	require.EqualValues(t, 1, result[2].Value())
}

func TestPolyDivExact(t *testing.T) {
	field := gf.NewField(5)
	// dividend = (x+1)(x+1) = 1+2x+x^2, divisor = x+1
	divisor := arithpoly.Polynomial{field.Element(1), field.Element(1)}
	dividend := arithpoly.PolyMul(field, divisor, divisor)

	quotient, remainder := arithpoly.PolyDiv(field, dividend, divisor)

	require.Len(t, quotient, 2)
	require.EqualValues(t, 1, quotient[0].Value())
	require.EqualValues(t, 1, quotient[1].Value())
	require.Empty(t, remainder)
}

func TestPolyDivWithRemainder(t *testing.T) {
	field := gf.NewField(5)
	divisor := arithpoly.Polynomial{field.Element(1), field.Element(1)}
	exact := arithpoly.PolyMul(field, divisor, divisor)
	dividend := make(arithpoly.Polynomial, len(exact))
	copy(dividend, exact)
	dividend[0] = field.Add(dividend[0], field.Element(1)) // bump the constant term

	_, remainder := arithpoly.PolyDiv(field, dividend, divisor)
	require.Len(t, remainder, 1)
	require.EqualValues(t, 1, remainder[0].Value())
}
