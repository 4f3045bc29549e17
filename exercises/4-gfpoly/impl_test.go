package gfpoly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/exercises/3-gfpn"
	"github.com/jalphad/qrcode/exercises/4-gfpoly"
)

func newGF8(t *testing.T) gfpn.Field {
	t.Helper()
	field, err := gfpn.NewField(2, 3, []int{1, 1, 0, 1})
	require.NoError(t, err)
	return field
}

func TestAddCancelsInCharacteristic2(t *testing.T) {
	field := newGF8(t)
	p := gfpoly.NewPolynomial(field, []gfpn.Element{field.One(), field.Primitive()})
	sum := gfpoly.Add(p, p)
	require.True(t, sum.IsZero())
}

func TestSubtractMatchesAddInCharacteristic2(t *testing.T) {
	field := newGF8(t)
	p1 := gfpoly.NewPolynomial(field, []gfpn.Element{field.One(), field.Zero()})
	p2 := gfpoly.NewPolynomial(field, []gfpn.Element{field.Zero(), field.One()})

	require.Equal(t, gfpoly.Add(p1, p2).Coefficients(), gfpoly.Subtract(p1, p2).Coefficients())
}

func TestMultiplyDegreeAdds(t *testing.T) {
	field := newGF8(t)
	p1 := gfpoly.NewPolynomial(field, []gfpn.Element{field.One(), field.One()})
	p2 := gfpoly.NewPolynomial(field, []gfpn.Element{field.One(), field.Zero(), field.One()})

	product := gfpoly.Multiply(p1, p2)
	require.Equal(t, p1.Degree()+p2.Degree(), product.Degree())
}

func TestFormalDerivativeOfLinearIsConstant(t *testing.T) {
	field := newGF8(t)
	p := gfpoly.NewPolynomial(field, []gfpn.Element{field.Primitive(), field.One()}) // a + x
	derivative := gfpoly.FormalDerivative(p)

	require.Equal(t, 0, derivative.Degree())
	require.True(t, derivative.Coefficients()[0].String() == field.One().String())
}

func TestEvaluateAtZeroReturnsConstantTerm(t *testing.T) {
	field := newGF8(t)
	constant := field.Primitive()
	p := gfpoly.NewPolynomial(field, []gfpn.Element{constant, field.One()})
	require.True(t, p.Evaluate(field.Zero()).String() == constant.String())
}
