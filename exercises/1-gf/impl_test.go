package gf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/exercises/1-gf"
)

func TestFieldArithmetic(t *testing.T) {
	field := gf.NewField(7)

	a := field.Element(3)
	b := field.Element(5)

	require.EqualValues(t, 1, field.Add(a, b).Value()) // 3+5=8 mod 7 = 1
	require.EqualValues(t, 5, field.Sub(a, b).Value()) // 3-5=-2 mod 7 = 5
	require.EqualValues(t, 1, field.Mul(a, b).Value()) // 15 mod 7 = 1
}

func TestFieldDivisionIsMultiplicationInverse(t *testing.T) {
	field := gf.NewField(11)

	for v := 1; v < 11; v++ {
		a := field.Element(v)
		one := field.Element(1)
		inv := field.Div(one, a)
		require.EqualValues(t, 1, field.Mul(a, inv).Value(), "element %d should have a multiplicative inverse", v)
	}
}

func TestFieldDivisionByZeroPanics(t *testing.T) {
	field := gf.NewField(5)
	require.Panics(t, func() {
		field.Div(field.Element(1), field.Element(0))
	})
}

func TestElementNegativeValuesWrap(t *testing.T) {
	field := gf.NewField(5)
	require.EqualValues(t, 3, field.Element(-2).Value())
}
