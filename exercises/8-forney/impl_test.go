package forney_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/exercises/3-gfpn"
	"github.com/jalphad/qrcode/exercises/4-gfpoly"
	"github.com/jalphad/qrcode/exercises/8-forney"
)

func newGF8(t *testing.T) gfpn.Field {
	t.Helper()
	field, err := gfpn.NewField(2, 3, []int{1, 1, 0, 1})
	require.NoError(t, err)
	return field
}

func powElement(field gfpn.Field, base gfpn.Element, n int) gfpn.Element {
	result := field.One()
	for i := 0; i < n; i++ {
		result = field.Mul(result, base)
	}
	return result
}

func TestComputeErrorMagnitudesRecoversSingleError(t *testing.T) {
	field := newGF8(t)
	alpha := field.Primitive()

	y := powElement(field, alpha, 5) // the injected error magnitude
	x := powElement(field, alpha, 2) // the error locator, position j=2

	syndromes := make([]gfpn.Element, 4)
	power := field.One()
	for i := range syndromes {
		syndromes[i] = field.Mul(y, power)
		power = field.Mul(power, x)
	}

	lambda := gfpoly.NewPolynomial(field, []gfpn.Element{field.One(), field.Sub(field.Zero(), x)})
	omega := forney.ComputeOmega(field, syndromes, lambda)

	magnitudes := forney.ComputeErrorMagnitudes(field, lambda, omega, []int{2})
	require.Len(t, magnitudes, 1)
	require.True(t, magnitudes[0].String() == y.String())
}

func TestFormalDerivativeDelegatesToGfpoly(t *testing.T) {
	field := newGF8(t)
	p := gfpoly.NewPolynomial(field, []gfpn.Element{field.Primitive(), field.One()})
	require.Equal(t, gfpoly.FormalDerivative(p).Coefficients(), forney.FormalDerivative(p).Coefficients())
}
