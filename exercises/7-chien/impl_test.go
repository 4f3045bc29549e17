package chien_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/exercises/3-gfpn"
	"github.com/jalphad/qrcode/exercises/4-gfpoly"
	"github.com/jalphad/qrcode/exercises/7-chien"
)

func newGF8(t *testing.T) gfpn.Field {
	t.Helper()
	field, err := gfpn.NewField(2, 3, []int{1, 1, 0, 1})
	require.NoError(t, err)
	return field
}

func TestChienSearchFindsKnownRoot(t *testing.T) {
	field := newGF8(t)
	alpha := field.Primitive()

	// Error at position 3, locator X = alpha^3, so L(x) = 1 - X*x has
	// its root at x = alpha^-3, which Chien search visits at j = 3.
	x := powElement(field, alpha, 3)
	lambda := gfpoly.NewPolynomial(field, []gfpn.Element{field.One(), field.Sub(field.Zero(), x)})

	positions := chien.ChienSearch(field, lambda, field.Order()-1)
	require.Contains(t, positions, 3)
	require.Len(t, positions, 1)
}

func TestChienSearchOnConstantPolynomialFindsNoRoots(t *testing.T) {
	field := newGF8(t)
	lambda := gfpoly.NewPolynomial(field, []gfpn.Element{field.One()})

	positions := chien.ChienSearch(field, lambda, field.Order()-1)
	require.Empty(t, positions)
}

func powElement(field gfpn.Field, base gfpn.Element, n int) gfpn.Element {
	result := field.One()
	for i := 0; i < n; i++ {
		result = field.Mul(result, base)
	}
	return result
}
