package gfpn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/exercises/3-gfpn"
)

// x^3 + x + 1, lowest degree first: 1 + x + x^3
func newGF8(t *testing.T) gfpn.Field {
	t.Helper()
	field, err := gfpn.NewField(2, 3, []int{1, 1, 0, 1})
	require.NoError(t, err)
	return field
}

func TestFieldOrderAndIdentities(t *testing.T) {
	field := newGF8(t)
	require.Equal(t, 8, field.Order())
	require.True(t, field.Zero().IsZero())
	require.False(t, field.One().IsZero())
}

func TestMultiplicativeInverses(t *testing.T) {
	field := newGF8(t)
	one := field.One()
	for _, e := range field.Elements() {
		if e.IsZero() {
			continue
		}
		inv := field.Div(one, e)
		require.True(t, field.Mul(e, inv).String() == one.String())
	}
}

func TestAddIsItsOwnInverseInCharacteristic2(t *testing.T) {
	field := newGF8(t)
	for _, a := range field.Elements() {
		sum := field.Add(a, a)
		require.True(t, sum.IsZero())
	}
}

func TestElementFromCoefficientsRoundTrip(t *testing.T) {
	field := newGF8(t)
	for value := 0; value < 8; value++ {
		bits := []int{value & 1, (value >> 1) & 1, (value >> 2) & 1}
		e := field.ElementFromCoefficients(bits)
		require.Equal(t, bits, e.CoefficientValues())
	}
}

func TestPrimitiveGeneratesEveryNonZeroElement(t *testing.T) {
	field := newGF8(t)
	alpha := field.Primitive()
	seen := map[string]bool{}
	current := field.One()
	for i := 0; i < field.Order()-1; i++ {
		seen[current.String()] = true
		current = field.Mul(current, alpha)
	}
	require.Len(t, seen, field.Order()-1)
	require.True(t, current.String() == field.One().String(), "should cycle back to 1")
}
