package group_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/qrcode/finder"
	"github.com/jalphad/qrcode/qrcode/group"
)

// v1Candidates mirrors the layout of a version-1 QR code's three finder
// patterns: B (top-left) at the origin, A (bottom-left) below B, C
// (top-right) to the right of B, centres 14 modules apart at 4px/module.
func v1Candidates() (a, b, c *finder.Candidate) {
	const moduleSize = 4.0
	const span = 14 * moduleSize // finder-centre distance for a 21-module code (21 - 7)
	b = &finder.Candidate{X: 100, Y: 100, ModuleSize: moduleSize}
	a = &finder.Candidate{X: 100, Y: 100 + span, ModuleSize: moduleSize}
	c = &finder.Candidate{X: 100 + span, Y: 100, ModuleSize: moduleSize}
	return a, b, c
}

func TestFindGroupsIdentifiesRightAngleTriple(t *testing.T) {
	a, b, c := v1Candidates()
	groups := group.Find([]*finder.Candidate{a, b, c})

	require.Len(t, groups, 1)
	g := groups[0]
	require.Equal(t, b, g.TopLeft)
	require.Equal(t, a, g.BottomLeft)
	require.Equal(t, c, g.TopRight)
}

func TestFindGroupsHandlesMirroredOrientation(t *testing.T) {
	// Swap A and C's roles spatially: now the triangle is mirrored, and
	// Find must still recover the correct A/B/C labelling via the cross
	// product check rather than just trusting input order.
	const moduleSize = 4.0
	const span = 20 * moduleSize
	b := &finder.Candidate{X: 100, Y: 100, ModuleSize: moduleSize}
	belowB := &finder.Candidate{X: 100, Y: 100 + span, ModuleSize: moduleSize}
	rightOfB := &finder.Candidate{X: 100 + span, Y: 100, ModuleSize: moduleSize}

	groups := group.Find([]*finder.Candidate{rightOfB, b, belowB})
	require.Len(t, groups, 1)
	require.Equal(t, b, groups[0].TopLeft)
	require.Equal(t, belowB, groups[0].BottomLeft)
	require.Equal(t, rightOfB, groups[0].TopRight)
}

func TestFindGroupsRejectsFewerThanThreeCandidates(t *testing.T) {
	require.Nil(t, group.Find(nil))
	require.Nil(t, group.Find([]*finder.Candidate{{X: 0, Y: 0, ModuleSize: 1}}))
}

func TestFindGroupsRejectsMismatchedModuleSizes(t *testing.T) {
	a := &finder.Candidate{X: 0, Y: 100, ModuleSize: 4}
	b := &finder.Candidate{X: 0, Y: 0, ModuleSize: 4}
	c := &finder.Candidate{X: 100, Y: 0, ModuleSize: 20} // wildly different size
	require.Empty(t, group.Find([]*finder.Candidate{a, b, c}))
}
