package finder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/qrcode/bitmatrix"
	"github.com/jalphad/qrcode/qrcode/finder"
)

// finderModuleBlack reports whether module column mx in a 7x7 finder
// pattern is black on module row my.
func finderModuleBlack(mx, my int) bool {
	if mx == 0 || mx == 6 || my == 0 || my == 6 {
		return true
	}
	if mx == 1 || mx == 5 || my == 1 || my == 5 {
		return false
	}
	return true
}

// drawFinderPattern paints a 7x7-module finder pattern scaled by
// pixelsPerModule with its top-left module at (originX, originY).
func drawFinderPattern(bm *bitmatrix.BitMatrix, originX, originY, pixelsPerModule int) {
	for my := 0; my < 7; my++ {
		for mx := 0; mx < 7; mx++ {
			if !finderModuleBlack(mx, my) {
				continue
			}
			for py := 0; py < pixelsPerModule; py++ {
				for px := 0; px < pixelsPerModule; px++ {
					bm.SetBlack(originX+mx*pixelsPerModule+px, originY+my*pixelsPerModule+py)
				}
			}
		}
	}
}

func TestFindLocatesSingleFinderPattern(t *testing.T) {
	const pixelsPerModule = 4
	const margin = 20
	size := margin*2 + 7*pixelsPerModule
	bm := bitmatrix.New(size, size)
	drawFinderPattern(bm, margin, margin, pixelsPerModule)

	candidates := finder.Find(bm, finder.Finder)
	require.NotEmpty(t, candidates)

	expectedX := float64(margin) + 3.5*pixelsPerModule
	expectedY := expectedX
	found := false
	for _, c := range candidates {
		if abs64(c.X-expectedX) < 2 && abs64(c.Y-expectedY) < 2 {
			found = true
			require.InDelta(t, pixelsPerModule, c.ModuleSize, 1.0)
		}
	}
	require.True(t, found, "expected a candidate near (%v,%v), got %+v", expectedX, expectedY, candidates)
}

func TestFindOnBlankImageFindsNothing(t *testing.T) {
	bm := bitmatrix.New(32, 32)
	require.Empty(t, finder.Find(bm, finder.Finder))
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
