// Package locate turns a finder-pattern group plus the source bitmap
// into a sampled QR module grid: dimension estimation, bottom-right
// alignment-centre prediction/refinement, and double bilinear
// interpolation sampling.
package locate

import (
	"math"

	"github.com/jalphad/qrcode/qrcode/bitmatrix"
	"github.com/jalphad/qrcode/qrcode/finder"
	"github.com/jalphad/qrcode/qrcode/group"
)

// QRCode is a square BitMatrix of modules plus the four corner pixel
// coordinates of the sampled grid in the source image.
type QRCode struct {
	Modules *bitmatrix.BitMatrix

	TopLeftX, TopLeftY         int
	TopRightX, TopRightY       int
	BottomLeftX, BottomLeftY   int
	BottomRightX, BottomRightY int
}

func distance(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return math.Sqrt(dx*dx + dy*dy)
}

// dimension estimates the module count from the corner-to-corner pixel
// distances and snaps it to the nearest valid 4k+1 value, accepting only
// an off-by-one adjustment. Returns -1 when no valid dimension is close.
func dimension(bottomLeft, topLeft, topRight *finder.Candidate, moduleSize float64) int {
	d1 := distance(bottomLeft.X, bottomLeft.Y, topLeft.X, topLeft.Y)
	d2 := distance(topLeft.X, topLeft.Y, topRight.X, topRight.Y)
	dim := 7 + int((d1+d2)/(2.0*moduleSize))

	switch dim % 4 {
	case 0:
		return dim + 1
	case 1:
		return dim
	case 2:
		return dim - 1
	default:
		return -1
	}
}

func searchArea(image *bitmatrix.BitMatrix, minX, minY, maxX, maxY int) *bitmatrix.BitMatrix {
	m := bitmatrix.New(maxX+1-minX, maxY+1-minY)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if image.IsBlack(x, y) {
				m.SetBlack(x-minX, y-minY)
			}
		}
	}
	return m
}

// findBottomRightCorner predicts the virtual bottom-right finder-pattern
// centre as bottomLeft + (topRight - topLeft), then, for dimension > 21,
// refines it by locating the alignment pattern nearest the predicted
// position. Returns false if the naive prediction falls outside the
// image, which disqualifies the candidate group.
func findBottomRightCorner(bottomLeft, topLeft, topRight *finder.Candidate, image *bitmatrix.BitMatrix, moduleSize float64, dim int) (x, y float64, ok bool) {
	x = bottomLeft.X + (topRight.X - topLeft.X)
	y = topRight.Y + (bottomLeft.Y - topLeft.Y)
	if x < 0 || y < 0 || x >= float64(image.Width()) || y >= float64(image.Height()) {
		return 0, 0, false
	}

	if dim == 21 {
		return x, y, true
	}

	modulesBetween := float64(dim) - 7.0
	ratio := (modulesBetween - 3.0) / modulesBetween
	alignmentX := topLeft.X + ratio*(x-topLeft.X)
	alignmentY := topLeft.Y + ratio*(y-topLeft.Y)

	minX := int(math.Max(0, alignmentX-3*moduleSize))
	maxX := int(math.Min(float64(image.Width()-1), alignmentX+3*moduleSize))
	minY := int(math.Max(0, alignmentY-3*moduleSize))
	maxY := int(math.Min(float64(image.Height()-1), alignmentY+3*moduleSize))

	area := searchArea(image, minX, minY, maxX, maxY)
	candidates := finder.Find(area, finder.Alignment)
	if len(candidates) > 0 {
		predX, predY := alignmentX-float64(minX), alignmentY-float64(minY)
		best := candidates[0]
		for _, c := range candidates[1:] {
			if math.Hypot(c.X-predX, c.Y-predY) < math.Hypot(best.X-predX, best.Y-predY) {
				best = c
			}
		}
		x = topLeft.X + (float64(minX)+best.X-topLeft.X)/ratio
		y = topLeft.Y + (float64(minY)+best.Y-topLeft.Y)/ratio
	}

	return x, y, true
}

func interpolate(x1, y1, x2, y2 float64, distanceInModules, pos int) (x, y float64) {
	frac := float64(pos) / float64(distanceInModules)
	return x1 + frac*(x2-x1), y1 + frac*(y2-y1)
}

func populate(image *bitmatrix.BitMatrix, dim int, bottomLeft, topLeft, topRight *finder.Candidate, bottomRightX, bottomRightY float64) *QRCode {
	code := &QRCode{Modules: bitmatrix.New(dim, dim)}

	for y := -3; y < dim-3; y++ {
		pLeftX, pLeftY := interpolate(topLeft.X, topLeft.Y, bottomLeft.X, bottomLeft.Y, dim-7, y)
		pRightX, pRightY := interpolate(topRight.X, topRight.Y, bottomRightX, bottomRightY, dim-7, y)

		for x := -3; x < dim-3; x++ {
			mx, my := interpolate(pLeftX, pLeftY, pRightX, pRightY, dim-7, x)

			ix, iy := int(mx), int(my)
			outside := ix < 0 || ix >= image.Width() || iy < 0 || iy >= image.Height()
			black := !outside && image.IsBlack(ix, iy)
			if black {
				code.Modules.SetBlack(x+3, y+3)
			}

			switch {
			case y == -3 && x == -3:
				code.TopLeftX, code.TopLeftY = ix, iy
			case y == -3 && x == dim-4:
				code.TopRightX, code.TopRightY = ix, iy
			case y == dim-4 && x == -3:
				code.BottomLeftX, code.BottomLeftY = ix, iy
			case y == dim-4 && x == dim-4:
				code.BottomRightX, code.BottomRightY = ix, iy
			}
		}
	}

	return code
}

// Locate samples the module grid for a finder-pattern group against the
// source bitmap. Returns nil if no valid dimension or bottom-right
// prediction can be established — the group should be skipped.
func Locate(g group.Group, image *bitmatrix.BitMatrix) *QRCode {
	moduleSize := (g.BottomLeft.ModuleSize + g.TopLeft.ModuleSize + g.TopRight.ModuleSize) / 3.0
	dim := dimension(g.BottomLeft, g.TopLeft, g.TopRight, moduleSize)
	if dim == -1 {
		return nil
	}

	x, y, ok := findBottomRightCorner(g.BottomLeft, g.TopLeft, g.TopRight, image, moduleSize, dim)
	if !ok {
		return nil
	}

	return populate(image, dim, g.BottomLeft, g.TopLeft, g.TopRight, x, y)
}
