// Package finder scans a binarised bitmap for finder-pattern
// (1:1:3:1:1) and alignment-pattern (1:1:1:1:1) candidate centres.
package finder

import (
	"math"

	"github.com/jalphad/qrcode/qrcode/bitmatrix"
)

// Candidate is a detected pattern centre: its subpixel position, the
// estimated module size in pixels, and a hit count accumulated while
// merging near-duplicate detections.
type Candidate struct {
	X, Y       float64
	ModuleSize float64
	Count      int
}

// Mode selects which run-length ratio a scan looks for.
type Mode int

const (
	// Finder looks for the 1:1:3:1:1 ratio of a finder pattern.
	Finder Mode = iota
	// Alignment looks for the 1:1:1:1:1 ratio of an alignment pattern.
	Alignment
)

// Find scans every row of bm for five-run black/white/black/white/black
// sequences matching mode's ratio, confirms each horizontal candidate
// with a vertical (then horizontal) re-probe, and merges nearby
// detections into a single candidate list.
func Find(bm *bitmatrix.BitMatrix, mode Mode) []*Candidate {
	var candidates []*Candidate
	counts := make([]int, 5)

	height, width := bm.Height(), bm.Width()
	for y := 0; y < height; y++ {
		for i := range counts {
			counts[i] = 0
		}
		state := 0

		for x := 0; x < width; x++ {
			if bm.IsBlack(x, y) {
				if state%2 == 1 {
					state++
				}
				counts[state]++
			} else {
				if state%2 == 0 {
					if state == 4 {
						if checkPotentialCenter(bm, counts, x, y, mode, &candidates) {
							state = 0
							for i := range counts {
								counts[i] = 0
							}
						} else {
							counts[0] = counts[2]
							counts[1] = counts[3]
							counts[2] = counts[4]
							counts[3] = 1
							counts[4] = 0
							state = 3
						}
					} else {
						state++
						counts[state]++
					}
				} else {
					counts[state]++
				}
			}
		}
		checkPotentialCenter(bm, counts, width, y, mode, &candidates)
	}

	return candidates
}

func properRatios(counts []int, mode Mode) bool {
	total := 0
	for _, c := range counts {
		if c == 0 {
			return false
		}
		total += c
	}
	if total < 7 {
		return false
	}

	if mode == Finder {
		moduleSize := float64(total) / 7.0
		maxVariance := moduleSize / 2.0
		return math.Abs(moduleSize-float64(counts[0])) < maxVariance &&
			math.Abs(moduleSize-float64(counts[1])) < maxVariance &&
			math.Abs(3.0*moduleSize-float64(counts[2])) < 3.0*maxVariance &&
			math.Abs(moduleSize-float64(counts[3])) < maxVariance &&
			math.Abs(moduleSize-float64(counts[4])) < maxVariance
	}

	moduleSize := float64(total) / 5.0
	maxVariance := moduleSize / 2.0
	for _, c := range counts {
		if math.Abs(moduleSize-float64(c)) >= maxVariance {
			return false
		}
	}
	return true
}

func center(counts []int, end int) float64 {
	return float64(end-counts[4]-counts[3]) - float64(counts[2])/2.0
}

func checkVertically(bm *bitmatrix.BitMatrix, centerX, row, maxPixelsPerModule, totalPixels int, mode Mode) (float64, bool) {
	counts := make([]int, 5)
	height := bm.Height()

	y := row
	for y > 0 && bm.IsBlack(centerX, y) {
		counts[2]++
		y--
	}
	if y == 0 {
		return 0, false
	}
	for y > 0 && !bm.IsBlack(centerX, y) {
		counts[1]++
		if counts[1] > maxPixelsPerModule {
			return 0, false
		}
		y--
	}
	if y == 0 {
		return 0, false
	}
	for y >= 0 && bm.IsBlack(centerX, y) {
		counts[0]++
		if counts[0] > maxPixelsPerModule {
			return 0, false
		}
		if y == 0 {
			break
		}
		y--
	}

	y = row + 1
	for y < height && bm.IsBlack(centerX, y) {
		counts[2]++
		y++
	}
	if y == height {
		return 0, false
	}
	for y < height && !bm.IsBlack(centerX, y) {
		counts[3]++
		if counts[3] > maxPixelsPerModule {
			return 0, false
		}
		y++
	}
	if y == height {
		return 0, false
	}
	for y < height && bm.IsBlack(centerX, y) {
		counts[4]++
		if counts[4] > maxPixelsPerModule {
			return 0, false
		}
		y++
	}

	if !properRatios(counts, mode) {
		return 0, false
	}

	verticalTotal := counts[0] + counts[1] + counts[2] + counts[3] + counts[4]
	if 5*abs(verticalTotal-totalPixels) >= 2*totalPixels {
		return 0, false
	}

	return center(counts, y), true
}

func checkHorizontally(bm *bitmatrix.BitMatrix, centerY, column, maxPixelsPerModule, totalPixels int, mode Mode) (float64, bool) {
	counts := make([]int, 5)
	width := bm.Width()

	x := column
	for x > 0 && bm.IsBlack(x, centerY) {
		counts[2]++
		x--
	}
	if x == 0 {
		return 0, false
	}
	for x > 0 && !bm.IsBlack(x, centerY) {
		counts[1]++
		if counts[1] > maxPixelsPerModule {
			return 0, false
		}
		x--
	}
	if x == 0 {
		return 0, false
	}
	for x >= 0 && bm.IsBlack(x, centerY) {
		counts[0]++
		if counts[0] > maxPixelsPerModule {
			return 0, false
		}
		if x == 0 {
			break
		}
		x--
	}

	x = column + 1
	for x < width && bm.IsBlack(x, centerY) {
		counts[2]++
		x++
	}
	if x == width {
		return 0, false
	}
	for x < width && !bm.IsBlack(x, centerY) {
		counts[3]++
		if counts[3] > maxPixelsPerModule {
			return 0, false
		}
		x++
	}
	if x == width {
		return 0, false
	}
	for x < width && bm.IsBlack(x, centerY) {
		counts[4]++
		if counts[4] > maxPixelsPerModule {
			return 0, false
		}
		x++
	}

	if !properRatios(counts, mode) {
		return 0, false
	}

	horizontalTotal := counts[0] + counts[1] + counts[2] + counts[3] + counts[4]
	if 5*abs(horizontalTotal-totalPixels) >= 2*totalPixels {
		return 0, false
	}

	return center(counts, x), true
}

func patternCloseEnough(c *Candidate, x, y, moduleSize float64) bool {
	if math.Abs(c.X-x) <= moduleSize && math.Abs(c.Y-y) <= moduleSize {
		sizeDiff := math.Abs(c.ModuleSize - moduleSize)
		return sizeDiff <= 1.0 || sizeDiff <= c.ModuleSize
	}
	return false
}

func combine(c *Candidate, x, y, moduleSize float64) {
	n := float64(c.Count)
	c.X = (n*c.X + x) / (n + 1)
	c.Y = (n*c.Y + y) / (n + 1)
	c.ModuleSize = (n*c.ModuleSize + moduleSize) / (n + 1)
	c.Count++
}

func handlePotentialCenter(candidates *[]*Candidate, x, y, moduleSize float64) {
	for _, c := range *candidates {
		if patternCloseEnough(c, x, y, moduleSize) {
			combine(c, x, y, moduleSize)
			return
		}
	}
	*candidates = append(*candidates, &Candidate{X: x, Y: y, ModuleSize: moduleSize, Count: 1})
}

func checkPotentialCenter(bm *bitmatrix.BitMatrix, counts []int, xEnd, y int, mode Mode, candidates *[]*Candidate) bool {
	if !properRatios(counts, mode) {
		return false
	}

	total := counts[0] + counts[1] + counts[2] + counts[3] + counts[4]
	centerX := center(counts, xEnd)

	centerY, ok := checkVertically(bm, int(centerX), y, counts[2], total, mode)
	if !ok {
		return false
	}
	centerX, ok = checkHorizontally(bm, int(centerY), int(centerX), counts[2], total, mode)
	if !ok {
		return false
	}

	moduleSize := float64(total) / 7.0
	if mode == Alignment {
		moduleSize = float64(total) / 5.0
	}
	handlePotentialCenter(candidates, centerX, centerY, moduleSize)
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
