// Package group triples finder-pattern candidates into isoceles-right
// arrangements that could be the three corners of a QR code.
package group

import (
	"math"
	"sort"

	"github.com/jalphad/qrcode/qrcode/finder"
)

const (
	minModulesPerEdge  = 9
	maxModulesPerEdge  = 180
	maxModuleSizeDiff  = 0.5
	maxRatioDelta      = 0.1
	maxRightAngleDelta = 0.1
)

// Group labels three candidates as the bottom-left (A), top-left (B, the
// right-angle vertex), and top-right (C) corners of a candidate QR code.
type Group struct {
	BottomLeft, TopLeft, TopRight *finder.Candidate
}

func distance(a, b *finder.Candidate) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// checkPoints labels p1,p2,p3 as A,B,C (B at the widest-separated pair's
// opposite vertex), fixes A/C orientation via the cross product sign, and
// appends a Group if the triple passes the isoceles-right-triangle and
// module-count checks.
func checkPoints(p1, p2, p3 *finder.Candidate, groups *[]Group) {
	d12, d13, d23 := distance(p1, p2), distance(p1, p3), distance(p2, p3)

	var a, b, c *finder.Candidate
	var distAB, distBC, distAC float64

	switch {
	case d13 >= d12 && d13 >= d23:
		a, b, c = p1, p2, p3
		distAB, distBC, distAC = d12, d23, d13
	case d23 >= d12 && d23 >= d13:
		a, b, c = p2, p1, p3
		distAB, distBC, distAC = d12, d13, d23
	default:
		a, b, c = p1, p3, p2
		distAB, distBC, distAC = d13, d23, d12
	}

	// Cross product z of AB x BC; negative means the observed triangle is
	// mirrored along the diagonal, so A and C must be swapped to enforce
	// "A below B, C right of B".
	z := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
	if z < 0 {
		a, c = c, a
	}

	delta := math.Abs(distAB-distBC) / math.Min(distAB, distBC)
	if delta > maxRatioDelta {
		return
	}

	pythAC := math.Sqrt(distAB*distAB + distBC*distBC)
	deltaAC := math.Abs(distAC-pythAC) / math.Min(distAC, pythAC)
	if deltaAC > maxRightAngleDelta {
		return
	}

	estimatedModuleCount := (distAB + distBC) / (b.ModuleSize * 2.0)
	if estimatedModuleCount < minModulesPerEdge || estimatedModuleCount > maxModulesPerEdge {
		return
	}

	*groups = append(*groups, Group{BottomLeft: a, TopLeft: b, TopRight: c})
}

// Find sorts candidates by ascending module size and tests every triple
// whose module sizes span at most maxModuleSizeDiff pixels, stopping the
// inner loops early once that span is exceeded (the sort makes that a
// valid early exit, not just an optimisation).
func Find(candidates []*finder.Candidate) []Group {
	if len(candidates) < 3 {
		return nil
	}

	sorted := make([]*finder.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ModuleSize < sorted[j].ModuleSize })

	var groups []Group
	n := len(sorted)
	for i := 0; i < n-2; i++ {
		p1 := sorted[i]
		for j := i + 1; j < n-1; j++ {
			p2 := sorted[j]
			if math.Abs(p1.ModuleSize-p2.ModuleSize) > maxModuleSizeDiff {
				break
			}
			for k := j + 1; k < n; k++ {
				p3 := sorted[k]
				if math.Abs(p1.ModuleSize-p3.ModuleSize) > maxModuleSizeDiff {
					break
				}
				checkPoints(p1, p2, p3, &groups)
			}
		}
	}

	return groups
}
