package order

import (
	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/geometry"
)

// relation is the outcome of comparing two elements: does a belong before
// b, after b, or is the pairwise rule ladder inconclusive.
type relation int

const (
	unresolved relation = iota
	before
	after
)

const (
	sameColumnThreshold = 0.3
	sameRowThreshold    = 0.3
)

// compare applies the pairwise precedence ladder (spec.md §4.5) to decide
// whether a reads before b, after b, or neither rule resolves it. An
// unresolved pair gets no edge between them; the final topological sort's
// (y1, x1) tie-break decides their relative order instead.
func compare(a, b element.Element) relation {
	if a.Zone.Priority() != b.Zone.Priority() {
		if a.Zone.Priority() < b.Zone.Priority() {
			return before
		}
		return after
	}

	aCenterX, aCenterY := a.BBox.CenterX(), a.BBox.CenterY()
	bCenterX, bCenterY := b.BBox.CenterX(), b.BBox.CenterY()

	if hOverlap := geometry.HorizontalOverlapRatio(a.BBox, b.BBox); hOverlap > sameColumnThreshold && aCenterY != bCenterY {
		if aCenterY < bCenterY {
			return before
		}
		return after
	}

	if vOverlap := geometry.VerticalOverlapRatio(a.BBox, b.BBox); vOverlap > sameRowThreshold && aCenterX != bCenterX {
		if aCenterX < bCenterX {
			return before
		}
		return after
	}

	if a.BBox.Y2 < b.BBox.Y1 {
		return before
	}

	if abs(a.BBox.Y1-b.BBox.Y1) < a.BBox.Height()/2 {
		if aCenterX < bCenterX {
			return before
		}
		if aCenterX > bCenterX {
			return after
		}
	}

	switch {
	case aCenterY < bCenterY:
		return before
	case aCenterY > bCenterY:
		return after
	default:
		return unresolved
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
