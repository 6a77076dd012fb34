package thinning

import (
	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/geometry"
)

const alignmentToleranceX = 10
const indentLimitX = 30

// canMerge applies spec.md §4.8's five-rule merge predicate to a, the
// preceding element, and b, its candidate successor, given gap threshold
// t.
func canMerge(a, b element.Element, t float64) bool {
	if !isText(a.Label) || !isText(b.Label) {
		return false
	}
	if a.PageNumber != b.PageNumber {
		return false
	}

	gap := geometry.VerticalGap(a.BBox, b.BBox)
	if gap < 0 || float64(gap) > t {
		return false
	}

	overlap := geometry.HorizontalOverlapRatio(a.BBox, b.BBox)
	xDiff := a.BBox.X1 - b.BBox.X1
	if xDiff < 0 {
		xDiff = -xDiff
	}
	if overlap < 0.5 && xDiff > alignmentToleranceX {
		return false
	}

	if b.BBox.X1-a.BBox.X1 >= indentLimitX {
		return false
	}

	return true
}
