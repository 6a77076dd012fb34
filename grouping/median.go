package grouping

import (
	"sort"

	"github.com/DuyTa506/docuflow/element"
)

// defaultLineHeight is the fallback when no element has a positive height.
const defaultLineHeight = 20.0

// MedianLineHeight returns the median of each element's bbox height,
// ignoring non-positive heights. Falls back to defaultLineHeight when no
// element qualifies. Exported so other stages (package hierarchy's
// whitespace-isolation score, package thinning's fixed gap threshold) can
// reuse the same estimate instead of recomputing it.
func MedianLineHeight(elements []element.Element) float64 {
	var heights []int
	for _, e := range elements {
		if h := e.BBox.Height(); h > 0 {
			heights = append(heights, h)
		}
	}
	if len(heights) == 0 {
		return defaultLineHeight
	}
	sort.Ints(heights)
	n := len(heights)
	if n%2 == 1 {
		return float64(heights[n/2])
	}
	return float64(heights[n/2-1]+heights[n/2]) / 2
}
