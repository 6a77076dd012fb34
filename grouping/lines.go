package grouping

import (
	"sort"

	"github.com/DuyTa506/docuflow/element"
)

const lineGapRatio = 0.3

// Line is a run of elements judged to sit on the same horizontal line,
// sorted left to right.
type Line struct {
	Elements []element.Element
	Bottom   int
}

// GroupLines sorts elements by y1 and splits them into lines: a new line
// starts whenever the incoming element's y1 exceeds the current line's
// running bottom by more than 0.3 times the median line height (spec.md
// §4.6).
func GroupLines(elements []element.Element) []Line {
	if len(elements) == 0 {
		return nil
	}

	sorted := append([]element.Element(nil), elements...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].BBox.Y1 < sorted[j].BBox.Y1 })

	tolerance := MedianLineHeight(sorted) * lineGapRatio

	var lines []Line
	current := []element.Element{sorted[0]}
	currentBottom := sorted[0].BBox.Y2

	flush := func() {
		sort.SliceStable(current, func(i, j int) bool { return current[i].BBox.X1 < current[j].BBox.X1 })
		lines = append(lines, Line{Elements: current, Bottom: currentBottom})
	}

	for _, e := range sorted[1:] {
		if float64(e.BBox.Y1) <= float64(currentBottom)+tolerance {
			current = append(current, e)
			if e.BBox.Y2 > currentBottom {
				currentBottom = e.BBox.Y2
			}
			continue
		}
		flush()
		current = []element.Element{e}
		currentBottom = e.BBox.Y2
	}
	flush()

	return lines
}
