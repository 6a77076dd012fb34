package grouping

import "github.com/DuyTa506/docuflow/element"

// Column is one detected vertical band of a page, left to right.
type Column struct {
	X1, X2 int
	Index  int
}

const columnBinWidth = 5

// DetectColumns builds a 5px-bin X-axis projection histogram over
// elements and splits pageWidth into columns at "valleys" - zero-count
// bin runs at least pageWidth*0.05 wide. Columns narrower than
// pageWidth*0.15 are discarded and the rest re-indexed. A page with no
// surviving valley, or no elements, gets a single column spanning its
// full width (spec.md §4.6).
func DetectColumns(elements []element.Element, pageWidth int) []Column {
	single := []Column{{X1: 0, X2: pageWidth, Index: 0}}
	if len(elements) == 0 || pageWidth <= 0 {
		return single
	}

	numBins := pageWidth/columnBinWidth + 1
	histogram := make([]int, numBins)
	for _, e := range elements {
		startBin := clampBin(e.BBox.X1/columnBinWidth, numBins)
		endBin := clampBin(e.BBox.X2/columnBinWidth, numBins)
		for b := startBin; b <= endBin; b++ {
			histogram[b]++
		}
	}

	minGapBins := int(float64(pageWidth)*0.05) / columnBinWidth

	var valleys []int
	inValley := false
	valleyStart := 0
	for i, count := range histogram {
		if count == 0 {
			if !inValley {
				inValley = true
				valleyStart = i
			}
			continue
		}
		if inValley {
			valleyEnd := i
			if valleyEnd-valleyStart >= minGapBins {
				valleys = append(valleys, (valleyStart+valleyEnd)/2*columnBinWidth)
			}
			inValley = false
		}
	}

	if len(valleys) == 0 {
		return single
	}

	var columns []Column
	prevX := 0
	for _, vx := range valleys {
		columns = append(columns, Column{X1: prevX, X2: vx, Index: len(columns)})
		prevX = vx
	}
	columns = append(columns, Column{X1: prevX, X2: pageWidth, Index: len(columns)})

	minColWidth := float64(pageWidth) * 0.15
	filtered := columns[:0]
	for _, c := range columns {
		if float64(c.X2-c.X1) >= minColWidth {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return single
	}
	for i := range filtered {
		filtered[i].Index = i
	}
	return filtered
}

func clampBin(b, numBins int) int {
	if b < 0 {
		return 0
	}
	if b >= numBins {
		return numBins - 1
	}
	return b
}

// AssignColumns sets each element's ColumnIndex to the index of the
// column whose [X1,X2] range contains its bbox centre, falling back to
// column 0 if none contains it (e.g. an element spanning a column gap).
func AssignColumns(elements []element.Element, columns []Column) {
	for i := range elements {
		cx := elements[i].BBox.CenterX()
		idx := 0
		for _, c := range columns {
			if cx >= c.X1 && cx <= c.X2 {
				idx = c.Index
				break
			}
		}
		elements[i].ColumnIndex = idx
	}
}
