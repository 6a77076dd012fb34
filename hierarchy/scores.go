package hierarchy

import "github.com/DuyTa506/docuflow/element"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// verticalScore rewards elements near the top of the page: 1 - y1/page_height.
func verticalScore(e element.Element, pageHeight int) float64 {
	if pageHeight == 0 {
		return 0.5
	}
	return clamp01(1.0 - float64(e.BBox.Y1)/float64(pageHeight))
}

// sizeScore rewards elements that occupy a large share of the page,
// weighting width over height (titles are wide, not necessarily tall).
func sizeScore(e element.Element, pageWidth, pageHeight int) float64 {
	if pageWidth == 0 || pageHeight == 0 {
		return 0.3
	}
	widthRatio := float64(e.BBox.Width()) / float64(pageWidth)
	heightRatio := float64(e.BBox.Height()) / float64(pageHeight)
	combined := widthRatio*0.7 + heightRatio*0.3
	return clamp01(combined * 2.0)
}

// indentScore rewards left-aligned elements; anything past 30% of the
// page width from the left edge scores 0.
func indentScore(e element.Element, pageWidth int) float64 {
	if pageWidth == 0 {
		return 0.5
	}
	maxIndent := float64(pageWidth) * 0.3
	if maxIndent == 0 {
		return 0.5
	}
	if float64(e.BBox.X1) > maxIndent {
		return 0.0
	}
	return clamp01(1.0 - float64(e.BBox.X1)/maxIndent)
}

// whitespaceScore rewards elements isolated by surrounding blank space,
// weighting the gap before more heavily than the gap after (spec.md
// §4.7: headings tend to have more space above them than below).
func whitespaceScore(e element.Element, prev, next *element.Element, medianLineHeight float64) float64 {
	if medianLineHeight <= 0 {
		medianLineHeight = 20.0
	}

	var spaceBefore float64
	if prev != nil {
		if gap := e.BBox.Y1 - prev.BBox.Y2; gap > 0 {
			spaceBefore = float64(gap)
		}
	} else {
		spaceBefore = medianLineHeight * 1.5
	}

	var spaceAfter float64
	if next != nil {
		if gap := next.BBox.Y1 - e.BBox.Y2; gap > 0 {
			spaceAfter = float64(gap)
		}
	} else {
		spaceAfter = medianLineHeight * 1.0
	}

	beforeRatio := spaceBefore / medianLineHeight
	afterRatio := spaceAfter / medianLineHeight
	combined := beforeRatio*0.6 + afterRatio*0.4
	return clamp01(combined / 2.0)
}
