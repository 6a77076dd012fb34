package thinning

import (
	"sort"

	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/geometry"
)

// gapThreshold computes T, the maximum vertical gap allowed between two
// mergeable text elements (spec.md §4.8). With UseDynamicGap it is the
// 70th percentile of intra-page vertical gaps among text elements across
// the whole document; otherwise it's medianLineHeight * multiplier.
func gapThreshold(elements []element.Element, cfg Config) float64 {
	if !cfg.UseDynamicGap {
		return medianLineHeight(elements) * cfg.GapThresholdMultiplier
	}

	byPage := make(map[int][]element.Element)
	for _, e := range elements {
		if isText(e.Label) {
			byPage[e.PageNumber] = append(byPage[e.PageNumber], e)
		}
	}

	var gaps []float64
	for _, page := range byPage {
		sort.SliceStable(page, func(i, j int) bool { return page[i].BBox.Y1 < page[j].BBox.Y1 })
		for i := 1; i < len(page); i++ {
			gap := geometry.VerticalGap(page[i-1].BBox, page[i].BBox)
			if gap >= 0 {
				gaps = append(gaps, float64(gap))
			}
		}
	}

	if len(gaps) == 0 {
		return medianLineHeight(elements) * cfg.GapThresholdMultiplier
	}
	sort.Float64s(gaps)
	return percentile(gaps, 70)
}

// percentile computes the p-th percentile of a pre-sorted slice by linear
// interpolation between closest ranks (matches numpy.percentile).
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := (p / 100.0) * float64(n-1)
	lo := int(rank)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// medianLineHeight estimates the document's median line height from
// positive bbox heights, falling back to 40px (spec.md §4.8) when none
// are available.
func medianLineHeight(elements []element.Element) float64 {
	var heights []int
	for _, e := range elements {
		if h := e.BBox.Height(); h > 0 {
			heights = append(heights, h)
		}
	}
	if len(heights) == 0 {
		return defaultMedianLineHeight
	}
	sort.Ints(heights)
	n := len(heights)
	if n%2 == 1 {
		return float64(heights[n/2])
	}
	return float64(heights[n/2-1]+heights[n/2]) / 2
}
