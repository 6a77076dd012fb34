package geometry

// GridMax is the inclusive upper bound of the normalised coordinate grid
// the OCR front-end emits coordinates on (spec.md §6: "integers in the
// inclusive range [0, 999]").
const GridMax = 999

// Normalize converts a pixel coordinate to the 0..999 grid given the page's
// extent along that axis, clamping the result to [0, GridMax]. A
// non-positive extent maps everything to 0 rather than dividing by zero.
func Normalize(v, extent int) int {
	if extent <= 0 {
		return 0
	}
	n := roundDiv(v*GridMax, extent)
	return clamp(n, 0, GridMax)
}

// Denormalize converts a 0..999 grid coordinate back to pixel space given
// the page's extent along that axis, the inverse of Normalize. A
// non-positive extent maps everything to 0.
func Denormalize(v, extent int) int {
	if extent <= 0 {
		return 0
	}
	return roundDiv(v*extent, GridMax)
}

// NormalizeBBox normalises all four corners of box b for a page of the
// given pixel dimensions.
func NormalizeBBox(b BBox, pageWidth, pageHeight int) BBox {
	return BBox{
		X1: Normalize(b.X1, pageWidth),
		Y1: Normalize(b.Y1, pageHeight),
		X2: Normalize(b.X2, pageWidth),
		Y2: Normalize(b.Y2, pageHeight),
	}
}

// DenormalizeBBox converts a grid-space box to pixel space for a page of
// the given pixel dimensions (spec.md §4.2: element coordinates are
// rescaled from the 0..999 grid to pixel space using the page dimensions).
func DenormalizeBBox(b BBox, pageWidth, pageHeight int) BBox {
	return BBox{
		X1: Denormalize(b.X1, pageWidth),
		Y1: Denormalize(b.Y1, pageHeight),
		X2: Denormalize(b.X2, pageWidth),
		Y2: Denormalize(b.Y2, pageHeight),
	}
}

// EstimatePageArea estimates a page's pixel extent from the elements it
// contains, when the caller hasn't supplied real page dimensions: 1.05x
// the maximum X2/Y2 seen (spec.md §4.3). Returns (0, 0) for an empty slice.
func EstimatePageArea(boxes []BBox) (width, height int) {
	maxX, maxY := 0, 0
	for _, b := range boxes {
		if b.X2 > maxX {
			maxX = b.X2
		}
		if b.Y2 > maxY {
			maxY = b.Y2
		}
	}
	if maxX == 0 && maxY == 0 {
		return 0, 0
	}
	return roundDiv(maxX*105, 100), roundDiv(maxY*105, 100)
}

// roundDiv performs integer division with round-half-away-from-zero.
func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	neg := (num < 0) != (den < 0)
	if num < 0 {
		num = -num
	}
	if den < 0 {
		den = -den
	}
	q := (num + den/2) / den
	if neg {
		q = -q
	}
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
