package hierarchy

import (
	"math"
	"regexp"
)

var markdownHeading = regexp.MustCompile(`^(#{1,6})\s+`)

// markdownLevel reports whether text begins with ATX-style markdown
// heading syntax and, if so, its level in 0..5 (one "#" = level 0).
func markdownLevel(text string) (level int, ok bool) {
	m := markdownHeading.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return len(m[1]) - 1, true
}

// reconcile applies spec.md §4.7's markdown cross-check: a markdown level
// within 1 of the spatial prediction validates it unchanged; otherwise the
// two are blended by rounding their average.
func reconcile(spatialLevel int, text string) (finalLevel int, source string) {
	mdLevel, ok := markdownLevel(text)
	if !ok {
		return spatialLevel, "spatial_only"
	}
	diff := mdLevel - spatialLevel
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		blended := int(math.Round(0.5*float64(mdLevel) + 0.5*float64(spatialLevel)))
		return blended, "blended"
	}
	return spatialLevel, "spatial_validated"
}
