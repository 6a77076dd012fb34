package filters

import "github.com/DuyTa506/docuflow/element"

// Config holds the tunables for all three filters (spec.md §6 defaults).
type Config struct {
	// MinRepeatPages is the minimum number of distinct pages a normalised
	// text must appear on to be considered a repeated running
	// header/footer. Default: 3.
	MinRepeatPages int

	// MinAreaRatio and MaxAreaRatio bound the element-area / page-area
	// ratio the noise filter keeps. Defaults: 0.001 and 0.5.
	MinAreaRatio float64
	MaxAreaRatio float64

	// MarginRatio is the width of the left/right strip, as a fraction of
	// page width, the margin filter drops elements entirely inside.
	// Default: 0.05.
	MarginRatio float64

	// UseMarginFilter enables the margin filter. Off by default.
	UseMarginFilter bool
}

// DefaultConfig returns the spec-mandated default tunables.
func DefaultConfig() Config {
	return Config{
		MinRepeatPages:  3,
		MinAreaRatio:    0.001,
		MaxAreaRatio:    0.5,
		MarginRatio:     0.05,
		UseMarginFilter: false,
	}
}

// PageDims is a page's known or estimated pixel extent, used by the noise
// and margin filters to compute area and strip-width ratios.
type PageDims = element.PageDims

// Stats reports how many elements each filter removed, for inclusion in
// the pipeline's ProcessingInfo.
type Stats struct {
	Repeated int
	Noise    int
	Margin   int
}

// Result is the outcome of running all configured filters over one set of
// elements.
type Result struct {
	Kept  []element.Element
	Stats Stats
}
