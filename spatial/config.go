package spatial

import (
	"github.com/DuyTa506/docuflow/filters"
	"github.com/DuyTa506/docuflow/hierarchy"
)

// PageInfo is a caller-supplied page's pixel extent (spec.md §2: "an
// ordered sequence of LayoutElement records... plus per-page
// dimensions").
type PageInfo struct {
	PageNumber int
	Width      int
	Height     int
}

// Config bundles every stage toggle and tunable spec.md §6 names,
// following the teacher's ConfigXxx / DefaultXxxConfig convention.
type Config struct {
	UseFilters            bool
	UseZoneClassification bool
	UseReadingOrder       bool
	UseMarkdownValidation bool
	UseAdaptiveThresholds bool
	UseThinning           bool

	Filters filters.Config

	// SpatialWeights and SpatialThresholds are spec.md §6's
	// "spatial_weights" / "spatial_thresholds" tunables. A nil
	// SpatialThresholds means use the fixed defaults (or the adaptive
	// percentiles, when UseAdaptiveThresholds is on).
	SpatialWeights    hierarchy.Weights
	SpatialThresholds *hierarchy.Thresholds

	ThinningGapMultiplier float64
	UseDynamicGap         bool
}

// DefaultConfig returns every stage enabled with spec.md's documented
// defaults: fixed (non-adaptive) hierarchy thresholds, dynamic thinning
// gap detection.
func DefaultConfig() Config {
	return Config{
		UseFilters:            true,
		UseZoneClassification: true,
		UseReadingOrder:       true,
		UseMarkdownValidation: true,
		UseAdaptiveThresholds: false,
		UseThinning:           true,

		Filters: filters.DefaultConfig(),

		SpatialWeights:    hierarchy.DefaultWeights(),
		SpatialThresholds: nil,

		ThinningGapMultiplier: 2.0,
		UseDynamicGap:         true,
	}
}
