package hierarchy

import "github.com/DuyTa506/docuflow/element"

// Config bundles the tunables package hierarchy needs, following the
// teacher's ConfigXxx / DefaultXxxConfig convention.
type Config struct {
	Weights  Weights
	Adaptive bool
	// ThresholdsOverride replaces DefaultThresholds when set and Adaptive
	// is false (spec.md §6's "spatial_thresholds" tunable).
	ThresholdsOverride *Thresholds
	// ValidateMarkdown runs the markdown cross-check (spec.md §4.7); when
	// false, FinalLevel is always SpatialLevel verbatim with source
	// spatial_only, matching spec.md §6's "use_markdown_validation" toggle.
	ValidateMarkdown bool
}

// DefaultConfig returns the default weighting with adaptive thresholding
// off (spec.md §4.7's fixed thresholds) and markdown validation on.
func DefaultConfig() Config {
	return Config{Weights: DefaultWeights(), Adaptive: false, ValidateMarkdown: true}
}

// CompositeScore combines the five feature scores into the spec.md §4.7
// composite: S = label*0.40 + whitespace*0.25 + size*0.15 + vertical*0.10 + indent*0.10 (default weights).
func CompositeScore(e element.Element, page element.PageDims, prev, next *element.Element, medianLineHeight float64, w Weights) float64 {
	vertical := verticalScore(e, page.Height)
	size := sizeScore(e, page.Width, page.Height)
	label := LabelWeight(e.Label)
	indent := indentScore(e, page.Width)
	whitespace := whitespaceScore(e, prev, next, medianLineHeight)

	return label*w.Label + whitespace*w.Whitespace + size*w.Size + vertical*w.Vertical + indent*w.Indent
}

func sourceFromString(s string) element.LevelSource {
	switch s {
	case "spatial_validated":
		return element.LevelSourceSpatialValidated
	case "blended":
		return element.LevelSourceBlended
	default:
		return element.LevelSourceSpatialOnly
	}
}

// Score computes each element's spatial score and hierarchy level in
// document reading order, then resolves the final level through the
// markdown cross-check (spec.md §4.7). elements must already be in
// reading order (package order's output) and pages must have an entry
// for every page number present. medianLineHeight is the document-wide
// estimate used to normalise the whitespace feature; callers typically
// supply grouping.MedianLineHeight's result.
func Score(elements []element.Element, pages map[int]element.PageDims, medianLineHeight float64, cfg Config) {
	if len(elements) == 0 {
		return
	}

	scores := make([]float64, len(elements))
	for i := range elements {
		page := pages[elements[i].PageNumber]

		var prev, next *element.Element
		if i > 0 && elements[i-1].PageNumber == elements[i].PageNumber {
			prev = &elements[i-1]
		}
		if i+1 < len(elements) && elements[i+1].PageNumber == elements[i].PageNumber {
			next = &elements[i+1]
		}

		scores[i] = CompositeScore(elements[i], page, prev, next, medianLineHeight, cfg.Weights)
	}

	var thresholds Thresholds
	switch {
	case cfg.Adaptive:
		thresholds = AdaptiveThresholds(scores)
	case cfg.ThresholdsOverride != nil:
		thresholds = *cfg.ThresholdsOverride
	default:
		thresholds = DefaultThresholds()
	}

	for i := range elements {
		elements[i].SpatialScore = scores[i]
		elements[i].SpatialLevel = thresholds.Level(scores[i])

		if !cfg.ValidateMarkdown {
			elements[i].FinalLevel = elements[i].SpatialLevel
			elements[i].LevelSource = element.LevelSourceSpatialOnly
			continue
		}

		finalLevel, source := reconcile(elements[i].SpatialLevel, elements[i].TextContent)
		elements[i].FinalLevel = finalLevel
		elements[i].LevelSource = sourceFromString(source)
	}
}
