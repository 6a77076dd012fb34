package spatial

import (
	"github.com/DuyTa506/docuflow/doctree"
	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/filters"
	"github.com/DuyTa506/docuflow/geometry"
	"github.com/DuyTa506/docuflow/grouping"
	"github.com/DuyTa506/docuflow/hierarchy"
	"github.com/DuyTa506/docuflow/order"
	"github.com/DuyTa506/docuflow/thinning"
	"github.com/DuyTa506/docuflow/zones"
)

// ProcessingInfo is the pipeline metadata attached to the returned tree's
// root (spec.md §6's "_pipeline_info").
type ProcessingInfo = doctree.PipelineInfo

// Analyze runs the full C3-C9 pipeline over elements (already produced by
// package ground, C2) and returns the resulting document tree plus the
// processing info describing which stages ran (spec.md §2, §6).
//
// elements is never mutated; Analyze copies it before processing. pages
// supplies each page's pixel dimensions; a page referenced by an element
// but missing from pages has its dimensions estimated from that page's
// own elements (spec.md §7: "resolved by the documented defaults").
func Analyze(elements []element.Element, pages []PageInfo, cfg Config) (*doctree.Tree, ProcessingInfo, error) {
	info := doctree.NewPipelineInfo()

	working := append([]element.Element(nil), elements...)
	element.AssignIDs(working)
	info.ElementsProcessed = len(working)

	pageDims := resolvePageDims(working, pages)
	heights, widths := dimsToMaps(pageDims)

	repeated := filters.DetectRepeatedGroups(working, heights, cfg.Filters)

	if cfg.UseFilters {
		result := filters.Apply(working, pageDims, cfg.Filters)
		working = result.Kept
		info.FiltersApplied = true
		info.RepeatedFiltered = result.Stats.Repeated
		info.NoiseFiltered = result.Stats.Noise
		info.MarginFiltered = result.Stats.Margin
	}

	if len(working) == 0 {
		return doctree.Build(working, info), info, nil
	}

	if cfg.UseZoneClassification {
		zones.ClassifyAll(working, pageDims, repeated)
		info.ZoneClassificationApplied = true
	}

	assignColumns(working, widths)

	if cfg.UseReadingOrder {
		working = order.Apply(working)
		info.ReadingOrderApplied = true
	}

	medianLineHeight := grouping.MedianLineHeight(working)
	hierCfg := hierarchy.Config{
		Weights:            cfg.SpatialWeights,
		Adaptive:           cfg.UseAdaptiveThresholds,
		ThresholdsOverride: cfg.SpatialThresholds,
		ValidateMarkdown:   cfg.UseMarkdownValidation,
	}
	hierarchy.Score(working, pageDims, medianLineHeight, hierCfg)
	info.AdaptiveThresholdsApplied = cfg.UseAdaptiveThresholds
	info.MarkdownValidationApplied = cfg.UseMarkdownValidation

	if cfg.UseThinning {
		info.NodesBeforeThinning = len(working)
		thinCfg := thinning.Config{
			UseDynamicGap:          cfg.UseDynamicGap,
			GapThresholdMultiplier: cfg.ThinningGapMultiplier,
		}
		working = thinning.Thin(working, thinCfg)
		info.NodesAfterThinning = len(working)
		info.ThinningApplied = true
	}

	tree := doctree.Build(working, info)
	return tree, info, nil
}

// resolvePageDims builds a page-number -> dims lookup from the caller's
// page list, estimating dimensions for any page an element references
// that the caller didn't describe.
func resolvePageDims(elements []element.Element, pages []PageInfo) map[int]element.PageDims {
	dims := make(map[int]element.PageDims, len(pages))
	for _, p := range pages {
		dims[p.PageNumber] = element.PageDims{Width: p.Width, Height: p.Height}
	}

	byPage := make(map[int][]geometry.BBox)
	for _, e := range elements {
		if _, ok := dims[e.PageNumber]; ok {
			continue
		}
		byPage[e.PageNumber] = append(byPage[e.PageNumber], e.BBox)
	}
	for page, boxes := range byPage {
		w, h := geometry.EstimatePageArea(boxes)
		dims[page] = element.PageDims{Width: w, Height: h}
	}

	return dims
}

func dimsToMaps(dims map[int]element.PageDims) (heights, widths map[int]int) {
	heights = make(map[int]int, len(dims))
	widths = make(map[int]int, len(dims))
	for page, d := range dims {
		heights[page] = d.Height
		widths[page] = d.Width
	}
	return heights, widths
}

// assignColumns runs per-page column detection (C6) and records each
// element's ColumnIndex, purely as informational metadata — neither C4
// nor C5 currently key off it, since both already resolve column
// membership from bbox geometry directly (spec.md §4.4, §4.5).
func assignColumns(elements []element.Element, widths map[int]int) {
	byPage := make(map[int][]int)
	for i, e := range elements {
		byPage[e.PageNumber] = append(byPage[e.PageNumber], i)
	}
	for page, idxs := range byPage {
		pageElements := make([]element.Element, len(idxs))
		for j, idx := range idxs {
			pageElements[j] = elements[idx]
		}
		columns := grouping.DetectColumns(pageElements, widths[page])
		grouping.AssignColumns(pageElements, columns)
		for j, idx := range idxs {
			elements[idx].ColumnIndex = pageElements[j].ColumnIndex
		}
	}
}
