package filters

import "github.com/DuyTa506/docuflow/element"

// FilterMargin drops elements lying entirely within the left or right
// cfg.MarginRatio strip of their page's width. Off by default (spec.md
// §4.3); callers only invoke this when cfg.UseMarginFilter is set.
func FilterMargin(elements []element.Element, pageWidths map[int]int, cfg Config) ([]element.Element, int) {
	kept := make([]element.Element, 0, len(elements))
	dropped := 0
	for _, e := range elements {
		width := pageWidths[e.PageNumber]
		if width <= 0 {
			kept = append(kept, e)
			continue
		}
		leftEdge := int(cfg.MarginRatio * float64(width))
		rightEdge := width - leftEdge
		inLeftStrip := e.BBox.X2 <= leftEdge
		inRightStrip := e.BBox.X1 >= rightEdge
		if inLeftStrip || inRightStrip {
			dropped++
			continue
		}
		kept = append(kept, e)
	}
	return kept, dropped
}
