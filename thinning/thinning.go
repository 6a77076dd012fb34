package thinning

import (
	"strings"

	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/geometry"
)

// Thin merges consecutive "text" elements into "paragraph" elements
// (spec.md §4.8). elements must already be in reading order; the result
// preserves that order. Barrier-labelled elements always pass through
// standalone and terminate any in-progress merge run; "text" elements
// merge when canMerge holds against the last element already accumulated.
func Thin(elements []element.Element, cfg Config) []element.Element {
	if len(elements) == 0 {
		return nil
	}

	t := gapThreshold(elements, cfg)

	var result []element.Element
	var group []element.Element

	flush := func() {
		if len(group) == 0 {
			return
		}
		if len(group) == 1 {
			result = append(result, group[0])
		} else {
			result = append(result, mergeGroup(group))
		}
		group = nil
	}

	for _, e := range elements {
		switch {
		case isBarrier(e.Label):
			flush()
			result = append(result, e)
		case isText(e.Label):
			if len(group) == 0 {
				group = append(group, e)
				continue
			}
			if canMerge(group[len(group)-1], e, t) {
				group = append(group, e)
			} else {
				flush()
				group = append(group, e)
			}
		default:
			flush()
			result = append(result, e)
		}
	}
	flush()

	return result
}

// mergeGroup collapses a run of mergeable text elements into a single
// paragraph element: bbox union, space-joined text_content, newline-
// joined text_full, and merge bookkeeping (spec.md §4.8).
func mergeGroup(group []element.Element) element.Element {
	merged := element.Element{
		Label:      "paragraph",
		PageNumber: group[0].PageNumber,
		MergedFrom: len(group),
	}

	var contents, fulls []string
	boxes := make([]geometry.BBox, 0, len(group))
	for _, e := range group {
		if e.TextContent != "" {
			contents = append(contents, e.TextContent)
		}
		if e.TextFull != "" {
			fulls = append(fulls, e.TextFull)
		}
		merged.OriginalLabels = append(merged.OriginalLabels, e.Label)
		boxes = append(boxes, e.BBox)
	}

	merged.BBox = geometry.UnionAll(boxes)
	merged.TextContent = strings.Join(contents, " ")
	merged.TextFull = strings.Join(fulls, "\n")

	return merged
}
