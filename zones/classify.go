package zones

import (
	"strings"

	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/filters"
)

// PageDims is the page dimensions Classify needs to compute relative
// position and aspect-ratio features.
type PageDims = element.PageDims

// Classification is the outcome of classifying one element: its zone, the
// confidence of the winning rule, and that rule's method name (spec.md
// §4.4).
type Classification struct {
	Zone       element.Zone
	Confidence float64
	Method     string
}

// labelToZone is the fixed OCR-label-to-zone table priority 2 of the
// cascade consults (spec.md §4.4).
var labelToZone = map[string]element.Zone{
	"title":       element.ZoneTitleBlock,
	"sub_title":   element.ZoneSectionHeading,
	"subtitle":    element.ZoneSectionHeading,
	"heading":     element.ZoneSectionHeading,
	"header":      element.ZoneHeader,
	"figure":      element.ZoneFigure,
	"table":       element.ZoneTable,
	"equation":    element.ZoneEquation,
	"formula":     element.ZoneEquation,
	"caption":     element.ZoneCaption,
	"footnote":    element.ZoneFootnote,
	"footer":      element.ZoneFooter,
	"page_number": element.ZonePageNumber,
}

// classifyByLabel is priority 2: a fixed mapping from the OCR grounding
// label to a zone, conf 0.8.
func classifyByLabel(e element.Element) (Classification, bool) {
	label := strings.ToLower(strings.TrimSpace(e.Label))
	zone, ok := labelToZone[label]
	if !ok {
		return Classification{}, false
	}
	return Classification{Zone: zone, Confidence: 0.8, Method: "label"}, true
}

// classifyByTextPattern is priority 3: caption/page-number/section/abstract
// regex families, tried against both the raw and the tag-stripped text.
func classifyByTextPattern(e element.Element) (Classification, bool) {
	raw := strings.TrimSpace(e.TextContent)
	if raw == "" {
		return Classification{}, false
	}
	stripped := stripInlineTags(raw)

	for _, p := range captionPatterns {
		if p.MatchString(raw) || p.MatchString(stripped) {
			return Classification{Zone: element.ZoneCaption, Confidence: 0.9, Method: "text_pattern"}, true
		}
	}
	for _, p := range pageNumberPatterns {
		if p.MatchString(stripped) {
			return Classification{Zone: element.ZonePageNumber, Confidence: 0.85, Method: "text_pattern"}, true
		}
	}
	if len(stripped) < 200 {
		for _, p := range sectionPatterns {
			if p.MatchString(stripped) {
				return Classification{Zone: element.ZoneSectionHeading, Confidence: 0.8, Method: "text_pattern"}, true
			}
		}
	}
	if strings.HasPrefix(strings.ToLower(stripped), "abstract") {
		return Classification{Zone: element.ZoneAbstract, Confidence: 0.85, Method: "text_pattern"}, true
	}
	return Classification{}, false
}

// classifyByPosition is priority 4: relative-position rules for page
// numbers, footers, headers, and footnotes.
func classifyByPosition(e element.Element, page PageDims) (Classification, bool) {
	if page.Height <= 0 || page.Width <= 0 {
		return Classification{}, false
	}
	relY1 := float64(e.BBox.Y1) / float64(page.Height)
	relHeight := float64(e.BBox.Height()) / float64(page.Height)
	relX1 := float64(e.BBox.X1) / float64(page.Width)
	relX2 := float64(e.BBox.X2) / float64(page.Width)
	centerX := (relX1 + relX2) / 2

	switch {
	case relY1 > 0.92 && relHeight < 0.03 && centerX > 0.4 && centerX < 0.6:
		return Classification{Zone: element.ZonePageNumber, Confidence: 0.85, Method: "position"}, true
	case relY1 > 0.9 && relHeight < 0.08:
		return Classification{Zone: element.ZoneFooter, Confidence: 0.7, Method: "position"}, true
	case float64(e.BBox.Y2)/float64(page.Height) < 0.1 && relHeight < 0.08:
		return Classification{Zone: element.ZoneHeader, Confidence: 0.7, Method: "position"}, true
	case relY1 > 0.85 && relHeight < 0.12:
		return Classification{Zone: element.ZoneFootnote, Confidence: 0.7, Method: "position"}, true
	}
	return Classification{}, false
}

// classifyByGeometry is priority 5: label-assisted rules for figures
// (label-confirmed, always a figure) and equations (wide-and-short and
// wider than 30% of the page; horizontal position is not checked).
func classifyByGeometry(e element.Element, page PageDims) (Classification, bool) {
	width, height := e.BBox.Width(), e.BBox.Height()
	if width <= 0 || height <= 0 {
		return Classification{}, false
	}
	label := strings.ToLower(strings.TrimSpace(e.Label))
	if label == "figure" {
		return Classification{Zone: element.ZoneFigure, Confidence: 0.9, Method: "geometry"}, true
	}

	if page.Width <= 0 || page.Height <= 0 {
		return Classification{}, false
	}
	aspectRatio := float64(width) / float64(height)
	relWidth := float64(width) / float64(page.Width)
	relHeight := float64(height) / float64(page.Height)
	if aspectRatio > 0.7 && relHeight < 0.1 && relWidth > 0.3 && (label == "equation" || label == "formula") {
		return Classification{Zone: element.ZoneEquation, Confidence: 0.8, Method: "geometry"}, true
	}
	return Classification{}, false
}

// Classify runs the priority cascade over one element (spec.md §4.4).
// repeated is the RepeatedGroups map package filters produces from the
// document's cross-page repetition pass; pass a nil or empty map when
// repetition detection isn't in use.
func Classify(e element.Element, page PageDims, repeated filters.RepeatedGroups) Classification {
	if e.TextContent != "" && len(repeated) > 0 {
		if zone, ok := repeated[filters.NormalizeText(e.TextContent)]; ok {
			return Classification{Zone: zone, Confidence: 0.95, Method: "repetition"}
		}
	}

	labelResult, hasLabel := classifyByLabel(e)
	if hasLabel && labelResult.Confidence >= 0.8 {
		return labelResult
	}
	patternResult, hasPattern := classifyByTextPattern(e)
	if hasPattern && patternResult.Confidence >= 0.8 {
		return patternResult
	}
	positionResult, hasPosition := classifyByPosition(e, page)
	if hasPosition && positionResult.Confidence >= 0.7 {
		return positionResult
	}
	geometryResult, hasGeometry := classifyByGeometry(e, page)
	if hasGeometry && geometryResult.Confidence >= 0.7 {
		return geometryResult
	}

	// None of the floors were met outright; fall back to whichever rule
	// did fire, in priority order, before the final main_text default.
	switch {
	case hasLabel:
		return labelResult
	case hasPattern:
		return patternResult
	case hasPosition:
		return positionResult
	case hasGeometry:
		return geometryResult
	}
	return Classification{Zone: element.ZoneMainText, Confidence: 0.5, Method: "fallback"}
}

// ClassifyAll annotates every element's Zone, ZoneConfidence, and
// ZoneMethod fields in place, consulting pages for each element's page
// dimensions by PageNumber.
func ClassifyAll(elements []element.Element, pages map[int]PageDims, repeated filters.RepeatedGroups) {
	for i := range elements {
		c := Classify(elements[i], pages[elements[i].PageNumber], repeated)
		elements[i].Zone = c.Zone
		elements[i].ZoneConfidence = c.Confidence
		elements[i].ZoneMethod = c.Method
	}
}
