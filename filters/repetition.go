package filters

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DuyTa506/docuflow/element"
)

var textLower = cases.Lower(language.Und)

// datePattern erases common numeric date shapes (e.g. "12/31/2024",
// "2024-01-05") before digit runs are stripped, so the separators don't
// survive as leftover noise.
var datePattern = regexp.MustCompile(`\b\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4}\b`)

// pagePattern erases "page N" / "page N of M" forms, case-insensitively
// (text is already lower-cased by the time this runs).
var pagePattern = regexp.MustCompile(`\bpage\s+\d+(\s+of\s+\d+)?\b`)

// digitRun erases any remaining run of digits.
var digitRun = regexp.MustCompile(`\d+`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeText reduces text to a comparison key: lower-cased, dates and
// "page N" forms and any remaining digit runs erased, then trimmed and
// collapsed to single spaces (spec.md §4.3). Exported so package zones can
// look an element's text up in a RepeatedGroups map using the same key.
func NormalizeText(text string) string {
	s := textLower.String(text)
	s = datePattern.ReplaceAllString(s, "")
	s = pagePattern.ReplaceAllString(s, "")
	s = digitRun.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func normalizeForRepetition(text string) string { return NormalizeText(text) }

// RepeatedGroups maps a normalized text key to the header/footer zone a
// qualifying repeated group was classified as. Package zones consults this
// independently of whether FilterRepetition goes on to remove the group's
// elements, since the two stages are independently toggleable (spec.md §6
// use_filters / use_zone_classification).
type RepeatedGroups map[string]element.Zone

// DetectRepeatedGroups groups elements by normalized text, keeping only
// groups that appear on at least cfg.MinRepeatPages distinct pages, and
// classifies each qualifying group as header or footer by its mean
// relative-y position (spec.md §4.3). Groups whose mean position lands in
// neither band are omitted - they repeat, but aren't a running
// header/footer.
func DetectRepeatedGroups(elements []element.Element, pageHeights map[int]int, cfg Config) RepeatedGroups {
	type group struct {
		indices []int
		pages   map[int]bool
	}
	groups := make(map[string]*group)

	for i, e := range elements {
		if e.TextContent == "" {
			continue
		}
		key := normalizeForRepetition(e.TextContent)
		g, ok := groups[key]
		if !ok {
			g = &group{pages: make(map[int]bool)}
			groups[key] = g
		}
		g.indices = append(g.indices, i)
		g.pages[e.PageNumber] = true
	}

	result := make(RepeatedGroups)
	for key, g := range groups {
		if len(g.pages) < cfg.MinRepeatPages {
			continue
		}

		var sumRatio float64
		var n int
		for _, idx := range g.indices {
			e := elements[idx]
			h := pageHeights[e.PageNumber]
			if h <= 0 {
				continue
			}
			sumRatio += float64(e.BBox.CenterY()) / float64(h)
			n++
		}
		if n == 0 {
			continue
		}
		meanRatio := sumRatio / float64(n)

		switch {
		case meanRatio < 0.15:
			result[key] = element.ZoneHeader
		case meanRatio > 0.85:
			result[key] = element.ZoneFooter
		}
	}
	return result
}

// FilterRepetition removes every element belonging to a qualifying
// repeated header/footer group (spec.md §4.3).
func FilterRepetition(elements []element.Element, pageHeights map[int]int, cfg Config) ([]element.Element, int) {
	groups := DetectRepeatedGroups(elements, pageHeights, cfg)

	kept := make([]element.Element, 0, len(elements))
	dropped := 0
	for _, e := range elements {
		if e.TextContent != "" {
			if _, ok := groups[normalizeForRepetition(e.TextContent)]; ok {
				dropped++
				continue
			}
		}
		kept = append(kept, e)
	}
	return kept, dropped
}
