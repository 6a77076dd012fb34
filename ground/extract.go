package ground

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/geometry"
)

// groundingBlock matches one <|ref|>LABEL<|/ref|><|det|>COORDS<|/det|> tag,
// non-greedily so adjacent blocks don't swallow each other (spec.md §6).
var groundingBlock = regexp.MustCompile(`(?s)<\|ref\|>(.*?)<\|/ref\|><\|det\|>(.*?)<\|/det\|>`)

// coordQuad matches a single [x1,y1,x2,y2] tuple inside a <|det|> payload.
var coordQuad = regexp.MustCompile(`\[\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*\]`)

// headingHash strips a leading markdown heading marker ("#" through "######"
// followed by whitespace) from a text_content candidate.
var headingHash = regexp.MustCompile(`^#{1,6}\s+`)

// inlineTag strips the closed set of inline tags the grounded format is
// known to emit, plus a generic fallback for anything else tag-shaped
// (spec.md §4.2).
var inlineTag = regexp.MustCompile(`(?i)</?(?:center|b|i|strong|em|br)\s*/?>`)
var anyTag = regexp.MustCompile(`<[^>]+>`)

// PageInfo describes the page a grounded text stream was produced for: its
// pixel dimensions (used to rescale the 0..999 grid) and its 1-based
// position in the document.
type PageInfo struct {
	Number int
	Width  int
	Height int
}

// validate checks the fatal input invariants spec.md §7 places on PageInfo.
func (p PageInfo) validate() error {
	if p.Number < 1 {
		return &InvalidInputError{Field: "Number", Reason: "page number must be >= 1"}
	}
	if p.Width <= 0 {
		return &InvalidInputError{Field: "Width", Reason: "page width must be positive"}
	}
	if p.Height <= 0 {
		return &InvalidInputError{Field: "Height", Reason: "page height must be positive"}
	}
	return nil
}

// Result is the outcome of extracting one page's grounded text.
type Result struct {
	Elements []element.Element
	// Warnings aggregates every MalformedGroundingError encountered, via
	// go.uber.org/multierr. Nil when every block parsed cleanly.
	Warnings error
}

// Extract parses raw, a grounded token stream (spec.md §6), into layout
// elements for the page described by page. Coordinates are denormalised
// from the 0..999 grid to page.Width x page.Height pixel space.
//
// Extract returns an error only for a violated PageInfo invariant
// (InvalidInputError); per-block parse failures are collected into
// Result.Warnings and do not abort extraction.
func Extract(raw string, page PageInfo) (Result, error) {
	if err := page.validate(); err != nil {
		return Result{}, err
	}

	matches := groundingBlock.FindAllStringSubmatchIndex(raw, -1)
	var elements []element.Element
	var warnings error

	for i, m := range matches {
		blockEnd := m[1]
		label := strings.TrimSpace(raw[m[2]:m[3]])
		coordsStr := raw[m[4]:m[5]]

		segStart := blockEnd
		segEnd := len(raw)
		if i+1 < len(matches) {
			segEnd = matches[i+1][0]
		}
		textFull := strings.TrimSpace(raw[segStart:segEnd])
		textContent := deriveTextContent(textFull, label)

		quads := coordQuad.FindAllStringSubmatch(coordsStr, -1)
		if len(quads) == 0 {
			warnings = multierr.Append(warnings, &MalformedGroundingError{
				Label:  label,
				Reason: fmt.Sprintf("no coordinate tuples parsed from %q", coordsStr),
			})
			continue
		}

		for _, q := range quads {
			x1, err1 := strconv.Atoi(q[1])
			y1, err2 := strconv.Atoi(q[2])
			x2, err3 := strconv.Atoi(q[3])
			y2, err4 := strconv.Atoi(q[4])
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				warnings = multierr.Append(warnings, &MalformedGroundingError{
					Label:  label,
					Reason: "coordinate tuple contains a non-integer component",
				})
				continue
			}

			grid := geometry.NewBBox(x1, y1, x2, y2)
			px := geometry.DenormalizeBBox(grid, page.Width, page.Height)
			if !px.IsValid() {
				warnings = multierr.Append(warnings, &MalformedGroundingError{
					Label:  label,
					Reason: fmt.Sprintf("denormalised bbox %+v has non-positive area", px),
				})
				continue
			}

			elements = append(elements, element.Element{
				Label:       label,
				BBox:        px,
				PageNumber:  page.Number,
				TextContent: textContent,
				TextFull:    textFull,
				ColumnIndex: -1,
			})
		}
	}

	return Result{Elements: elements, Warnings: warnings}, nil
}

// deriveTextContent reduces a block's full inter-tag text segment to its
// first non-empty line, then strips a leading markdown heading marker and
// the closed set of inline tags the grounded format emits (spec.md §4.2).
// Falls back to label when nothing but whitespace survives.
func deriveTextContent(textFull, label string) string {
	line := firstNonEmptyLine(textFull)
	if line == "" {
		return label
	}
	line = headingHash.ReplaceAllString(line, "")
	line = inlineTag.ReplaceAllString(line, "")
	line = anyTag.ReplaceAllString(line, "")
	line = strings.TrimSpace(line)
	if line == "" {
		return label
	}
	return line
}

// firstNonEmptyLine returns the first line of s with non-whitespace content,
// trimmed, or "" if every line is blank.
func firstNonEmptyLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
