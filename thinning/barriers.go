package thinning

import "strings"

// barrierLabels is the closed set of labels that may never be absorbed
// into a paragraph and always terminate the current merge run (spec.md
// §4.8).
var barrierLabels = map[string]bool{
	"title":         true,
	"subtitle":      true,
	"heading":       true,
	"sub_title":     true,
	"equation":      true,
	"formula":       true,
	"image":         true,
	"figure":        true,
	"table":         true,
	"tablecaption":  true,
	"tablefootnote": true,
	"imagecaption":  true,
	"caption":       true,
}

// isBarrier reports whether label is one of the barrier labels.
func isBarrier(label string) bool {
	return barrierLabels[strings.ToLower(strings.TrimSpace(label))]
}

// isText reports whether label is the plain "text" label eligible for
// paragraph merging.
func isText(label string) bool {
	return strings.ToLower(strings.TrimSpace(label)) == "text"
}
