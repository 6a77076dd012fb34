package hierarchy

import "strings"

// Weights combines the five feature scores into a composite spatial
// score. The zero value is not valid; use DefaultWeights.
type Weights struct {
	Label      float64
	Whitespace float64
	Size       float64
	Vertical   float64
	Indent     float64
}

// DefaultWeights returns the weighting spec.md §4.7 uses unless a caller
// overrides it.
func DefaultWeights() Weights {
	return Weights{
		Label:      0.40,
		Whitespace: 0.25,
		Size:       0.15,
		Vertical:   0.10,
		Indent:     0.10,
	}
}

// labelWeights is the fixed table keyed on lowercase label.
var labelWeights = map[string]float64{
	"title":       1.0,
	"sub_title":   0.8,
	"subtitle":    0.8,
	"heading":     0.7,
	"header":      0.65,
	"table":       0.4,
	"image":       0.4,
	"figure":      0.4,
	"formula":     0.4,
	"equation":    0.4,
	"text":        0.3,
	"paragraph":   0.3,
	"caption":     0.2,
	"footer":      0.1,
	"page_number": 0.05,
}

const defaultLabelWeight = 0.3

// LabelWeight looks up a label's fixed hierarchy weight, defaulting to
// 0.3 for labels the table doesn't name.
func LabelWeight(label string) float64 {
	key := strings.ToLower(strings.TrimSpace(label))
	if w, ok := labelWeights[key]; ok {
		return w
	}
	return defaultLabelWeight
}
