// Package hierarchy predicts each element's place in the document's
// heading structure (spec.md §4.7).
//
// Five geometric/label features are combined into a composite spatial
// score in [0,1]; the score is mapped to a hierarchy level 0 (document
// title) through 5 (supporting elements) using either fixed or
// per-document adaptive thresholds. An optional markdown cross-check then
// reconciles the spatial prediction against any "#"-heading syntax found
// in the element's text, producing the element's final level and a
// record of how that level was decided.
package hierarchy
