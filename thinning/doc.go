// Package thinning merges consecutive text elements on the same page into
// single paragraph elements (spec.md §4.8).
//
// A closed set of barrier labels (titles, headings, figures, tables,
// captions, equations) may never be absorbed into a paragraph and always
// terminates the current merge run. Between barriers, consecutive "text"
// elements merge when they sit close enough vertically and are aligned
// horizontally, using either a fixed or document-adaptive gap threshold.
package thinning
