// Package doctree assembles a flat, level-annotated element stream into a
// rooted document tree (spec.md §4.9).
//
// A synthetic root at level -1 anchors the tree. Elements are folded in
// one pass, in reading order, using a stack of open ancestors: each new
// element becomes a child of the closest preceding ancestor with a
// strictly lower level. The result carries pipeline metadata describing
// which stages ran and what they did, so a caller can audit a tree
// without re-deriving the pipeline's behaviour from scratch.
package doctree
