// Package spatial wires packages geometry, ground, filters, zones, order,
// grouping, hierarchy, thinning, and doctree into the single pipeline
// entry point spec.md describes end to end: a stream of layout elements
// in, a rooted document tree out.
//
// Analyze owns no state across calls — every tunable comes in through
// Config — so a caller is free to run multiple documents concurrently
// without synchronisation (spec.md §5).
package spatial
