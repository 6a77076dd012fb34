// Package element defines LayoutElement, the unit of work threaded through
// every stage of the spatial layout analyzer (spec.md §3), and the small
// closed enumerations attached to it by later stages: Zone (C4), and
// LevelSource (C7's markdown cross-check provenance).
//
// Elements are constructed once by package ground (C2) and are immutable
// with respect to geometry and label thereafter; later stages only add
// annotations (spec.md §3 "Lifecycle"). Thinning (C8) is the one stage that
// replaces elements outright, folding a run of text elements into a single
// synthetic paragraph element.
package element
