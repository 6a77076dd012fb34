// Package geometry provides the integer bounding-box primitives shared by
// every stage of the spatial layout analyzer: overlap and gap measurement,
// area and centre calculation, and conversion between the OCR front-end's
// normalised 0..999 coordinate grid and page pixel space.
//
// All operations are integer-safe and total: a degenerate box (zero or
// negative area) never panics, it simply reports zero overlap, zero area,
// and zero gap. Geometry carries no notion of "page" beyond the width and
// height passed explicitly to Normalize/Denormalize — there is no shared
// state between calls.
package geometry
