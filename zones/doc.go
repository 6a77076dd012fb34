// Package zones implements C4: the zone classifier.
//
// Classify runs a priority cascade over a single element; the first rule
// whose confidence meets its floor wins (spec.md §4.4):
//
//  1. Repetition (conf 0.95): the element's normalised text matches a
//     header/footer group detected by package filters.
//  2. Label (conf 0.8): a fixed OCR-label-to-zone table.
//  3. Text pattern (conf 0.8-0.9): regexes for captions, page numbers,
//     section numbering, and the literal "abstract" prefix.
//  4. Position (conf 0.7-0.85): relative y/height/centring rules for
//     page numbers, footers, headers, and footnotes.
//  5. Geometry (conf 0.7-0.9): label-assisted rules for figures and
//     equations.
//  6. Fallback (conf 0.5): main_text.
//
// Every element leaves Classify annotated with its zone, the confidence
// that produced it, and the winning method's name.
package zones
