// Package ground implements the C2 text extractor: parsing the raw grounded
// token stream produced by an OCR front-end into []element.Element.
//
// # Wire format
//
// The input is a sequence of blocks of the form
//
//	<|ref|>LABEL<|/ref|><|det|>[[x1,y1,x2,y2],[x1,y1,x2,y2],...]<|/det|>TEXT_SEGMENT
//
// where coordinates are integers on the normalised 0..999 grid (package
// geometry) and TEXT_SEGMENT runs to the next <|ref|> block or end of input.
// Extract emits one element per coordinate tuple in a block, rescaling
// coordinates to pixel space with the caller-supplied page dimensions.
//
// # Failure semantics
//
// PageInfo violations (page number < 1, non-positive width or height) are
// rejected outright with an InvalidInputError: the caller must fix these
// before calling Extract. A <|det|> payload that doesn't parse as a
// coordinate list, or a coordinate tuple whose denormalised bbox has
// non-positive area, is reported as a MalformedGroundingError, collected
// with go.uber.org/multierr, and skipped; extraction continues with the
// remaining blocks.
package ground
