// Package filters implements C3: three independent element filters applied
// in sequence, each returning a (kept, dropped) split of its input.
//
//   - Cross-page repetition: detects text repeated across at least
//     MinRepeatPages distinct pages (running headers/footers) and removes
//     elements belonging to a qualifying group once it's classified as
//     header or footer by its mean relative y position.
//   - Noise: drops elements whose area, relative to the page's area, falls
//     outside [MinAreaRatio, MaxAreaRatio] - too small to be content, or
//     large enough to be a scanned background.
//   - Margin: off by default; drops small elements lying entirely within
//     the left or right MarginRatio strip of the page.
//
// Page area, when not supplied by the caller, is estimated by
// geometry.EstimatePageArea (spec.md §4.3).
package filters
