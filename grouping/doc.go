// Package grouping implements C6: column detection, line and block
// grouping, and caption-to-figure linking. All four operate on a
// single page's worth of elements at a time.
//
//   - Columns: an X-axis projection histogram (5px bins) finds "valleys" -
//     zero-count bin runs at least page_width*0.05 wide - that split the
//     page; columns narrower than page_width*0.15 are discarded.
//   - Lines: elements sorted by y1, a new line starting whenever the gap
//     from the running line bottom exceeds 0.3 times the median line
//     height.
//   - Blocks: consecutive lines merge until their y-gap exceeds 1.5 times
//     the median line height.
//   - Captions: each caption is linked to the nearest figure/table whose
//     horizontal centre lies within half its own width of the caption's
//     centre and whose nearest vertical edge is within 0.15 times the
//     figure's height.
package grouping
