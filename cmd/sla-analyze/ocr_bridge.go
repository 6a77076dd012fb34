package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/DuyTa506/docuflow/geometry"
)

// ocrCoordQuad matches one [x1,y1,x2,y2] pixel tuple inside a <|det|>
// payload, the same shape package ground parses, but ocr.RecognizeGrounded
// emits Tesseract's native pixel boxes rather than the 0..999 grid (see
// its doc comment). This rewrites each tuple in place to grid space so
// the stream can be handed to ground.Extract unmodified.
var ocrCoordQuad = regexp.MustCompile(`\[\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*\]`)

// normalizeGroundedStream rewrites every pixel-space bbox in raw to the
// 0..999 grid for a page of the given pixel dimensions.
func normalizeGroundedStream(raw string, pageWidth, pageHeight int) string {
	return ocrCoordQuad.ReplaceAllStringFunc(raw, func(match string) string {
		sub := ocrCoordQuad.FindStringSubmatch(match)
		if sub == nil {
			return match
		}
		x1, _ := strconv.Atoi(sub[1])
		y1, _ := strconv.Atoi(sub[2])
		x2, _ := strconv.Atoi(sub[3])
		y2, _ := strconv.Atoi(sub[4])

		box := geometry.NormalizeBBox(geometry.BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}, pageWidth, pageHeight)
		return fmt.Sprintf("[%d,%d,%d,%d]", box.X1, box.Y1, box.X2, box.Y2)
	})
}
