package thinning

import (
	"testing"

	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/geometry"
)

func box(x1, y1, x2, y2 int) geometry.BBox { return geometry.BBox{X1: x1, Y1: y1, X2: x2, Y2: y2} }

func TestIsBarrierAndIsText(t *testing.T) {
	if !isBarrier("Title") || !isBarrier("caption") || isBarrier("text") {
		t.Fatalf("isBarrier classification wrong")
	}
	if !isText("TEXT") || isText("title") {
		t.Fatalf("isText classification wrong")
	}
}

// TestThinBarrierPreservation exercises the spec's barrier-preservation
// scenario: a title between two text runs prevents them from merging
// across it, and the title itself passes through unmerged.
func TestThinBarrierPreservation(t *testing.T) {
	elements := []element.Element{
		{Label: "text", PageNumber: 1, BBox: box(0, 0, 400, 20), TextContent: "a"},
		{Label: "title", PageNumber: 1, BBox: box(0, 30, 400, 60), TextContent: "Heading"},
		{Label: "text", PageNumber: 1, BBox: box(0, 70, 400, 90), TextContent: "b"},
	}
	out := Thin(elements, DefaultConfig())
	if len(out) != 3 {
		t.Fatalf("Thin produced %d elements, want 3 (no merge across barrier): %+v", len(out), out)
	}
	if out[1].Label != "title" {
		t.Fatalf("barrier element mutated: %+v", out[1])
	}
}

// TestThinMergesAdjacentParagraphText exercises the spec's paragraph
// merge scenario: two vertically close, horizontally aligned text
// elements on the same page merge into one paragraph.
func TestThinMergesAdjacentParagraphText(t *testing.T) {
	elements := []element.Element{
		{Label: "text", PageNumber: 1, BBox: box(0, 0, 400, 20), TextContent: "line one", TextFull: "line one"},
		{Label: "text", PageNumber: 1, BBox: box(0, 25, 400, 45), TextContent: "line two", TextFull: "line two"},
	}
	cfg := Config{UseDynamicGap: false, GapThresholdMultiplier: 2.0}
	out := Thin(elements, cfg)
	if len(out) != 1 {
		t.Fatalf("Thin produced %d elements, want 1 merged paragraph: %+v", len(out), out)
	}
	if out[0].Label != "paragraph" {
		t.Fatalf("merged label = %q, want paragraph", out[0].Label)
	}
	if out[0].MergedFrom != 2 {
		t.Fatalf("MergedFrom = %d, want 2", out[0].MergedFrom)
	}
	if out[0].TextContent != "line one line two" {
		t.Fatalf("TextContent = %q, want space-joined", out[0].TextContent)
	}
	if out[0].TextFull != "line one\nline two" {
		t.Fatalf("TextFull = %q, want newline-joined", out[0].TextFull)
	}
	if out[0].BBox != box(0, 0, 400, 45) {
		t.Fatalf("BBox = %+v, want union", out[0].BBox)
	}
}

// TestThinNeverMergesAcrossPages exercises the spec's no-cross-page-merge
// scenario: two otherwise-mergeable text elements on different pages stay
// separate.
func TestThinNeverMergesAcrossPages(t *testing.T) {
	elements := []element.Element{
		{Label: "text", PageNumber: 1, BBox: box(0, 0, 400, 20), TextContent: "a"},
		{Label: "text", PageNumber: 2, BBox: box(0, 25, 400, 45), TextContent: "b"},
	}
	cfg := Config{UseDynamicGap: false, GapThresholdMultiplier: 2.0}
	out := Thin(elements, cfg)
	if len(out) != 2 {
		t.Fatalf("Thin produced %d elements, want 2 (no cross-page merge): %+v", len(out), out)
	}
}

func TestThinRejectsMisalignedText(t *testing.T) {
	elements := []element.Element{
		{Label: "text", PageNumber: 1, BBox: box(0, 0, 100, 20), TextContent: "a"},
		{Label: "text", PageNumber: 1, BBox: box(300, 25, 500, 45), TextContent: "b"},
	}
	cfg := Config{UseDynamicGap: false, GapThresholdMultiplier: 2.0}
	out := Thin(elements, cfg)
	if len(out) != 2 {
		t.Fatalf("Thin produced %d elements, want 2 (misaligned, no merge): %+v", len(out), out)
	}
}

func TestThinRejectsLargeGap(t *testing.T) {
	elements := []element.Element{
		{Label: "text", PageNumber: 1, BBox: box(0, 0, 400, 20), TextContent: "a"},
		{Label: "text", PageNumber: 1, BBox: box(0, 500, 400, 520), TextContent: "b"},
	}
	cfg := Config{UseDynamicGap: false, GapThresholdMultiplier: 2.0}
	out := Thin(elements, cfg)
	if len(out) != 2 {
		t.Fatalf("Thin produced %d elements, want 2 (gap too large): %+v", len(out), out)
	}
}

func TestThinEmptyInput(t *testing.T) {
	if got := Thin(nil, DefaultConfig()); got != nil {
		t.Fatalf("Thin(nil) = %v, want nil", got)
	}
}

func TestGapThresholdDynamicFallsBackWithNoTextGaps(t *testing.T) {
	elements := []element.Element{
		{Label: "title", PageNumber: 1, BBox: box(0, 0, 400, 0)},
	}
	got := gapThreshold(elements, DefaultConfig())
	if got != defaultMedianLineHeight*2.0 {
		t.Fatalf("gapThreshold = %v, want fallback %v", got, defaultMedianLineHeight*2.0)
	}
}

func TestMedianLineHeightFallsBackWhenNoPositiveHeights(t *testing.T) {
	if got := medianLineHeight(nil); got != defaultMedianLineHeight {
		t.Fatalf("medianLineHeight(nil) = %v, want %v", got, defaultMedianLineHeight)
	}
}
