package ground

import (
	"errors"
	"strings"
	"testing"
)

const sample = `<|ref|>title<|/ref|><|det|>[[100,50,800,100]]<|/det|># Spatial Layout Analysis
<|ref|>text<|/ref|><|det|>[[100,150,800,300],[100,320,800,400]]<|/det|>This is the body text.
It spans multiple lines.
<|ref|>figure<|/ref|><|det|>[[200,450,600,700]]<|/det|><center>Figure 1: a diagram</center>`

func TestExtractHappyPath(t *testing.T) {
	page := PageInfo{Number: 1, Width: 1000, Height: 1000}
	result, err := Extract(sample, page)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if result.Warnings != nil {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}

	// 1 title + 2 text tuples + 1 figure = 4 elements.
	if len(result.Elements) != 4 {
		t.Fatalf("got %d elements, want 4", len(result.Elements))
	}

	title := result.Elements[0]
	if title.Label != "title" {
		t.Errorf("title label = %q, want %q", title.Label, "title")
	}
	if title.TextContent != "Spatial Layout Analysis" {
		t.Errorf("title TextContent = %q, want heading hash stripped", title.TextContent)
	}

	figure := result.Elements[3]
	if figure.TextContent != "Figure 1: a diagram" {
		t.Errorf("figure TextContent = %q, want <center> stripped", figure.TextContent)
	}

	// Both text tuples share the same label/text, differing only by bbox.
	if result.Elements[1].TextContent != result.Elements[2].TextContent {
		t.Errorf("text tuples from the same block should share text_content")
	}

	for _, e := range result.Elements {
		if e.PageNumber != 1 {
			t.Errorf("element PageNumber = %d, want 1", e.PageNumber)
		}
		if !e.BBox.IsValid() {
			t.Errorf("element bbox is not valid: %+v", e.BBox)
		}
		if e.ColumnIndex != -1 {
			t.Errorf("ColumnIndex should default to -1, got %d", e.ColumnIndex)
		}
	}
}

func TestExtractRejectsInvalidPageInfo(t *testing.T) {
	cases := []PageInfo{
		{Number: 0, Width: 100, Height: 100},
		{Number: 1, Width: 0, Height: 100},
		{Number: 1, Width: 100, Height: 0},
		{Number: -1, Width: 100, Height: 100},
	}
	for _, p := range cases {
		_, err := Extract(sample, p)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("Extract(%+v) error = %v, want *InvalidInputError", p, err)
		}
	}
}

func TestExtractSkipsMalformedBlockAndContinues(t *testing.T) {
	raw := `<|ref|>text<|/ref|><|det|>not-coordinates<|/det|>broken block
<|ref|>text<|/ref|><|det|>[[10,10,200,200]]<|/det|>a good block`

	page := PageInfo{Number: 1, Width: 1000, Height: 1000}
	result, err := Extract(raw, page)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if result.Warnings == nil {
		t.Fatal("expected warnings for malformed block, got none")
	}
	if !strings.Contains(result.Warnings.Error(), "no coordinate tuples parsed") {
		t.Errorf("warnings = %v, want mention of unparsed coordinates", result.Warnings)
	}
	if len(result.Elements) != 1 {
		t.Fatalf("got %d elements, want 1 (malformed block skipped)", len(result.Elements))
	}
}

func TestExtractSkipsDegenerateBBox(t *testing.T) {
	raw := `<|ref|>text<|/ref|><|det|>[[100,100,100,100]]<|/det|>zero area tuple`
	page := PageInfo{Number: 1, Width: 1000, Height: 1000}
	result, err := Extract(raw, page)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if result.Warnings == nil {
		t.Fatal("expected a warning for the degenerate bbox")
	}
	if len(result.Elements) != 0 {
		t.Fatalf("got %d elements, want 0", len(result.Elements))
	}
}

func TestExtractEmptyInput(t *testing.T) {
	page := PageInfo{Number: 1, Width: 1000, Height: 1000}
	result, err := Extract("", page)
	if err != nil {
		t.Fatalf("Extract(\"\") returned error: %v", err)
	}
	if len(result.Elements) != 0 || result.Warnings != nil {
		t.Fatalf("Extract(\"\") = %+v, want zero elements and no warnings", result)
	}
}

func TestDeriveTextContentFallsBackToLabel(t *testing.T) {
	if got := deriveTextContent("   \n   \n", "figure"); got != "figure" {
		t.Errorf("deriveTextContent with blank segment = %q, want label fallback", got)
	}
	if got := deriveTextContent("<b></b>", "caption"); got != "caption" {
		t.Errorf("deriveTextContent with tag-only segment = %q, want label fallback", got)
	}
}
