//go:build ocr

// Package ocr turns page images into the grounded text stream the spatial
// layout analyzer consumes (see package ground).
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for the one recognition path the pipeline needs:
// a grounded text stream, not plain text.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client configured for the given recognition
// language (gosseract's "+"-separated form, e.g. "eng+fra"). An empty
// language defaults to "eng". The client should be closed when no longer
// needed to release resources.
func New(language string) (*Client, error) {
	if language == "" {
		language = "eng"
	}
	client := gosseract.NewClient()
	if err := client.SetLanguage(language); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to set language %q: %w", language, err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeGrounded performs OCR on a page image and renders the result as
// the grounded text stream described in spec.md §6: one
// "<|ref|>text<|/ref|><|det|>[[x1,y1,...]]<|/det|>TEXT" block per detected
// text line. Tesseract has no notion of title/table/figure zones, so every
// line is tagged with the generic "text" label; semantic zone assignment is
// left entirely to package zones (C4), which runs downstream of extraction.
// Coordinates are Tesseract's native pixel boxes, not yet on the 0..999
// grid — callers normalise with geometry.Normalize before handing the
// stream to package ground.
func (c *Client) RecognizeGrounded(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return "", fmt.Errorf("OCR bounding box extraction failed: %w", err)
	}

	var sb strings.Builder
	for _, b := range boxes {
		word := strings.TrimSpace(b.Word)
		if word == "" {
			continue
		}
		x1, y1 := b.Box.Min.X, b.Box.Min.Y
		x2, y2 := b.Box.Max.X, b.Box.Max.Y
		fmt.Fprintf(&sb, "<|ref|>text<|/ref|><|det|>[[%d,%d,%d,%d]]<|/det|>%s", x1, y1, x2, y2, word)
	}

	return sb.String(), nil
}
