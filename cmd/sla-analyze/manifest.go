package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/ground"
	"github.com/DuyTa506/docuflow/ocr"
	"github.com/DuyTa506/docuflow/spatial"
)

// PageManifest describes one page's source: either a grounded text file
// (ready for ground.Extract) or an image file to run through package ocr
// first. Exactly one of TextFile or ImageFile should be set.
type PageManifest struct {
	Number    int    `yaml:"number"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TextFile  string `yaml:"text_file,omitempty"`
	ImageFile string `yaml:"image_file,omitempty"`
}

// DocumentManifest is the CLI's --input file shape: an ordered list of
// pages, each resolving to a grounded text stream one way or another
// (spec.md §1's OCR front-end is an external collaborator; the manifest
// is how the CLI, a thin surface around the core, names that
// collaborator's output per page).
type DocumentManifest struct {
	// Language is the gosseract recognition language passed to ocr.New
	// for every image page (empty defaults to "eng").
	Language string         `yaml:"language,omitempty"`
	Pages    []PageManifest `yaml:"pages"`
}

// LoadManifest reads and parses a document manifest from path.
func LoadManifest(path string) (DocumentManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DocumentManifest{}, fmt.Errorf("unable to read input manifest: %w", err)
	}

	var manifest DocumentManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return DocumentManifest{}, fmt.Errorf("unable to parse input manifest: %w", err)
	}
	if len(manifest.Pages) == 0 {
		return manifest, fmt.Errorf("input manifest lists no pages")
	}
	return manifest, nil
}

// BuildElements resolves every page in manifest to a grounded text stream
// (via package ocr for an image page, or read directly for a text page),
// runs ground.Extract over each, and returns the concatenated elements
// plus the per-page dimensions spatial.Analyze needs. Malformed-block
// warnings from ground.Extract are logged and do not abort the page
// (spec.md §7); a missing or unreadable source file does abort, since
// that is an operational error the CLI user must fix, not a data-quality
// signal the core tolerates.
func BuildElements(manifest DocumentManifest, log *zap.Logger) ([]element.Element, []spatial.PageInfo, error) {
	var allElements []element.Element
	pages := make([]spatial.PageInfo, 0, len(manifest.Pages))

	var ocrClient *ocr.Client
	defer func() {
		if ocrClient != nil {
			_ = ocrClient.Close()
		}
	}()

	for _, pm := range manifest.Pages {
		pages = append(pages, spatial.PageInfo{PageNumber: pm.Number, Width: pm.Width, Height: pm.Height})

		raw, err := resolvePageText(pm, manifest.Language, &ocrClient)
		if err != nil {
			return nil, nil, fmt.Errorf("page %d: %w", pm.Number, err)
		}

		result, err := ground.Extract(raw, ground.PageInfo{Number: pm.Number, Width: pm.Width, Height: pm.Height})
		if err != nil {
			return nil, nil, fmt.Errorf("page %d: %w", pm.Number, err)
		}
		if result.Warnings != nil {
			for _, w := range multierr.Errors(result.Warnings) {
				log.Warn("malformed grounding block skipped", zap.Int("page", pm.Number), zap.Error(w))
			}
		}

		allElements = append(allElements, result.Elements...)
	}

	return allElements, pages, nil
}

func resolvePageText(pm PageManifest, language string, client **ocr.Client) (string, error) {
	if pm.TextFile != "" {
		data, err := os.ReadFile(pm.TextFile)
		if err != nil {
			return "", fmt.Errorf("unable to read text file %q: %w", pm.TextFile, err)
		}
		return string(data), nil
	}

	if pm.ImageFile == "" {
		return "", fmt.Errorf("neither text_file nor image_file set")
	}

	if *client == nil {
		c, err := ocr.New(language)
		if err != nil {
			return "", fmt.Errorf("unable to start OCR client: %w", err)
		}
		*client = c
	}

	imageData, err := os.ReadFile(pm.ImageFile)
	if err != nil {
		return "", fmt.Errorf("unable to read image file %q: %w", pm.ImageFile, err)
	}

	raw, err := (*client).RecognizeGrounded(imageData)
	if err != nil {
		return "", err
	}
	return normalizeGroundedStream(raw, pm.Width, pm.Height), nil
}
