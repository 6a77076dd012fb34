package element

import "github.com/DuyTa506/docuflow/geometry"

// Zone is the functional classification assigned to an element by package
// zones (C4). The zero value, ZoneUnknown, is never a valid *output* of
// classification (the fallback rule always resolves to ZoneMainText) but is
// the correct zero value for an element that hasn't reached C4 yet.
type Zone int

// The closed set of zones spec.md §4.4 allows C4 to assign, plus
// ZoneUnknown for elements that have not yet been classified.
const (
	ZoneUnknown Zone = iota
	ZoneTitleBlock
	ZoneAuthorBlock
	ZoneAbstract
	ZoneSectionHeading
	ZoneMainText
	ZoneFigure
	ZoneTable
	ZoneCaption
	ZoneEquation
	ZoneFootnote
	ZoneHeader
	ZoneFooter
	ZonePageNumber
	ZoneSidebar
)

// String returns the wire-format name of the zone, matching spec.md §4.4's
// naming exactly (e.g. "title_block", "section_heading").
func (z Zone) String() string {
	switch z {
	case ZoneTitleBlock:
		return "title_block"
	case ZoneAuthorBlock:
		return "author_block"
	case ZoneAbstract:
		return "abstract"
	case ZoneSectionHeading:
		return "section_heading"
	case ZoneMainText:
		return "main_text"
	case ZoneFigure:
		return "figure"
	case ZoneTable:
		return "table"
	case ZoneCaption:
		return "caption"
	case ZoneEquation:
		return "equation"
	case ZoneFootnote:
		return "footnote"
	case ZoneHeader:
		return "header"
	case ZoneFooter:
		return "footer"
	case ZonePageNumber:
		return "page_number"
	case ZoneSidebar:
		return "sidebar"
	default:
		return "unknown"
	}
}

// Priority returns the zone's fixed reading-order priority (spec.md §4.4):
// lower values read first. Equal priorities mean the zone doesn't by
// itself decide ordering against a same-priority neighbour — rule 1 of the
// reading-order ladder (spec.md §4.5) falls through to geometric rules.
func (z Zone) Priority() int {
	switch z {
	case ZoneTitleBlock:
		return 0
	case ZoneAuthorBlock:
		return 1
	case ZoneAbstract:
		return 2
	case ZoneSectionHeading:
		return 3
	case ZoneMainText, ZoneEquation:
		return 4
	case ZoneFigure, ZoneTable:
		return 5
	case ZoneCaption:
		return 6
	case ZoneSidebar:
		return 7
	case ZoneFootnote:
		return 8
	case ZoneHeader:
		return 9
	case ZoneFooter, ZonePageNumber:
		return 10
	default: // ZoneUnknown
		return 5
	}
}

// LevelSource records how an element's FinalLevel was decided (spec.md
// §4.7's markdown cross-check).
type LevelSource int

const (
	// LevelSourceNone is the zero value: hierarchy scoring (C7) has not run.
	LevelSourceNone LevelSource = iota
	// LevelSourceSpatialOnly means the element had no markdown heading
	// syntax to cross-check against; FinalLevel is SpatialLevel verbatim.
	LevelSourceSpatialOnly
	// LevelSourceSpatialValidated means a markdown level was present and
	// agreed closely enough with the spatial prediction that the spatial
	// prediction was kept unchanged.
	LevelSourceSpatialValidated
	// LevelSourceBlended means the markdown and spatial levels disagreed
	// by more than 1 and FinalLevel is their rounded average.
	LevelSourceBlended
)

// String returns the level source's wire-format name ("spatial_only",
// "spatial_validated", "blended", or "none").
func (s LevelSource) String() string {
	switch s {
	case LevelSourceSpatialOnly:
		return "spatial_only"
	case LevelSourceSpatialValidated:
		return "spatial_validated"
	case LevelSourceBlended:
		return "blended"
	default:
		return "none"
	}
}

// Element is a single OCR-detected layout region, enriched in place by
// every pipeline stage after C2 (spec.md §3).
type Element struct {
	// ID is a dense, stage-assigned integer identity, not a stringy id
	// (spec.md §9). IDs are assigned once, across the whole document, by
	// AssignIDs immediately after extraction and before filtering.
	ID int

	Label       string
	BBox        geometry.BBox
	PageNumber  int
	TextContent string
	TextFull    string

	// Zone annotations, set by package zones (C4).
	Zone           Zone
	ZoneConfidence float64
	ZoneMethod     string

	// ColumnIndex is set by package grouping (C6) when column detection
	// runs; -1 means "not computed". A single-column page gets index 0.
	ColumnIndex int

	// Hierarchy annotations, set by package hierarchy (C7).
	SpatialLevel int
	SpatialScore float64
	FinalLevel   int
	LevelSource  LevelSource

	// Thinning annotations (C8), only meaningful on a synthetic paragraph
	// element that replaced a run of text elements.
	MergedFrom     int
	OriginalLabels []string
}

// PageDims is a page's known or estimated pixel extent. It's the shared
// lookup value every stage from filters onward needs to convert an
// element's absolute bbox into page-relative ratios.
type PageDims struct {
	Width  int
	Height int
}

// AssignIDs assigns dense sequential ids 0..len(elements)-1 in slice order,
// overwriting any existing ID. Called once by the orchestrator right after
// concatenating every page's extraction result and before C3, so that all
// later stages — in particular the reading-order graph (C5), which is
// keyed by element id — see stable identities (spec.md §9).
func AssignIDs(elements []Element) {
	for i := range elements {
		elements[i].ID = i
	}
}
