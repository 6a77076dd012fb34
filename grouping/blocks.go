package grouping

import (
	"strings"

	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/geometry"
)

const blockGapRatio = 1.5

// Block is a run of consecutive lines judged to belong to the same
// paragraph-level unit.
type Block struct {
	Elements    []element.Element
	BBox        geometry.BBox
	ColumnIndex int
	BlockType   string // "text", "figure", "table", or "heading"
}

// GroupBlocks merges consecutive lines into blocks, starting a new block
// whenever the gap between a line's bottom and the next line's top
// exceeds 1.5 times the median line height (spec.md §4.6).
func GroupBlocks(lines []Line) []Block {
	if len(lines) == 0 {
		return nil
	}

	var allElements []element.Element
	for _, l := range lines {
		allElements = append(allElements, l.Elements...)
	}
	gapThreshold := MedianLineHeight(allElements) * blockGapRatio

	var blocks []Block
	current := []Line{lines[0]}

	flush := func() {
		blocks = append(blocks, blockFromLines(current))
	}

	for i := 1; i < len(lines); i++ {
		prevBottom := current[len(current)-1].Bottom
		currTop := lineTop(lines[i])
		gap := currTop - prevBottom
		if float64(gap) > gapThreshold {
			flush()
			current = []Line{lines[i]}
			continue
		}
		current = append(current, lines[i])
	}
	flush()

	return blocks
}

func lineTop(l Line) int {
	top := l.Elements[0].BBox.Y1
	for _, e := range l.Elements[1:] {
		if e.BBox.Y1 < top {
			top = e.BBox.Y1
		}
	}
	return top
}

func blockFromLines(lines []Line) Block {
	var all []element.Element
	for _, l := range lines {
		all = append(all, l.Elements...)
	}

	var boxes []geometry.BBox
	for _, e := range all {
		boxes = append(boxes, e.BBox)
	}

	blockType := "text"
	for _, e := range all {
		label := strings.ToLower(e.Label)
		if e.Zone == element.ZoneFigure || label == "figure" {
			blockType = "figure"
			break
		}
		if e.Zone == element.ZoneTable || label == "table" {
			blockType = "table"
			break
		}
		if e.Zone == element.ZoneSectionHeading {
			blockType = "heading"
			break
		}
	}

	columnIndex := 0
	if len(all) > 0 {
		columnIndex = all[0].ColumnIndex
	}

	return Block{
		Elements:    all,
		BBox:        geometry.UnionAll(boxes),
		ColumnIndex: columnIndex,
		BlockType:   blockType,
	}
}
