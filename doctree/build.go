package doctree

import (
	"fmt"

	"github.com/DuyTa506/docuflow/element"
)

// Tree is a rooted document tree plus the pipeline metadata describing
// how it was produced.
type Tree struct {
	Root         *Node
	PipelineInfo PipelineInfo
}

// Build folds elements, already in reading order and carrying a
// FinalLevel, into a rooted tree (spec.md §4.9). A synthetic root at
// RootLevel anchors the result; each element becomes a child of the
// closest preceding ancestor with a strictly lower level, using a stack
// of open ancestors popped while its top's level is >= the incoming
// element's level. Empty input yields a tree containing only the root,
// with info.ElementsProcessed left at whatever the caller set (spec.md
// §7: "Degenerate-document... returns a tree with only the synthetic
// root").
func Build(elements []element.Element, info PipelineInfo) *Tree {
	root := newRoot()
	stack := []*Node{root}

	for i, e := range elements {
		node := nodeFromElement(i, e)

		for len(stack) > 1 && stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1]
		}

		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}

	return &Tree{Root: root, PipelineInfo: info}
}

func nodeFromElement(index int, e element.Element) *Node {
	bbox := e.BBox
	return &Node{
		NodeID:       fmt.Sprintf("node_%d", index),
		Title:        e.TextContent,
		Level:        e.FinalLevel,
		PageNumber:   e.PageNumber,
		Content:      e.TextFull,
		BBox:         &bbox,
		Label:        e.Label,
		SpatialScore: e.SpatialScore,
	}
}
