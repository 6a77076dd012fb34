package doctree

import (
	"testing"

	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/geometry"
)

func TestBuildEmptyInputYieldsRootOnly(t *testing.T) {
	tree := Build(nil, NewPipelineInfo())
	if tree.Root.NodeID != "root" || tree.Root.Level != RootLevel {
		t.Fatalf("root = %+v, want synthetic root at level %d", tree.Root, RootLevel)
	}
	if len(tree.Root.Children) != 0 {
		t.Fatalf("root has %d children, want 0 for empty input", len(tree.Root.Children))
	}
}

func TestBuildSingleElementAttachesToRoot(t *testing.T) {
	elements := []element.Element{
		{Label: "text", FinalLevel: 4, PageNumber: 1, TextContent: "body", BBox: geometry.BBox{X1: 0, Y1: 0, X2: 100, Y2: 20}},
	}
	tree := Build(elements, NewPipelineInfo())
	if len(tree.Root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(tree.Root.Children))
	}
	child := tree.Root.Children[0]
	if child.NodeID != "node_0" || child.Level != 4 || child.Title != "body" {
		t.Fatalf("child = %+v, unexpected", child)
	}
}

func TestBuildNestsByLevel(t *testing.T) {
	elements := []element.Element{
		{Label: "title", FinalLevel: 0, TextContent: "Chapter 1"},
		{Label: "heading", FinalLevel: 1, TextContent: "Section 1.1"},
		{Label: "text", FinalLevel: 4, TextContent: "body a"},
		{Label: "heading", FinalLevel: 1, TextContent: "Section 1.2"},
		{Label: "text", FinalLevel: 4, TextContent: "body b"},
	}
	tree := Build(elements, NewPipelineInfo())

	if len(tree.Root.Children) != 1 {
		t.Fatalf("root has %d children, want 1 (single chapter)", len(tree.Root.Children))
	}
	chapter := tree.Root.Children[0]
	if len(chapter.Children) != 2 {
		t.Fatalf("chapter has %d children, want 2 sections", len(chapter.Children))
	}
	section1, section2 := chapter.Children[0], chapter.Children[1]
	if len(section1.Children) != 1 || section1.Children[0].Title != "body a" {
		t.Fatalf("section 1.1 children = %+v, want one body-a child", section1.Children)
	}
	if len(section2.Children) != 1 || section2.Children[0].Title != "body b" {
		t.Fatalf("section 1.2 children = %+v, want one body-b child", section2.Children)
	}
}

func TestBuildSameLevelSiblingsDoNotNest(t *testing.T) {
	elements := []element.Element{
		{Label: "text", FinalLevel: 4, TextContent: "a"},
		{Label: "text", FinalLevel: 4, TextContent: "b"},
		{Label: "text", FinalLevel: 4, TextContent: "c"},
	}
	tree := Build(elements, NewPipelineInfo())
	if len(tree.Root.Children) != 3 {
		t.Fatalf("root has %d children, want 3 flat siblings", len(tree.Root.Children))
	}
}

func TestBuildCarriesPipelineInfoThrough(t *testing.T) {
	info := NewPipelineInfo()
	info.FiltersApplied = true
	info.RepeatedFiltered = 5
	info.ElementsProcessed = 10

	tree := Build(nil, info)
	if tree.PipelineInfo.RepeatedFiltered != 5 || !tree.PipelineInfo.FiltersApplied {
		t.Fatalf("PipelineInfo = %+v, not carried through", tree.PipelineInfo)
	}
	if tree.PipelineInfo.Version != PipelineVersion {
		t.Fatalf("Version = %q, want %q", tree.PipelineInfo.Version, PipelineVersion)
	}
}
