package doctree

import (
	"encoding/json"
	"testing"

	"github.com/DuyTa506/docuflow/element"
	"github.com/DuyTa506/docuflow/geometry"
)

func TestTreeMarshalJSONNestsPipelineInfoUnderRoot(t *testing.T) {
	elements := []element.Element{
		{Label: "title", BBox: geometry.BBox{X1: 0, Y1: 0, X2: 100, Y2: 20}, PageNumber: 1, TextContent: "Title", FinalLevel: 0},
	}
	info := NewPipelineInfo()
	info.ElementsProcessed = 1
	tree := Build(elements, info)

	raw, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("round-trip unmarshal failed: %v", err)
	}

	for _, key := range []string{"node_id", "title", "level", "page_number", "content", "children", "bbox", "label", "spatial_score", "_pipeline_info"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in marshaled tree", key)
		}
	}

	var pipelineInfo PipelineInfo
	if err := json.Unmarshal(decoded["_pipeline_info"], &pipelineInfo); err != nil {
		t.Fatalf("failed to unmarshal _pipeline_info: %v", err)
	}
	if pipelineInfo.ElementsProcessed != 1 {
		t.Errorf("ElementsProcessed = %d, want 1", pipelineInfo.ElementsProcessed)
	}

	var children []json.RawMessage
	if err := json.Unmarshal(decoded["children"], &children); err != nil {
		t.Fatalf("failed to unmarshal children: %v", err)
	}
	if len(children) != 1 {
		t.Fatalf("len(children) = %d, want 1", len(children))
	}
}
