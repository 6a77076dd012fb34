package doctree

import "encoding/json"

// MarshalJSON renders the tree as a single JSON object: the root node's
// own fields plus a "_pipeline_info" sibling key carrying PipelineInfo
// (spec.md §6: "a sibling `_pipeline_info` on the root").
func (t *Tree) MarshalJSON() ([]byte, error) {
	rootJSON, err := json.Marshal(t.Root)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rootJSON, &fields); err != nil {
		return nil, err
	}

	infoJSON, err := json.Marshal(t.PipelineInfo)
	if err != nil {
		return nil, err
	}
	fields["_pipeline_info"] = infoJSON

	return json.Marshal(fields)
}
