package doctree

import "github.com/DuyTa506/docuflow/geometry"

// Node is one entry in the output tree (spec.md §6's tree record).
type Node struct {
	NodeID       string         `json:"node_id"`
	Title        string         `json:"title"`
	Level        int            `json:"level"`
	PageNumber   int            `json:"page_number"`
	Content      string         `json:"content"`
	Children     []*Node        `json:"children"`
	BBox         *geometry.BBox `json:"bbox"`
	Label        string         `json:"label"`
	SpatialScore float64        `json:"spatial_score"`
}

// RootLevel is the synthetic root's level, below every real element's
// level (which ranges 0..5).
const RootLevel = -1

// newRoot creates the synthetic root node all element nodes are attached
// under, directly or transitively.
func newRoot() *Node {
	return &Node{NodeID: "root", Title: "Document", Level: RootLevel}
}
