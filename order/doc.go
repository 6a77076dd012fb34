// Package order implements C5, the reading-order engine: a total order
// over elements built from a pairwise precedence rule ladder, a directed
// acyclic graph, and Kahn's topological sort.
//
// # Pairwise rules
//
// compare(a, b) applies the following ladder, first rule that fires wins
// (spec.md §4.5):
//
//  1. Different zone priorities: lower priority number first.
//  2. Horizontal overlap ratio > 0.3 ("same column"): smaller y-centre
//     first.
//  3. Vertical overlap ratio > 0.3 ("same row"): smaller x-centre first.
//  4. a.y2 < b.y1: a before b.
//  5. Same vertical band (|a.y1-b.y1| < a.height/2): smaller x-centre
//     first.
//  6. Smaller y-centre first.
//
// # Cycle breaking and topological sort
//
// Compute builds a directed graph from every pairwise decision, detects
// cycles with three-colour DFS, and breaks each one by removing the edge
// whose source lies furthest below its target (source.y1 - target.y1
// maximal - that edge is the most likely spurious heuristic conflict).
// The final order comes from Kahn's topological sort, tie-breaking the
// ready set by (y1, x1) ascending; any node left unreached by the main
// loop is appended in the same order as a defensive measure.
//
// Compute is pure and single-threaded: identical input and thresholds
// always produce a byte-identical order (spec.md §4.5).
package order
