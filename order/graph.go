package order

import (
	"sort"

	"github.com/DuyTa506/docuflow/element"
)

// graph is an adjacency list over element slice indices: graph[i] lists
// every j such that element i must be read before element j.
type graph map[int][]int

func buildGraph(elements []element.Element) graph {
	g := make(graph, len(elements))
	for i := range elements {
		g[i] = nil
	}
	for i := 0; i < len(elements); i++ {
		for j := i + 1; j < len(elements); j++ {
			switch compare(elements[i], elements[j]) {
			case before:
				g[i] = append(g[i], j)
			case after:
				g[j] = append(g[j], i)
			}
		}
	}
	return g
}

const (
	white = 0
	gray  = 1
	black = 2
)

// findCycle runs three-colour DFS and returns the first cycle found, as a
// slice of node indices in cycle order, or nil if the graph is acyclic.
func findCycle(g graph) []int {
	color := make(map[int]int, len(g))
	for n := range g {
		color[n] = white
	}

	nodes := sortedNodes(g)
	var path []int
	var cycle []int

	var dfs func(n int) bool
	dfs = func(n int) bool {
		color[n] = gray
		path = append(path, n)

		for _, next := range g[n] {
			switch color[next] {
			case gray:
				for i, p := range path {
					if p == next {
						cycle = append([]int(nil), path[i:]...)
						break
					}
				}
				return true
			case white:
				if dfs(next) {
					return true
				}
			}
		}

		path = path[:len(path)-1]
		color[n] = black
		return false
	}

	for _, n := range nodes {
		if color[n] == white {
			if dfs(n) {
				return cycle
			}
		}
	}
	return nil
}

func sortedNodes(g graph) []int {
	nodes := make([]int, 0, len(g))
	for n := range g {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	return nodes
}

// breakCycles repeatedly finds a cycle and removes the edge within it
// whose source lies furthest below its target (source.y1 - target.y1
// maximal), the heuristic most likely to be spurious (spec.md §4.5),
// until the graph is acyclic.
func breakCycles(g graph, elements []element.Element) {
	for {
		cycle := findCycle(g)
		if cycle == nil {
			return
		}

		worstSource, worstTarget := -1, -1
		worstScore := -1 << 62
		for i := range cycle {
			source := cycle[i]
			target := cycle[(i+1)%len(cycle)]
			score := elements[source].BBox.Y1 - elements[target].BBox.Y1
			if score > worstScore {
				worstScore = score
				worstSource, worstTarget = source, target
			}
		}

		edges := g[worstSource]
		for i, t := range edges {
			if t == worstTarget {
				g[worstSource] = append(edges[:i:i], edges[i+1:]...)
				break
			}
		}
	}
}

// topoSort runs Kahn's algorithm over g, tie-breaking the ready set by
// (y1, x1) ascending, and appends any node the main loop never reached in
// the same tie-break order as a defensive fallback (spec.md §4.5).
func topoSort(g graph, elements []element.Element) []int {
	inDegree := make(map[int]int, len(g))
	for n := range g {
		inDegree[n] = 0
	}
	for _, targets := range g {
		for _, t := range targets {
			inDegree[t]++
		}
	}

	sortKey := func(n int) (int, int) {
		return elements[n].BBox.Y1, elements[n].BBox.X1
	}

	var ready []int
	for n := range g {
		if inDegree[n] == 0 {
			ready = append(ready, n)
		}
	}
	sortByKey(ready, sortKey)

	result := make([]int, 0, len(g))
	visited := make(map[int]bool, len(g))

	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		result = append(result, n)
		visited[n] = true

		var newlyReady []int
		for _, t := range g[n] {
			inDegree[t]--
			if inDegree[t] == 0 {
				newlyReady = append(newlyReady, t)
			}
		}
		if len(newlyReady) > 0 {
			ready = append(ready, newlyReady...)
			sortByKey(ready, sortKey)
		}
	}

	if len(result) < len(g) {
		var remaining []int
		for n := range g {
			if !visited[n] {
				remaining = append(remaining, n)
			}
		}
		sortByKey(remaining, sortKey)
		result = append(result, remaining...)
	}

	return result
}

// sortByKey orders nodes by (y1, x1) ascending, falling back to the node
// index itself so the result is fully deterministic even when two
// elements share an identical bbox corner (spec.md §4.5's determinism
// guarantee must hold regardless of map iteration order upstream).
func sortByKey(nodes []int, key func(int) (int, int)) {
	sort.Slice(nodes, func(i, j int) bool {
		yi, xi := key(nodes[i])
		yj, xj := key(nodes[j])
		if yi != yj {
			return yi < yj
		}
		if xi != xj {
			return xi < xj
		}
		return nodes[i] < nodes[j]
	})
}
