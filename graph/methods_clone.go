// File: methods_clone.go
// Role: Clone / Clear / String.
package graph

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Clone returns a deep copy of the adjacency map.
// Complexity: O(V + E)
func (g *Graph[K]) Clone() *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[K]{adjacency: make(map[K]map[K]float64, len(g.adjacency))}
	for from, targets := range g.adjacency {
		cp := make(map[K]float64, len(targets))
		for to, w := range targets {
			cp[to] = w
		}
		c.adjacency[from] = cp
	}

	return c
}

// Clear removes every vertex and edge.
func (g *Graph[K]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = make(map[K]map[K]float64)
}

// String lists one "from -> to [w=weight]" line per edge, sorted textually
// so the output is stable.
func (g *Graph[K]) String() string {
	edges := g.Edges()
	lines := make([]string, len(edges))
	for i, e := range edges {
		lines[i] = fmt.Sprintf("%v -> %v [w=%g]", e.From, e.To, e.Weight)
	}
	slices.Sort(lines)

	return strings.Join(lines, "\n")
}
