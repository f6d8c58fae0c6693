// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package graph

import "fmt"

// AddEdge adds the directed edge from→to with the given weight, creating
// either endpoint if absent. It returns false, leaving the graph unchanged
// apart from created endpoints, when the edge already exists.
func (g *Graph[K]) AddEdge(from, to K, weight float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	out := g.adjacency[from]
	if _, exists := out[to]; exists {
		return false
	}
	out[to] = weight

	return true
}

// RemoveEdge deletes from→to and reports whether it existed.
func (g *Graph[K]) RemoveEdge(from, to K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.adjacency[from]
	if !ok {
		return false
	}
	if _, ok = out[to]; !ok {
		return false
	}
	delete(out, to)

	return true
}

// HasEdge reports whether from→to exists.
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of from→to, or ErrEdgeNotFound.
func (g *Graph[K]) Weight(from, to K) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %v -> %v", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// EdgeCount returns the number of directed edges.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, out := range g.adjacency {
		total += len(out)
	}

	return total
}

// Edges returns a snapshot of every edge in unspecified order.
func (g *Graph[K]) Edges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge[K]
	for from, targets := range g.adjacency {
		for to, w := range targets {
			out = append(out, Edge[K]{From: from, To: to, Weight: w})
		}
	}

	return out
}
