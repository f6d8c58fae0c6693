// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package graph

// AddVertex adds v and reports whether it was absent.
func (g *Graph[K]) AddVertex(v K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(v)
}

func (g *Graph[K]) addVertexLocked(v K) bool {
	if _, ok := g.adjacency[v]; ok {
		return false
	}
	g.adjacency[v] = make(map[K]float64)

	return true
}

// RemoveVertex deletes v together with all edges to and from it.
// It reports whether v existed.
func (g *Graph[K]) RemoveVertex(v K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[v]; !ok {
		return false
	}
	delete(g.adjacency, v)
	for _, out := range g.adjacency {
		delete(out, v)
	}

	return true
}

// HasVertex reports whether v exists.
func (g *Graph[K]) HasVertex(v K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[v]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Vertices returns every vertex key in unspecified order.
func (g *Graph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}

	return out
}

// Neighbors returns the targets of v's outgoing edges in unspecified order.
// An unknown vertex yields an empty slice.
func (g *Graph[K]) Neighbors(v K) []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, 0, len(g.adjacency[v]))
	for to := range g.adjacency[v] {
		out = append(out, to)
	}

	return out
}

// OutDegree returns the number of outgoing edges of v (0 if unknown).
func (g *Graph[K]) OutDegree(v K) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v])
}
