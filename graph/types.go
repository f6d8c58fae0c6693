// File: types.go
// Role: Graph and Edge types, sentinel errors, constructor.
package graph

import (
	"errors"
	"sync"
)

// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
var ErrEdgeNotFound = errors.New("graph: edge not found")

// Edge is a snapshot of one weighted directed edge.
type Edge[K comparable] struct {
	From, To K
	Weight   float64
}

// Graph is a weighted directed graph keyed by K.
type Graph[K comparable] struct {
	mu sync.RWMutex

	// adjacency[from][to] = weight
	adjacency map[K]map[K]float64
}

// New creates an empty graph.
// Complexity: O(1)
func New[K comparable]() *Graph[K] {
	return &Graph[K]{adjacency: make(map[K]map[K]float64)}
}
