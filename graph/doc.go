// Package graph provides Graph, a weighted directed graph stored as an
// adjacency map from vertex key to (neighbor key → edge weight).
//
// What:
//
//   - Vertices are opaque comparable keys.
//   - AddEdge creates missing endpoints implicitly and refuses to overwrite an
//     existing edge.
//   - RemoveVertex cascades: every incoming and outgoing edge of the vertex
//     is removed with it.
//   - An edge weight is only defined while both endpoints exist.
//
// Absence policy:
//
//   - HasVertex, HasEdge, Neighbors and the bool-returning mutators report
//     absence without an error (Neighbors of an unknown vertex is empty).
//   - Weight on a missing edge returns ErrEdgeNotFound.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency map; every method is safe for
//	concurrent use. Neighbors and Vertices return snapshots.
//
// Complexity:
//
//   - AddVertex, AddEdge, RemoveEdge, HasEdge, Weight: O(1) average
//   - RemoveVertex: O(V) (incoming edges are found by scanning every vertex)
//   - Neighbors: O(deg(v)); EdgeCount: O(V); Edges, Clone: O(V + E)
package graph
