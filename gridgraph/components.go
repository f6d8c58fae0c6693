package gridgraph

import (
	"golang.org/x/exp/slices"

	"github.com/tp-group5/algokit/graph"
	"github.com/tp-group5/algokit/queue"
)

// Components finds all contiguous regions of walkable cells according to
// conn. Regions are ordered by their first cell in reading order (top row
// first, then left to right); cells inside a region are in BFS discovery
// order from that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Components(walk map[Coord]bool, conn Connectivity) [][]Coord {
	seen := make(map[Coord]bool, len(walk))
	var comps [][]Coord
	offsets := conn.Offsets()

	for _, c0 := range ReadingOrder(walk) {
		if !walk[c0] || seen[c0] {
			continue
		}
		// BFS to collect component
		q := queue.From(c0)
		seen[c0] = true
		var comp []Coord
		for !q.IsEmpty() {
			u, _ := q.Dequeue()
			comp = append(comp, u)
			for _, d := range offsets {
				v := u.Add(d)
				if !walk[v] || seen[v] {
					continue
				}
				seen[v] = true
				q.Enqueue(v)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// ReadingOrder returns the keys of walk sorted top row first, then by x.
func ReadingOrder(walk map[Coord]bool) []Coord {
	out := make([]Coord, 0, len(walk))
	for c := range walk {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		if a.Y != b.Y {
			return b.Y - a.Y
		}

		return a.X - b.X
	})

	return out
}

// ToGraph converts the walkable cells of walk into a directed graph. Every
// walkable cell becomes a vertex; an edge u→v exists for each walkable
// neighbor v of u under conn, weighted by the cost of entering v. A nil cost
// means every cell costs 1.
// Complexity: O(W×H×d) time and memory.
func ToGraph(walk map[Coord]bool, conn Connectivity, cost func(Coord) float64) *graph.Graph[Coord] {
	if cost == nil {
		cost = func(Coord) float64 { return 1 }
	}
	g := graph.New[Coord]()
	for c, ok := range walk {
		if !ok {
			continue
		}
		g.AddVertex(c)
		for _, d := range conn.Offsets() {
			n := c.Add(d)
			if walk[n] {
				g.AddEdge(c, n, cost(n))
			}
		}
	}

	return g
}
