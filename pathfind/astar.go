package pathfind

import "github.com/tp-group5/algokit/gridgraph"

// heuristic estimates the remaining cost from c to the goal: Manhattan
// distance for 4-neighbor moves, Chebyshev for 8-neighbor moves, times the
// cheapest walkable cell cost so it never overestimates.
func (s *searcher) heuristic(c gridgraph.Coord) float64 {
	return distance(c, s.goal, s.diag) * s.minCost
}

func distance(a, b gridgraph.Coord, diag bool) float64 {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if diag {
		return float64(max(dx, dy))
	}

	return float64(dx + dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
