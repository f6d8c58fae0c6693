package pathfind

import (
	"github.com/tp-group5/algokit/gridgraph"
	"github.com/tp-group5/algokit/pqueue"
)

// bestFirst runs Dijkstra (h ≡ 0) or A* over a lazy-deletion min-heap:
// a strictly better g pushes a fresh entry, and entries for settled cells
// are skipped when popped.
func (s *searcher) bestFirst(h func(gridgraph.Coord) float64) error {
	g := map[gridgraph.Coord]float64{s.start: 0}
	pq := pqueue.New[gridgraph.Coord](len(s.walk))
	pq.Push(s.start, h(s.start))

	for !pq.IsEmpty() {
		if err := s.cancelled(); err != nil {
			return err
		}
		cur, _, _ := pq.Pop()
		if s.visited[cur] {
			continue
		}
		s.visited[cur] = true
		s.res.NodesExpanded++
		s.res.Visited = append(s.res.Visited, cur)

		curG := g[cur]
		if cur == s.goal {
			s.finish(curG)
			return nil
		}

		for _, d := range s.dirs {
			nb := cur.Add(d)
			if !s.probe(nb) {
				continue
			}
			tentative := curG + s.cost(nb)
			if known, seen := g[nb]; seen && tentative >= known {
				continue
			}
			g[nb] = tentative
			s.parent[nb] = cur
			pq.Push(nb, tentative+h(nb))
		}
	}

	return nil
}
