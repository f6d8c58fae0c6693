package pathfind

import (
	"github.com/tp-group5/algokit/gridgraph"
	"github.com/tp-group5/algokit/stack"
)

// dfs is the iterative depth-first search. Neighbors are pushed in reverse
// direction order so the first direction is popped first.
func (s *searcher) dfs() error {
	st := stack.New[gridgraph.Coord]()
	st.Push(s.start)
	s.visited[s.start] = true
	s.res.LookupChecks++
	s.res.Visited = append(s.res.Visited, s.start)

	for !st.IsEmpty() {
		if err := s.cancelled(); err != nil {
			return err
		}
		cur, _ := st.Pop()
		s.res.NodesExpanded++

		for i := len(s.dirs) - 1; i >= 0; i-- {
			nb := cur.Add(s.dirs[i])
			if !s.probe(nb) || s.visited[nb] {
				continue
			}
			s.discover(nb, cur)
			st.Push(nb)
			if nb == s.goal {
				s.finish(-1)
				return nil
			}
		}
	}

	return nil
}
