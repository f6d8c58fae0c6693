package pathfind

import "github.com/tp-group5/algokit/queue"

// bfs expands cells in FIFO order and stops as soon as the goal is
// discovered.
func (s *searcher) bfs() error {
	q := queue.From(s.start)
	s.visited[s.start] = true
	s.res.LookupChecks++
	s.res.Visited = append(s.res.Visited, s.start)

	for !q.IsEmpty() {
		if err := s.cancelled(); err != nil {
			return err
		}
		cur, _ := q.Dequeue()
		s.res.NodesExpanded++

		for _, d := range s.dirs {
			nb := cur.Add(d)
			if !s.probe(nb) || s.visited[nb] {
				continue
			}
			s.discover(nb, cur)
			q.Enqueue(nb)
			if nb == s.goal {
				s.finish(-1)
				return nil
			}
		}
	}

	return nil
}
