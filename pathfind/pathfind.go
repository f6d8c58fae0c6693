package pathfind

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/comfforts/logger"

	"github.com/tp-group5/algokit/gridgraph"
)

// searcher holds the per-call state shared by all four strategies.
type searcher struct {
	ctx     context.Context
	walk    map[gridgraph.Coord]bool
	start   gridgraph.Coord
	goal    gridgraph.Coord
	dirs    []gridgraph.Coord
	diag    bool
	cost    CostFunc
	minCost float64

	visited map[gridgraph.Coord]bool
	parent  map[gridgraph.Coord]gridgraph.Coord
	res     *Result
	began   time.Time
}

// FindPath searches walk for a path from start to goal using algo.
// It returns an error only for programmer errors (see package doc);
// an unreachable goal yields a Result with Found=false.
func FindPath(walk map[gridgraph.Coord]bool, start, goal gridgraph.Coord, algo Algorithm, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !algo.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	cost, minCost, err := checkCost(walk, o.Cost)
	if err != nil {
		return nil, err
	}

	res, err := search(walk, start, goal, algo, o, cost, minCost)
	if err != nil {
		return nil, err
	}
	logResult(o.Ctx, res)

	return res, nil
}

// RunAll runs every algorithm against the same input and returns one result
// per algorithm in Algorithms() order. Runs share no search state.
func RunAll(walk map[gridgraph.Coord]bool, start, goal gridgraph.Coord, opts ...Option) ([]*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cost, minCost, err := checkCost(walk, o.Cost)
	if err != nil {
		return nil, err
	}

	out := make([]*Result, 0, len(algorithmNames))
	for _, algo := range Algorithms() {
		res, err := search(walk, start, goal, algo, o, cost, minCost)
		if err != nil {
			return nil, fmt.Errorf("pathfind: %s: %w", algo, err)
		}
		logResult(o.Ctx, res)
		out = append(out, res)
	}

	return out, nil
}

// checkCost resolves the cost function and validates it on every walkable
// cell, returning the cheapest cell cost for heuristic scaling.
func checkCost(walk map[gridgraph.Coord]bool, fn CostFunc) (CostFunc, float64, error) {
	if fn == nil {
		return func(gridgraph.Coord) float64 { return 1 }, 1, nil
	}
	minCost := math.Inf(1)
	for c, ok := range walk {
		if !ok {
			continue
		}
		v := fn(c)
		if !(v > 0) || math.IsInf(v, 1) {
			return nil, 0, fmt.Errorf("%w: cost(%v) = %v", ErrBadCost, c, v)
		}
		minCost = min(minCost, v)
	}
	if math.IsInf(minCost, 1) {
		minCost = 1
	}

	return fn, minCost, nil
}

func search(walk map[gridgraph.Coord]bool, start, goal gridgraph.Coord, algo Algorithm, o Options, cost CostFunc, minCost float64) (*Result, error) {
	begin := time.Now()
	res := &Result{Algorithm: algo}

	// Quick invalid cases: no exploration.
	if !walk[start] || !walk[goal] {
		res.TotalCost = math.Inf(1)
		return res, nil
	}
	if start == goal {
		res.Found = true
		res.Path = []gridgraph.Coord{start}
		res.Elapsed = time.Since(begin)
		return res, nil
	}

	conn := gridgraph.Conn4
	if o.Diagonals {
		conn = gridgraph.Conn8
	}
	s := &searcher{
		ctx:     o.Ctx,
		walk:    walk,
		start:   start,
		goal:    goal,
		dirs:    conn.Offsets(),
		diag:    o.Diagonals,
		cost:    cost,
		minCost: minCost,
		visited: make(map[gridgraph.Coord]bool),
		parent:  make(map[gridgraph.Coord]gridgraph.Coord),
		res:     res,
		began:   begin,
	}

	var err error
	switch algo {
	case BFS:
		err = s.bfs()
	case DFS:
		err = s.dfs()
	case Dijkstra:
		err = s.bestFirst(func(gridgraph.Coord) float64 { return 0 })
	case AStar:
		err = s.bestFirst(s.heuristic)
	}
	if err != nil {
		return nil, err
	}
	if !res.Found {
		res.TotalCost = math.Inf(1)
	}
	res.Elapsed = time.Since(begin)

	return res, nil
}

// cancelled reports the context error, if any, without blocking.
func (s *searcher) cancelled() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}

// probe counts one neighbor lookup and reports whether nb is walkable.
func (s *searcher) probe(nb gridgraph.Coord) bool {
	s.res.LookupChecks++

	return s.walk[nb]
}

// discover marks nb visited with the given parent and records it.
func (s *searcher) discover(nb, from gridgraph.Coord) {
	s.visited[nb] = true
	s.parent[nb] = from
	s.res.Visited = append(s.res.Visited, nb)
}

// finish records a found path; cost < 0 means "sum the path".
func (s *searcher) finish(cost float64) {
	s.res.Found = true
	s.res.Path = reconstruct(s.parent, s.start, s.goal)
	if cost < 0 {
		cost = s.pathCost(s.res.Path)
	}
	s.res.TotalCost = cost
}

func (s *searcher) pathCost(path []gridgraph.Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += s.cost(path[i])
	}

	return total
}

// reconstruct walks parent links back from goal. A chain that breaks (or
// loops) before reaching start yields an empty path.
func reconstruct(parent map[gridgraph.Coord]gridgraph.Coord, start, goal gridgraph.Coord) []gridgraph.Coord {
	path := []gridgraph.Coord{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok || len(path) > len(parent) {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func logResult(ctx context.Context, res *Result) {
	l, err := logger.LoggerFromContext(ctx)
	if err != nil {
		l = logger.GetSlogLogger()
	}
	l.Debug(
		"pathfind: search finished",
		slog.String("algorithm", res.Algorithm.String()),
		slog.Bool("found", res.Found),
		slog.Int("path-len", len(res.Path)),
		slog.Int("expanded", res.NodesExpanded),
		slog.Int64("lookups", res.LookupChecks),
		slog.Float64("cost", res.TotalCost),
		slog.Duration("elapsed", res.Elapsed),
	)
}
