package pathfind

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tp-group5/algokit/gridgraph"
)

// Sentinel errors for path searches.
var (
	// ErrUnknownAlgorithm is returned for an Algorithm outside BFS..AStar.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrBadCost is returned when the cost function yields a value that is
	// not a positive finite number for some walkable cell.
	ErrBadCost = errors.New("pathfind: cell cost must be positive and finite")
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	Dijkstra
	AStar
)

var algorithmNames = [...]string{"BFS", "DFS", "Dijkstra", "AStar"}

// Algorithms returns every strategy in the order RunAll uses.
func Algorithms() []Algorithm { return []Algorithm{BFS, DFS, Dijkstra, AStar} }

// String returns the algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

func (a Algorithm) valid() bool { return a >= BFS && a <= AStar }

// ParseAlgorithm maps a case-insensitive name ("bfs", "dfs", "dijkstra",
// "astar" or "a*") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// CostFunc returns the cost of entering a cell.
type CostFunc func(gridgraph.Coord) float64

// Options configures a search.
type Options struct {
	// Ctx allows cancellation and carries the logger.
	Ctx context.Context

	// Diagonals enables 8-neighbor moves.
	Diagonals bool

	// Cost is the per-cell entry cost; nil means uniform cost 1.
	Cost CostFunc
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns 4-neighbor moves, uniform cost and
// context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation and logging.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiagonals enables 8-neighbor moves.
func WithDiagonals() Option {
	return func(o *Options) { o.Diagonals = true }
}

// WithCost sets the per-cell entry cost. A nil fn keeps uniform cost.
func WithCost(fn CostFunc) Option {
	return func(o *Options) { o.Cost = fn }
}

// Result is the outcome of one search. It is not modified after return.
type Result struct {
	Algorithm     Algorithm
	Found         bool
	Path          []gridgraph.Coord
	Visited       []gridgraph.Coord
	NodesExpanded int
	LookupChecks  int64
	Elapsed       time.Duration
	TotalCost     float64
}

// String summarizes the result on one line.
func (r *Result) String() string {
	return fmt.Sprintf("[%s] Found: %t, Path length: %d, Cost: %.2f, Visited: %d, NodesExpanded: %d, LookupChecks: %d, Time(ms): %d",
		r.Algorithm, r.Found, len(r.Path), r.TotalCost, len(r.Visited), r.NodesExpanded, r.LookupChecks, r.Elapsed.Milliseconds())
}
