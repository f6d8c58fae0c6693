// Package pathfind searches a walkability mapping of grid cells with one of
// four strategies and reports the path together with search metrics.
//
// What:
//
//   - BFS:      queue frontier; shortest in move count.
//   - DFS:      explicit stack; neighbors pushed in reverse so they are
//     visited in the same order a recursive search would. No shortest-path
//     guarantee: useful for comparison only.
//   - Dijkstra: lazy-deletion binary heap keyed by accumulated cost.
//   - AStar:    same heap ordered by g+h, with a Manhattan (4-neighbor) or
//     Chebyshev (8-neighbor) heuristic scaled by the cheapest walkable cell
//     so it stays admissible under non-uniform costs.
//
// Input is a map from gridgraph.Coord to walkable; absent cells are not
// walkable. Entering a cell costs Cost(cell) (default 1). Neighbors are
// probed clockwise from north with y pointing up.
//
// Result:
//
//	Algorithm, Found, Path (start..goal inclusive), Visited (discovery order
//	for BFS/DFS, settle order for Dijkstra/A*), NodesExpanded, LookupChecks,
//	Elapsed and TotalCost (+Inf when not found). BFS and DFS report the cost
//	of the path they found under the same cost function.
//
// Special cases:
//
//   - start or goal not walkable: Found=false, TotalCost=+Inf, no search.
//   - start == goal: Found=true, Path=[start], TotalCost=0, nothing expanded.
//
// Options:
//
//   - WithDiagonals(): 8-neighbor moves.
//   - WithCost(fn): per-cell entry cost, validated on every walkable cell.
//   - WithContext(ctx): cancellation, checked once per expansion; the
//     comfforts logger stored in ctx (if any) receives one debug record
//     per search.
//
// Errors:
//
//   - ErrUnknownAlgorithm: algorithm selector out of range.
//   - ErrBadCost: the cost function returned a non-positive, NaN or
//     infinite value for a walkable cell.
//   - ctx.Err(): the context was cancelled mid-search.
//
// Unreachable goals are not errors: they yield Found=false.
//
// Complexity (V walkable cells, d = 4 or 8):
//
//   - BFS, DFS:        O(V·d) time, O(V) memory
//   - Dijkstra, AStar: O(V·d·log(V·d)) time, O(V·d) memory
package pathfind
