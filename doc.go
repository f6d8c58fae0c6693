// Package algokit is a collection of classic data structures and grid path
// search algorithms, written as small, independent generic packages.
//
// What is in the box?
//
//	Containers:
//		• dynarray:   growable array with in-place sorts
//		• linkedlist: doubly linked list with stable merge sort and splicing
//		• queue, stack: adapters over linkedlist and dynarray
//		• tree:       binary search tree and AVL tree
//		• set:        array- and list-backed sets with union/intersect/difference
//		• graph:      weighted directed adjacency-map graph (RWMutex guarded)
//		• pqueue:     binary min-heap priority queue
//
//	Grids & search:
//		• gridgraph:  coordinates, tile maps, regions, graph conversion
//		• pathfind:   BFS, DFS, Dijkstra and A* with search metrics
//		• costexpr:   JavaScript cell-cost expressions for pathfind
//		• mapfile:    text (and lz4) tile map files
//
//	Games:
//		• leaderboard: AVL-ranked scores
//		• hanoi:       Tower of Hanoi with undo and solver
//
//	Command:
//		• cmd/gridpath: run the searches on a map file from the shell
//
// Quick ASCII example:
//
//	S . #        S * #
//	. . #   →    . * #      (A*, 4-neighbor)
//	# . G        # * G
//
// Every container is single-writer: mutate from one goroutine at a time.
// graph.Graph is the exception and is safe for concurrent use.
package algokit
