// Package gridgraph models the tile maps searched by package pathfind: integer
// coordinates, tile types and the walkability mapping derived from them.
//
// What:
//
//   - Coord is a 2D integer cell position; y grows upwards.
//   - TileType enumerates Walkable, Blocked, Spawn, Goal and Empty tiles;
//     Walkable, Spawn and Goal are walkable.
//   - TileMap stores painted tiles and keeps Spawn and Goal unique: painting
//     a second Spawn turns the previous one back into a Walkable tile.
//   - ParseTileMap / TileMap.Render convert to and from a text picture.
//   - Components finds connected walkable regions.
//   - ToGraph converts a walkability mapping into a *graph.Graph[Coord].
//
// Text legend:
//
//	.        Walkable
//	#        Blocked
//	S        Spawn
//	G        Goal
//	' ' _    Empty
//	*        path overlay (Render only)
//
// The first text line is the top of the map (highest y).
//
// Complexity:
//
//   - ParseTileMap, Render, Walkability: O(W×H)
//   - Components: O(W×H×d) (d = 4 or 8)
//   - ToGraph:    O(W×H×d)
//
// Errors:
//
//   - ErrEmptyMap: the text picture has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTile: a character outside the legend.
package gridgraph
