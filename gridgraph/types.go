package gridgraph

import "fmt"

// Coord is an integer cell position. Y grows upwards.
type Coord struct {
	X, Y int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// String renders c as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// TileType is the painted kind of a cell.
type TileType int

const (
	Walkable TileType = iota
	Blocked
	Spawn
	Goal
	Empty
)

var tileNames = [...]string{"Walkable", "Blocked", "Spawn", "Goal", "Empty"}

// String returns the tile type name.
func (t TileType) String() string {
	if t < 0 || int(t) >= len(tileNames) {
		return fmt.Sprintf("TileType(%d)", int(t))
	}

	return tileNames[t]
}

// Walkable reports whether the pathfinder may enter a tile of this type.
func (t TileType) Walkable() bool {
	return t == Walkable || t == Spawn || t == Goal
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Coord{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	offsets8 = []Coord{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

// Offsets returns the neighbor displacements in clockwise order starting at
// north. Every traversal in this module visits neighbors in this order.
// The returned slice must not be modified.
func (c Connectivity) Offsets() []Coord {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}
