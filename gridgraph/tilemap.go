package gridgraph

import (
	"fmt"
	"strings"
)

// TileMap is a sparse set of painted tiles with at most one Spawn and one Goal.
type TileMap struct {
	tiles    map[Coord]TileType
	spawn    Coord
	goal     Coord
	hasSpawn bool
	hasGoal  bool
}

// NewTileMap returns a width×height map with every cell painted fill,
// covering x in [0,width) and y in [0,height).
// Painting Spawn or Goal as fill leaves only the last cell of that type.
func NewTileMap(width, height int, fill TileType) *TileMap {
	tm := &TileMap{tiles: make(map[Coord]TileType, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tm.Set(Coord{X: x, Y: y}, fill)
		}
	}

	return tm
}

// Set paints pos with t, enforcing the paint rules:
//
//   - painting Spawn (Goal) elsewhere turns the previous Spawn (Goal) into
//     a Walkable tile;
//   - overpainting the current Spawn (Goal) with another type forgets it.
func (tm *TileMap) Set(pos Coord, t TileType) {
	if tm.tiles == nil {
		tm.tiles = make(map[Coord]TileType)
	}
	switch t {
	case Spawn:
		if tm.hasSpawn && tm.spawn != pos {
			tm.tiles[tm.spawn] = Walkable
		}
		if tm.hasGoal && tm.goal == pos {
			tm.hasGoal = false
		}
		tm.spawn, tm.hasSpawn = pos, true
	case Goal:
		if tm.hasGoal && tm.goal != pos {
			tm.tiles[tm.goal] = Walkable
		}
		if tm.hasSpawn && tm.spawn == pos {
			tm.hasSpawn = false
		}
		tm.goal, tm.hasGoal = pos, true
	default:
		if tm.hasSpawn && tm.spawn == pos {
			tm.hasSpawn = false
		}
		if tm.hasGoal && tm.goal == pos {
			tm.hasGoal = false
		}
	}
	tm.tiles[pos] = t
}

// Tile returns the type painted at pos; ok is false for unpainted cells.
func (tm *TileMap) Tile(pos Coord) (t TileType, ok bool) {
	t, ok = tm.tiles[pos]

	return t, ok
}

// Spawn returns the spawn position, if one is painted.
func (tm *TileMap) Spawn() (Coord, bool) { return tm.spawn, tm.hasSpawn }

// Goal returns the goal position, if one is painted.
func (tm *TileMap) Goal() (Coord, bool) { return tm.goal, tm.hasGoal }

// Len returns the number of painted cells.
func (tm *TileMap) Len() int { return len(tm.tiles) }

// Walkability returns the coordinate → walkable mapping consumed by the
// pathfinder. Every painted cell is present; unpainted cells are absent.
func (tm *TileMap) Walkability() map[Coord]bool {
	out := make(map[Coord]bool, len(tm.tiles))
	for c, t := range tm.tiles {
		out[c] = t.Walkable()
	}

	return out
}

// Bounds returns the inclusive bounding box of painted cells.
// ok is false for an empty map.
func (tm *TileMap) Bounds() (lo, hi Coord, ok bool) {
	for c := range tm.tiles {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}

	return lo, hi, ok
}

// tileRunes maps legend characters to tile types.
var tileRunes = map[rune]TileType{
	'.': Walkable,
	'#': Blocked,
	'S': Spawn,
	'G': Goal,
	' ': Empty,
	'_': Empty,
}

func tileRune(t TileType) rune {
	switch t {
	case Walkable:
		return '.'
	case Blocked:
		return '#'
	case Spawn:
		return 'S'
	case Goal:
		return 'G'
	default:
		return ' '
	}
}

// ParseTileMap builds a map from a text picture, one string per row. The
// first row is the top of the map: rows[0] has y = len(rows)-1, and column i
// has x = i. Several S (or G) characters follow the paint rules, so the
// last one in reading order wins.
func ParseTileMap(rows []string) (*TileMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len([]rune(rows[0]))
	tm := &TileMap{tiles: make(map[Coord]TileType, width*len(rows))}
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(runes), width)
		}
		y := len(rows) - 1 - r
		for x, ch := range runes {
			t, ok := tileRunes[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrUnknownTile, ch, r, x)
			}
			tm.Set(Coord{X: x, Y: y}, t)
		}
	}

	return tm, nil
}

// Render draws the map as text over its bounding box, top row first.
// Walkable cells on path are drawn as '*'; Spawn and Goal keep their letter.
// Unpainted cells render as Empty.
func (tm *TileMap) Render(path []Coord) string {
	lo, hi, ok := tm.Bounds()
	if !ok {
		return ""
	}
	onPath := make(map[Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	for y := hi.Y; y >= lo.Y; y-- {
		for x := lo.X; x <= hi.X; x++ {
			c := Coord{X: x, Y: y}
			t, painted := tm.tiles[c]
			switch {
			case !painted:
				sb.WriteRune(' ')
			case t == Walkable && onPath[c]:
				sb.WriteRune('*')
			default:
				sb.WriteRune(tileRune(t))
			}
		}
		if y > lo.Y {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Lines is Render split into rows.
func (tm *TileMap) Lines(path []Coord) []string {
	s := tm.Render(path)
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
