// File: generate.go
// Role: RandomTileMap, a seeded random obstacle map generator.
// Determinism:
//   - Cell trials run y ascending, then x ascending; a fixed seed yields a
//     fixed map.
package gridgraph

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrTooSmall indicates a generated map below the 2×1 minimum.
	ErrTooSmall = errors.New("gridgraph: map must hold at least two cells")
	// ErrInvalidDensity indicates a blocked-cell probability outside [0,1].
	ErrInvalidDensity = errors.New("gridgraph: density out of range")
)

const defaultSeed = 1

type genConfig struct {
	rng *rand.Rand
}

// GenOption customizes RandomTileMap.
type GenOption func(*genConfig)

// WithSeed uses a new *rand.Rand seeded with seed.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("gridgraph: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// RandomTileMap returns a width×height map where each cell is Blocked with
// probability density and Walkable otherwise. Spawn is painted at (0,0)
// and Goal at (width-1, height-1) regardless of the draw; a path between
// them is not guaranteed.
// Complexity: O(W×H).
func RandomTileMap(width, height int, density float64, opts ...GenOption) (*TileMap, error) {
	if width < 1 || height < 1 || width*height < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, width, height)
	}
	if !(density >= 0 && density <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	cfg := genConfig{rng: rand.New(rand.NewSource(defaultSeed))}
	for _, opt := range opts {
		opt(&cfg)
	}

	tm := &TileMap{tiles: make(map[Coord]TileType, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := Walkable
			if cfg.rng.Float64() < density {
				t = Blocked
			}
			tm.Set(Coord{X: x, Y: y}, t)
		}
	}
	tm.Set(Coord{X: 0, Y: 0}, Spawn)
	tm.Set(Coord{X: width - 1, Y: height - 1}, Goal)

	return tm, nil
}
