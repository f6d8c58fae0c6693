// Command gridpath loads a tile map and runs one or all path searches from
// its Spawn tile to its Goal tile, printing metrics and the drawn path.
//
// Usage:
//
//	gridpath -map level.txt [-algo bfs|dfs|dijkstra|astar|all] [-diag] [-cost EXPR] [-v]
//	gridpath -gen 40x20 [-density 0.25] [-seed 7] [-save level.txt.lz4] ...
//
// -gen draws a random map instead of loading one; -save writes the map used.
// EXPR is a JavaScript expression over the cell coordinate x, y giving the
// cost of entering that cell, e.g. "y > 4 ? 3 : 1".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/comfforts/logger"

	"github.com/tp-group5/algokit/costexpr"
	"github.com/tp-group5/algokit/gridgraph"
	"github.com/tp-group5/algokit/mapfile"
	"github.com/tp-group5/algokit/pathfind"
)

var (
	errNoSpawn = errors.New("gridpath: map has no spawn tile (S)")
	errNoGoal  = errors.New("gridpath: map has no goal tile (G)")
)

type config struct {
	mapPath  string
	gen      string
	density  float64
	seed     int64
	savePath string
	algo     string
	diag     bool
	cost     string
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapPath, "map", "", "tile map file (.lz4 for compressed)")
	fs.StringVar(&cfg.gen, "gen", "", "generate a random WIDTHxHEIGHT map instead of -map")
	fs.Float64Var(&cfg.density, "density", 0.25, "blocked-cell probability for -gen")
	fs.Int64Var(&cfg.seed, "seed", 1, "random seed for -gen")
	fs.StringVar(&cfg.savePath, "save", "", "write the map to this file")
	fs.StringVar(&cfg.algo, "algo", "all", "bfs, dfs, dijkstra, astar or all")
	fs.BoolVar(&cfg.diag, "diag", false, "allow diagonal moves")
	fs.StringVar(&cfg.cost, "cost", "", "per-cell cost expression over x, y")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if (cfg.mapPath == "") == (cfg.gen == "") {
		return cfg, errors.New("gridpath: exactly one of -map or -gen is required")
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	l := logger.GetSlogLogger()
	if cfg.verbose {
		l = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	ctx = logger.WithLogger(ctx, l)

	tm, err := loadMap(cfg)
	if err != nil {
		return err
	}
	if cfg.savePath != "" {
		if err := mapfile.Save(cfg.savePath, tm); err != nil {
			return err
		}
		l.Debug("gridpath: map saved", slog.String("path", cfg.savePath))
	}
	start, ok := tm.Spawn()
	if !ok {
		return errNoSpawn
	}
	goal, ok := tm.Goal()
	if !ok {
		return errNoGoal
	}
	l.Debug("gridpath: map ready", slog.String("path", cfg.mapPath), slog.String("gen", cfg.gen), slog.Int("tiles", tm.Len()))

	walk := tm.Walkability()
	opts := []pathfind.Option{pathfind.WithContext(ctx)}
	if cfg.diag {
		opts = append(opts, pathfind.WithDiagonals())
	}
	if cfg.cost != "" {
		expr, err := costexpr.Compile(cfg.cost)
		if err != nil {
			return err
		}
		fn, err := expr.CostFunc(ctx, walk)
		if err != nil {
			return err
		}
		opts = append(opts, pathfind.WithCost(fn))
	}

	var results []*pathfind.Result
	if cfg.algo == "all" {
		results, err = pathfind.RunAll(walk, start, goal, opts...)
	} else {
		var algo pathfind.Algorithm
		if algo, err = pathfind.ParseAlgorithm(cfg.algo); err != nil {
			return err
		}
		var res *pathfind.Result
		if res, err = pathfind.FindPath(walk, start, goal, algo, opts...); err == nil {
			results = append(results, res)
		}
	}
	if err != nil {
		return err
	}

	for _, res := range results {
		fmt.Fprintln(stdout, res)
		fmt.Fprintln(stdout, tm.Render(res.Path))
		fmt.Fprintln(stdout)
	}

	return nil
}

func loadMap(cfg config) (*gridgraph.TileMap, error) {
	if cfg.mapPath != "" {
		return mapfile.Load(cfg.mapPath)
	}
	var w, h int
	if _, err := fmt.Sscanf(cfg.gen, "%dx%d", &w, &h); err != nil {
		return nil, fmt.Errorf("gridpath: -gen %q: want WIDTHxHEIGHT", cfg.gen)
	}

	return gridgraph.RandomTileMap(w, h, cfg.density, gridgraph.WithSeed(cfg.seed))
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
