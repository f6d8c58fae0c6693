// Package mapfile reads and writes tile maps as text pictures, optionally
// lz4-compressed.
//
// The file format is the gridgraph text legend, one row per line with the
// top row first. Trailing blank lines and carriage returns are ignored.
// Files whose name ends in ".lz4" are wrapped in an lz4 frame.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4"

	"github.com/tp-group5/algokit/gridgraph"
)

// CompressedExt marks files stored as lz4 frames.
const CompressedExt = ".lz4"

// Read parses a tile map from r.
func Read(r io.Reader) (*gridgraph.TileMap, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mapfile: read: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	tm, err := gridgraph.ParseTileMap(rows)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}

	return tm, nil
}

// Write renders tm to w followed by a newline.
func Write(w io.Writer, tm *gridgraph.TileMap) error {
	if _, err := io.WriteString(w, tm.Render(nil)+"\n"); err != nil {
		return fmt.Errorf("mapfile: write: %w", err)
	}

	return nil
}

func compressed(path string) bool { return strings.HasSuffix(path, CompressedExt) }

// Load reads the tile map stored at path.
func Load(path string) (*gridgraph.TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed(path) {
		r = lz4.NewReader(f)
	}

	return Read(r)
}

// Save writes tm to path, replacing any existing file.
func Save(path string, tm *gridgraph.TileMap) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("mapfile: %w", cerr)
		}
	}()

	if !compressed(path) {
		return Write(f, tm)
	}
	zw := lz4.NewWriter(f)
	if err := Write(zw, tm); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("mapfile: lz4: %w", err)
	}

	return nil
}
