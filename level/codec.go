package level

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Resolver maps tile IDs found in level data back to catalog tiles.
type Resolver interface {
	Lookup(id string) (*Tile, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(id string) (*Tile, bool)

func (f ResolverFunc) Lookup(id string) (*Tile, bool) { return f(id) }

// file is the on-disk layout. Cells are row-major; 0 is empty and n refers
// to Tiles[n-1].
type file struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  []string `json:"tiles"`
	Cells  []int    `json:"cells"`
}

// Encode serializes g as indented JSON.
func Encode(g *Grid) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrMalformed)
	}
	f := file{
		Width:  g.width,
		Height: g.height,
		Tiles:  []string{},
		Cells:  make([]int, len(g.cells)),
	}
	table := make(map[string]int)
	for i, t := range g.cells {
		if t == nil {
			continue
		}
		if t.ID == "" {
			return nil, fmt.Errorf("%w: cell (%d,%d)", ErrUnnamedTile, i%g.width, i/g.width)
		}
		n, ok := table[t.ID]
		if !ok {
			f.Tiles = append(f.Tiles, t.ID)
			n = len(f.Tiles)
			table[t.ID] = n
		}
		f.Cells[i] = n
	}
	return json.MarshalIndent(f, "", "  ")
}

// Decode parses level data produced by Encode. IDs are resolved through r; a
// nil r produces one placeholder tile per distinct ID.
func Decode(data []byte, r Resolver) (*Grid, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// Cell count is checked before allocating; width*height may overflow.
	if f.Width > 0 && f.Height > 0 && (f.Width > len(f.Cells)/f.Height || len(f.Cells) != f.Width*f.Height) {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrMalformed, len(f.Cells), f.Width, f.Height)
	}
	g, err := New(f.Width, f.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	resolved := make([]*Tile, len(f.Tiles))
	for i, id := range f.Tiles {
		if id == "" {
			return nil, fmt.Errorf("%w: tile table entry %d has no id", ErrMalformed, i)
		}
		if r == nil {
			resolved[i] = &Tile{ID: id}
			continue
		}
		t, ok := r.Lookup(id)
		if !ok || t == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTile, id)
		}
		resolved[i] = t
	}

	for i, n := range f.Cells {
		if n == 0 {
			continue
		}
		if n < 0 || n > len(resolved) {
			return nil, fmt.Errorf("%w: cell %d refers to tile %d of %d", ErrMalformed, i, n, len(resolved))
		}
		g.cells[i] = resolved[n-1]
	}
	return g, nil
}

// Save encodes g and writes it to path, creating parent directories.
func Save(path string, g *Grid) error {
	if path == "" {
		return fmt.Errorf("empty save path")
	}
	data, err := Encode(g)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Printf("Saved level: %s", path)
	return nil
}

func Load(path string, r Resolver) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	g, err := Decode(data, r)
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", path, err)
	}
	return g, nil
}
