package tiles

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/milk9111/m3g/level"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Catalog is the set of tiles available for painting, keyed by ID.
type Catalog struct {
	tiles map[string]*level.Tile
}

func NewCatalog() *Catalog {
	return &Catalog{tiles: make(map[string]*level.Tile)}
}

// Default returns a catalog holding the built-in empty, normal and obstacle
// tiles.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// Add registers t. When the ID is already known the existing tile is updated
// in place and returned, so grids holding it see the new definition.
func (c *Catalog) Add(t *level.Tile) *level.Tile {
	if existing, ok := c.tiles[t.ID]; ok {
		*existing = *t
		return existing
	}
	c.tiles[t.ID] = t
	return t
}

func (c *Catalog) Lookup(id string) (*level.Tile, bool) {
	t, ok := c.tiles[id]
	return t, ok
}

func (c *Catalog) Len() int { return len(c.tiles) }

// All returns every tile sorted by ID.
func (c *Catalog) All() []*level.Tile {
	out := make([]*level.Tile, 0, len(c.tiles))
	for _, t := range c.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LoadFile parses one tile file from disk and adds it.
func (c *Catalog) LoadFile(filename string) (*level.Tile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("tiles: load %s: %w", filename, err)
	}
	return c.AddSpec(filename, data)
}

// AddSpec parses a tile file's contents and adds the tile.
func (c *Catalog) AddSpec(name string, data []byte) (*level.Tile, error) {
	t, err := ParseSpec(name, data)
	if err != nil {
		return nil, err
	}
	return c.Add(t), nil
}

// LoadDir adds every tile file directly inside dir.
func (c *Catalog) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("tiles: read dir %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !IsSpecFile(e.Name()) {
			continue
		}
		if _, err := c.LoadFile(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// LoadFS builds a catalog from the tile files at the root of fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	c := NewCatalog()
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("tiles: read dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !IsSpecFile(e.Name()) {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("tiles: load %s: %w", e.Name(), err)
		}
		if _, err := c.AddSpec(path.Clean(e.Name()), data); err != nil {
			return nil, err
		}
	}
	log.Printf("Loaded %d tiles", c.Len())
	return c, nil
}
