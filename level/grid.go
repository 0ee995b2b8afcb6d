package level

import "fmt"

// Grid is a fixed-size, row-major array of tile references. A nil cell is
// empty.
type Grid struct {
	width  int
	height int
	cells  []*Tile
}

// MaxCells bounds width*height for any grid.
const MaxCells = 1 << 20

// New returns a width x height grid with every cell empty.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimension, width, height, MaxCells)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]*Tile, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return y*g.width + x, nil
}

// Get returns the tile at (x, y), or nil for an empty cell.
func (g *Grid) Get(x, y int) (*Tile, error) {
	idx, err := g.index(x, y)
	if err != nil {
		return nil, err
	}
	return g.cells[idx], nil
}

// Set overwrites the cell at (x, y). A nil tile erases it.
func (g *Grid) Set(x, y int, t *Tile) error {
	idx, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[idx] = t
	return nil
}

func (g *Grid) Clear(x, y int) error {
	return g.Set(x, y, nil)
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, t *Tile)) {
	for i, t := range g.cells {
		fn(i%g.width, i/g.width, t)
	}
}

// Filled counts the non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, t := range g.cells {
		if t != nil {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and the same tile
// identity in every cell.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		a, b := g.cells[i], o.cells[i]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && a.ID != b.ID {
			return false
		}
	}
	return true
}

// Resize builds a new grid and copies the cells that fall inside both
// extents. The receiver is left untouched.
func (g *Grid) Resize(width, height int) (*Grid, error) {
	ng, err := New(width, height)
	if err != nil {
		return nil, err
	}
	w := min(width, g.width)
	h := min(height, g.height)
	for y := 0; y < h; y++ {
		copy(ng.cells[y*width:y*width+w], g.cells[y*g.width:y*g.width+w])
	}
	return ng, nil
}
