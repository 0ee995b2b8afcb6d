package editor

import "image"

// Layout places a grid of square cells on screen. Gap is the spacing between
// neighbouring cells.
type Layout struct {
	OriginX  int
	OriginY  int
	CellSize int
	Gap      int
}

func (l Layout) pitch() int { return l.CellSize + l.Gap }

// CellAt maps a screen pixel to a cell. ok is false over the gaps, left of
// or above the origin, and when the layout has no cell size. The result is
// not bounded by any grid; the Grid rejects coordinates outside it.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	if l.CellSize <= 0 {
		return 0, 0, false
	}
	lx, ly := px-l.OriginX, py-l.OriginY
	if lx < 0 || ly < 0 {
		return 0, 0, false
	}
	p := l.pitch()
	x, y = lx/p, ly/p
	if lx%p >= l.CellSize || ly%p >= l.CellSize {
		return x, y, false
	}
	return x, y, true
}

// CellRect is the screen rectangle of cell (x, y).
func (l Layout) CellRect(x, y int) image.Rectangle {
	p := l.pitch()
	minX := l.OriginX + x*p
	minY := l.OriginY + y*p
	return image.Rect(minX, minY, minX+l.CellSize, minY+l.CellSize)
}

// Extent is the pixel size of a cols x rows block of cells.
func (l Layout) Extent(cols, rows int) image.Point {
	if cols <= 0 || rows <= 0 {
		return image.Point{}
	}
	p := l.pitch()
	return image.Pt(cols*p-l.Gap, rows*p-l.Gap)
}

// SlotAt maps a pixel to a palette slot laid out as a single row of count
// cells.
func (l Layout) SlotAt(px, py, count int) (int, bool) {
	x, y, ok := l.CellAt(px, py)
	if !ok || y != 0 || x >= count {
		return -1, false
	}
	return x, true
}
