// Package editor holds the host-independent state of the level editor: the
// grid being painted, the palette, and the rules that turn pointer strokes
// into paint and erase operations.
package editor

import (
	"errors"
	"log"

	"github.com/milk9111/m3g/level"
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Session is one editing session over a single grid.
type Session struct {
	Grid    *level.Grid
	Palette *level.Palette

	// Only one button may drive a stroke at a time; the other is ignored
	// until Release.
	painting bool
	erasing  bool
	dirty    bool
}

func NewSession() *Session {
	return &Session{Palette: level.NewPalette()}
}

// NewLevel replaces the grid with an empty width x height one.
func (s *Session) NewLevel(width, height int) error {
	g, err := level.New(width, height)
	if err != nil {
		return err
	}
	s.SetGrid(g)
	log.Printf("New level: %dx%d", width, height)
	return nil
}

// Resize moves the current cells into a grid of the new size. Cells outside
// the new extent are dropped.
func (s *Session) Resize(width, height int) error {
	if s.Grid == nil {
		return s.NewLevel(width, height)
	}
	g, err := s.Grid.Resize(width, height)
	if err != nil {
		return err
	}
	s.Grid = g
	s.dirty = true
	s.Release()
	return nil
}

// SetGrid installs g, e.g. after loading it from disk.
func (s *Session) SetGrid(g *level.Grid) {
	s.Grid = g
	s.dirty = false
	s.Release()
}

func (s *Session) Dirty() bool { return s.dirty }
func (s *Session) MarkSaved() { s.dirty = false }

// Press starts a stroke with button b at cell (x, y) and applies it. It
// reports whether the grid changed.
func (s *Session) Press(b Button, x, y int) bool {
	switch b {
	case ButtonLeft:
		if s.erasing {
			return false
		}
		if tile, _ := s.Palette.Selected(); tile == nil {
			return false
		}
		s.painting = true
	case ButtonRight:
		if s.painting {
			return false
		}
		s.erasing = true
	default:
		return false
	}
	return s.apply(b, x, y)
}

// Drag continues the stroke started by Press. Drags of a button that is not
// driving the current stroke are ignored.
func (s *Session) Drag(b Button, x, y int) bool {
	if (b == ButtonLeft && !s.painting) || (b == ButtonRight && !s.erasing) {
		return false
	}
	return s.apply(b, x, y)
}

// Release ends any stroke.
func (s *Session) Release() {
	s.painting = false
	s.erasing = false
}

func (s *Session) Stroking() bool { return s.painting || s.erasing }

func (s *Session) apply(b Button, x, y int) bool {
	if s.Grid == nil {
		return false
	}
	var tile *level.Tile
	if b == ButtonLeft {
		tile, _ = s.Palette.Selected()
		if tile == nil {
			return false
		}
	}
	prev, err := s.Grid.Get(x, y)
	if errors.Is(err, level.ErrOutOfBounds) {
		return false
	}
	if err != nil || prev == tile {
		return false
	}
	if err := s.Grid.Set(x, y, tile); err != nil {
		return false
	}
	s.dirty = true
	return true
}

// SlotIDs lists the tile ID held by each palette slot, "" for empty slots.
func (s *Session) SlotIDs() []string {
	slots := s.Palette.Slots()
	ids := make([]string, len(slots))
	for i, t := range slots {
		if t != nil {
			ids[i] = t.ID
		}
	}
	return ids
}

// RestoreSlots rebuilds the palette from ids. IDs r does not know become
// empty slots.
func (s *Session) RestoreSlots(ids []string, r level.Resolver) {
	s.Palette = level.NewPalette()
	for _, id := range ids {
		i := s.Palette.AddSlot()
		if id == "" || r == nil {
			continue
		}
		if t, ok := r.Lookup(id); ok {
			_ = s.Palette.Assign(i, t)
		}
	}
}
