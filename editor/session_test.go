package editor

import (
	"testing"

	"github.com/milk9111/m3g/level"
)

var (
	gem  = &level.Tile{ID: "gem", Kind: level.KindNormal}
	rock = &level.Tile{ID: "rock", Kind: level.KindObstacle}
)

func newTestSession(t *testing.T, w, h int) *Session {
	t.Helper()
	s := NewSession()
	if err := s.NewLevel(w, h); err != nil {
		t.Fatal(err)
	}
	i := s.Palette.AddSlot()
	_ = s.Palette.Assign(i, gem)
	j := s.Palette.AddSlot()
	_ = s.Palette.Assign(j, rock)
	return s
}

func cell(t *testing.T, s *Session, x, y int) *level.Tile {
	t.Helper()
	tile, err := s.Grid.Get(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return tile
}

func TestPaintAndEraseStrokes(t *testing.T) {
	s := newTestSession(t, 4, 4)
	_ = s.Palette.Select(0)

	if !s.Press(ButtonLeft, 0, 0) {
		t.Fatalf("press should paint")
	}
	s.Drag(ButtonLeft, 1, 0)
	s.Drag(ButtonLeft, 2, 0)
	s.Release()
	for x := 0; x < 3; x++ {
		if cell(t, s, x, 0) != gem {
			t.Fatalf("cell (%d,0) not painted", x)
		}
	}
	if !s.Dirty() {
		t.Fatalf("painting should mark the session dirty")
	}

	if !s.Press(ButtonRight, 1, 0) {
		t.Fatalf("right press should erase")
	}
	s.Drag(ButtonRight, 2, 0)
	s.Release()
	if cell(t, s, 0, 0) != gem || cell(t, s, 1, 0) != nil || cell(t, s, 2, 0) != nil {
		t.Fatalf("unexpected row after erase: %v %v %v", cell(t, s, 0, 0), cell(t, s, 1, 0), cell(t, s, 2, 0))
	}
}

func TestPaintWithoutSelectionDoesNothing(t *testing.T) {
	s := newTestSession(t, 2, 2)
	if s.Press(ButtonLeft, 0, 0) {
		t.Fatalf("nothing selected, press must not paint")
	}
	if s.Stroking() {
		t.Fatalf("no stroke should start without a selected tile")
	}
	empty := s.Palette.AddSlot()
	_ = s.Palette.Select(empty)
	if s.Press(ButtonLeft, 0, 0) {
		t.Fatalf("empty slot selected, press must not paint")
	}
	if s.Grid.Filled() != 0 || s.Dirty() {
		t.Fatalf("grid should be untouched")
	}
}

func TestStrokesExcludeEachOther(t *testing.T) {
	cases := []struct {
		name   string
		first  Button
		second Button
	}{
		{"paint_blocks_erase", ButtonLeft, ButtonRight},
		{"erase_blocks_paint", ButtonRight, ButtonLeft},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestSession(t, 3, 1)
			_ = s.Palette.Select(1)
			_ = s.Grid.Set(2, 0, gem)

			s.Press(c.first, 0, 0)
			before := cell(t, s, 2, 0)
			if s.Press(c.second, 2, 0) || s.Drag(c.second, 2, 0) {
				t.Fatalf("second button must be ignored during a stroke")
			}
			if cell(t, s, 2, 0) != before {
				t.Fatalf("cell changed by blocked button")
			}
			s.Release()
			if !s.Press(c.second, 2, 0) {
				t.Fatalf("after release the other button should work")
			}
		})
	}
}

func TestDragWithoutPressIsIgnored(t *testing.T) {
	s := newTestSession(t, 2, 2)
	_ = s.Palette.Select(0)
	if s.Drag(ButtonLeft, 0, 0) || s.Drag(ButtonRight, 0, 0) {
		t.Fatalf("drag without press must not change the grid")
	}
}

func TestOutOfGridPointerIsIgnored(t *testing.T) {
	s := newTestSession(t, 2, 2)
	_ = s.Palette.Select(0)
	if s.Press(ButtonLeft, 5, 5) {
		t.Fatalf("press outside the grid must be ignored")
	}
	if !s.Drag(ButtonLeft, 1, 1) {
		t.Fatalf("stroke should continue back inside the grid")
	}
	if s.Grid.Filled() != 1 {
		t.Fatalf("expected one painted cell, got %d", s.Grid.Filled())
	}
}

func TestRepaintSameTileReportsNoChange(t *testing.T) {
	s := newTestSession(t, 1, 1)
	_ = s.Palette.Select(0)
	s.Press(ButtonLeft, 0, 0)
	s.MarkSaved()
	if s.Drag(ButtonLeft, 0, 0) {
		t.Fatalf("repainting the same tile should report no change")
	}
	if s.Dirty() {
		t.Fatalf("no-op paint must not dirty the session")
	}
}

func TestResizeKeepsCells(t *testing.T) {
	s := newTestSession(t, 3, 3)
	_ = s.Grid.Set(0, 0, gem)
	_ = s.Grid.Set(2, 2, rock)
	if err := s.Resize(2, 5); err != nil {
		t.Fatal(err)
	}
	if s.Grid.Width() != 2 || s.Grid.Height() != 5 {
		t.Fatalf("unexpected size %dx%d", s.Grid.Width(), s.Grid.Height())
	}
	if cell(t, s, 0, 0) != gem || s.Grid.Filled() != 1 {
		t.Fatalf("resize should keep only overlapping cells")
	}
	if !s.Dirty() {
		t.Fatalf("resize should dirty the session")
	}
	if err := s.Resize(0, 1); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if err := s.NewLevel(-1, 2); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if s.Grid.Width() != 2 {
		t.Fatalf("failed NewLevel must keep the current grid")
	}
}

func TestSlotIDsRoundTrip(t *testing.T) {
	s := newTestSession(t, 1, 1)
	s.Palette.AddSlot()
	ids := s.SlotIDs()
	want := []string{"gem", "rock", ""}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}

	known := map[string]*level.Tile{"gem": gem}
	s.RestoreSlots([]string{"rock", "gem", ""}, level.ResolverFunc(func(id string) (*level.Tile, bool) {
		tile, ok := known[id]
		return tile, ok
	}))
	if s.Palette.Len() != 3 {
		t.Fatalf("expected 3 slots, got %d", s.Palette.Len())
	}
	if tile, _ := s.Palette.Slot(0); tile != nil {
		t.Fatalf("unknown id should restore as an empty slot")
	}
	if tile, _ := s.Palette.Slot(1); tile != gem {
		t.Fatalf("expected gem in slot 1, got %v", tile)
	}
}

func TestOversizedLevelIsRejected(t *testing.T) {
	s := newTestSession(t, 3, 3)
	if err := s.Resize(1<<31, 1<<31); err == nil {
		t.Fatalf("expected error for oversized resize")
	}
	if err := s.NewLevel(level.MaxCells, 2); err == nil {
		t.Fatalf("expected error for oversized level")
	}
	if s.Grid.Width() != 3 || s.Grid.Height() != 3 {
		t.Fatalf("rejected sizes must keep the current grid, got %dx%d", s.Grid.Width(), s.Grid.Height())
	}
}
