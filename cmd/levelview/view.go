package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/milk9111/m3g/level"
)

// cellCols is the number of terminal columns one grid cell occupies.
const cellCols = 2

// glyphFor picks the glyph drawn for a cell. Empty cells get a dot so
// unpainted areas stay distinguishable from tiles of kind empty.
func glyphFor(t *level.Tile) string {
	if t == nil {
		return "·"
	}
	switch t.Kind {
	case level.KindEmpty:
		return "⬜"
	case level.KindNormal:
		return "🟩"
	case level.KindObstacle:
		return "🧱"
	default:
		return "❓"
	}
}

func styleFor(t *level.Tile) tcell.Style {
	if t == nil {
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	return tcell.StyleDefault
}

// viewer draws a level onto a tcell screen with a scrollable viewport.
type viewer struct {
	screen tcell.Screen
	grid   *level.Grid
	name   string
	offX   int
	offY   int
}

func newViewer(screen tcell.Screen, grid *level.Grid, name string) *viewer {
	return &viewer{screen: screen, grid: grid, name: name}
}

// viewport returns how many cells fit on screen, leaving one row for status.
func (v *viewer) viewport() (cols, rows int) {
	w, h := v.screen.Size()
	return max(w/cellCols, 0), max(h-1, 0)
}

func (v *viewer) scroll(dx, dy int) {
	cols, rows := v.viewport()
	v.offX = clamp(v.offX+dx, 0, max(v.grid.Width()-cols, 0))
	v.offY = clamp(v.offY+dy, 0, max(v.grid.Height()-rows, 0))
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}

// handleKey applies one key press and reports whether the viewer should exit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)
	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'h':
			v.scroll(-1, 0)
		case 'l':
			v.scroll(1, 0)
		case 'k':
			v.scroll(0, -1)
		case 'j':
			v.scroll(0, 1)
		}
	}
	return false
}

func (v *viewer) draw() {
	v.screen.Clear()
	cols, rows := v.viewport()
	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < cols; sx++ {
			t, err := v.grid.Get(v.offX+sx, v.offY+sy)
			if err != nil {
				continue
			}
			putGlyph(v.screen, sx*cellCols, sy, glyphFor(t), styleFor(t))
		}
	}
	_, h := v.screen.Size()
	putString(v.screen, 0, h-1, v.status(), tcell.StyleDefault.Foreground(tcell.ColorYellow))
	v.screen.Show()
}

func (v *viewer) status() string {
	g := v.grid
	return fmt.Sprintf("%s  %dx%d  filled %d/%d  at (%d,%d)  q: quit",
		v.name, g.Width(), g.Height(), g.Filled(), g.Width()*g.Height(), v.offX, v.offY)
}

func putGlyph(s tcell.Screen, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	s.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) < cellCols {
		s.SetContent(x+1, y, ' ', nil, style)
	}
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
