package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/m3g/level"
	"github.com/milk9111/m3g/thumbs"
)

func (g *EditorGame) Draw(screen *ebiten.Image) {
	screen.Fill(colors.canvas)

	ebitenutil.DebugPrintAt(screen, "Tile Slots", g.slotLayout.OriginX, g.slotLayout.OriginY-16)
	tile, selected := g.session.Palette.Selected()
	for i, t := range g.session.Palette.Slots() {
		r := g.slotLayout.CellRect(i, 0)
		g.drawTile(screen, r, t)
		if i == selected {
			strokeRect(screen, r, 2, colors.slotPicked)
		} else {
			strokeRect(screen, r, 1, colors.slotBorder)
		}
	}

	grid := g.session.Grid
	if grid != nil {
		ebitenutil.DebugPrintAt(screen, "Level Grid", g.gridLayout.OriginX, g.gridLayout.OriginY-16)
		grid.Each(func(x, y int, t *level.Tile) {
			g.drawTile(screen, g.gridLayout.CellRect(x, y), t)
		})
		mx, my := ebiten.CursorPosition()
		if x, y, ok := g.gridLayout.CellAt(mx, my); ok && grid.InBounds(x, y) {
			fillRect(screen, g.gridLayout.CellRect(x, y), colors.hover)
		}
	}

	if g.ui != nil {
		g.ui.Draw(screen)
	}

	h := screen.Bounds().Dy()
	fillRect(screen, image.Rect(leftPanelWidth, h-24, screen.Bounds().Dx(), h), colors.statusBar)
	ebitenutil.DebugPrintAt(screen, g.statusLine(tile), leftPanelWidth+canvasMargin, h-20)
}

func (g *EditorGame) statusLine(selected *level.Tile) string {
	grid := g.session.Grid
	if grid == nil {
		return "No level"
	}
	state := "saved"
	if g.session.Dirty() {
		state = "unsaved"
	}
	file := g.savePath
	if file == "" {
		file = "(not saved yet)"
	}
	return fmt.Sprintf("%dx%d  filled %d  brush %s  %s  %s", grid.Width(), grid.Height(), grid.Filled(), selected, state, file)
}

func (g *EditorGame) drawTile(screen *ebiten.Image, r image.Rectangle, t *level.Tile) {
	if t == nil {
		fillRect(screen, r, colors.emptyCell)
		return
	}
	img := g.tileImage(t)
	if img == nil {
		fillRect(screen, r, kindColor(t.Kind))
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(img, op)
}

// tileImage returns the GPU thumbnail for t, building it once.
func (g *EditorGame) tileImage(t *level.Tile) *ebiten.Image {
	if img, ok := g.images[t.ID]; ok {
		return img
	}
	thumb, err := g.thumbs.Thumbnail(t)
	if err != nil {
		if !errors.Is(err, thumbs.ErrNoVisual) {
			log.Printf("Thumbnail for %s unavailable: %v", t.ID, err)
		}
		g.images[t.ID] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(thumb)
	g.images[t.ID] = img
	return img
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, c, false)
}
