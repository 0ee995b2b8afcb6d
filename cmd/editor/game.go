package main

import (
	"io/fs"
	"log"
	"path"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/m3g/assets"
	"github.com/milk9111/m3g/editor"
	"github.com/milk9111/m3g/level"
	"github.com/milk9111/m3g/thumbs"
	"github.com/milk9111/m3g/tiles"
)

const (
	leftPanelWidth = 220
	canvasMargin   = 16
	slotSize       = 50
	cellSize       = 40
)

// EditorGame is the ebiten host for an editor.Session.
type EditorGame struct {
	session *editor.Session
	catalog *tiles.Catalog
	thumbs  *thumbs.Cache
	// images holds GPU copies of thumbnails; a nil entry records a tile
	// whose thumbnail could not be built so it is not retried every frame.
	images map[string]*ebiten.Image

	ui    *ebitenui.UI
	panel *LeftPanelUI

	slotLayout editor.Layout
	gridLayout editor.Layout

	watcher    *tiles.Watcher
	prefsStore *editor.PrefsStore
	prefs      *editor.Prefs
	savePath   string
	clipboard  bool
}

func NewEditorGame(session *editor.Session, catalog *tiles.Catalog, prefsStore *editor.PrefsStore, prefs *editor.Prefs) *EditorGame {
	g := &EditorGame{
		session:    session,
		catalog:    catalog,
		thumbs:     thumbs.NewCache(assets.Loader, cellSize),
		images:     make(map[string]*ebiten.Image),
		prefsStore: prefsStore,
		prefs:      prefs,
		slotLayout: editor.Layout{
			OriginX:  leftPanelWidth + canvasMargin,
			OriginY:  canvasMargin + 16,
			CellSize: slotSize,
			Gap:      6,
		},
		gridLayout: editor.Layout{
			OriginX:  leftPanelWidth + canvasMargin,
			OriginY:  canvasMargin + 16 + slotSize + 40,
			CellSize: cellSize,
			Gap:      2,
		},
	}
	return g
}

func (g *EditorGame) Update() error {
	// If the UI has a focused text widget (user is typing), suppress hotkeys.
	suppressHotkeys := false
	if g.ui != nil {
		if fw := g.ui.GetFocusedWidget(); fw != nil {
			switch fw.(type) {
			case *widget.TextInput:
				suppressHotkeys = true
			}
		}
	}

	if !suppressHotkeys {
		if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
			return ebiten.Termination
		}
		ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
		if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.saveFromPanel()
		}
		if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.copyToClipboard()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.session.Palette.Deselect()
		}
	}

	if g.ui != nil {
		g.ui.Update()
	}
	g.pollWatcher()

	mx, my := ebiten.CursorPosition()
	g.handleDrops(mx, my)

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.session.Release()
	}

	// Clicks on the side panel must not paint the canvas underneath.
	if ebuiinput.UIHovered {
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if slot, ok := g.slotLayout.SlotAt(mx, my, g.session.Palette.Len()); ok {
			_ = g.session.Palette.Select(slot)
			return nil
		}
	}

	x, y, ok := g.gridLayout.CellAt(mx, my)
	if !ok {
		return nil
	}
	for _, b := range []struct {
		mouse  ebiten.MouseButton
		button editor.Button
	}{
		{ebiten.MouseButtonLeft, editor.ButtonLeft},
		{ebiten.MouseButtonRight, editor.ButtonRight},
	} {
		switch {
		case inpututil.IsMouseButtonJustPressed(b.mouse):
			g.session.Press(b.button, x, y)
		case ebiten.IsMouseButtonPressed(b.mouse):
			g.session.Drag(b.button, x, y)
		}
	}
	return nil
}

// handleDrops assigns tile files dropped onto a palette slot to that slot.
func (g *EditorGame) handleDrops(mx, my int) {
	dropped := ebiten.DroppedFiles()
	if dropped == nil {
		return
	}
	slot, ok := g.slotLayout.SlotAt(mx, my, g.session.Palette.Len())
	if !ok {
		log.Println("Drop tile files onto a palette slot")
		return
	}
	entries, err := fs.ReadDir(dropped, ".")
	if err != nil {
		log.Printf("Failed to read dropped files: %v", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() || !tiles.IsSpecFile(e.Name()) {
			continue
		}
		data, err := fs.ReadFile(dropped, path.Clean(e.Name()))
		if err != nil {
			log.Printf("Failed to read %s: %v", e.Name(), err)
			continue
		}
		tile, err := g.catalog.AddSpec(e.Name(), data)
		if err != nil {
			log.Printf("Rejected dropped tile %s: %v", e.Name(), err)
			continue
		}
		g.forgetImage(tile)
		_ = g.session.Palette.Assign(slot, tile)
		log.Printf("Assigned tile %s to slot %d", tile.ID, slot)
	}
	g.refreshTileList()
}

func (g *EditorGame) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			tile, err := g.catalog.LoadFile(name)
			if err != nil {
				log.Printf("Tile reload failed: %v", err)
				continue
			}
			g.forgetImage(tile)
			g.refreshTileList()
			log.Printf("Reloaded tile %s", tile.ID)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Tile watcher error: %v", err)
		default:
			return
		}
	}
}

func (g *EditorGame) forgetImage(t *level.Tile) {
	if img, ok := g.images[t.ID]; ok && img != nil {
		img.Deallocate()
	}
	delete(g.images, t.ID)
	g.thumbs.Invalidate(t.ID, t.Visual.Path)
}

func (g *EditorGame) refreshTileList() {
	if g.panel != nil {
		g.panel.Tiles.SetTiles(g.catalog.All())
	}
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
