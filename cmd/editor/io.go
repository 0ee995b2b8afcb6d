package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/m3g/editor"
	"github.com/milk9111/m3g/level"
	"github.com/milk9111/m3g/levels"
	"golang.design/x/clipboard"
)

// panelSize reads the Width and Height fields.
func (g *EditorGame) panelSize() (int, int, error) {
	w, err := strconv.Atoi(strings.TrimSpace(g.panel.WidthInput.GetText()))
	if err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(g.panel.HeightInput.GetText()))
	if err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}
	return w, h, nil
}

func (g *EditorGame) createFromPanel() {
	w, h, err := g.panelSize()
	if err != nil {
		log.Printf("Create failed: %v", err)
		return
	}
	if err := g.session.NewLevel(w, h); err != nil {
		log.Printf("Create failed: %v", err)
		return
	}
	g.savePath = ""
	g.prefs.Width, g.prefs.Height = w, h
}

func (g *EditorGame) resizeFromPanel() {
	w, h, err := g.panelSize()
	if err != nil {
		log.Printf("Resize failed: %v", err)
		return
	}
	if err := g.session.Resize(w, h); err != nil {
		log.Printf("Resize failed: %v", err)
		return
	}
	g.prefs.Width, g.prefs.Height = w, h
	log.Printf("Resized level to %dx%d", w, h)
}

func (g *EditorGame) saveFromPanel() {
	var name string
	if g.panel != nil {
		name = g.panel.FileInput.GetText()
	}
	path := editor.SavePath(name)
	if path == "" {
		log.Println("No filename specified in File field; save aborted")
		return
	}
	if err := level.Save(path, g.session.Grid); err != nil {
		log.Printf("Save failed: %v", err)
		return
	}
	g.session.MarkSaved()
	g.savePath = path
	g.prefs.LastFile = path
	g.savePrefs()
}

func (g *EditorGame) loadFromPanel() {
	var name string
	if g.panel != nil {
		name = g.panel.FileInput.GetText()
	}
	if err := g.LoadLevel(name); err != nil {
		log.Printf("Load failed: %v", err)
	}
}

// LoadLevel opens a level from disk, falling back to the embedded levels.
func (g *EditorGame) LoadLevel(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("empty level name")
	}
	path := editor.SavePath(name)
	grid, err := level.Load(path, g.catalog)
	if err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return err
		}
		grid, err = levels.LoadLevelFromFS(name, g.catalog)
		if err != nil {
			return err
		}
		path = ""
	}
	g.session.SetGrid(grid)
	g.savePath = path
	if path != "" {
		g.prefs.LastFile = path
	}
	if g.panel != nil {
		g.panel.WidthInput.SetText(strconv.Itoa(grid.Width()))
		g.panel.HeightInput.SetText(strconv.Itoa(grid.Height()))
	}
	log.Printf("Loaded level %s (%dx%d)", name, grid.Width(), grid.Height())
	return nil
}

func (g *EditorGame) addSlot() {
	i := g.session.Palette.AddSlot()
	_ = g.session.Palette.Select(i)
}

func (g *EditorGame) removeSelectedSlot() {
	_, i := g.session.Palette.Selected()
	if i < 0 {
		return
	}
	_ = g.session.Palette.RemoveSlot(i)
}

// assignPicked puts the tile picked in the catalog list into the selected
// slot, adding a slot when none is selected.
func (g *EditorGame) assignPicked(entry TileEntry) {
	_, i := g.session.Palette.Selected()
	if i < 0 {
		i = g.session.Palette.AddSlot()
		_ = g.session.Palette.Select(i)
	}
	_ = g.session.Palette.Assign(i, entry.Tile)
}

func (g *EditorGame) copyToClipboard() {
	if !g.clipboard {
		log.Println("Clipboard unavailable")
		return
	}
	data, err := level.Encode(g.session.Grid)
	if err != nil {
		log.Printf("Copy failed: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("Copied level JSON (%d bytes)", len(data))
}

func (g *EditorGame) savePrefs() {
	g.prefs.Slots = g.session.SlotIDs()
	if g.session.Grid != nil {
		g.prefs.Width, g.prefs.Height = g.session.Grid.Width(), g.session.Grid.Height()
	}
	if err := g.prefsStore.Save(g.prefs); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}
