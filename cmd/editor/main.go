package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/m3g/editor"
	"github.com/milk9111/m3g/tiles"
	"golang.design/x/clipboard"
)

func main() {
	tilesDir := flag.String("tiles", "", "Directory of tile .yaml files added to the built-in tiles")
	levelName := flag.String("level", "", "Level to open (path, name under levels/, or embedded level name)")
	width := flag.Int("width", 0, "Width of a new level (default: last used)")
	height := flag.Int("height", 0, "Height of a new level (default: last used)")
	watch := flag.Bool("watch", true, "Reload tile files from -tiles when they change")
	flag.Parse()

	log.Println("Editor starting...")

	catalog, err := tiles.Default()
	if err != nil {
		log.Fatalf("Failed to load built-in tiles: %v", err)
	}
	if *tilesDir != "" {
		if err := catalog.LoadDir(*tilesDir); err != nil {
			log.Fatalf("Failed to load tiles: %v", err)
		}
	}

	prefsStore := editor.OpenPrefsStore("m3g_editor")
	prefs, err := prefsStore.Load()
	if err != nil {
		log.Printf("Failed to load preferences: %v (using defaults)", err)
	}
	if *width > 0 {
		prefs.Width = *width
	}
	if *height > 0 {
		prefs.Height = *height
	}

	session := editor.NewSession()
	session.RestoreSlots(prefs.Slots, catalog)

	game := NewEditorGame(session, catalog, prefsStore, prefs)
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard disabled: %v", err)
	} else {
		game.clipboard = true
	}

	ui, panel := BuildEditorUI(
		PanelInit{
			Width:  strconv.Itoa(prefs.Width),
			Height: strconv.Itoa(prefs.Height),
			File:   "NewLevel",
		},
		PanelActions{
			OnCreate:     game.createFromPanel,
			OnResize:     game.resizeFromPanel,
			OnSave:       game.saveFromPanel,
			OnLoad:       game.loadFromPanel,
			OnAddSlot:    game.addSlot,
			OnRemoveSlot: game.removeSelectedSlot,
			OnCopy:       game.copyToClipboard,
			OnTilePicked: game.assignPicked,
		},
	)
	game.ui = ui
	game.panel = panel
	game.refreshTileList()

	name := *levelName
	if name == "" {
		name = prefs.LastFile
	}
	loaded := false
	if name != "" {
		if err := game.LoadLevel(name); err != nil {
			log.Printf("Failed to load level %s: %v", name, err)
		} else {
			loaded = true
			panel.FileInput.SetText(name)
		}
	}
	if !loaded {
		if err := session.NewLevel(prefs.Width, prefs.Height); err != nil {
			log.Fatalf("Failed to create level: %v", err)
		}
	}

	if *watch && *tilesDir != "" {
		w, err := tiles.NewWatcher(*tilesDir)
		if err != nil {
			log.Printf("Tile watcher disabled: %v", err)
		} else {
			game.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Level Editor")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	game.savePrefs()
}
