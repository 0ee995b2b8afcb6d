// levelview shows a level file in the terminal.
//
// Usage:
//
//	levelview [-tiles dir] level.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/m3g/level"
	"github.com/milk9111/m3g/levels"
	"github.com/milk9111/m3g/tiles"
)

func main() {
	tilesDir := flag.String("tiles", "", "Directory of tile .yaml files added to the built-in tiles")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: levelview [-tiles dir] <level>")
		os.Exit(2)
	}
	name := flag.Arg(0)

	catalog, err := tiles.Default()
	if err != nil {
		log.Fatalf("Failed to load built-in tiles: %v", err)
	}
	if *tilesDir != "" {
		if err := catalog.LoadDir(*tilesDir); err != nil {
			log.Fatalf("Failed to load tiles: %v", err)
		}
	}

	grid, err := loadLevel(name, catalog)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	run(screen, newViewer(screen, grid, name))
}

// loadLevel reads a level from disk, then from the embedded levels. Tiles
// unknown to the catalog are shown as placeholders rather than failing.
func loadLevel(name string, catalog *tiles.Catalog) (*level.Grid, error) {
	var load func(r level.Resolver) (*level.Grid, error)
	if _, err := os.Stat(name); err == nil {
		load = func(r level.Resolver) (*level.Grid, error) { return level.Load(name, r) }
	} else {
		load = func(r level.Resolver) (*level.Grid, error) { return levels.LoadLevelFromFS(name, r) }
	}
	g, err := load(catalog)
	if errors.Is(err, level.ErrUnknownTile) {
		log.Printf("%v; showing placeholders", err)
		return load(nil)
	}
	return g, err
}

func run(screen tcell.Screen, v *viewer) {
	v.draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			v.scroll(0, 0)
			v.draw()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
			v.draw()
		}
	}
}
