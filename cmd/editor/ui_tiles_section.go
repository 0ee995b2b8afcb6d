package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/m3g/level"
)

// TileEntry is one row of the catalog list.
type TileEntry struct {
	Tile *level.Tile
}

// TileListPanel wraps the catalog list so it can be refreshed after reloads.
type TileListPanel struct {
	list *widget.List
	// suppress ignores selection events raised while entries are replaced.
	suppress bool
}

func addTileListSection(parent *widget.Container, fontFace *text.Face, onPicked func(entry TileEntry)) *TileListPanel {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Tiles", fontFace, labelColor),
	))

	panel := &TileListPanel{}
	panel.list = widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(TileEntry); ok && entry.Tile != nil {
				return fmt.Sprintf("%s (%s)", entry.Tile.ID, entry.Tile.Kind)
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if panel.suppress || onPicked == nil {
				return
			}
			if entry, ok := args.Entry.(TileEntry); ok {
				onPicked(entry)
			}
		}),
	)
	panel.list.GetWidget().MinHeight = 160
	parent.AddChild(panel.list)
	return panel
}

func (p *TileListPanel) SetTiles(tiles []*level.Tile) {
	if p == nil || p.list == nil {
		return
	}
	p.suppress = true
	entries := make([]any, len(tiles))
	for i, t := range tiles {
		entries[i] = TileEntry{Tile: t}
	}
	p.list.SetEntries(entries)
	p.suppress = false
}
