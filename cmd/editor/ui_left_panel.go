package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PanelActions are the callbacks the left panel buttons invoke.
type PanelActions struct {
	OnCreate     func()
	OnResize     func()
	OnSave       func()
	OnLoad       func()
	OnAddSlot    func()
	OnRemoveSlot func()
	OnCopy       func()
	OnTilePicked func(entry TileEntry)
}

// LeftPanelUI holds the widgets the game reads back from.
type LeftPanelUI struct {
	Container   *widget.Container
	WidthInput  *widget.TextInput
	HeightInput *widget.TextInput
	FileInput   *widget.TextInput
	Tiles       *TileListPanel
}

func buildLeftPanelUI(theme *widget.Theme, fontFace *text.Face, init PanelInit, actions PanelActions) *LeftPanelUI {
	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(colors.panel)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	leftPanel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Level Editor", fontFace, labelColor),
	))

	widthInput := addTextField(leftPanel, fontFace, "Width", init.Width)
	heightInput := addTextField(leftPanel, fontFace, "Height", init.Height)
	addButtonRow(leftPanel, theme, fontFace,
		buttonSpec{"Create New Level", actions.OnCreate},
		buttonSpec{"Resize", actions.OnResize},
	)

	fileInput := addTextField(leftPanel, fontFace, "File", init.File)
	addButtonRow(leftPanel, theme, fontFace,
		buttonSpec{"Save Level", actions.OnSave},
		buttonSpec{"Load", actions.OnLoad},
	)
	addButtonRow(leftPanel, theme, fontFace,
		buttonSpec{"Add Tile Slot", actions.OnAddSlot},
		buttonSpec{"Remove", actions.OnRemoveSlot},
	)
	addButtonRow(leftPanel, theme, fontFace,
		buttonSpec{"Copy JSON", actions.OnCopy},
	)

	tiles := addTileListSection(leftPanel, fontFace, actions.OnTilePicked)

	return &LeftPanelUI{
		Container:   leftPanel,
		WidthInput:  widthInput,
		HeightInput: heightInput,
		FileInput:   fileInput,
		Tiles:       tiles,
	}
}

type buttonSpec struct {
	label   string
	onClick func()
}

func addButtonRow(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, buttons ...buttonSpec) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	for _, b := range buttons {
		onClick := b.onClick
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(b.label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}
	parent.AddChild(row)
}
