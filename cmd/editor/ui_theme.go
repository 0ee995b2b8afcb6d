package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/m3g/level"
	"golang.org/x/image/colornames"
)

// editorColors is shared by the side panel widgets and the canvas.
type editorColors struct {
	panel     color.RGBA
	text      color.Color
	textDim   color.Color
	field     color.RGBA
	fieldText color.Color
	button    color.RGBA
	listBack  color.RGBA
	listPick  color.RGBA

	canvas     color.RGBA
	emptyCell  color.Color
	hover      color.RGBA
	slotBorder color.Color
	slotPicked color.Color
	statusBar  color.RGBA

	kinds map[level.Kind]color.Color
}

var colors = editorColors{
	panel:     color.RGBA{40, 40, 40, 255},
	text:      color.White,
	textDim:   color.Gray{Y: 140},
	field:     color.RGBA{245, 245, 245, 255},
	fieldText: color.Black,
	button:    color.RGBA{180, 180, 180, 255},
	listBack:  color.RGBA{220, 220, 220, 255},
	listPick:  color.RGBA{180, 200, 255, 255},

	canvas:     color.RGBA{24, 24, 28, 255},
	emptyCell:  colornames.Gray,
	hover:      color.RGBA{255, 255, 255, 60},
	slotBorder: colornames.Dimgray,
	slotPicked: colornames.Yellow,
	statusBar:  color.RGBA{0, 0, 0, 160},

	kinds: map[level.Kind]color.Color{
		level.KindEmpty:    colornames.Whitesmoke,
		level.KindNormal:   colornames.Mediumseagreen,
		level.KindObstacle: colornames.Sienna,
	},
}

// kindColor stands in for tiles without a sprite.
func kindColor(k level.Kind) color.Color {
	if c, ok := colors.kinds[k]; ok {
		return c
	}
	return colornames.Magenta
}

// shade moves c toward white (f > 0) or black (f < 0) by |f| of the range.
func shade(c color.RGBA, f float64) color.RGBA {
	mix := func(v uint8) uint8 {
		if f >= 0 {
			return v + uint8(float64(255-v)*f)
		}
		return v - uint8(float64(v)*-f)
	}
	return color.RGBA{mix(c.R), mix(c.G), mix(c.B), c.A}
}

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

var labelColor = &widget.LabelColor{Idle: colors.text, Disabled: colors.textDim}

func textFieldImage() *widget.TextInputImage {
	return &widget.TextInputImage{
		Idle:     solidNineSlice(colors.field),
		Disabled: solidNineSlice(shade(colors.field, -0.2)),
	}
}

func textFieldColor() *widget.TextInputColor {
	return &widget.TextInputColor{
		Idle:     colors.fieldText,
		Disabled: colors.textDim,
		Caret:    colors.fieldText,
	}
}

// newEditorTheme styles the buttons and the tile list of the side panel.
func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          colors.fieldText,
				Selected:            colors.fieldText,
				DisabledUnselected:  colors.textDim,
				DisabledSelected:    colors.textDim,
				SelectingBackground: shade(colors.listPick, 0.3),
				SelectedBackground:  colors.listPick,
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(colors.listBack),
				Mask: solidNineSlice(colors.listBack),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(colors.panel),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(colors.button),
				Hover:   solidNineSlice(shade(colors.button, 0.15)),
				Pressed: solidNineSlice(shade(colors.button, -0.15)),
			},
			TextFace:  fontFace,
			TextColor: &widget.ButtonTextColor{Idle: colors.fieldText},
		},
	}
}
