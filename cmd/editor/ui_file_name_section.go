package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// addTextField adds a caption and a single-line input to parent.
func addTextField(parent *widget.Container, fontFace *text.Face, caption, initial string) *widget.TextInput {
	label := widget.NewLabel(
		widget.LabelOpts.Text(caption, fontFace, labelColor),
	)
	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 28),
		),
		widget.TextInputOpts.Image(textFieldImage()),
		widget.TextInputOpts.Color(textFieldColor()),
		widget.TextInputOpts.Face(fontFace),
	)
	input.SetText(initial)
	parent.AddChild(label)
	parent.AddChild(input)
	return input
}
