//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func fill(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func stroke(dst *ebiten.Image, r image.Rectangle, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, c, false)
}

// DrawPanel fills r with the panel color.
func DrawPanel(dst *ebiten.Image, r image.Rectangle, st Style) {
	fill(dst, r, st.Panel)
}

// DrawLabel draws s with its baseline at (x, y).
func DrawLabel(dst *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(dst, s, Face(), x, y, c)
}

// DrawButton paints a button with its label centered.
func DrawButton(dst *ebiten.Image, b Button, st Style) {
	bg, fg := st.Button, st.ButtonText
	if !b.Enabled {
		bg, fg = st.ButtonOff, st.ButtonOffTxt
	}
	fill(dst, b.Rect, bg)

	bounds := text.BoundString(Face(), b.Label)
	x := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	y := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(dst, b.Label, Face(), x, y, fg)
}

// DrawField paints a text box. A caret follows the value while focused.
func DrawField(dst *ebiten.Image, r image.Rectangle, value string, focused, caret bool, st Style) {
	fill(dst, r, st.Field)
	border, width := st.FieldBorder, float32(1)
	if focused {
		border, width = st.Focus, 2
	}
	stroke(dst, r, width, border)

	if focused && caret {
		value += "|"
	}
	text.Draw(dst, value, Face(), r.Min.X+textInset, r.Min.Y+baselineOffset, st.Text)
}

// DrawOption paints a selector showing the current choice between arrows.
func DrawOption(dst *ebiten.Image, r image.Rectangle, value string, focused bool, st Style) {
	DrawField(dst, r, "< "+value+" >", focused, false, st)
}

// MessageBox is a modal notice with a single dismiss button.
type MessageBox struct {
	Title   string
	Message string
	rect    image.Rectangle
	ok      Button
}

// NewMessageBox centers a message box on a screen of the given size.
func NewMessageBox(title, message, okLabel string, screenW, screenH int) *MessageBox {
	w := messageWidth
	if screenW-2*panelPadding < w {
		w = screenW - 2*panelPadding
	}
	r := Centered(screenW, screenH, w, messageHeight)
	okRect := image.Rect(r.Max.X-panelPadding-buttonWidth, r.Max.Y-panelPadding-buttonHeight, r.Max.X-panelPadding, r.Max.Y-panelPadding)
	return &MessageBox{
		Title:   title,
		Message: message,
		rect:    r,
		ok:      Button{Label: okLabel, Rect: okRect, Enabled: true},
	}
}

// Dismissed reports whether a click at (x, y) hit the OK button.
func (m *MessageBox) Dismissed(x, y int) bool { return m.ok.Hit(x, y) }

// Draw shades the screen and paints the box on top.
func (m *MessageBox) Draw(dst *ebiten.Image, st Style) {
	fill(dst, dst.Bounds(), st.Shade)
	fill(dst, m.rect, st.Panel)
	stroke(dst, m.rect, 1, st.FieldBorder)
	x := m.rect.Min.X + panelPadding
	text.Draw(dst, m.Title, Face(), x, m.rect.Min.Y+panelPadding+labelBaseline-8, st.Text)
	text.Draw(dst, m.Message, Face(), x, m.rect.Min.Y+panelPadding+labelBaseline+22, st.Muted)
	DrawButton(dst, m.ok, st)
}
