package ui

import "image"

// Button is a clickable, labelled rectangle.
type Button struct {
	Label   string
	Rect    image.Rectangle
	Enabled bool
}

// Hit reports whether an enabled button contains the point (x, y).
func (b Button) Hit(x, y int) bool {
	return b.Enabled && pointInRect(x, y, b.Rect)
}

// ButtonBar lays out buttons left to right inside a bar that starts at top.
func ButtonBar(labels []string, top int) []Button {
	buttons := make([]Button, len(labels))
	x := panelPadding
	y := top + (BarHeight-buttonHeight)/2
	for i, label := range labels {
		w := buttonWidth
		if n := len([]rune(label))*charWidth + 2*buttonPadding; n > w {
			w = n
		}
		buttons[i] = Button{Label: label, Rect: image.Rect(x, y, x+w, y+buttonHeight), Enabled: true}
		x += w + buttonGap
	}
	return buttons
}

// FormRows lays out one row per label: the label column on the left and an
// input box on the right, with the given total width.
func FormRows(count, width int) []image.Rectangle {
	rows := make([]image.Rectangle, count)
	for i := range rows {
		top := panelPadding + i*lineHeight
		y := top + (lineHeight-fieldHeight)/2
		rows[i] = image.Rect(width-panelPadding-fieldWidth, y, width-panelPadding, y+fieldHeight)
	}
	return rows
}

// Centered returns a w*h rectangle centered in a screen of the given size.
func Centered(screenW, screenH, w, h int) image.Rectangle {
	x := (screenW - w) / 2
	y := (screenH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	// BarHeight is the height of the button bar under the grid.
	BarHeight = 44
	// DialogWidth and DialogHeight size the startup window.
	DialogWidth  = 440
	DialogHeight = 4*lineHeight + BarHeight + 2*panelPadding

	panelPadding   = 12
	lineHeight     = 40
	buttonHeight   = 28
	buttonWidth    = 72
	buttonPadding  = 12
	buttonGap      = 8
	charWidth      = 8
	fieldHeight    = 26
	fieldWidth     = 180
	labelBaseline  = 25
	messageWidth   = 360
	messageHeight  = 130
	textInset      = 6
	baselineOffset = 18
)
