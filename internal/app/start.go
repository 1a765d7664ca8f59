//go:build ebiten

package app

import (
	"errors"
	"image"
	"unicode"

	"lifesim/internal/config"
	"lifesim/internal/dialog"
	"lifesim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// startScene is the settings dialog.
type startScene struct {
	game  *Game
	form  *dialog.Form
	style ui.Style

	labels []string
	rows   []image.Rectangle
	submit ui.Button
	modal  *ui.MessageBox

	chars []rune
	ticks int
}

func newStartScene(g *Game, s config.Settings) *startScene {
	msgs := g.msgs
	sc := &startScene{
		game:   g,
		form:   dialog.NewForm(s, msgs),
		style:  ui.StyleFor(s.Theme),
		labels: []string{msgs.GridLabel, msgs.CellLabel, msgs.SpeedLabel, msgs.ThemeLabel},
		rows:   ui.FormRows(4, ui.DialogWidth),
	}
	bar := ui.ButtonBar([]string{msgs.StartGame}, ui.DialogHeight-ui.BarHeight)
	sc.submit = bar[0]
	dx := (ui.DialogWidth - sc.submit.Rect.Dx()) / 2
	sc.submit.Rect = sc.submit.Rect.Add(image.Pt(dx-sc.submit.Rect.Min.X, 0))
	return sc
}

func (s *startScene) Size() (int, int) { return ui.DialogWidth, ui.DialogHeight }

func (s *startScene) Update() error {
	s.ticks++
	if s.modal != nil {
		if x, y, ok := clicked(); ok && s.modal.Dismissed(x, y) {
			s.modal = nil
		} else if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			s.modal = nil
		}
		return nil
	}

	if x, y, ok := clicked(); ok {
		if s.submit.Hit(x, y) {
			return s.confirm()
		}
		for i, r := range s.rows {
			if !image.Pt(x, y).In(r) {
				continue
			}
			s.form.SetFocus(i)
			if i == dialog.FieldTheme {
				s.form.CycleTheme(false)
				s.style = ui.StyleFor(s.form.Theme())
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.form.FocusNext(shiftDown())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return s.confirm()
	}

	if s.form.Focus() == dialog.FieldTheme {
		left := inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft)
		if left || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.form.CycleTheme(left)
			s.style = ui.StyleFor(s.form.Theme())
		}
		return nil
	}

	s.chars = ebiten.AppendInputChars(s.chars[:0])
	printable := s.chars[:0]
	for _, r := range s.chars {
		if unicode.IsPrint(r) {
			printable = append(printable, r)
		}
	}
	s.form.Insert(printable)
	if repeating(ebiten.KeyBackspace) {
		s.form.Backspace()
	}
	return nil
}

// confirm submits the form. Validation errors open a modal and keep the
// dialog; a failure to save the settings is returned and ends the program.
func (s *startScene) confirm() error {
	err := s.form.Submit(s.game.store, s.game.start)
	var verr *dialog.ValidationError
	if errors.As(err, &verr) {
		s.modal = ui.NewMessageBox(verr.Title, verr.Message, s.game.msgs.OK, ui.DialogWidth, ui.DialogHeight)
		return nil
	}
	return err
}

func (s *startScene) Draw(screen *ebiten.Image) {
	ui.DrawPanel(screen, screen.Bounds(), s.style)
	caret := (s.ticks/30)%2 == 0
	for i, r := range s.rows {
		ui.DrawLabel(screen, s.labels[i], 12, r.Min.Y+18, s.style.Text)
		focused := s.form.Focus() == i
		if i == dialog.FieldTheme {
			ui.DrawOption(screen, r, s.form.Theme(), focused, s.style)
			continue
		}
		ui.DrawField(screen, r, s.form.Text(i), focused, caret, s.style)
	}
	ui.DrawButton(screen, s.submit, s.style)
	if s.modal != nil {
		s.modal.Draw(screen, s.style)
	}
}
