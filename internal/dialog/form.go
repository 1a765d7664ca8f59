// Package dialog holds the state and validation of the startup settings form.
// It knows nothing about the toolkit that draws it.
package dialog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"lifesim/internal/config"
)

// Field indexes, in focus order.
const (
	FieldGrid = iota
	FieldCellSize
	FieldSpeed
	FieldTheme
	fieldCount
)

var (
	// ErrGridFormat reports a grid size that is not exactly two integers.
	ErrGridFormat = errors.New("grid size must be two integers")
	// ErrNotPositive reports a size or speed below one.
	ErrNotPositive = errors.New("value must be positive")
)

// ValidationError blocks submission and carries the message to show.
type ValidationError struct {
	Title   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// Saver persists confirmed settings.
type Saver interface {
	Save(config.Settings) error
}

// ParseGridSize reads "cols, rows" or "cols; rows".
func ParseGridSize(raw string) (cols, rows int, err error) {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(raw), ";", ","), ",")
	if len(parts) != 2 {
		return 0, 0, ErrGridFormat
	}
	cols, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, ErrGridFormat
	}
	rows, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, ErrGridFormat
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, ErrNotPositive
	}
	return cols, rows, nil
}

// Form is the editable state of the startup dialog.
type Form struct {
	msgs  Messages
	base  config.Settings
	text  [FieldTheme]string
	theme int
	focus int
}

// NewForm seeds the fields from s.
func NewForm(s config.Settings, msgs Messages) *Form {
	f := &Form{msgs: msgs, base: s}
	f.text[FieldGrid] = strconv.Itoa(s.Cols()) + ", " + strconv.Itoa(s.Rows())
	f.text[FieldCellSize] = strconv.Itoa(s.CellSize)
	f.text[FieldSpeed] = strconv.Itoa(s.Speed)
	for i, name := range config.Themes() {
		if name == s.Theme {
			f.theme = i
		}
	}
	return f
}

// Messages returns the strings the form reports errors with.
func (f *Form) Messages() Messages { return f.msgs }

// Text returns the current contents of a text field.
func (f *Form) Text(field int) string {
	if field < 0 || field >= FieldTheme {
		return ""
	}
	return f.text[field]
}

// Theme returns the selected theme name.
func (f *Form) Theme() string { return config.Themes()[f.theme] }

// Focus returns the focused field.
func (f *Form) Focus() int { return f.focus }

// SetFocus moves focus to field; invalid indexes are ignored.
func (f *Form) SetFocus(field int) {
	if field >= 0 && field < fieldCount {
		f.focus = field
	}
}

// FocusNext moves focus forward, or backward when back is set, wrapping
// around.
func (f *Form) FocusNext(back bool) {
	step := 1
	if back {
		step = fieldCount - 1
	}
	f.focus = (f.focus + step) % fieldCount
}

// Insert appends typed characters to the focused text field.
func (f *Form) Insert(runes []rune) {
	if f.focus >= FieldTheme || len(runes) == 0 {
		return
	}
	f.text[f.focus] += string(runes)
}

// Backspace removes the last character of the focused text field.
func (f *Form) Backspace() {
	if f.focus >= FieldTheme {
		return
	}
	s := f.text[f.focus]
	if s == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s)
	f.text[f.focus] = s[:len(s)-size]
}

// CycleTheme selects the next theme, or the previous one when back is set.
func (f *Form) CycleTheme(back bool) {
	n := len(config.Themes())
	if back {
		f.theme = (f.theme + n - 1) % n
		return
	}
	f.theme = (f.theme + 1) % n
}

// Settings validates the fields and merges them over the seed settings.
func (f *Form) Settings() (config.Settings, error) {
	cols, rows, err := ParseGridSize(f.text[FieldGrid])
	if errors.Is(err, ErrGridFormat) {
		return config.Settings{}, f.invalid(f.msgs.BadGrid, err)
	}
	if err != nil {
		return config.Settings{}, f.invalid(f.msgs.NotPositive, err)
	}
	cell, err := strconv.Atoi(strings.TrimSpace(f.text[FieldCellSize]))
	if err != nil {
		return config.Settings{}, f.invalid(f.msgs.BadNumbers, err)
	}
	speed, err := strconv.Atoi(strings.TrimSpace(f.text[FieldSpeed]))
	if err != nil {
		return config.Settings{}, f.invalid(f.msgs.BadNumbers, err)
	}
	if cell <= 0 || speed <= 0 {
		return config.Settings{}, f.invalid(f.msgs.NotPositive, ErrNotPositive)
	}

	s := f.base
	s.GridSize = [2]int{cols, rows}
	s.CellSize = cell
	s.Speed = speed
	s.Theme = f.Theme()
	return s, nil
}

// Submit validates the form, saves the result and hands it to onStart. A
// *ValidationError leaves everything untouched; any other error wraps the
// Saver's failure under the localized save-failed title.
func (f *Form) Submit(store Saver, onStart func(config.Settings)) error {
	s, err := f.Settings()
	if err != nil {
		return err
	}
	if err := store.Save(s); err != nil {
		return fmt.Errorf("%s: %w", f.msgs.SaveFailedTitle, err)
	}
	f.base = s
	if onStart != nil {
		onStart(s)
	}
	return nil
}

func (f *Form) invalid(msg string, err error) *ValidationError {
	return &ValidationError{Title: f.msgs.ErrorTitle, Message: msg, Err: err}
}
