// Package config persists the simulator settings as a flat JSON record.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// FileName is the name of the settings file inside the config directory.
const FileName = ".game_of_life_config.json"

// Settings is the record edited by the startup dialog.
type Settings struct {
	GridSize [2]int `json:"grid_size"`
	CellSize int    `json:"cell_size"`
	Speed    int    `json:"speed"`
	Theme    string `json:"theme"`
}

// Default returns the settings used when nothing has been stored yet.
func Default() Settings {
	return Settings{
		GridSize: [2]int{50, 30},
		CellSize: 20,
		Speed:    10,
		Theme:    ThemeLight,
	}
}

// Cols returns the grid width in cells.
func (s Settings) Cols() int { return s.GridSize[0] }

// Rows returns the grid height in cells.
func (s Settings) Rows() int { return s.GridSize[1] }

// Themes lists the accepted theme names in display order.
func Themes() []string { return []string{ThemeLight, ThemeDark} }

// ValidTheme reports whether name is one of Themes.
func ValidTheme(name string) bool {
	return name == ThemeLight || name == ThemeDark
}

// sanitize replaces each value that breaks the Settings invariants with its
// default, leaving valid fields alone.
func (s Settings) sanitize() Settings {
	d := Default()
	if s.GridSize[0] <= 0 || s.GridSize[1] <= 0 {
		s.GridSize = d.GridSize
	}
	if s.CellSize <= 0 {
		s.CellSize = d.CellSize
	}
	if s.Speed <= 0 {
		s.Speed = d.Speed
	}
	if !ValidTheme(s.Theme) {
		s.Theme = d.Theme
	}
	return s
}

// Store reads and writes Settings at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the settings location inside the user config directory,
// or the working directory when no such directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "lifesim", FileName)
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the stored settings. A missing file, or one that is not a JSON
// object, is replaced by the defaults, which are written back and returned.
// Keys that are missing or fail to decode fall back to their defaults one by
// one.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.reset()
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil || record == nil {
		log.Printf("settings file %s is corrupt, restoring defaults: %v", s.path, err)
		return s.reset()
	}

	settings := Default()
	fields := map[string]func(json.RawMessage) error{
		"grid_size": func(raw json.RawMessage) error { return decodeField(raw, &settings.GridSize) },
		"cell_size": func(raw json.RawMessage) error { return decodeField(raw, &settings.CellSize) },
		"speed":     func(raw json.RawMessage) error { return decodeField(raw, &settings.Speed) },
		"theme":     func(raw json.RawMessage) error { return decodeField(raw, &settings.Theme) },
	}
	for key, decode := range fields {
		raw, ok := record[key]
		if !ok {
			continue
		}
		if err := decode(raw); err != nil {
			log.Printf("settings file %s: ignoring %s: %v", s.path, key, err)
		}
	}
	return settings.sanitize(), nil
}

// decodeField stores raw into dst only when it decodes cleanly, so a
// mistyped value keeps the default already in dst.
func decodeField[T any](raw json.RawMessage, dst *T) error {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}

// Save writes the full record, replacing any existing file.
func (s *Store) Save(settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s *Store) reset() (Settings, error) {
	d := Default()
	if err := s.Save(d); err != nil {
		return Settings{}, err
	}
	return d, nil
}
