// Package config loads the YAML application configuration: which level pack
// to play, where run history lives, key bindings and the board theme.
package config

import (
	"fmt"

	"github.com/vovakirdan/pacdfa/internal/core"
)

// App is the complete application configuration.
type App struct {
	Pack      string `yaml:"pack"`       // Embedded or registered pack name
	LevelsDir string `yaml:"levels_dir"` // Directory of level files; overrides Pack when set
	DBPath    string `yaml:"db_path"`    // SQLite run history, "~" is expanded
	Keys      Keys   `yaml:"keys"`
	Theme     Theme  `yaml:"theme"`
}

// Keys lists the terminal key names bound to each action.
// Names follow Bubble Tea's KeyMsg.String() ("up", "w", "ctrl+c").
type Keys struct {
	Up         []string `yaml:"up"`
	Left       []string `yaml:"left"`
	Down       []string `yaml:"down"`
	Right      []string `yaml:"right"`
	Reset      []string `yaml:"reset"`
	Hint       []string `yaml:"hint"`
	Screenshot []string `yaml:"screenshot"`
	Help       []string `yaml:"help"`
	Quit       []string `yaml:"quit"`
}

// Theme holds colors and glyphs for the board.
// Colors are ANSI codes ("9", "245") or hex ("#ffcc00").
type Theme struct {
	Colors map[string]string `yaml:"colors"` // keyed by core.Color names
	Glyphs Glyphs            `yaml:"glyphs"`
}

// Glyphs are the characters drawn for each board element.
// Each glyph is repeated or padded to the cell width.
type Glyphs struct {
	Wall   string `yaml:"wall"`
	Floor  string `yaml:"floor"`
	Player string `yaml:"player"`
	Ghost  string `yaml:"ghost"`
	Pellet string `yaml:"pellet"`
	Goal   string `yaml:"goal"`
	Start  string `yaml:"start"`
	Dead   string `yaml:"dead"`
}

// Color returns the configured color for a role, or "" for the terminal default.
func (t Theme) Color(c core.Color) string {
	return t.Colors[c.String()]
}

// Validate reports unknown theme roles and empty key bindings.
func (a App) Validate() error {
	for name := range a.Theme.Colors {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: unknown theme color %q", name)
		}
	}
	bindings := map[string][]string{
		"up":    a.Keys.Up,
		"left":  a.Keys.Left,
		"down":  a.Keys.Down,
		"right": a.Keys.Right,
		"reset": a.Keys.Reset,
		"quit":  a.Keys.Quit,
	}
	for action, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("config: no keys bound to %s", action)
		}
	}
	return nil
}
