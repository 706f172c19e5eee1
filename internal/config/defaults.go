package config

import (
	_ "embed"
)

//go:embed defaults/pacdfa.yaml
var defaultAppYAML []byte

// DefaultApp returns the built-in configuration used when no YAML is usable.
func DefaultApp() App {
	return App{
		Pack:   "classic",
		DBPath: "~/.pacdfa/runs.db",
		Keys: Keys{
			Up:         []string{"up", "w"},
			Left:       []string{"left", "a"},
			Down:       []string{"down", "s"},
			Right:      []string{"right", "d"},
			Reset:      []string{"r"},
			Hint:       []string{"h"},
			Screenshot: []string{"ctrl+s"},
			Help:       []string{"?"},
			Quit:       []string{"q", "ctrl+c", "esc"},
		},
		Theme: Theme{
			Colors: map[string]string{
				"wall":    "12",
				"floor":   "238",
				"player":  "11",
				"ghost":   "9",
				"pellet":  "15",
				"goal":    "10",
				"start":   "245",
				"text":    "7",
				"accent":  "14",
				"muted":   "245",
				"alert":   "9",
				"success": "10",
			},
			Glyphs: Glyphs{
				Wall:   "█",
				Floor:  "·",
				Player: "ᗧ",
				Ghost:  "ᗣ",
				Pellet: "•",
				Goal:   "◎",
				Start:  "○",
				Dead:   "✕",
			},
		},
	}
}
