package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pacdfa/internal/config"
	"github.com/vovakirdan/pacdfa/internal/core"
)

// KeyMap holds the play screen bindings, built from the config.
type KeyMap struct {
	Up         key.Binding
	Left       key.Binding
	Down       key.Binding
	Right      key.Binding
	Reset      key.Binding
	Hint       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(k config.Keys) KeyMap {
	return KeyMap{
		Up:         binding(k.Up, "up"),
		Left:       binding(k.Left, "left"),
		Down:       binding(k.Down, "down"),
		Right:      binding(k.Right, "right"),
		Reset:      binding(k.Reset, "retry / next"),
		Hint:       binding(k.Hint, "hint"),
		Screenshot: binding(k.Screenshot, "screenshot"),
		Help:       binding(k.Help, "more keys"),
		Quit:       binding(k.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	b := key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
	if len(keys) == 0 {
		b.SetEnabled(false)
	}
	return b
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Hint, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left, k.Down, k.Right},
		{k.Reset, k.Hint},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// Action translates a key message to a semantic action.
// Quit is checked first so a shared key can never be swallowed by movement.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Hint):
		return core.ActionHint
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
