// Package tui is the Bubble Tea front end: it maps keys to driver input,
// projects observations onto a screen buffer and serves sessions over SSH.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pacdfa/internal/config"
	"github.com/vovakirdan/pacdfa/internal/core"
	"github.com/vovakirdan/pacdfa/internal/game"
	"github.com/vovakirdan/pacdfa/internal/storage"
)

// Options configures a play Model.
type Options struct {
	Pack          string
	App           config.App
	Runtime       core.RuntimeConfig
	Store         *storage.Store     // optional run history
	Renderer      *lipgloss.Renderer // nil for the local terminal
	Logger        *log.Logger        // never the terminal being drawn on
	ScreenshotDir string             // defaults to ~/.pacdfa/screenshots
}

// Model is the Bubble Tea model for a play session.
// Every key press is handled to completion by the driver; there is no tick loop.
type Model struct {
	driver   *game.Driver
	view     BoardView
	palette  Palette
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	opts     Options
	status   string
	err      error
	quitting bool
}

// NewModel creates a play model around an existing driver and subscribes a
// run recorder to it.
func NewModel(driver *game.Driver, opts Options) Model {
	opts.Runtime = opts.Runtime.Normalize()

	keys := NewKeyMap(opts.App.Keys)
	view := NewBoardView(opts.App.Theme, opts.Runtime)
	if len(opts.App.Keys.Reset) > 0 {
		view.ResetKey = strings.ToUpper(opts.App.Keys.Reset[0])
	}

	var runStore RunStore
	if opts.Store != nil {
		runStore = opts.Store
	}
	driver.Subscribe(NewRecorder(opts.Pack, runStore, opts.Logger))

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		driver:  driver,
		view:    view,
		palette: NewPalette(opts.Renderer, opts.App.Theme),
		keys:    keys,
		help:    h,
		screen:  core.NewScreen(opts.Runtime.ScreenW, boardRows(opts.Runtime.ScreenH)),
		opts:    opts,
	}
}

// boardRows leaves room for the help line under the board.
func boardRows(screenH int) int {
	return core.Max(1, screenH-2)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil

	case core.ActionHint:
		if sym, ok := m.driver.Hint(); ok {
			m.status = "hint: " + sym.String()
		} else {
			m.status = "no winning move from here"
		}
		return m, nil
	}

	in, ok := action.Input()
	if !ok {
		return m, nil
	}
	accepted, err := m.driver.OnInput(in)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if accepted {
		m.status = ""
	}
	return m, nil
}

// saveScreenshot writes the plain-text board to the screenshot directory.
func (m *Model) saveScreenshot() (string, error) {
	m.view.Render(m.screen, m.driver.Level(), m.driver.Observe(), "")

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".pacdfa", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_level%d_%s.txt", m.opts.Pack, m.driver.LevelIndex()+1, timestamp)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.Render(m.screen, m.driver.Level(), m.driver.Observe(), m.status)
	helpView := m.palette.Style(core.ColorMuted).Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, m.palette.RenderScreen(m.screen), helpView)
}

// Err returns the level data error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays the driver's levels in the local terminal until the player quits.
func Run(driver *game.Driver, opts Options) error {
	p := tea.NewProgram(
		NewModel(driver, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
