package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pacdfa/internal/config"
	"github.com/vovakirdan/pacdfa/internal/core"
	"github.com/vovakirdan/pacdfa/internal/game"
	"github.com/vovakirdan/pacdfa/internal/storage"
)

func newTestModel(t *testing.T) (Model, *game.Driver) {
	t.Helper()
	d, _ := warmup(t)
	m := NewModel(d, Options{
		Pack:          "classic",
		App:           config.DefaultApp(),
		Runtime:       core.DefaultConfig(),
		ScreenshotDir: t.TempDir(),
	})
	return m, d
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m, cmd
}

func TestModelMovesDriver(t *testing.T) {
	m, d := newTestModel(t)

	press(t, m, runeKey('d'), runeKey('d'))
	if d.Key() != "3,1|2" {
		t.Errorf("after two steps right, key = %q", d.Key())
	}
}

func TestModelDeathAndRetry(t *testing.T) {
	m, d := newTestModel(t)

	keys := make([]tea.KeyMsg, 0, 8)
	for i := 0; i < 6; i++ {
		keys = append(keys, runeKey('d'))
	}
	keys = append(keys, runeKey('s'))
	m, _ = press(t, m, keys...)

	if d.Mode() != game.ModeDead {
		t.Fatalf("Mode = %v, want dead", d.Mode())
	}
	if !strings.Contains(m.View(), "CAUGHT!") {
		t.Error("view should show the caught banner")
	}

	press(t, m, runeKey('r'))
	if d.Mode() != game.ModePlaying || d.LevelIndex() != 0 {
		t.Errorf("retry should restart level 0, got %v on %d", d.Mode(), d.LevelIndex())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelHint(t *testing.T) {
	m, d := newTestModel(t)

	m, _ = press(t, m, runeKey('h'))
	if d.Observe().Moves != 0 {
		t.Error("hint must not move the player")
	}
	if !strings.Contains(m.View(), "hint: right") {
		t.Error("view should show the hint")
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.status, "saved ") {
		t.Fatalf("status = %q", m.status)
	}

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", entries, err)
	}
	data, err := os.ReadFile(filepath.Join(m.opts.ScreenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Warm-up") {
		t.Error("screenshot should contain the HUD")
	}
	if !strings.HasPrefix(entries[0].Name(), "classic_level1_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("help key should expand the help view")
	}
	m, _ = press(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("second press should collapse it")
	}
}

func TestModelRecordsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	d, _ := warmup(t)
	m := NewModel(d, Options{Pack: "classic", App: config.DefaultApp(), Store: store})

	for i := 0; i < 7; i++ {
		m, _ = press(t, m, runeKey('d'))
	}

	clears, err := store.BestClears("classic", 0, 10)
	if err != nil {
		t.Fatalf("BestClears() failed: %v", err)
	}
	if len(clears) != 1 || clears[0].Moves != 7 {
		t.Errorf("BestClears() = %+v", clears)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != boardRows(30) {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
