package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pacdfa/internal/automaton"
	"github.com/vovakirdan/pacdfa/internal/config"
	"github.com/vovakirdan/pacdfa/internal/core"
	"github.com/vovakirdan/pacdfa/internal/game"
	"github.com/vovakirdan/pacdfa/internal/levels"
)

func warmup(t *testing.T) (*game.Driver, *automaton.Definition) {
	t.Helper()
	defs, err := levels.LoadEmbedded(levels.DefaultPack)
	if err != nil {
		t.Fatalf("LoadEmbedded() failed: %v", err)
	}
	seq, err := levels.NewSequencer(defs)
	if err != nil {
		t.Fatalf("NewSequencer() failed: %v", err)
	}
	d, err := game.New(seq)
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	return d, defs[0]
}

// drawWarmup draws the board only, one rune per cell, at the screen origin.
func drawWarmup(def *automaton.Definition, obs game.Observation) *core.Screen {
	s := core.NewScreen(def.Board.Width, def.Board.Height)
	DrawBoard(s, s.Bounds(), def, obs, config.DefaultApp().Theme, 1)
	return s
}

func TestDrawBoardInitial(t *testing.T) {
	d, def := warmup(t)
	s := drawWarmup(def, d.Observe())

	// Player starts at (1,1), pellets at (3,1) and (5,1), goal (8,1), ghost (7,2).
	want := []string{
		"██████████",
		"█ᗧ·•·•··◎█",
		"█··██··ᗣ·█",
		"██████████",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
	if c := s.GetCell(1, 1).Color; c != core.ColorPlayer {
		t.Errorf("player cell color = %v", c)
	}
	if c := s.GetCell(7, 2).Color; c != core.ColorGhost {
		t.Errorf("ghost cell color = %v", c)
	}
}

func TestDrawBoardHidesEatenPellets(t *testing.T) {
	d, def := warmup(t)
	if _, err := d.Feed("DDD"); err != nil {
		t.Fatalf("Feed() failed: %v", err)
	}

	s := drawWarmup(def, d.Observe())
	if got := s.Row(1); got != "█○··ᗧ•··◎█" {
		t.Errorf("row 1 = %q", got)
	}
	if s.Get(3, 1) == '•' {
		t.Error("eaten pellet at (3,1) is still drawn")
	}
	if s.Get(5, 1) != '•' {
		t.Error("pellet at (5,1) should still be drawn")
	}
	if s.Get(4, 1) != 'ᗧ' {
		t.Errorf("player should be at (4,1), got %q", s.Get(4, 1))
	}
	if s.Get(1, 1) != '○' {
		t.Errorf("start marker should show once the player leaves, got %q", s.Get(1, 1))
	}
}

func TestDrawBoardDeadHasNoPlayerOrPellets(t *testing.T) {
	d, def := warmup(t)
	if _, err := d.Feed("DDDDDDS"); err != nil {
		t.Fatalf("Feed() failed: %v", err)
	}
	if d.Mode() != game.ModeDead {
		t.Fatalf("Mode = %v, want dead", d.Mode())
	}

	out := drawWarmup(def, d.Observe()).String()
	if strings.ContainsRune(out, 'ᗧ') {
		t.Error("dead board should not draw the player")
	}
	if strings.ContainsRune(out, '•') {
		t.Error("dead board has no mask, so no pellets are drawn")
	}
}

func TestBoardViewBanners(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		want  string
	}{
		{name: "playing", moves: "", want: "Level 1/5  Warm-up"},
		{name: "dead", moves: "DDDDDDS", want: "CAUGHT! press R to retry"},
		{name: "won", moves: "DDDDDDD", want: "CLEARED! press R for the next level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, def := warmup(t)
			if _, err := d.Feed(tt.moves); err != nil {
				t.Fatalf("Feed() failed: %v", err)
			}

			view := NewBoardView(config.DefaultApp().Theme, core.DefaultConfig())
			s := core.NewScreen(80, 24)
			view.Render(s, def, d.Observe(), "")

			if !strings.Contains(s.String(), tt.want) {
				t.Errorf("rendered frame does not contain %q:\n%s", tt.want, s.String())
			}
		})
	}
}

func TestBoardViewStatusReplacesStateLine(t *testing.T) {
	d, def := warmup(t)
	view := NewBoardView(config.DefaultApp().Theme, core.DefaultConfig())

	s := core.NewScreen(80, 24)
	view.Render(s, def, d.Observe(), "")
	if !strings.Contains(s.String(), "State 1,1|3") {
		t.Error("HUD should show the current state key")
	}

	view.Render(s, def, d.Observe(), "hint: right")
	out := s.String()
	if !strings.Contains(out, "hint: right") || strings.Contains(out, "State 1,1|3") {
		t.Error("status should replace the state line")
	}
}

func TestBoardViewSize(t *testing.T) {
	_, def := warmup(t)
	view := NewBoardView(config.DefaultApp().Theme, core.DefaultConfig())

	w, h := view.Size(def)
	if w != hudMinWidth || h != def.Board.Height+2+hudHeight {
		t.Errorf("Size() = %dx%d", w, h)
	}
}

func TestCellRunes(t *testing.T) {
	tests := []struct {
		glyph string
		cw    int
		fill  bool
		want  string
	}{
		{"█", 2, true, "██"},
		{"•", 2, false, "• "},
		{"", 2, false, "  "},
		{"ab", 1, false, "a"},
		{"<>", 3, true, "<><"},
	}
	for _, tt := range tests {
		if got := string(cellRunes(tt.glyph, tt.cw, tt.fill)); got != tt.want {
			t.Errorf("cellRunes(%q, %d, %v) = %q, want %q", tt.glyph, tt.cw, tt.fill, got, tt.want)
		}
	}
}
