package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/pacdfa/internal/automaton"
	"github.com/vovakirdan/pacdfa/internal/config"
	"github.com/vovakirdan/pacdfa/internal/core"
	"github.com/vovakirdan/pacdfa/internal/game"
)

// hudHeight is the number of rows under the board frame.
const hudHeight = 3

// BoardView projects an observation onto a screen buffer.
// It reads the board layout from the definition and everything that changes
// from the observation; it keeps no state between frames.
type BoardView struct {
	Theme     config.Theme
	CellWidth int
	ResetKey  string // shown in the end-of-level banner
}

// NewBoardView returns a view with the given theme and runtime cell width.
func NewBoardView(theme config.Theme, rc core.RuntimeConfig) BoardView {
	rc = rc.Normalize()
	return BoardView{Theme: theme, CellWidth: rc.CellWidth, ResetKey: "R"}
}

// Size returns the screen size needed to draw def with its frame and HUD.
func (v BoardView) Size(def *automaton.Definition) (w, h int) {
	w = def.Board.Width*v.cellWidth() + 2
	h = def.Board.Height + 2 + hudHeight
	return core.Max(w, hudMinWidth), h
}

// hudMinWidth keeps the HUD lines readable on tiny boards.
const hudMinWidth = 36

func (v BoardView) cellWidth() int {
	if v.CellWidth <= 0 {
		return core.DefaultConfig().CellWidth
	}
	return v.CellWidth
}

// Render clears dst and draws the framed board, the end-of-level banner and
// the HUD, centered on the screen. status is an optional one-line message.
func (v BoardView) Render(dst *core.Screen, def *automaton.Definition, obs game.Observation, status string) {
	dst.Clear()

	cw := v.cellWidth()
	frameW := def.Board.Width*cw + 2
	frameH := def.Board.Height + 2
	_, totalH := v.Size(def)

	area := core.CenterIn(dst.Bounds(), frameW, totalH)
	frame := core.NewRect(area.X, area.Y, frameW, frameH)

	dst.DrawBox(frame, core.ColorWall)
	DrawBoard(dst, frame.Inset(1), def, obs, v.Theme, cw)

	switch obs.Mode {
	case game.ModeDead:
		v.banner(dst, frame, fmt.Sprintf(" CAUGHT! press %s to retry ", v.ResetKey), core.ColorAlert)
	case game.ModeWon:
		v.banner(dst, frame, fmt.Sprintf(" CLEARED! press %s for the next level ", v.ResetKey), core.ColorSuccess)
	}

	DrawHUD(dst, core.NewRect(area.X, frame.Bottom(), core.Max(frameW, hudMinWidth), hudHeight), obs, status)
}

func (v BoardView) banner(dst *core.Screen, frame core.Rect, text string, c core.Color) {
	y := frame.Y + frame.H/2
	x := frame.X + (frame.W-utf8.RuneCountInString(text))/2
	dst.DrawTextColor(core.Max(0, x), y, text, c)
}

// DrawBoard draws the level into area, one board cell per cw columns.
// Pellets come from the board's pellet list filtered by the observed mask;
// nothing else about the pellets is remembered.
func DrawBoard(dst *core.Screen, area core.Rect, def *automaton.Definition, obs game.Observation, theme config.Theme, cw int) {
	b := def.Board
	g := theme.Glyphs

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			glyph, color, fill := g.Floor, core.ColorFloor, false

			switch {
			case obs.State != nil && obs.State.X == x && obs.State.Y == y:
				glyph, color = g.Player, core.ColorPlayer
			case b.IsDecoration(x, y):
				glyph, color = g.Ghost, core.ColorGhost
			case obs.PelletVisible(b.PelletIndex(x, y)):
				glyph, color = g.Pellet, core.ColorPellet
			case b.Goal != nil && b.Goal.X == x && b.Goal.Y == y:
				glyph, color = g.Goal, core.ColorGoal
			case b.IsWall(x, y):
				glyph, color, fill = g.Wall, core.ColorWall, true
			case b.Start.X == x && b.Start.Y == y:
				glyph, color = g.Start, core.ColorStart
			}

			runes := cellRunes(glyph, cw, fill)
			for i, r := range runes {
				px, py := area.X+x*cw+i, area.Y+y
				if area.Contains(px, py) {
					dst.SetCell(px, py, core.Cell{Rune: r, Color: color})
				}
			}
		}
	}
}

// cellRunes pads glyph to cw runes, or repeats it when fill is set.
func cellRunes(glyph string, cw int, fill bool) []rune {
	out := make([]rune, cw)
	src := []rune(glyph)
	if len(src) == 0 {
		src = []rune{' '}
	}
	for i := range out {
		switch {
		case i < len(src):
			out[i] = src[i]
		case fill:
			out[i] = src[i%len(src)]
		default:
			out[i] = ' '
		}
	}
	return out
}

// DrawHUD writes the level, progress and state lines into area.
func DrawHUD(dst *core.Screen, area core.Rect, obs game.Observation, status string) {
	title := fmt.Sprintf("Level %d/%d  %s", obs.Level+1, obs.LevelCount, obs.LevelName)
	dst.DrawTextColor(area.X, area.Y, clip(title, area.W), core.ColorAccent)

	modeColor := core.ColorText
	switch obs.Mode {
	case game.ModeDead:
		modeColor = core.ColorAlert
	case game.ModeWon:
		modeColor = core.ColorSuccess
	}
	progress := fmt.Sprintf("Moves %d  Pellets %d  [%s]", obs.Moves, obs.Remaining, obs.Mode)
	dst.DrawTextColor(area.X, area.Y+1, clip(progress, area.W), modeColor)

	last := "State " + string(obs.Key)
	if status != "" {
		last = status
	}
	dst.DrawTextColor(area.X, area.Y+2, clip(last, area.W), core.ColorMuted)
}

func clip(s string, w int) string {
	if w <= 0 || utf8.RuneCountInString(s) <= w {
		return s
	}
	r := []rune(s)
	return strings.TrimRight(string(r[:w-1]), " ") + "…"
}
