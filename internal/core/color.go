package core

// Color is a semantic foreground color for a screen cell.
// The renderer maps each value onto a theme color.
type Color uint8

// Roles drawn by the board renderer and the HUD.
const (
	ColorDefault Color = iota
	ColorWall
	ColorFloor
	ColorPlayer
	ColorGhost
	ColorPellet
	ColorGoal
	ColorStart
	ColorText
	ColorAccent
	ColorMuted
	ColorAlert
	ColorSuccess
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorWall:    "wall",
	ColorFloor:   "floor",
	ColorPlayer:  "player",
	ColorGhost:   "ghost",
	ColorPellet:  "pellet",
	ColorGoal:    "goal",
	ColorStart:   "start",
	ColorText:    "text",
	ColorAccent:  "accent",
	ColorMuted:   "muted",
	ColorAlert:   "alert",
	ColorSuccess: "success",
}

// String returns the theme name of the color role.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor resolves a theme name back to its role.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
