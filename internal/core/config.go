package core

// RuntimeConfig describes the drawing surface handed to the renderer.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters
	ScreenH   int // Screen height in characters
	CellWidth int // Characters per board cell horizontally
}

// DefaultConfig returns the classic 80x24 terminal with double-width cells.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		CellWidth: 2,
	}
}

// Normalize fills zero or negative fields from DefaultConfig.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.CellWidth <= 0 {
		c.CellWidth = def.CellWidth
	}
	return c
}
