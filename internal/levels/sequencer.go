package levels

import "github.com/vovakirdan/pacdfa/internal/automaton"

// Sequencer walks an ordered collection of independent levels.
// The index starts at 0 and wraps around after the last level.
type Sequencer struct {
	levels []*automaton.Definition
	index  int
}

// NewSequencer creates a sequencer positioned on the first level.
func NewSequencer(levels []*automaton.Definition) (*Sequencer, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	return &Sequencer{levels: levels}, nil
}

// Current returns the active level.
func (s *Sequencer) Current() *automaton.Definition {
	return s.levels[s.index]
}

// Advance moves to the next level, wrapping to the first, and returns it.
func (s *Sequencer) Advance() *automaton.Definition {
	s.index = (s.index + 1) % len(s.levels)
	return s.Current()
}

// Index returns the 0-based index of the active level.
func (s *Sequencer) Index() int {
	return s.index
}

// Len returns the number of levels.
func (s *Sequencer) Len() int {
	return len(s.levels)
}

// Levels returns the underlying collection. Callers must not modify it.
func (s *Sequencer) Levels() []*automaton.Definition {
	return s.levels
}
