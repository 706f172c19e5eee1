package game

import "github.com/vovakirdan/pacdfa/internal/automaton"

// Observation is everything a renderer may know about the session.
// Remaining pellets are derived from State.Pellets only.
type Observation struct {
	Mode       Mode
	State      *automaton.Live // nil when dead
	Key        automaton.StateKey
	Level      int
	LevelCount int
	LevelName  string
	Moves      int
	Remaining  int
}

// Observe builds the observation for the current state.
func (d *Driver) Observe() Observation {
	def := d.Level()
	obs := Observation{
		Mode:       ModePlaying,
		Key:        d.current,
		Level:      d.seq.Index(),
		LevelCount: d.seq.Len(),
		LevelName:  def.Name,
		Moves:      d.moves,
	}

	s, err := automaton.Decode(d.current)
	if err != nil {
		return obs
	}
	obs.Mode = modeOf(s, def)
	if live, ok := s.(automaton.Live); ok {
		obs.State = &live
		obs.Remaining = live.Pellets.Count()
	}
	return obs
}

// PelletVisible reports whether the pellet at index i should be drawn.
func (o Observation) PelletVisible(i int) bool {
	return o.State != nil && o.State.Pellets.Has(i)
}
