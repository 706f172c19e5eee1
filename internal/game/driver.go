// Package game is the composition root of a play session. The Driver owns
// the current state key and the level sequencer, routes input symbols to the
// transition engine and publishes what happened to observers. It never draws.
package game

import (
	"fmt"

	"github.com/vovakirdan/pacdfa/internal/automaton"
	"github.com/vovakirdan/pacdfa/internal/levels"
)

// Mode is the driver-level view of the current state.
type Mode string

const (
	ModePlaying Mode = "playing"
	ModeDead    Mode = "dead"
	ModeWon     Mode = "won"
)

// Observer receives the observation after every accepted input.
type Observer interface {
	Observe(obs Observation)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Observation)

// Observe calls f(obs).
func (f ObserverFunc) Observe(obs Observation) { f(obs) }

// Driver runs one play session over a sequence of levels.
// It is not safe for concurrent use; each session owns its own driver.
type Driver struct {
	seq       *levels.Sequencer
	engine    *automaton.Engine
	current   automaton.StateKey
	moves     int
	observers []Observer
}

// Option configures a Driver.
type Option func(*Driver)

// WithObserver registers an observer at construction time.
func WithObserver(o Observer) Option {
	return func(d *Driver) {
		d.observers = append(d.observers, o)
	}
}

// New creates a driver positioned on the sequencer's current level.
// Every level must validate up front, so advancing can never land on a
// definition the driver cannot trust.
func New(seq *levels.Sequencer, opts ...Option) (*Driver, error) {
	if seq == nil {
		return nil, levels.ErrNoLevels
	}
	for _, def := range seq.Levels() {
		if err := automaton.Validate(def); err != nil {
			return nil, fmt.Errorf("game: level %q: %w", def.Name, err)
		}
	}

	d := &Driver{seq: seq}
	for _, opt := range opts {
		opt(d)
	}
	d.enter(seq.Current())
	return d, nil
}

// Subscribe registers an observer.
func (d *Driver) Subscribe(o Observer) {
	d.observers = append(d.observers, o)
}

// Mode derives the mode from the current key.
func (d *Driver) Mode() Mode {
	s, err := automaton.Decode(d.current)
	if err != nil {
		// enter and OnInput never adopt an undecodable key.
		return ModePlaying
	}
	return modeOf(s, d.Level())
}

// OnInput feeds one raw input to the session.
// Unknown input and input the current mode does not accept are ignored and
// report accepted=false. An error means the level data is corrupt; the
// state is left unchanged in that case.
func (d *Driver) OnInput(in string) (accepted bool, err error) {
	sym, ok := automaton.ParseSymbol(in)
	if !ok {
		return false, nil
	}

	switch d.Mode() {
	case ModePlaying:
		if !sym.IsMovement() {
			return false, nil
		}
		next := d.engine.Step(d.current, sym)
		if _, err := automaton.Decode(next); err != nil {
			return false, fmt.Errorf("game: level %q: %w", d.Level().Name, err)
		}
		d.current = next
		d.moves++

	case ModeDead:
		if sym != automaton.SymbolReset {
			return false, nil
		}
		d.reset()

	case ModeWon:
		if sym != automaton.SymbolReset {
			return false, nil
		}
		d.enter(d.seq.Advance())
	}

	d.publish()
	return true, nil
}

// Feed sends each symbol of seq through OnInput and stops at the first error.
// It returns how many inputs were accepted.
func (d *Driver) Feed(seq string) (int, error) {
	accepted := 0
	for _, r := range seq {
		ok, err := d.OnInput(string(r))
		if err != nil {
			return accepted, err
		}
		if ok {
			accepted++
		}
	}
	return accepted, nil
}

// Hint returns the first move of a shortest winning path from the current state.
// ok is false when the session is not playing or no win is reachable.
func (d *Driver) Hint() (automaton.Symbol, bool) {
	if d.Mode() != ModePlaying {
		return "", false
	}
	path, err := automaton.Solve(d.Level().WithInitial(d.current))
	if err != nil || len(path) == 0 {
		return "", false
	}
	return path[0], true
}

// Level returns the active level definition.
func (d *Driver) Level() *automaton.Definition {
	return d.seq.Current()
}

// LevelIndex returns the 0-based index of the active level.
func (d *Driver) LevelIndex() int {
	return d.seq.Index()
}

// LevelCount returns the number of levels in the session.
func (d *Driver) LevelCount() int {
	return d.seq.Len()
}

// Key returns the current state key.
func (d *Driver) Key() automaton.StateKey {
	return d.current
}

// enter switches to def and places the player on its initial state.
func (d *Driver) enter(def *automaton.Definition) {
	d.engine = def.Engine()
	d.reset()
}

func (d *Driver) reset() {
	d.current = d.Level().InitialState
	d.moves = 0
}

func (d *Driver) publish() {
	if len(d.observers) == 0 {
		return
	}
	obs := d.Observe()
	for _, o := range d.observers {
		o.Observe(obs)
	}
}

func modeOf(s automaton.State, def *automaton.Definition) Mode {
	switch {
	case automaton.IsDead(s):
		return ModeDead
	case automaton.IsWon(s, def.FinalStates):
		return ModeWon
	default:
		return ModePlaying
	}
}
