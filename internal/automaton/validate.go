package automaton

import (
	"errors"
	"fmt"
	"sort"
)

// maxValidationErrors caps how many problems Validate reports for one definition.
const maxValidationErrors = 20

// Validate checks the invariants every loaded definition must hold:
// every key decodes, live positions are walkable cells on the board,
// masks fit the pellet list, and no movement edge brings a pellet back.
// All problems found are joined into one error.
func Validate(def *Definition) error {
	v := &validator{def: def, full: FullMask(len(def.Board.Pellets))}
	v.run()
	return errors.Join(v.errs...)
}

type validator struct {
	def  *Definition
	full PelletMask
	errs []error
}

func (v *validator) addf(format string, args ...any) {
	switch {
	case len(v.errs) < maxValidationErrors:
		v.errs = append(v.errs, fmt.Errorf(format, args...))
	case len(v.errs) == maxValidationErrors:
		v.errs = append(v.errs, errors.New("automaton: too many problems, stopping"))
	}
}

func (v *validator) run() {
	b := v.def.Board
	if b.Width <= 0 || b.Height <= 0 {
		v.addf("automaton: board size %dx%d is not positive", b.Width, b.Height)
	}
	if len(b.Pellets) > MaxPellets {
		v.addf("automaton: %d pellets exceed the %d-bit mask", len(b.Pellets), MaxPellets)
	}
	if !b.Contains(b.Start.X, b.Start.Y) {
		v.addf("automaton: start cell (%d,%d) is off the board", b.Start.X, b.Start.Y)
	}
	for _, sym := range v.def.Alphabet {
		if !sym.Valid() {
			v.addf("automaton: alphabet symbol %q is not recognized", string(sym))
		}
	}

	initial, err := Decode(v.def.InitialState)
	switch {
	case err != nil:
		v.addf("automaton: initial state: %w", err)
	case IsDead(initial):
		v.addf("automaton: initial state must be live, got %q", string(v.def.InitialState))
	default:
		v.checkLive(v.def.InitialState, initial.(Live))
	}

	for _, key := range sortedKeys(v.def.FinalStates) {
		if s, err := Decode(key); err != nil {
			v.addf("automaton: final state: %w", err)
		} else if live, ok := s.(Live); ok {
			v.checkLive(key, live)
		}
	}

	froms := make([]StateKey, 0, len(v.def.Transitions))
	for k := range v.def.Transitions {
		froms = append(froms, k)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })

	for _, from := range froms {
		v.checkRow(from, v.def.Transitions[from])
	}
}

func (v *validator) checkRow(from StateKey, row map[Symbol]StateKey) {
	src, err := Decode(from)
	if err != nil {
		v.addf("automaton: transition source: %w", err)
		return
	}

	syms := make([]Symbol, 0, len(row))
	for s := range row {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	for _, sym := range syms {
		to := row[sym]
		if !sym.Valid() {
			v.addf("automaton: %q has a transition on unknown symbol %q", string(from), string(sym))
			continue
		}
		dst, err := Decode(to)
		if err != nil {
			v.addf("automaton: transition %q --%s-->: %w", string(from), string(sym), err)
			continue
		}
		dstLive, ok := dst.(Live)
		if !ok {
			continue
		}
		v.checkLive(to, dstLive)

		srcLive, ok := src.(Live)
		if ok && sym.IsMovement() && !dstLive.Pellets.SubsetOf(srcLive.Pellets) {
			v.addf("automaton: transition %q --%s--> %q restores a pellet", string(from), string(sym), string(to))
		}
	}
}

func (v *validator) checkLive(key StateKey, s Live) {
	if canon := Encode(s); canon != key {
		v.addf("automaton: state %q is not canonical, want %q", string(key), string(canon))
	}
	b := v.def.Board
	if !b.Contains(s.X, s.Y) {
		v.addf("automaton: state %q is off the %dx%d board", string(key), b.Width, b.Height)
		return
	}
	if b.IsWall(s.X, s.Y) {
		v.addf("automaton: state %q sits on a wall", string(key))
	}
	if !s.Pellets.SubsetOf(v.full) {
		v.addf("automaton: state %q has bits beyond %d pellets", string(key), len(b.Pellets))
	}
}

func sortedKeys(fs FinalSet) []StateKey {
	keys := make([]StateKey, 0, len(fs))
	for k := range fs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
