// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/pacdfa/internal/automaton"
)

// Record is the on-disk shape of one level, shared by the JSON and YAML formats.
type Record struct {
	Name         string                       `json:"name,omitempty" yaml:"name,omitempty"`
	InitialState string                       `json:"initialState" yaml:"initialState"`
	FinalStates  []string                     `json:"finalStates" yaml:"finalStates"`
	Alphabet     []string                     `json:"alphabet" yaml:"alphabet"`
	Transitions  map[string]map[string]string `json:"transitions" yaml:"transitions"`
	Board        BoardRecord                  `json:"board" yaml:"board"`
}

// BoardRecord is the static layout. Coordinates are [x, y] pairs.
type BoardRecord struct {
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	Walls       [][]int `json:"walls" yaml:"walls"`
	Decorations [][]int `json:"decorations" yaml:"decorations"`
	Start       []int   `json:"start" yaml:"start"`
	Goal        []int   `json:"goal" yaml:"goal"`
	Pellets     [][]int `json:"pellets" yaml:"pellets"`
}

// ToDefinition converts the record into an automaton definition.
// Only the shape is checked here; automaton.Validate checks the semantics.
func (r Record) ToDefinition() (*automaton.Definition, error) {
	board, err := r.Board.toBoard()
	if err != nil {
		return nil, err
	}
	if r.InitialState == "" {
		return nil, fmt.Errorf("missing initialState")
	}

	alphabet := make([]automaton.Symbol, len(r.Alphabet))
	for i, s := range r.Alphabet {
		alphabet[i] = automaton.Symbol(s)
	}

	finals := make([]automaton.StateKey, len(r.FinalStates))
	for i, s := range r.FinalStates {
		finals[i] = automaton.StateKey(s)
	}

	table := make(automaton.Table, len(r.Transitions))
	for from, row := range r.Transitions {
		out := make(map[automaton.Symbol]automaton.StateKey, len(row))
		for sym, to := range row {
			out[automaton.Symbol(sym)] = automaton.StateKey(to)
		}
		table[automaton.StateKey(from)] = out
	}

	return &automaton.Definition{
		Name:         r.Name,
		Alphabet:     alphabet,
		InitialState: automaton.StateKey(r.InitialState),
		FinalStates:  automaton.NewFinalSet(finals...),
		Transitions:  table,
		Board:        board,
	}, nil
}

func (b BoardRecord) toBoard() (automaton.Board, error) {
	walls, err := toCells("walls", b.Walls)
	if err != nil {
		return automaton.Board{}, err
	}
	decorations, err := toCells("decorations", b.Decorations)
	if err != nil {
		return automaton.Board{}, err
	}
	pellets, err := toCells("pellets", b.Pellets)
	if err != nil {
		return automaton.Board{}, err
	}
	start, err := toCell("start", b.Start)
	if err != nil {
		return automaton.Board{}, err
	}

	board := automaton.Board{
		Width:       b.Width,
		Height:      b.Height,
		Walls:       walls,
		Decorations: decorations,
		Start:       start,
		Pellets:     pellets,
	}
	if b.Goal != nil {
		goal, err := toCell("goal", b.Goal)
		if err != nil {
			return automaton.Board{}, err
		}
		board.Goal = &goal
	}
	return board, nil
}

func toCell(field string, pair []int) (automaton.Cell, error) {
	if len(pair) != 2 {
		return automaton.Cell{}, fmt.Errorf("%s: want [x, y], got %v", field, pair)
	}
	return automaton.Cell{X: pair[0], Y: pair[1]}, nil
}

func toCells(field string, pairs [][]int) ([]automaton.Cell, error) {
	cells := make([]automaton.Cell, 0, len(pairs))
	for i, p := range pairs {
		c, err := toCell(fmt.Sprintf("%s[%d]", field, i), p)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}
