package automaton

// corridor is a 4x1 level: start, pellet, goal, ghost.
//
//	S . E G
func corridor() *Definition {
	goal := Cell{X: 2, Y: 0}
	return &Definition{
		Name:         "corridor",
		Alphabet:     []Symbol{SymbolLeft, SymbolRight, SymbolReset, SymbolDown, SymbolUp},
		InitialState: "0,0|1",
		FinalStates:  NewFinalSet("2,0|0"),
		Transitions: Table{
			"0,0|1":  {SymbolRight: "1,0|0"},
			"1,0|0":  {SymbolLeft: "0,0|0", SymbolRight: "2,0|0"},
			"0,0|0":  {SymbolRight: "1,0|0"},
			"2,0|0":  {SymbolLeft: "1,0|0", SymbolRight: DeathKey},
			DeathKey: {SymbolUp: DeathKey, SymbolLeft: DeathKey, SymbolDown: DeathKey, SymbolRight: DeathKey, SymbolReset: "0,0|1"},
		},
		Board: Board{
			Width:       4,
			Height:      1,
			Decorations: []Cell{{X: 3, Y: 0}},
			Start:       Cell{X: 0, Y: 0},
			Goal:        &goal,
			Pellets:     []Cell{{X: 1, Y: 0}},
		},
	}
}

// twoPellets is the scenario where the goal is reached with a pellet left.
func twoPellets() *Definition {
	goal := Cell{X: 1, Y: 0}
	return &Definition{
		Name:         "two pellets",
		Alphabet:     []Symbol{SymbolUp, SymbolLeft, SymbolDown, SymbolRight, SymbolReset},
		InitialState: "0,0|3",
		FinalStates:  NewFinalSet("1,0|0"),
		Transitions: Table{
			"0,0|3": {SymbolRight: "1,0|1"},
		},
		Board: Board{
			Width:   3,
			Height:  2,
			Start:   Cell{X: 0, Y: 0},
			Goal:    &goal,
			Pellets: []Cell{{X: 2, Y: 1}, {X: 1, Y: 0}},
		},
	}
}
