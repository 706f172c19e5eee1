package automaton

// Engine resolves transitions for a single definition.
// It holds no mutable state; Step is a pure function of its arguments.
type Engine struct {
	def *Definition
}

// NewEngine creates an engine over def.
func NewEngine(def *Definition) *Engine {
	return &Engine{def: def}
}

// Definition returns the automaton this engine reads from.
func (e *Engine) Definition() *Definition {
	return e.def
}

// Step returns the state reached from current on sym.
//
// Unknown symbols and undeclared transitions leave the state unchanged.
// Reset from a terminal state (death or a won state) always returns the
// initial state; from any other state it only fires if the table declares it.
// Movement out of death is absorbed even if the table says otherwise.
func (e *Engine) Step(current StateKey, sym Symbol) StateKey {
	if !sym.Valid() {
		return current
	}

	terminal, dead := e.terminal(current)
	if sym == SymbolReset && terminal {
		return e.def.InitialState
	}
	if dead {
		return current
	}

	next, ok := e.def.Transitions.Lookup(current, sym)
	if !ok {
		return current
	}
	return next
}

// Run feeds a sequence of symbols from start and returns every state visited,
// starting with start itself.
func (e *Engine) Run(start StateKey, seq []Symbol) []StateKey {
	path := make([]StateKey, 0, len(seq)+1)
	path = append(path, start)
	cur := start
	for _, sym := range seq {
		cur = e.Step(cur, sym)
		path = append(path, cur)
	}
	return path
}

// terminal reports whether key is dead or won. Undecodable keys are neither.
func (e *Engine) terminal(key StateKey) (terminal, dead bool) {
	s, err := Decode(key)
	if err != nil {
		return false, false
	}
	if IsDead(s) {
		return true, true
	}
	return IsWon(s, e.def.FinalStates), false
}
