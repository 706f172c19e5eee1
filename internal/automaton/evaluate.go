package automaton

// IsDead reports whether s is the death sink.
func IsDead(s State) bool {
	switch s.(type) {
	case Death, *Death:
		return true
	}
	return false
}

// IsWon reports whether s is accepting and has no pellets left.
// Both conditions are required: a declared final state with pellets
// remaining is not a win, whatever the definition claims.
func IsWon(s State, finals FinalSet) bool {
	live, ok := asLive(s)
	if !ok {
		return false
	}
	return live.Pellets == 0 && finals.Contains(Encode(live))
}

func asLive(s State) (Live, bool) {
	switch v := s.(type) {
	case Live:
		return v, true
	case *Live:
		if v == nil {
			return Live{}, false
		}
		return *v, true
	}
	return Live{}, false
}
