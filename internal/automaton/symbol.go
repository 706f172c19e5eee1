package automaton

import "strings"

// Symbol is an input symbol of a level automaton.
type Symbol string

// Recognized symbols. Everything else is ignored without error.
const (
	SymbolUp    Symbol = "W"
	SymbolLeft  Symbol = "A"
	SymbolDown  Symbol = "S"
	SymbolRight Symbol = "D"
	SymbolReset Symbol = "R"
)

// Movements lists the movement symbols in the order the solver expands them.
var Movements = []Symbol{SymbolUp, SymbolLeft, SymbolDown, SymbolRight}

// ParseSymbol normalizes raw input to a recognized symbol.
// ok is false for anything outside the five symbols.
func ParseSymbol(in string) (Symbol, bool) {
	s := Symbol(strings.ToUpper(strings.TrimSpace(in)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Valid reports whether s is one of the five recognized symbols.
func (s Symbol) Valid() bool {
	switch s {
	case SymbolUp, SymbolLeft, SymbolDown, SymbolRight, SymbolReset:
		return true
	}
	return false
}

// IsMovement reports whether s moves the player.
func (s Symbol) IsMovement() bool {
	return s.Valid() && s != SymbolReset
}

// String returns a readable name for help text.
func (s Symbol) String() string {
	switch s {
	case SymbolUp:
		return "up"
	case SymbolLeft:
		return "left"
	case SymbolDown:
		return "down"
	case SymbolRight:
		return "right"
	case SymbolReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ParseSymbols converts a string like "DDSW" into symbols, skipping anything unrecognized.
func ParseSymbols(seq string) []Symbol {
	out := make([]Symbol, 0, len(seq))
	for _, r := range seq {
		if s, ok := ParseSymbol(string(r)); ok {
			out = append(out, s)
		}
	}
	return out
}

// JoinSymbols is the inverse of ParseSymbols for recognized input.
func JoinSymbols(seq []Symbol) string {
	var sb strings.Builder
	for _, s := range seq {
		sb.WriteString(string(s))
	}
	return sb.String()
}
