package automaton

import "errors"

// ErrUnsolvable is returned when no won state is reachable from the start.
var ErrUnsolvable = errors.New("automaton: no winning sequence")

// Solve finds a shortest sequence of movement symbols that takes the
// definition from its initial state to a won state.
// Only declared transitions are followed; blocked moves and death are dead ends.
// Ties are broken by the order of Movements, so the result is deterministic.
func Solve(def *Definition) ([]Symbol, error) {
	start := def.InitialState
	if def.IsWonKey(start) {
		return []Symbol{}, nil
	}

	type edge struct {
		prev StateKey
		sym  Symbol
	}
	parent := map[StateKey]edge{}
	seen := map[StateKey]bool{start: true}
	queue := []StateKey{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, sym := range Movements {
			next, ok := def.Transitions.Lookup(cur, sym)
			if !ok || next == DeathKey || seen[next] {
				continue
			}
			seen[next] = true
			parent[next] = edge{prev: cur, sym: sym}

			if def.IsWonKey(next) {
				var path []Symbol
				for k := next; k != start; k = parent[k].prev {
					path = append(path, parent[k].sym)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, nil
			}
			queue = append(queue, next)
		}
	}

	return nil, ErrUnsolvable
}
