package automaton

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// Board is the static layout a level automaton was built from.
// The order of Pellets is fixed: index i is bit i of every PelletMask.
type Board struct {
	Width       int
	Height      int
	Walls       []Cell
	Decorations []Cell // ghosts; static, never agents
	Start       Cell
	Goal        *Cell
	Pellets     []Cell
}

// Contains reports whether (x, y) lies on the board.
func (b Board) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// IsWall reports whether (x, y) is a wall cell.
func (b Board) IsWall(x, y int) bool {
	return containsCell(b.Walls, x, y)
}

// IsDecoration reports whether (x, y) holds a ghost.
func (b Board) IsDecoration(x, y int) bool {
	return containsCell(b.Decorations, x, y)
}

// PelletIndex returns the bit index of the pellet at (x, y), or -1.
func (b Board) PelletIndex(x, y int) int {
	for i, p := range b.Pellets {
		if p.X == x && p.Y == y {
			return i
		}
	}
	return -1
}

func containsCell(cells []Cell, x, y int) bool {
	for _, c := range cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// FinalSet is the set of accepting state keys.
type FinalSet map[StateKey]struct{}

// NewFinalSet builds a set from a list of keys.
func NewFinalSet(keys ...StateKey) FinalSet {
	fs := make(FinalSet, len(keys))
	for _, k := range keys {
		fs[k] = struct{}{}
	}
	return fs
}

// Contains reports whether key is declared accepting.
func (fs FinalSet) Contains(key StateKey) bool {
	_, ok := fs[key]
	return ok
}

// Table is the transition function as an explicit two-level lookup.
// A missing entry is a blocked move, never an error.
type Table map[StateKey]map[Symbol]StateKey

// Lookup returns the declared target for (key, sym).
// ok is false when the table has no entry; callers treat that as a no-op.
func (t Table) Lookup(key StateKey, sym Symbol) (StateKey, bool) {
	row, ok := t[key]
	if !ok {
		return "", false
	}
	next, ok := row[sym]
	return next, ok
}

// Definition is one level: a self-contained automaton plus its board.
// It is treated as immutable once loaded.
type Definition struct {
	Name         string
	Alphabet     []Symbol
	InitialState StateKey
	FinalStates  FinalSet
	Transitions  Table
	Board        Board
}

// Engine returns the transition engine for this definition.
func (d *Definition) Engine() *Engine {
	return NewEngine(d)
}

// IsWonKey decodes key and reports whether it is a win state of this level.
// Keys that fail to decode are never won.
func (d *Definition) IsWonKey(key StateKey) bool {
	s, err := Decode(key)
	if err != nil {
		return false
	}
	return IsWon(s, d.FinalStates)
}

// StateCount returns the number of distinct keys known to the definition.
func (d *Definition) StateCount() int {
	seen := make(map[StateKey]struct{}, len(d.Transitions)+1)
	seen[d.InitialState] = struct{}{}
	for from, row := range d.Transitions {
		seen[from] = struct{}{}
		for _, to := range row {
			seen[to] = struct{}{}
		}
	}
	return len(seen)
}

// WithInitial returns a shallow copy of d rooted at key.
// The tables are shared, which is safe because definitions are never mutated.
func (d *Definition) WithInitial(key StateKey) *Definition {
	cp := *d
	cp.InitialState = key
	return &cp
}
