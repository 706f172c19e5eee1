// Package automaton holds the DFA that drives a level: the state codec,
// the transition engine and the terminal/win classification.
// It has no knowledge of terminals, files or rendering.
package automaton

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// StateKey is the canonical textual identity of a configuration.
// Live states are encoded as "x,y|mask", the death sink as DeathKey.
type StateKey string

// DeathKey is the token used for the absorbing death state.
const DeathKey StateKey = "MUERTE"

// MaxPellets is the widest pellet set a PelletMask can hold.
const MaxPellets = 64

// ErrMalformedStateKey is returned when a key matches neither state grammar.
// It always points at a corrupt automaton definition.
var ErrMalformedStateKey = errors.New("malformed state key")

// MalformedStateKeyError describes why a key could not be decoded.
type MalformedStateKeyError struct {
	Key    StateKey
	Reason string
}

func (e *MalformedStateKeyError) Error() string {
	return fmt.Sprintf("automaton: malformed state key %q: %s", string(e.Key), e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedStateKey.
func (e *MalformedStateKeyError) Unwrap() error {
	return ErrMalformedStateKey
}

// PelletMask is a bit set over the board's ordered pellet list.
// Bit i set means the pellet at Board.Pellets[i] is still present.
type PelletMask uint64

// FullMask returns a mask with the low n bits set.
func FullMask(n int) PelletMask {
	if n >= MaxPellets {
		return ^PelletMask(0)
	}
	if n <= 0 {
		return 0
	}
	return PelletMask(1)<<uint(n) - 1
}

// Has reports whether the pellet at index i is still present.
func (m PelletMask) Has(i int) bool {
	if i < 0 || i >= MaxPellets {
		return false
	}
	return m&(PelletMask(1)<<uint(i)) != 0
}

// Clear returns the mask with pellet i marked as eaten.
func (m PelletMask) Clear(i int) PelletMask {
	if i < 0 || i >= MaxPellets {
		return m
	}
	return m &^ (PelletMask(1) << uint(i))
}

// Count returns the number of pellets still present.
func (m PelletMask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// SubsetOf reports whether every pellet present in m is also present in other.
func (m PelletMask) SubsetOf(other PelletMask) bool {
	return m&^other == 0
}

// State is a decoded configuration: either Live or Death.
type State interface {
	isState()
}

// Live is a configuration where the player is on the board.
type Live struct {
	X, Y    int
	Pellets PelletMask
}

// Death is the absorbing sink reached by walking into a ghost.
type Death struct{}

func (Live) isState()  {}
func (Death) isState() {}

// Decode parses a state key.
func Decode(key StateKey) (State, error) {
	if key == DeathKey {
		return Death{}, nil
	}

	pos, mask, ok := strings.Cut(string(key), "|")
	if !ok {
		return nil, &MalformedStateKeyError{Key: key, Reason: "missing '|' separator"}
	}
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return nil, &MalformedStateKeyError{Key: key, Reason: "missing ',' in position"}
	}

	x, err := parseCoord(xs)
	if err != nil {
		return nil, &MalformedStateKeyError{Key: key, Reason: "x: " + err.Error()}
	}
	y, err := parseCoord(ys)
	if err != nil {
		return nil, &MalformedStateKeyError{Key: key, Reason: "y: " + err.Error()}
	}
	if !isDigits(mask) {
		return nil, &MalformedStateKeyError{Key: key, Reason: "mask is not a base-10 integer"}
	}
	m, err := strconv.ParseUint(mask, 10, 64)
	if err != nil {
		return nil, &MalformedStateKeyError{Key: key, Reason: "mask out of range"}
	}

	return Live{X: x, Y: y, Pellets: PelletMask(m)}, nil
}

// Encode returns the canonical key for a state.
// A nil state encodes as the death key.
func Encode(s State) StateKey {
	switch v := s.(type) {
	case Live:
		return LiveKey(v.X, v.Y, v.Pellets)
	case *Live:
		if v == nil {
			return DeathKey
		}
		return LiveKey(v.X, v.Y, v.Pellets)
	default:
		return DeathKey
	}
}

// LiveKey builds the key "x,y|mask" without going through a State value.
func LiveKey(x, y int, mask PelletMask) StateKey {
	var sb strings.Builder
	sb.Grow(24)
	sb.WriteString(strconv.Itoa(x))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(y))
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatUint(uint64(mask), 10))
	return StateKey(sb.String())
}

func parseCoord(s string) (int, error) {
	if !isDigits(s) {
		return 0, errors.New("not a non-negative integer")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("out of range")
	}
	return n, nil
}

// isDigits rejects signs, spaces and empty strings that strconv would accept or misreport.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
