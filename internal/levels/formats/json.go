package formats

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/pacdfa/internal/automaton"
)

// legacyPrefix marks the keys of a bundle exported by the old web front end.
const legacyPrefix = "mapa_"

// LegacyRecord is one level of the old bundle format.
type LegacyRecord struct {
	EstadoInicial  string                       `json:"estado_inicial"`
	EstadosFinales []string                     `json:"estados_finales"`
	Alfabeto       []string                     `json:"alfabeto"`
	Transiciones   map[string]map[string]string `json:"transiciones"`
	Ctx            LegacyContext                `json:"ctx"`
}

// LegacyContext is the board section of a legacy record.
type LegacyContext struct {
	W         int     `json:"w"`
	H         int     `json:"h"`
	Paredes   [][]int `json:"paredes"`
	Fantasmas [][]int `json:"fantasmas"`
	Inicio    []int   `json:"inicio"`
	Meta      []int   `json:"meta"`
	Pastillas [][]int `json:"pastillas"`
}

// Record converts the legacy layout into the canonical one.
func (l LegacyRecord) Record(name string) Record {
	return Record{
		Name:         name,
		InitialState: l.EstadoInicial,
		FinalStates:  l.EstadosFinales,
		Alphabet:     l.Alfabeto,
		Transitions:  l.Transiciones,
		Board: BoardRecord{
			Width:       l.Ctx.W,
			Height:      l.Ctx.H,
			Walls:       l.Ctx.Paredes,
			Decorations: l.Ctx.Fantasmas,
			Start:       l.Ctx.Inicio,
			Goal:        l.Ctx.Meta,
			Pellets:     l.Ctx.Pastillas,
		},
	}
}

// ParseJSON parses a JSON level file. A canonical file holds one level;
// a legacy bundle holds several, keyed mapa_0..mapa_N and returned in that order.
func ParseJSON(data []byte) ([]*automaton.Definition, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	if _, ok := top[legacyPrefix+"0"]; ok {
		return parseLegacy(top)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	def, err := rec.ToDefinition()
	if err != nil {
		return nil, err
	}
	return []*automaton.Definition{def}, nil
}

func parseLegacy(top map[string]json.RawMessage) ([]*automaton.Definition, error) {
	type indexed struct {
		n   int
		key string
	}
	var keys []indexed
	for k := range top {
		suffix, ok := strings.CutPrefix(k, legacyPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			return nil, fmt.Errorf("legacy bundle: bad key %q", k)
		}
		keys = append(keys, indexed{n: n, key: k})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].n < keys[j].n })

	defs := make([]*automaton.Definition, 0, len(keys))
	for _, k := range keys {
		var lr LegacyRecord
		if err := json.Unmarshal(top[k.key], &lr); err != nil {
			return nil, fmt.Errorf("legacy bundle %s: %w", k.key, err)
		}
		def, err := lr.Record(k.key).ToDefinition()
		if err != nil {
			return nil, fmt.Errorf("legacy bundle %s: %w", k.key, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
