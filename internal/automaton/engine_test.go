package automaton

import (
	"math/rand"
	"testing"
)

func TestStep(t *testing.T) {
	e := NewEngine(corridor())

	tests := []struct {
		name string
		from StateKey
		sym  Symbol
		want StateKey
	}{
		{"eat pellet", "0,0|1", SymbolRight, "1,0|0"},
		{"blocked by wall", "0,0|1", SymbolLeft, "0,0|1"},
		{"blocked vertical", "1,0|0", SymbolUp, "1,0|0"},
		{"walk into ghost", "2,0|0", SymbolRight, DeathKey},
		{"unknown symbol", "0,0|1", Symbol("X"), "0,0|1"},
		{"lowercase is not normalized by Step", "0,0|1", Symbol("d"), "0,0|1"},
		{"death absorbs movement", DeathKey, SymbolUp, DeathKey},
		{"reset from death", DeathKey, SymbolReset, "0,0|1"},
		{"reset from won state", "2,0|0", SymbolReset, "0,0|1"},
		{"reset while playing without edge", "1,0|0", SymbolReset, "1,0|0"},
		{"unknown source key", "9,9|0", SymbolRight, "9,9|0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Step(tc.from, tc.sym)
			if got != tc.want {
				t.Errorf("Step(%q, %q) = %q, want %q", tc.from, tc.sym, got, tc.want)
			}
		})
	}
}

func TestStepResetDeclaredWhilePlaying(t *testing.T) {
	def := corridor()
	def.Transitions["1,0|0"][SymbolReset] = "1,0|0"
	def.Transitions["0,0|0"][SymbolReset] = "0,0|1"
	e := NewEngine(def)

	if got := e.Step("0,0|0", SymbolReset); got != "0,0|1" {
		t.Errorf("declared reset should fire, got %q", got)
	}
	if got := e.Step("1,0|0", SymbolReset); got != "1,0|0" {
		t.Errorf("declared self-loop reset should stay, got %q", got)
	}
}

func TestStepResetIgnoresTableForTerminal(t *testing.T) {
	def := corridor()
	def.Transitions[DeathKey][SymbolReset] = "1,0|0"
	e := NewEngine(def)

	if got := e.Step(DeathKey, SymbolReset); got != def.InitialState {
		t.Errorf("reset from death = %q, want initial %q", got, def.InitialState)
	}
}

func TestDeathAbsorbsEvenWhenTableDisagrees(t *testing.T) {
	def := corridor()
	def.Transitions[DeathKey][SymbolLeft] = "2,0|0"
	e := NewEngine(def)

	for _, sym := range Movements {
		if got := e.Step(DeathKey, sym); got != DeathKey {
			t.Errorf("Step(death, %s) = %q, want death", sym, got)
		}
	}
}

func TestStepDeterminism(t *testing.T) {
	e := NewEngine(corridor())
	keys := []StateKey{"0,0|1", "1,0|0", "0,0|0", "2,0|0", DeathKey, "7,7|7"}
	syms := append([]Symbol{SymbolReset, "Q"}, Movements...)

	for _, k := range keys {
		for _, s := range syms {
			first := e.Step(k, s)
			for i := 0; i < 10; i++ {
				if got := e.Step(k, s); got != first {
					t.Fatalf("Step(%q, %q) changed from %q to %q", k, s, first, got)
				}
			}
		}
	}
}

func TestBlockedMoveIdempotence(t *testing.T) {
	def := corridor()
	e := NewEngine(def)

	for from, row := range def.Transitions {
		if from == DeathKey {
			continue
		}
		for _, sym := range Movements {
			if _, ok := row[sym]; ok {
				continue
			}
			if got := e.Step(from, sym); got != from {
				t.Errorf("Step(%q, %q) = %q, want unchanged", from, sym, got)
			}
		}
	}
}

func TestPelletMonotonicity(t *testing.T) {
	for _, def := range []*Definition{corridor(), twoPellets()} {
		e := NewEngine(def)
		rng := rand.New(rand.NewSource(42))

		for run := 0; run < 50; run++ {
			cur := def.InitialState
			prev, _ := Decode(cur)
			for i := 0; i < 40; i++ {
				sym := Movements[rng.Intn(len(Movements))]
				cur = e.Step(cur, sym)
				s, err := Decode(cur)
				if err != nil {
					t.Fatalf("%s: decode %q: %v", def.Name, cur, err)
				}
				if IsDead(s) {
					break
				}
				if p, ok := prev.(Live); ok && s.(Live).Pellets > p.Pellets {
					t.Fatalf("%s: mask grew from %d to %d", def.Name, p.Pellets, s.(Live).Pellets)
				}
				prev = s
			}
		}
	}
}

func TestRun(t *testing.T) {
	e := NewEngine(corridor())
	path := e.Run("0,0|1", ParseSymbols("DDD"))
	want := []StateKey{"0,0|1", "1,0|0", "2,0|0", DeathKey}

	if len(path) != len(want) {
		t.Fatalf("Run() visited %d states, want %d", len(path), len(want))
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, path[i], want[i])
		}
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want Symbol
		ok   bool
	}{
		{"w", SymbolUp, true},
		{"A", SymbolLeft, true},
		{" s ", SymbolDown, true},
		{"d", SymbolRight, true},
		{"r", SymbolReset, true},
		{"x", "", false},
		{"", "", false},
		{"WA", "", false},
	}

	for _, tc := range tests {
		got, ok := ParseSymbol(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseSymbol(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}

	if got := JoinSymbols(ParseSymbols("dd?s w")); got != "DDSW" {
		t.Errorf("ParseSymbols/JoinSymbols = %q, want DDSW", got)
	}
}
