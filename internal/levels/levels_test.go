package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/pacdfa/internal/automaton"
	"github.com/vovakirdan/pacdfa/internal/registry"
)

func TestSequencerWraparound(t *testing.T) {
	defs := make([]*automaton.Definition, 5)
	for i := range defs {
		defs[i] = &automaton.Definition{Name: string(rune('a' + i))}
	}

	seq, err := NewSequencer(defs)
	if err != nil {
		t.Fatalf("NewSequencer() failed: %v", err)
	}
	if seq.Index() != 0 || seq.Current().Name != "a" {
		t.Fatalf("sequencer should start at level 0")
	}

	for i := 1; i <= 4; i++ {
		seq.Advance()
		if seq.Index() != i {
			t.Fatalf("after %d advances index = %d", i, seq.Index())
		}
	}

	next := seq.Advance()
	if seq.Index() != 0 {
		t.Errorf("advance from index 4 should wrap to 0, got %d", seq.Index())
	}
	if next.Name != "a" {
		t.Errorf("Advance() returned %q, want the first level", next.Name)
	}
	if seq.Len() != 5 {
		t.Errorf("Len() = %d, want 5", seq.Len())
	}
}

func TestSequencerRejectsEmpty(t *testing.T) {
	if _, err := NewSequencer(nil); !errors.Is(err, ErrNoLevels) {
		t.Errorf("NewSequencer(nil) error = %v, want ErrNoLevels", err)
	}
}

func TestClassicPack(t *testing.T) {
	defs, err := LoadEmbedded(DefaultPack)
	if err != nil {
		t.Fatalf("LoadEmbedded(%q) failed: %v", DefaultPack, err)
	}
	if len(defs) != 5 {
		t.Fatalf("classic pack has %d levels, want 5", len(defs))
	}

	wantNames := []string{"Warm-up", "First Ghost", "Corridors", "Haunted Hall", "Bait"}
	for i, def := range defs {
		if def.Name != wantNames[i] {
			t.Errorf("level %d name = %q, want %q", i, def.Name, wantNames[i])
		}
		if _, err := automaton.Solve(def); err != nil {
			t.Errorf("level %q should be solvable: %v", def.Name, err)
		}
	}
}

func TestClassicWarmupScript(t *testing.T) {
	defs, err := LoadEmbedded(DefaultPack)
	if err != nil {
		t.Fatalf("LoadEmbedded() failed: %v", err)
	}
	warmup := defs[0]
	e := warmup.Engine()

	path := e.Run(warmup.InitialState, automaton.ParseSymbols("DDDDDDD"))
	if last := path[len(path)-1]; last != "8,1|0" || !warmup.IsWonKey(last) {
		t.Errorf("seven steps right should win, ended in %q", last)
	}

	path = e.Run(warmup.InitialState, automaton.ParseSymbols("DDDDDDS"))
	if last := path[len(path)-1]; last != automaton.DeathKey {
		t.Errorf("stepping onto the ghost should kill, ended in %q", last)
	}
}

func TestBaitLevelDeclaresFinalsWithPellets(t *testing.T) {
	defs, err := LoadEmbedded(DefaultPack)
	if err != nil {
		t.Fatalf("LoadEmbedded() failed: %v", err)
	}
	bait := defs[4]

	var withPellets int
	for key := range bait.FinalStates {
		if !bait.IsWonKey(key) {
			withPellets++
		}
	}
	if withPellets == 0 {
		t.Error("bait level should declare final states that still hold pellets")
	}
}

func TestClassicIsRegistered(t *testing.T) {
	if !registry.Exists(DefaultPack) {
		t.Fatalf("pack %q should be registered", DefaultPack)
	}
	defs, err := registry.Load(DefaultPack)
	if err != nil {
		t.Fatalf("registry.Load() failed: %v", err)
	}
	if len(defs) != 5 {
		t.Errorf("registry.Load() returned %d levels", len(defs))
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), yamlLevel)
	writeFile(t, filepath.Join(dir, "a.json"), jsonLevel)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	defs, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("LoadAll() returned %d levels, want 2", len(defs))
	}
	if defs[0].Name != "a" {
		t.Errorf("unnamed level should take the file name, got %q", defs[0].Name)
	}
	if defs[1].Name != "from yaml" {
		t.Errorf("second level name = %q", defs[1].Name)
	}
}

func TestLoaderRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), strings.Replace(jsonLevel, `"1,0|0"}`, `"1;0|0"}`, 1))

	_, err := NewLoader(dir).LoadAll()
	if err == nil {
		t.Fatal("LoadAll() should fail on a corrupt level")
	}
	if !errors.Is(err, automaton.ErrMalformedStateKey) {
		t.Errorf("LoadAll() error = %v, want ErrMalformedStateKey in chain", err)
	}
}

func TestLoaderEmpty(t *testing.T) {
	if _, err := NewLoader(t.TempDir()).LoadAll(); !errors.Is(err, ErrNoLevels) {
		t.Errorf("LoadAll() on empty dir error = %v, want ErrNoLevels", err)
	}
}

func TestLoadPathFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "only.json")
	writeFile(t, p, jsonLevel)

	defs, err := LoadPath(p, nil)
	if err != nil {
		t.Fatalf("LoadPath() failed: %v", err)
	}
	if len(defs) != 1 || defs[0].Name != "only" {
		t.Errorf("LoadPath() = %v", defs)
	}

	if _, err := LoadPath(filepath.Join(dir, "missing.json"), nil); err == nil {
		t.Error("LoadPath() on a missing file should fail")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const jsonLevel = `{
  "initialState": "0,0|1",
  "finalStates": ["1,0|0"],
  "alphabet": ["W", "A", "S", "D", "R"],
  "transitions": {"0,0|1": {"D": "1,0|0"}},
  "board": {"width": 2, "height": 1, "walls": [], "decorations": [], "start": [0, 0], "goal": [1, 0], "pellets": [[1, 0]]}
}`

const yamlLevel = `
name: from yaml
initialState: "0,0|0"
finalStates: ["1,0|0"]
alphabet: [W, A, S, D, R]
transitions:
  "0,0|0":
    D: "1,0|0"
board:
  width: 2
  height: 1
  start: [0, 0]
  goal: [1, 0]
`
