package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/vovakirdan/pacdfa/internal/automaton"
	"github.com/vovakirdan/pacdfa/internal/registry"
)

// DefaultPack is the pack played when none is selected.
const DefaultPack = "classic"

//go:embed packs
var packFS embed.FS

var packDescriptions = map[string]string{
	"classic": "Five hand-drawn mazes, from a warm-up corridor to the bait level",
}

func init() {
	names, err := EmbeddedPacks()
	if err != nil {
		panic(fmt.Sprintf("levels: embedded packs: %v", err))
	}
	for _, name := range names {
		name := name
		registry.Register(name, packDescriptions[name], func() ([]*automaton.Definition, error) {
			return LoadEmbedded(name)
		})
	}
}

// EmbeddedPacks returns the names of the packs compiled into the binary.
func EmbeddedPacks() ([]string, error) {
	entries, err := fs.ReadDir(packFS, "packs")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// LoadEmbedded loads and validates an embedded pack.
func LoadEmbedded(name string) ([]*automaton.Definition, error) {
	sub, err := fs.Sub(packFS, "packs/"+name)
	if err != nil {
		return nil, fmt.Errorf("levels: pack %q: %w", name, err)
	}
	if _, err := fs.Stat(sub, "."); err != nil {
		return nil, fmt.Errorf("levels: unknown pack %q", name)
	}
	return (&Loader{FS: sub, Root: "."}).LoadAll()
}
