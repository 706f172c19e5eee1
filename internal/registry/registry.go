// Package registry provides a global registry of level packs.
// Packs register themselves in init() functions, allowing the CLI and the
// SSH server to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pacdfa/internal/automaton"
)

// Factory loads the levels of a pack.
// It is called every time the pack is opened; results are not cached.
type Factory func() ([]*automaton.Definition, error)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	Name        string
	Description string
}

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a pack factory to the registry.
// Panics if a pack with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered packs, sorted by name.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(factories))
	for name := range factories {
		result = append(result, PackInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Load opens a pack by name.
// Returns an error if the pack is not registered or fails to load.
func Load(name string) ([]*automaton.Definition, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", name)
	}

	defs, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: loading pack %q: %w", name, err)
	}
	return defs, nil
}

// Exists checks if a pack with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
