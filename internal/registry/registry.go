// Package registry provides a global registry of game presets.
// Presets register themselves in init() functions, allowing the CLI and the
// frontends to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Preset is a named, ready-to-play rule set.
type Preset struct {
	ID          string
	Title       string
	Description string
	Config      config.SnakeConfig
}

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory builds a fresh preset. Each call returns an independent copy.
type Factory func() Preset

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PresetInfo)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Panics if a preset with the same ID is already registered or the preset's
// configuration is invalid.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}

	p := f()
	if err := p.Config.Validate(); err != nil {
		panic(fmt.Sprintf("registry: preset %q is invalid: %v", id, err))
	}

	factories[id] = f
	infos[id] = PresetInfo{ID: id, Title: p.Title, Description: p.Description}
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the preset registered under id.
func Create(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}

	p := f()
	p.ID = id
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
