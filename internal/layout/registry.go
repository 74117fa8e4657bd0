package layout

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownLayout is returned by Get for IDs that were never registered.
var ErrUnknownLayout = errors.New("layout: unknown layout")

// Info contains metadata about a registered layout.
type Info struct {
	ID    string
	Title string
}

var (
	layouts = make(map[string]Layout)
	mu      sync.RWMutex
)

// Register adds a layout to the registry, replacing any layout with the same ID.
// The built-in layout registers itself from init(); user layouts loaded from
// disk may shadow it on purpose.
func Register(l Layout) {
	mu.Lock()
	defer mu.Unlock()
	layouts[l.ID] = l
}

// List returns information about all registered layouts, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(layouts))
	for id, l := range layouts {
		result = append(result, Info{ID: id, Title: l.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a copy of the layout registered under id.
func Get(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := layouts[id]
	if !ok {
		return Layout{}, fmt.Errorf("%w %q", ErrUnknownLayout, id)
	}
	return l.clone(), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := layouts[id]
	return ok
}

// clone copies the slices so callers cannot mutate the registered layout.
func (l Layout) clone() Layout {
	out := l
	out.Story = append([]string(nil), l.Story...)
	out.Platforms = append([]Box(nil), l.Platforms...)
	out.Crystals = append([]Box(nil), l.Crystals...)
	out.Enemies = append([]EnemySpawn(nil), l.Enemies...)
	return out
}
