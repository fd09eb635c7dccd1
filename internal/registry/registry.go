// Package registry provides a global registry for paddle controllers.
// Controllers register themselves in init() functions, allowing the CLI
// and the control loop to pick players by name without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pixel-pong/internal/core"
)

// Controller turns what a player sees into a paddle request each tick.
// Controllers contain no terminal or timing code; the loop samples them
// once per frame.
type Controller interface {
	// Name returns the identifier used on the command line (e.g., "cpu").
	Name() string

	// Direction returns the request for the paddle on side.
	Direction(side core.Side, view core.FieldView) core.Direction
}

// ControllerInfo contains metadata about a registered controller.
type ControllerInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new controller instance.
type Factory func() Controller

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a controller factory to the registry.
// Panics if a controller with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: controller %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered controllers, sorted by name.
func List() []ControllerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ControllerInfo, 0, len(factories))
	for name := range factories {
		result = append(result, ControllerInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new controller by name.
func Create(name string) (Controller, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown controller %q", name)
	}

	return f(), nil
}

// Exists checks if a controller with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
