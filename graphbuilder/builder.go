// File: builder.go
// Role: Constructor, BuildConfig, and the BuildGraph orchestrator.
package graphbuilder

import (
	"fmt"

	"github.com/katalvlaran/lacam/graph"
)

// Constructor applies a deterministic mutation to g, registering every
// vertex id it creates under a caller-meaningful key in cfg. Constructors
// must validate parameters early and return sentinel errors; they never
// panic.
type Constructor func(g *graph.Graph, cfg *BuildConfig) error

// BuildConfig accumulates the key -> vertex id registry populated by each
// Constructor applied during a single BuildGraph call.
type BuildConfig struct {
	vertices map[string]int
}

func newBuildConfig() *BuildConfig {
	return &BuildConfig{vertices: make(map[string]int)}
}

// register records that key names the given vertex id. Later constructors
// overwriting an earlier key is allowed (e.g. composing two topologies that
// share an attachment point).
func (c *BuildConfig) register(key string, id int) {
	c.vertices[key] = id
}

// ID looks up the vertex id registered under key.
func (c *BuildConfig) ID(key string) (int, error) {
	id, ok := c.vertices[key]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	return id, nil
}

// BuildGraph creates a new graph.Graph and applies every Constructor to it
// in order, threading a single BuildConfig through the whole call so later
// constructors can reference vertices earlier ones registered.
func BuildGraph(cons ...Constructor) (*graph.Graph, *BuildConfig, error) {
	g := graph.NewGraph()
	cfg := newBuildConfig()

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildGraph: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, cfg, nil
}
