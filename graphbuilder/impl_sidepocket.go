// File: impl_sidepocket.go
// Role: SidePocket, a single extra vertex hanging off an already-registered
//       vertex, used to build a bypass line with a passing pocket attached
//       partway along it.
package graphbuilder

import "github.com/katalvlaran/lacam/graph"

// SidePocket adds one new vertex, registers it under pocketKey, and connects
// it to the vertex already registered under attachKey.
func SidePocket(attachKey, pocketKey string) Constructor {
	return func(g *graph.Graph, cfg *BuildConfig) error {
		attach, err := cfg.ID(attachKey)
		if err != nil {
			return err
		}

		pocket := g.AddVertex()
		cfg.register(pocketKey, pocket)

		if _, err := g.AddEdge(attach, pocket); err != nil {
			return err
		}

		return nil
	}
}
