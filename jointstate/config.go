// File: config.go
// Role: Config, the joint configuration of all agents, and its fingerprint.
//
// AI-HINT (file):
//   - Fingerprint is a pure function of the ordered position slice: two
//     Configs built from equal slices always hash equal, regardless of how
//     they were constructed.
package jointstate

import "hash/fnv"

// Config is the joint position of every agent at one timestep: a tuple of
// vertex ids indexed by agent id. It is treated as immutable once
// constructed; callers that need to mutate should build a new Config via
// With.
type Config struct {
	positions []int
}

// New builds a Config from positions. The slice is copied defensively so the
// caller's backing array can be reused or mutated afterward.
func New(positions []int) Config {
	cp := make([]int, len(positions))
	copy(cp, positions)

	return Config{positions: cp}
}

// Len returns the number of agents (N).
func (c Config) Len() int { return len(c.positions) }

// At returns the vertex id occupied by agent.
func (c Config) At(agent int) int { return c.positions[agent] }

// Slice returns a defensive copy of the underlying position sequence.
func (c Config) Slice() []int {
	out := make([]int, len(c.positions))
	copy(out, c.positions)

	return out
}

// With returns a new Config equal to c except agent occupies vertex.
func (c Config) With(agent, vertex int) Config {
	out := c.Slice()
	out[agent] = vertex

	return Config{positions: out}
}

// Equal reports whether c and other hold identical position sequences.
func (c Config) Equal(other Config) bool {
	if len(c.positions) != len(other.positions) {
		return false
	}
	for i, v := range c.positions {
		if other.positions[i] != v {
			return false
		}
	}

	return true
}

// Fingerprint returns a stable hash of the ordered position sequence,
// suitable as an EXPLORED map key. It is a pure function of the sequence:
// equal sequences always produce equal fingerprints.
//
// Complexity: O(N)
func (c Config) Fingerprint() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, v := range c.positions {
		u := uint64(int64(v))
		buf[0] = byte(u)
		buf[1] = byte(u >> 8)
		buf[2] = byte(u >> 16)
		buf[3] = byte(u >> 24)
		buf[4] = byte(u >> 32)
		buf[5] = byte(u >> 40)
		buf[6] = byte(u >> 48)
		buf[7] = byte(u >> 56)
		_, _ = h.Write(buf)
	}

	return h.Sum64()
}
