package solver

import (
	"io"

	"github.com/charmbracelet/log"
)

// defaultMaxSnapshots bounds the StepBack history: 200 entries, FIFO
// eviction.
const defaultMaxSnapshots = 200

// Option configures a Solver via functional arguments, for tunables that
// have no CLI or file surface to bind to.
type Option func(*Solver)

// WithLogger attaches a structured logger for phase-transition diagnostics.
// Every phase transition logs at Debug level; solved/no_solution log at
// Info level. The default logger discards all output, so consumers who
// never opt in pay no logging cost.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxSnapshots overrides the bound on StepBack history. n <= 0 disables
// StepBack entirely (every Step call simply doesn't retain history).
func WithMaxSnapshots(n int) Option {
	return func(s *Solver) {
		s.maxSnapshots = n
	}
}

func defaultLogger() *log.Logger {
	return log.New(io.Discard)
}
