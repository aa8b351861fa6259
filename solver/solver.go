// File: solver.go
// Role: Solver, the phase-based single-step driver.
package solver

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lacam/ctree"
	"github.com/katalvlaran/lacam/distance"
	"github.com/katalvlaran/lacam/graph"
	"github.com/katalvlaran/lacam/jointstate"
	"github.com/katalvlaran/lacam/pibt"
)

// Phase identifies which step of the combined search loop Step will run
// next.
type Phase int

const (
	PhaseSelect Phase = iota
	PhasePopConstraint
	PhaseExpandTree
	PhaseGenerate
	PhaseCheck
)

func (p Phase) String() string {
	switch p {
	case PhaseSelect:
		return "select"
	case PhasePopConstraint:
		return "pop_constraint"
	case PhaseExpandTree:
		return "expand_tree"
	case PhaseGenerate:
		return "generate"
	case PhaseCheck:
		return "check"
	default:
		return "unknown"
	}
}

// Status is the solver's terminal/non-terminal state.
type Status int

const (
	StatusRunning Status = iota
	StatusSolved
	StatusNoSolution
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSolved:
		return "solved"
	case StatusNoSolution:
		return "no_solution"
	default:
		return "unknown"
	}
}

// Counters reports two presentation counters: how many high-level nodes
// have been generated, and how many distinct configurations have been
// explored. Both start at 1 at Initialize, since the root high-level node
// is simultaneously generated and explored (see DESIGN.md for why the two
// counters track identically in this implementation).
type Counters struct {
	NodesGenerated          int
	ConfigurationsExplored int
}

// Solver drives the two-level LaCAM search one phase at a time. It holds no
// locks and blocks on nothing; a caller may pause between Step calls
// indefinitely.
type Solver struct {
	g      *graph.Graph
	dist   *distance.Oracle
	starts []int
	goals  []int
	n      int

	open     []*highLevelNode // stack; top is the last element
	explored map[uint64]*highLevelNode

	current         *highLevelNode
	currentLowLevel *ctree.Node
	pendingConfig   jointstate.Config
	havePending     bool

	phase     Phase
	status    Status
	stepCount int
	counters  Counters

	solution []jointstate.Config

	nextNodeID int

	logger       *log.Logger
	maxSnapshots int
	snapshots    []*Snapshot

	initialized bool
}

// New constructs a Solver with the given options applied. Call Initialize
// before stepping.
func New(opts ...Option) *Solver {
	s := &Solver{maxSnapshots: defaultMaxSnapshots, logger: defaultLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Initialize builds the initial high-level node from starts/goals over g and
// enters phase select. It resets all internal state, including the
// high-level and low-level id counters, so a fresh run never reuses ids
// from a previous one.
func (s *Solver) Initialize(g *graph.Graph, starts, goals []int) error {
	n := len(starts)
	if n == 0 {
		return ErrNoAgents
	}
	if len(goals) != n {
		return ErrMismatchedAgentCount
	}
	if g.VertexCount() < 2 {
		return ErrTooFewVertices
	}
	for a := 0; a < n; a++ {
		if !g.HasVertex(starts[a]) || !g.HasVertex(goals[a]) {
			return ErrInvalidVertex
		}
	}

	s.g = g
	s.starts = append([]int(nil), starts...)
	s.goals = append([]int(nil), goals...)
	s.n = n
	s.dist = distance.NewOracle(g)

	precomputed := make(map[int]bool, n)
	for _, goal := range goals {
		if !precomputed[goal] {
			s.dist.Precompute(goal)
			precomputed[goal] = true
		}
	}

	s.nextNodeID = 0
	order := initialOrder(s.dist, starts, goals)
	root := &highLevelNode{
		id:     s.nextNodeID,
		config: jointstate.New(starts),
		order:  order,
		tree:   ctree.New(n),
	}
	s.nextNodeID++

	s.open = []*highLevelNode{root}
	s.explored = map[uint64]*highLevelNode{root.config.Fingerprint(): root}
	s.current = nil
	s.currentLowLevel = nil
	s.havePending = false
	s.pendingConfig = jointstate.Config{}
	s.solution = nil
	s.phase = PhaseSelect
	s.status = StatusRunning
	s.stepCount = 0
	s.counters = Counters{NodesGenerated: 1, ConfigurationsExplored: 1}
	s.snapshots = nil
	s.initialized = true

	return nil
}

// Reset is equivalent to calling Initialize again with the same graph,
// starts, and goals most recently supplied.
func (s *Solver) Reset() error {
	if !s.initialized {
		return nil
	}

	return s.Initialize(s.g, append([]int(nil), s.starts...), append([]int(nil), s.goals...))
}

// isGoalConfig reports whether every agent in q occupies its goal vertex.
func (s *Solver) isGoalConfig(q jointstate.Config) bool {
	for a := 0; a < s.n; a++ {
		if q.At(a) != s.goals[a] {
			return false
		}
	}

	return true
}

// Step advances the solver by exactly one phase and returns true, or
// returns false without doing any work if the solver has already
// terminated.
func (s *Solver) Step() bool {
	if s.status != StatusRunning {
		return false
	}

	s.pushSnapshot()

	switch s.phase {
	case PhaseSelect:
		s.doSelect()
	case PhasePopConstraint:
		s.doPopConstraint()
	case PhaseExpandTree:
		s.doExpandTree()
	case PhaseGenerate:
		s.doGenerate()
	case PhaseCheck:
		s.doCheck()
	}
	s.stepCount++

	return true
}

func (s *Solver) doSelect() {
	if len(s.open) == 0 {
		s.status = StatusNoSolution
		s.logger.Info("search terminated", "status", s.status.String(), "steps", s.stepCount)

		return
	}

	top := s.open[len(s.open)-1]
	if s.isGoalConfig(top.config) {
		s.status = StatusSolved
		s.solution = s.reconstructSolution(top)
		s.logger.Info("search terminated", "status", s.status.String(), "pathLen", len(s.solution))

		return
	}
	if len(top.tree.Queue) == 0 {
		s.open = s.open[:len(s.open)-1]
		s.logger.Debug("popped exhausted node from OPEN", "node", top.id)

		return
	}

	s.current = top
	s.phase = PhasePopConstraint
	s.logger.Debug("phase transition", "phase", "select", "node", top.id, "step", s.stepCount)
}

func (s *Solver) doPopConstraint() {
	c, ok := s.current.tree.Dequeue()
	if !ok {
		// The select phase only transitions here when the queue is
		// nonempty; an empty queue at this point is a programming defect.
		panic("solver: pop_constraint entered with an empty queue")
	}
	s.currentLowLevel = c
	s.phase = PhaseExpandTree
	s.logger.Debug("phase transition", "phase", "pop_constraint", "lowLevelNode", c.ID, "depth", c.Depth)
}

func (s *Solver) doExpandTree() {
	c := s.currentLowLevel
	if c.Depth < s.n {
		if err := s.current.tree.Expand(c, s.current.order, s.current.config, s.g); err != nil {
			panic("solver: expand_tree: " + err.Error())
		}
	}
	s.phase = PhaseGenerate
	s.logger.Debug("phase transition", "phase", "expand_tree", "lowLevelNode", c.ID)
}

func (s *Solver) doGenerate() {
	constraints := s.currentLowLevel.Constraints()
	next, err := pibt.Generate(s.g, s.dist, s.current.config, s.goals, constraints)
	if err != nil {
		s.havePending = false
		s.phase = PhaseSelect
		s.logger.Debug("generate rejected", "reason", err.Error())

		return
	}
	s.pendingConfig = next
	s.havePending = true
	s.phase = PhaseCheck
	s.logger.Debug("phase transition", "phase", "generate")
}

func (s *Solver) doCheck() {
	defer func() {
		s.havePending = false
		s.phase = PhaseSelect
	}()

	fp := s.pendingConfig.Fingerprint()
	if _, seen := s.explored[fp]; seen {
		s.logger.Debug("generated configuration already explored, dropping", "fingerprint", fp)

		return
	}

	node := &highLevelNode{
		id:     s.nextNodeID,
		config: s.pendingConfig,
		order:  successorOrder(s.dist, s.pendingConfig, s.goals),
		tree:   ctree.New(s.n),
		parent: s.current,
	}
	s.nextNodeID++

	s.open = append(s.open, node)
	s.explored[fp] = node
	s.counters.NodesGenerated++
	s.counters.ConfigurationsExplored++
	s.logger.Debug("phase transition", "phase", "check", "newNode", node.id)
}

// reconstructSolution walks the parent chain from node to the initial node,
// prepending each configuration to build the solved path in order.
func (s *Solver) reconstructSolution(node *highLevelNode) []jointstate.Config {
	var path []jointstate.Config
	for n := node; n != nil; n = n.parent {
		path = append(path, n.config)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// --- read-only observables ---

func (s *Solver) Phase() Phase       { return s.phase }
func (s *Solver) Status() Status     { return s.status }
func (s *Solver) StepCount() int     { return s.stepCount }
func (s *Solver) Counters() Counters { return s.counters }

// Current returns the configuration of the high-level node currently being
// searched. The second return is false before the first select→found
// transition of a run (e.g. immediately after Initialize).
func (s *Solver) Current() (jointstate.Config, bool) {
	if s.current == nil {
		return jointstate.Config{}, false
	}

	return s.current.config, true
}

// Open returns the OPEN stack's configurations in stack order (bottom to
// top).
func (s *Solver) Open() []jointstate.Config {
	out := make([]jointstate.Config, len(s.open))
	for i, n := range s.open {
		out[i] = n.config
	}

	return out
}

// Explored returns every configuration currently in EXPLORED. Order is
// unspecified.
func (s *Solver) Explored() []jointstate.Config {
	out := make([]jointstate.Config, 0, len(s.explored))
	for _, n := range s.explored {
		out = append(out, n.config)
	}

	return out
}

// CurrentTree returns the constraint tree of the high-level node currently
// being searched, or nil if none is current.
func (s *Solver) CurrentTree() *ctree.Tree {
	if s.current == nil {
		return nil
	}

	return s.current.tree
}

// Solution returns the solved path and true once Status is StatusSolved.
func (s *Solver) Solution() ([]jointstate.Config, bool) {
	if s.status != StatusSolved {
		return nil, false
	}

	return s.solution, true
}
