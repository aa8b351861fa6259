// File: snapshot.go
// Role: Snapshot/restore, the UI-undo facility.
package solver

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/lacam/jointstate"
)

// Snapshot deep-copies every piece of mutable search state so a caller can
// restore the solver to exactly this point. HandleID is a presentation-only
// external correlation handle for UI undo stacks; it is stamped once and
// never read by solver logic, so it cannot influence determinism.
type Snapshot struct {
	HandleID uuid.UUID

	nodes    map[int]*highLevelNode // by id, parent-less copies
	parentOf map[int]int            // child id -> parent id, -1 if none
	open     []int                  // node ids, stack order
	explored map[uint64]int         // fingerprint -> node id

	currentID         int // -1 if none
	currentLowLevelID int // -1 if none, id within current node's tree

	phase         Phase
	status        Status
	stepCount     int
	counters      Counters
	pendingConfig jointstate.Config
	havePending   bool
	solution      []jointstate.Config
	nextNodeID    int
}

// pushSnapshot captures the current state and appends it to the bounded
// ring, evicting the oldest entry on overflow.
func (s *Solver) pushSnapshot() {
	if s.maxSnapshots <= 0 {
		return
	}

	snap := &Snapshot{
		HandleID:          uuid.New(),
		nodes:             make(map[int]*highLevelNode),
		parentOf:          make(map[int]int),
		open:              make([]int, len(s.open)),
		explored:          make(map[uint64]int, len(s.explored)),
		currentID:         -1,
		currentLowLevelID: -1,
		phase:             s.phase,
		status:            s.status,
		stepCount:         s.stepCount,
		counters:          s.counters,
		pendingConfig:     s.pendingConfig,
		havePending:       s.havePending,
		solution:          append([]jointstate.Config(nil), s.solution...),
		nextNodeID:        s.nextNodeID,
	}

	seen := make(map[int]*highLevelNode)
	var capture func(n *highLevelNode)
	capture = func(n *highLevelNode) {
		if n == nil {
			return
		}
		if _, ok := seen[n.id]; ok {
			return
		}
		cp := n.clone()
		seen[n.id] = cp
		snap.nodes[n.id] = cp
		if n.parent != nil {
			snap.parentOf[n.id] = n.parent.id
			capture(n.parent)
		} else {
			snap.parentOf[n.id] = -1
		}
	}

	for i, n := range s.open {
		capture(n)
		snap.open[i] = n.id
	}
	for fp, n := range s.explored {
		capture(n)
		snap.explored[fp] = n.id
	}
	if s.current != nil {
		capture(s.current)
		snap.currentID = s.current.id
	}
	if s.currentLowLevel != nil {
		snap.currentLowLevelID = s.currentLowLevel.ID
	}

	s.snapshots = append(s.snapshots, snap)
	if len(s.snapshots) > s.maxSnapshots {
		s.snapshots = s.snapshots[1:]
	}
}

// StepBack restores the most recently pushed snapshot, undoing the last
// Step call. Returns false if no history remains.
func (s *Solver) StepBack() bool {
	if len(s.snapshots) == 0 {
		return false
	}

	snap := s.snapshots[len(s.snapshots)-1]
	s.snapshots = s.snapshots[:len(s.snapshots)-1]
	s.restore(snap)

	return true
}

// restore rebuilds the object graph in two passes (nodes first, parent
// links second) and relocates current-node references by id.
func (s *Solver) restore(snap *Snapshot) {
	byID := make(map[int]*highLevelNode, len(snap.nodes))
	for id, n := range snap.nodes {
		byID[id] = n
	}
	for id, n := range byID {
		if parentID, ok := snap.parentOf[id]; ok && parentID != -1 {
			parent, found := byID[parentID]
			if !found {
				panic("solver: snapshot inconsistency: missing parent node")
			}
			n.parent = parent
		}
	}

	s.open = make([]*highLevelNode, len(snap.open))
	for i, id := range snap.open {
		n, ok := byID[id]
		if !ok {
			panic("solver: snapshot inconsistency: missing OPEN node")
		}
		s.open[i] = n
	}

	s.explored = make(map[uint64]*highLevelNode, len(snap.explored))
	for fp, id := range snap.explored {
		n, ok := byID[id]
		if !ok {
			panic("solver: snapshot inconsistency: missing EXPLORED node")
		}
		s.explored[fp] = n
	}

	s.current = nil
	if snap.currentID != -1 {
		n, ok := byID[snap.currentID]
		if !ok {
			panic("solver: snapshot inconsistency: missing current node")
		}
		s.current = n
	}

	s.currentLowLevel = nil
	if s.current != nil && snap.currentLowLevelID != -1 {
		for _, c := range s.current.tree.Nodes() {
			if c.ID == snap.currentLowLevelID {
				s.currentLowLevel = c

				break
			}
		}
		if s.currentLowLevel == nil {
			panic("solver: snapshot inconsistency: missing current low-level node")
		}
	}

	s.phase = snap.phase
	s.status = snap.status
	s.stepCount = snap.stepCount
	s.counters = snap.counters
	s.pendingConfig = snap.pendingConfig
	s.havePending = snap.havePending
	s.solution = append([]jointstate.Config(nil), snap.solution...)
	s.nextNodeID = snap.nextNodeID
}
