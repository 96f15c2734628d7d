package tutorial

import "github.com/vovakirdan/candlelight/internal/core"

// Machine owns a tutorial State and holds at most one pending transition,
// so that neither a repeated completion signal nor an action that finishes
// a stage and a level at once can advance twice.
type Machine struct {
	state   State
	pending bool
	target  Stage // stage the pending transition moves to
	level   bool  // the pending transition came with a completed level
}

// NewMachine returns a machine at the first stage.
func NewMachine() *Machine {
	return &Machine{state: NewState()}
}

// State returns the current tutorial state.
func (m *Machine) State() State {
	return m.state
}

// Stage returns the current stage.
func (m *Machine) Stage() Stage {
	return m.state.Stage
}

// Complete reports whether the tutorial has finished.
func (m *Machine) Complete() bool {
	return m.state.Complete
}

// Allowed reports whether action may be used now. Nothing but escape is
// allowed while a transition is outstanding.
func (m *Machine) Allowed(action core.Action) bool {
	if m.pending && action != core.ActionEscape {
		return false
	}
	return Allowed(action, m.state.Stage)
}

// Record notes a successful action and applies the stage's completion check.
// hasLight is whether the board, after the action, has any light region.
// A met condition stages a transition rather than changing the stage, so
// the caller can pause before FinishTransition. Only the Move, Place and
// Stack stages finish this way; later stages end with their level. It
// reports whether a transition was staged.
func (m *Machine) Record(action core.Action, hasLight bool) bool {
	m.state = RecordAction(m.state, action)
	if m.pending {
		return false
	}
	next, ok := CheckProgress(m.state, hasLight)
	if !ok || next > StageUndo {
		return false
	}
	m.pending = true
	m.target = next
	m.level = false
	return true
}

// LevelComplete signals that the current level was completed. A transition
// already staged by the same action absorbs the signal, so the stage still
// advances once. It returns true if this call armed a level transition and
// false if one is already outstanding or the tutorial is over.
func (m *Machine) LevelComplete() bool {
	if m.state.Complete || (m.pending && m.level) {
		return false
	}
	if !m.pending {
		m.pending = true
		m.target = Advance(m.state).Stage
	}
	m.level = true
	return true
}

// Pending reports whether a transition is waiting for FinishTransition.
func (m *Machine) Pending() bool {
	return m.pending
}

// LevelPending reports whether the outstanding transition also moves on to
// the next level.
func (m *Machine) LevelPending() bool {
	return m.pending && m.level
}

// FinishTransition performs the single stage change for the outstanding
// transition. It returns the new state and whether a change happened.
func (m *Machine) FinishTransition() (State, bool) {
	if !m.pending {
		return m.state, false
	}
	m.pending = false
	m.level = false
	m.state.Stage = m.target
	m.state.Complete = m.target >= StageDone
	return m.state, true
}
