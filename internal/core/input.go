package core

// Action represents a semantic player action, abstracted from physical key
// presses, swipes or network messages.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // move piece up
	ActionDown          // move piece down
	ActionLeft          // move piece left
	ActionRight         // move piece right
	ActionRotate        // rotate piece clockwise through its table
	ActionSelect        // place piece
	ActionUndo          // undo last placement
	ActionEscape        // leave the current screen
)

var actionNames = map[Action]string{
	ActionNone:   "none",
	ActionUp:     "up",
	ActionDown:   "down",
	ActionLeft:   "left",
	ActionRight:  "right",
	ActionRotate: "rotate",
	ActionSelect: "select",
	ActionUndo:   "undo",
	ActionEscape: "escape",
}

// String returns the action id used in saves and on the wire.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction converts an action id back to an Action.
func ParseAction(s string) (Action, bool) {
	for a, name := range actionNames {
		if name == s && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// Direction returns the movement direction for a move action.
func (a Action) Direction() (Dir, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return 0, false
}

// ActionSet records which actions have been performed.
type ActionSet struct {
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewActionSet creates an empty set.
func NewActionSet() ActionSet {
	return ActionSet{
		Actions: make(map[Action]bool),
	}
}

// Add marks an action as performed. The receiver is modified in place.
func (s *ActionSet) Add(a Action) {
	if s.Actions == nil {
		s.Actions = make(map[Action]bool)
	}
	s.Actions[a] = true
}

// Has returns true if the given action was performed.
func (s ActionSet) Has(a Action) bool {
	if s.Actions == nil {
		return false
	}
	return s.Actions[a]
}

// HasAll reports whether every listed action was performed.
func (s ActionSet) HasAll(actions ...Action) bool {
	for _, a := range actions {
		if !s.Has(a) {
			return false
		}
	}
	return true
}

// Len returns the number of distinct actions in the set.
func (s ActionSet) Len() int {
	return len(s.Actions)
}

// Clone creates a copy of this set.
func (s ActionSet) Clone() ActionSet {
	clone := NewActionSet()
	for k, v := range s.Actions {
		clone.Actions[k] = v
	}
	return clone
}
