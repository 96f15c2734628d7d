// Package tutorial implements the staged onboarding flow. Each stage unlocks
// more actions; the first three stages complete when the player performs
// the stage's action, the rest complete through normal level completion.
//
// The state machine is synchronous. Any pause between a completion and the
// next stage belongs to the caller; Machine only guarantees that one
// completion advances the stage once.
package tutorial

import (
	"github.com/vovakirdan/candlelight/internal/core"
)

// Stage is a tutorial step.
type Stage int

const (
	StageMove Stage = iota
	StagePlace
	StageStack
	StageUndo
	StageScore
	StageQueue
	StageDone
)

// Info is the display text for a stage.
type Info struct {
	Stage          Stage
	Name           string
	Instruction    string
	SubInstruction string
}

var stageInfo = [...]Info{
	{StageMove, "0_Move", "MOVE YOUR PIECE", "Use the arrow keys to move, space to rotate"},
	{StagePlace, "1_Place", "PLACE YOUR PIECE", "Press enter to place"},
	{StageStack, "2_Stack", "STACK PIECES", "Place pieces on top of each other to change colors"},
	{StageUndo, "3_Undo", "UNDO A MOVE", "Press U to take back your last placement"},
	{StageScore, "4_Score", "MATCH THE TARGET", "Create the shape shown in the target area"},
	{StageQueue, "5_Queue", "USE THE QUEUE", "Plan ahead using the shapes in the queue"},
	{StageDone, "6_Done", "TUTORIAL COMPLETE!", "You're ready to play!"},
}

// StageInfo returns the text for s. Unknown stages get the Done text.
func StageInfo(s Stage) Info {
	if s < 0 || int(s) >= len(stageInfo) {
		return stageInfo[StageDone]
	}
	return stageInfo[s]
}

// String returns the stage name, e.g. "2_Stack".
func (s Stage) String() string {
	return StageInfo(s).Name
}

// requiredStage is the first stage at which each action is allowed.
var requiredStage = map[core.Action]Stage{
	core.ActionUp:     StageMove,
	core.ActionDown:   StageMove,
	core.ActionLeft:   StageMove,
	core.ActionRight:  StageMove,
	core.ActionRotate: StageMove,
	core.ActionSelect: StagePlace,
	core.ActionUndo:   StageUndo,
}

var moveActions = []core.Action{
	core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionRotate,
}

// Allowed reports whether action may be used at stage. Escape is always
// allowed; unknown actions never are.
func Allowed(action core.Action, stage Stage) bool {
	if action == core.ActionEscape {
		return true
	}
	req, ok := requiredStage[action]
	return ok && stage >= req
}

// State is the tutorial progress.
type State struct {
	Stage     Stage
	Performed core.ActionSet
	Complete  bool
}

// NewState returns the state at the first stage with nothing performed.
func NewState() State {
	return State{Stage: StageMove, Performed: core.NewActionSet()}
}

// RecordAction marks action as performed. Escape is not recorded.
func RecordAction(s State, action core.Action) State {
	if action == core.ActionEscape {
		return s
	}
	s.Performed = s.Performed.Clone()
	s.Performed.Add(action)
	return s
}

// CheckProgress evaluates the current stage's completion condition and
// returns the stage the tutorial should move to. Stages after Undo never
// advance here.
func CheckProgress(s State, hasLight bool) (Stage, bool) {
	var advance bool
	switch s.Stage {
	case StageMove:
		advance = s.Performed.HasAll(moveActions...)
	case StagePlace:
		advance = s.Performed.Has(core.ActionSelect)
	case StageStack:
		advance = hasLight
	case StageUndo:
		advance = s.Performed.Has(core.ActionUndo)
	}
	if advance {
		return s.Stage + 1, true
	}
	return s.Stage, false
}

// Advance moves to the next stage and marks the tutorial complete once Done
// is reached.
func Advance(s State) State {
	s.Stage++
	s.Complete = s.Stage >= StageDone
	return s
}

// Visibility says which parts of the game view the tutorial shows.
type Visibility struct {
	TargetGem bool `json:"targetGem"`
	Queue     bool `json:"queue"`
	HUD       bool `json:"hud"`
}

// VisibilityFor returns what is shown at stage. The HUD is never shown.
func VisibilityFor(stage Stage) Visibility {
	return Visibility{
		TargetGem: stage >= StageScore,
		Queue:     stage >= StageQueue,
	}
}

// ActionStatus pairs a move action with whether it has been performed.
type ActionStatus struct {
	Action    core.Action
	Completed bool
}

// MoveStatus lists the Move stage actions in display order.
func MoveStatus(s State) []ActionStatus {
	out := make([]ActionStatus, len(moveActions))
	for i, a := range moveActions {
		out[i] = ActionStatus{Action: a, Completed: s.Performed.Has(a)}
	}
	return out
}
