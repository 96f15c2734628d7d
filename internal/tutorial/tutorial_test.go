package tutorial

import (
	"testing"

	"github.com/vovakirdan/candlelight/internal/core"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		action   core.Action
		stage    Stage
		expected bool
	}{
		{core.ActionUp, StageMove, true},
		{core.ActionRotate, StageMove, true},
		{core.ActionSelect, StageMove, false},
		{core.ActionSelect, StagePlace, true},
		{core.ActionUndo, StageStack, false},
		{core.ActionUndo, StageUndo, true},
		{core.ActionUndo, StageDone, true},
		{core.ActionEscape, StageMove, true},
		{core.ActionNone, StageDone, false},
	}

	for _, tc := range tests {
		if got := Allowed(tc.action, tc.stage); got != tc.expected {
			t.Errorf("Allowed(%v, %v) = %v, expected %v", tc.action, tc.stage, got, tc.expected)
		}
	}
}

func TestRecordActionIgnoresEscape(t *testing.T) {
	s := RecordAction(NewState(), core.ActionEscape)
	if s.Performed.Len() != 0 {
		t.Errorf("escape was recorded: %v", s.Performed.Actions)
	}

	s = RecordAction(s, core.ActionUp)
	s = RecordAction(s, core.ActionUp)
	if s.Performed.Len() != 1 {
		t.Errorf("Performed.Len() = %d, expected 1", s.Performed.Len())
	}
}

func TestRecordActionDoesNotAlias(t *testing.T) {
	a := NewState()
	b := RecordAction(a, core.ActionLeft)
	if a.Performed.Has(core.ActionLeft) {
		t.Error("RecordAction mutated its input")
	}
	if !b.Performed.Has(core.ActionLeft) {
		t.Error("RecordAction did not record")
	}
}

func TestCheckProgress(t *testing.T) {
	withActions := func(stage Stage, actions ...core.Action) State {
		s := NewState()
		s.Stage = stage
		for _, a := range actions {
			s = RecordAction(s, a)
		}
		return s
	}

	tests := []struct {
		name     string
		state    State
		hasLight bool
		next     Stage
		advance  bool
	}{
		{"move incomplete", withActions(StageMove, core.ActionUp, core.ActionDown), false, StageMove, false},
		{"move complete", withActions(StageMove, moveActions...), false, StagePlace, true},
		{"place", withActions(StagePlace, core.ActionSelect), false, StageStack, true},
		{"stack without light", withActions(StageStack, core.ActionSelect), false, StageStack, false},
		{"stack with light", withActions(StageStack), true, StageUndo, true},
		{"undo", withActions(StageUndo, core.ActionUndo), false, StageScore, true},
		{"score never auto advances", withActions(StageScore, core.ActionUndo), true, StageScore, false},
		{"queue never auto advances", withActions(StageQueue), true, StageQueue, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := CheckProgress(tc.state, tc.hasLight)
			if next != tc.next || ok != tc.advance {
				t.Errorf("CheckProgress() = (%v, %v), expected (%v, %v)", next, ok, tc.next, tc.advance)
			}
		})
	}
}

func TestAdvanceCompletes(t *testing.T) {
	s := NewState()
	for i := 0; i < int(StageDone); i++ {
		if s.Complete {
			t.Fatalf("complete too early at %v", s.Stage)
		}
		s = Advance(s)
	}
	if s.Stage != StageDone || !s.Complete {
		t.Errorf("after six advances: stage %v complete %v", s.Stage, s.Complete)
	}
}

func TestVisibilityFor(t *testing.T) {
	tests := []struct {
		stage    Stage
		expected Visibility
	}{
		{StageMove, Visibility{}},
		{StageUndo, Visibility{}},
		{StageScore, Visibility{TargetGem: true}},
		{StageQueue, Visibility{TargetGem: true, Queue: true}},
		{StageDone, Visibility{TargetGem: true, Queue: true}},
	}

	for _, tc := range tests {
		if got := VisibilityFor(tc.stage); got != tc.expected {
			t.Errorf("VisibilityFor(%v) = %+v, expected %+v", tc.stage, got, tc.expected)
		}
	}
}

func TestMoveStatus(t *testing.T) {
	s := RecordAction(NewState(), core.ActionLeft)
	status := MoveStatus(s)
	if len(status) != 5 {
		t.Fatalf("len(MoveStatus) = %d, expected 5", len(status))
	}
	for _, st := range status {
		expected := st.Action == core.ActionLeft
		if st.Completed != expected {
			t.Errorf("%v completed = %v, expected %v", st.Action, st.Completed, expected)
		}
	}
}

func TestStageInfo(t *testing.T) {
	if got := StageInfo(StageStack).Name; got != "2_Stack" {
		t.Errorf("StageInfo(Stack).Name = %q", got)
	}
	if got := StageInfo(Stage(99)).Stage; got != StageDone {
		t.Errorf("StageInfo(99) = %v, expected Done", got)
	}
}

func TestMoveStageScenario(t *testing.T) {
	m := NewMachine()

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if m.Record(a, false) {
			t.Fatalf("stage advanced after %v without rotate", a)
		}
	}
	if m.Stage() != StageMove {
		t.Fatalf("stage = %v, expected Move", m.Stage())
	}

	if !m.Record(core.ActionRotate, false) {
		t.Fatal("rotate should complete the move stage")
	}
	if m.Stage() != StageMove || !m.Pending() {
		t.Fatalf("stage = %v pending = %v, expected Move with a pending transition", m.Stage(), m.Pending())
	}
	if m.LevelPending() {
		t.Error("a stage transition should not move to the next level")
	}
	if m.Allowed(core.ActionSelect) {
		t.Error("actions should be locked until the transition finishes")
	}

	s, ok := m.FinishTransition()
	if !ok || s.Stage != StagePlace {
		t.Errorf("FinishTransition() = (%v, %v), expected (Place, true)", s.Stage, ok)
	}
}

func TestMachineStageAndLevelAdvanceOnce(t *testing.T) {
	m := NewMachine()
	m.state.Stage = StageStack

	// One placement makes the first light region and completes the level.
	if !m.Record(core.ActionSelect, true) {
		t.Fatal("light should complete the stack stage")
	}
	if !m.LevelComplete() {
		t.Fatal("LevelComplete() should join the staged transition")
	}
	if m.LevelComplete() {
		t.Error("second LevelComplete() armed another transition")
	}
	if !m.LevelPending() {
		t.Error("transition should move to the next level")
	}

	s, ok := m.FinishTransition()
	if !ok || s.Stage != StageUndo {
		t.Errorf("FinishTransition() = (%v, %v), expected (Undo, true)", s.Stage, ok)
	}
	if m.Pending() || m.LevelPending() {
		t.Error("nothing should be pending after the transition")
	}
}

func TestMachineUndoStageEndsWithLevel(t *testing.T) {
	m := NewMachine()
	m.state.Stage = StageUndo

	if m.Record(core.ActionUndo, false) {
		t.Error("undo should not finish the undo stage on its own")
	}
	if m.Stage() != StageUndo || m.Pending() {
		t.Errorf("stage = %v pending = %v, expected Undo and idle", m.Stage(), m.Pending())
	}

	m.LevelComplete()
	if s, _ := m.FinishTransition(); s.Stage != StageScore {
		t.Errorf("stage after level = %v, expected Score", s.Stage)
	}
}

func TestMachineSingleAdvancePerCompletion(t *testing.T) {
	m := NewMachine()
	m.state.Stage = StageScore

	if !m.LevelComplete() {
		t.Fatal("first LevelComplete() should start a transition")
	}
	if m.LevelComplete() {
		t.Error("second LevelComplete() started another transition")
	}
	if m.Allowed(core.ActionUp) {
		t.Error("actions should be locked during a transition")
	}
	if !m.Allowed(core.ActionEscape) {
		t.Error("escape should stay available during a transition")
	}

	s, ok := m.FinishTransition()
	if !ok || s.Stage != StageQueue {
		t.Errorf("FinishTransition() = (%v, %v), expected (Queue, true)", s.Stage, ok)
	}
	if _, ok := m.FinishTransition(); ok {
		t.Error("FinishTransition() advanced twice")
	}
	if m.Stage() != StageQueue {
		t.Errorf("stage = %v, expected Queue", m.Stage())
	}
}

func TestMachineRunsToCompletion(t *testing.T) {
	m := NewMachine()
	m.state.Stage = StageQueue

	m.LevelComplete()
	m.FinishTransition()
	if !m.Complete() {
		t.Fatal("tutorial should be complete after the queue stage")
	}
	if m.LevelComplete() {
		t.Error("LevelComplete() after completion should be ignored")
	}
}
