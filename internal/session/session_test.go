package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/piece"
	"github.com/vovakirdan/candlelight/internal/shapes"
	"github.com/vovakirdan/candlelight/internal/tutorial"
)

var bar3 = core.Shape{core.P(0, 0), core.P(1, 0), core.P(2, 0)}

func seed(v int64) *int64 {
	return &v
}

func started(t *testing.T, mode string, opts core.GameOptions) *Session {
	t.Helper()
	s := New()
	require.NoError(t, s.InitGame(mode, opts))
	return s
}

func TestInitGame(t *testing.T) {
	s := New()
	assert.True(t, s.InteractionDisabled(), "no mode loaded")
	assert.False(t, s.Place())

	err := s.InitGame("arcade", core.GameOptions{})
	assert.Error(t, err)

	err = s.InitGame(modes.PuzzleID, core.GameOptions{World: 42, Level: 1})
	assert.Error(t, err)

	err = s.InitGame(modes.PuzzleID, core.GameOptions{World: 1, Level: 1, Queue: []string{"nonagon"}})
	assert.Error(t, err)

	require.NoError(t, s.InitGame(modes.FreePlayID, core.GameOptions{Seed: seed(42)}))
	assert.Equal(t, modes.FreePlayID, s.Mode())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Score())
	assert.True(t, s.Board().IsEmpty())
	require.NotNil(t, s.Piece())
	assert.Equal(t, piece.StartPosition, s.Piece().Position)
	assert.False(t, s.InteractionDisabled())
}

func TestExplicitTargetWins(t *testing.T) {
	s := started(t, modes.FreePlayID, core.GameOptions{Target: bar3})
	assert.Equal(t, bar3, s.Target())
}

// Stamping the same 3-cell bar twice turns it light and completes a level
// whose target is that bar.
func TestPlaceTwiceCompletesLevel(t *testing.T) {
	s := started(t, modes.PuzzleID, core.GameOptions{World: 1, Level: 1})
	require.Equal(t, shapes.UpperL, s.Piece().Shape)
	assert.Equal(t, bar3, s.Target())

	require.True(t, s.Place())
	assert.False(t, s.LevelComplete())
	assert.Equal(t, 3, s.Board().Count(board.Dark))
	require.NotNil(t, s.Piece())
	assert.Equal(t, shapes.UpperL, s.Piece().Shape)

	require.True(t, s.Place())
	assert.True(t, s.LevelComplete())
	assert.Equal(t, 3, s.Board().Count(board.Light))
	assert.Equal(t, 2, s.Score())
	assert.Len(t, s.MatchedGems(), 1)
	assert.NotNil(t, s.Piece(), "a completed level keeps its piece")
	assert.True(t, s.InteractionDisabled())

	assert.False(t, s.Move(core.DirLeft))
	assert.False(t, s.Place())
	assert.False(t, s.Undo())
}

// A fixed queue of three squares never forms the bar target; the third
// placement exhausts the queue.
func TestFixedQueueRunsOut(t *testing.T) {
	s := started(t, modes.PuzzleID, core.GameOptions{
		World:  1,
		Level:  1,
		Queue:  []string{"square", "square", "square"},
		Target: bar3,
	})

	for i := 0; i < 2; i++ {
		require.True(t, s.Place(), "placement %d", i+1)
		assert.False(t, s.GameOver())
		require.NotNil(t, s.Piece())
	}

	require.True(t, s.Place())
	assert.True(t, s.GameOver())
	assert.False(t, s.LevelComplete())
	assert.Nil(t, s.Piece())
	assert.Equal(t, 3, s.Score())
	assert.True(t, s.InteractionDisabled())
	assert.False(t, s.Place())
	assert.False(t, s.Rotate())
}

func TestPlaceUndoRoundTrip(t *testing.T) {
	s := started(t, modes.FreePlayID, core.GameOptions{Seed: seed(42)})

	require.True(t, s.Move(core.DirLeft))
	require.True(t, s.Move(core.DirUp))
	before := s.Board()
	placed := s.Piece().Shape

	require.True(t, s.Place())
	require.Equal(t, 1, s.Score())
	require.False(t, s.LevelComplete())
	drawn := s.Piece().Shape
	assert.NotEqual(t, before, s.Board())

	require.True(t, s.Undo())
	assert.Equal(t, before, s.Board())
	assert.Equal(t, 0, s.Score())
	require.NotNil(t, s.Piece())
	assert.Equal(t, placed, s.Piece().Shape)
	assert.Equal(t, piece.StartPosition, s.Piece().Position)
	assert.Equal(t, drawn, s.Queue().Pending[0], "active piece goes back to the queue front")
	assert.True(t, s.History().IsEmpty())

	assert.False(t, s.Undo(), "empty history")
	assert.Equal(t, 0, s.Score())
}

func TestUndoDecrementsByOne(t *testing.T) {
	s := started(t, modes.FreePlayID, core.GameOptions{Seed: seed(3), Target: core.Shape{core.P(0, 0), core.P(9, 9)}})

	require.True(t, s.Place())
	require.True(t, s.Move(core.DirRight))
	require.True(t, s.Place())
	require.Equal(t, 2, s.Score())

	require.True(t, s.Undo())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 1, s.History().Len())
}

func TestPauseResume(t *testing.T) {
	s := started(t, modes.FreePlayID, core.GameOptions{Seed: seed(1)})
	board0 := s.Board()

	s.Pause()
	assert.True(t, s.Paused())
	assert.True(t, s.InteractionDisabled())
	assert.False(t, s.Move(core.DirRight))
	assert.False(t, s.Place())
	assert.Equal(t, board0, s.Board())

	s.Resume()
	assert.False(t, s.InteractionDisabled())
	assert.True(t, s.Move(core.DirRight))
}

func TestResumeKeepsCompletedLevelLocked(t *testing.T) {
	s := started(t, modes.PuzzleID, core.GameOptions{World: 1, Level: 1})
	s.Place()
	s.Place()
	require.True(t, s.LevelComplete())

	s.Pause()
	s.Resume()
	assert.True(t, s.InteractionDisabled())
}

func TestHydrationLocks(t *testing.T) {
	s := started(t, modes.FreePlayID, core.GameOptions{})
	s.BeginHydration()
	assert.False(t, s.Move(core.DirDown))
	s.EndHydration()
	assert.True(t, s.Move(core.DirDown))
}

func TestMoveStopsAtEdge(t *testing.T) {
	s := started(t, modes.PuzzleID, core.GameOptions{World: 1, Level: 1})
	moved := 0
	for s.Move(core.DirLeft) {
		moved++
	}
	assert.Equal(t, 5, moved)
	assert.Equal(t, 0, s.Piece().Position.X)
}

func TestPuzzleNextLevel(t *testing.T) {
	s := started(t, modes.PuzzleID, core.GameOptions{World: 1, Level: 1})
	s.Place()
	s.Place()
	require.True(t, s.LevelComplete())

	require.True(t, s.NextLevel())
	assert.Equal(t, 1, s.World())
	assert.Equal(t, 2, s.Level())
	assert.False(t, s.LevelComplete())
	assert.False(t, s.InteractionDisabled())
	assert.True(t, s.Board().IsEmpty())
	assert.Equal(t, 0, s.Score())
	assert.Empty(t, s.MatchedGems())
	assert.True(t, s.History().IsEmpty())
	require.NotNil(t, s.Piece())
	assert.Equal(t, shapes.Square, s.Piece().Shape)
	assert.Equal(t, []shapes.ID{shapes.Square}, s.Queue().Contents())
}

func TestNextLevelPastTheEnd(t *testing.T) {
	s := started(t, modes.DailyID, core.GameOptions{Seed: seed(1922422964)})
	assert.False(t, s.NextLevel())
	assert.True(t, s.GameComplete())
	assert.True(t, s.InteractionDisabled())
}

func TestFreePlayNextLevelKeepsQueue(t *testing.T) {
	s := started(t, modes.FreePlayID, core.GameOptions{Seed: seed(42)})
	pending := s.Queue().Contents()

	require.True(t, s.NextLevel())
	assert.Equal(t, 2, s.Level())
	require.NotNil(t, s.Piece())
	assert.Equal(t, pending[0], s.Piece().Shape)
	assert.LessOrEqual(t, len(s.Target()), 2)
}

func TestRestartLevel(t *testing.T) {
	s := started(t, modes.FreePlayID, core.GameOptions{Seed: seed(5), Level: 4})
	target := s.Target()
	first := s.Piece().Shape
	best := 3
	s.SetBestScore(&best)

	s.Place()
	require.NoError(t, s.RestartLevel())

	assert.True(t, s.Board().IsEmpty())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 4, s.Level())
	assert.Equal(t, target, s.Target())
	assert.Equal(t, first, s.Piece().Shape)
	require.NotNil(t, s.BestScore())
	assert.Equal(t, 3, *s.BestScore())
}

func TestReset(t *testing.T) {
	s := started(t, modes.FreePlayID, core.GameOptions{})
	s.Place()
	s.Reset()

	assert.Equal(t, "", s.Mode())
	assert.Nil(t, s.Piece())
	assert.True(t, s.Board().IsEmpty())
	assert.True(t, s.InteractionDisabled())
	assert.NoError(t, s.RestartLevel())
	assert.False(t, s.NextLevel())
}

func TestDailySessionsAgree(t *testing.T) {
	a := started(t, modes.DailyID, core.GameOptions{Seed: seed(1162559497)})
	b := started(t, modes.DailyID, core.GameOptions{Seed: seed(1162559497)})
	assert.Equal(t, a.Target(), b.Target())
	assert.Equal(t, a.Queue().Contents(), b.Queue().Contents())
	assert.Equal(t, a.Piece(), b.Piece())
}

func TestIsNewBest(t *testing.T) {
	s := started(t, modes.PuzzleID, core.GameOptions{World: 1, Level: 1})
	s.Place()
	s.Place()
	assert.True(t, s.IsNewBest())

	best := 2
	s.SetBestScore(&best)
	assert.False(t, s.IsNewBest())

	best = 3
	s.SetBestScore(&best)
	assert.True(t, s.Snapshot().NewBest)
}

func TestTutorialGatesAndAdvances(t *testing.T) {
	s := started(t, modes.TutorialID, core.GameOptions{
		Seed:   seed(11),
		Target: bar3,
		Queue:  []string{"upper_l", "upper_l"},
	})
	tut := s.Tutorial()
	require.NotNil(t, tut)
	assert.Equal(t, tutorial.StageMove, tut.Stage())
	assert.False(t, s.TutorialVisibility().TargetGem)

	assert.False(t, s.Apply(core.ActionSelect), "placing is gated at the move stage")
	assert.False(t, s.Apply(core.ActionUndo))
	assert.Equal(t, 0, s.Score())

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		require.True(t, s.Apply(a), "%v", a)
	}
	assert.Equal(t, tutorial.StageMove, tut.Stage(), "rotate still missing")

	require.True(t, s.Apply(core.ActionRotate))
	assert.Equal(t, tutorial.StageMove, tut.Stage(), "stage changes after the pause")
	assert.True(t, s.TutorialPending())
	assert.False(t, s.Apply(core.ActionUp), "locked while the stage transition waits")

	require.True(t, s.AdvanceTutorial())
	assert.Equal(t, tutorial.StagePlace, tut.Stage())
	assert.Equal(t, 1, s.Level(), "stage transitions keep the level")

	// back to the horizontal slot
	for i := 0; i < 3; i++ {
		require.True(t, s.Apply(core.ActionRotate))
	}

	require.True(t, s.Apply(core.ActionSelect))
	require.True(t, s.AdvanceTutorial())
	assert.Equal(t, tutorial.StageStack, tut.Stage())

	require.True(t, s.Apply(core.ActionSelect))
	assert.True(t, s.LevelComplete())
	assert.Equal(t, tutorial.StageStack, tut.Stage())
	assert.True(t, s.TutorialPending())
	assert.False(t, s.Apply(core.ActionUp))

	require.True(t, s.AdvanceTutorial())
	assert.False(t, s.AdvanceTutorial(), "one completion advances once")
	assert.Equal(t, tutorial.StageUndo, tut.Stage())
	assert.Equal(t, 2, s.Level())
	assert.False(t, s.LevelComplete())
	assert.False(t, s.TutorialVisibility().TargetGem)

	snap := s.Snapshot()
	require.NotNil(t, snap.Tutorial)
	assert.Equal(t, "3_Undo", snap.Tutorial.Name)

	// The undo lesson ends with its level, not with the undo itself.
	require.True(t, s.Apply(core.ActionSelect))
	require.True(t, s.Apply(core.ActionUndo))
	assert.Equal(t, tutorial.StageUndo, tut.Stage())
	assert.False(t, s.TutorialPending())
}

// A placement that makes the first light cell and also matches the one-cell
// level 1 target finishes the stack stage and the level together; the
// tutorial must land on the undo lesson.
func TestTutorialStackAndLevelLandOnUndo(t *testing.T) {
	s := started(t, modes.TutorialID, core.GameOptions{
		Seed:  seed(5),
		Queue: []string{"upper_l", "upper_l", "upper_l"},
	})
	require.Len(t, s.Target(), 1)
	tut := s.Tutorial()

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionRotate} {
		require.True(t, s.Apply(a), "%v", a)
	}
	require.True(t, s.AdvanceTutorial())

	require.True(t, s.Apply(core.ActionSelect), "vertical bar")
	require.True(t, s.AdvanceTutorial())
	require.Equal(t, tutorial.StageStack, tut.Stage())

	require.Equal(t, 0, s.Piece().Rotation, "the next piece starts horizontal")
	require.True(t, s.Apply(core.ActionSelect), "horizontal bar across it")
	require.Equal(t, 1, s.Board().Count(board.Light))
	require.True(t, s.LevelComplete())

	require.True(t, s.AdvanceTutorial())
	assert.Equal(t, tutorial.StageUndo, tut.Stage())
	assert.Equal(t, 2, s.Level())
	assert.False(t, s.TutorialPending())
}

func TestTutorialRestartKeepsStage(t *testing.T) {
	s := started(t, modes.TutorialID, core.GameOptions{Seed: seed(2)})
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionRotate} {
		s.Apply(a)
	}
	s.AdvanceTutorial()
	require.Equal(t, tutorial.StagePlace, s.Tutorial().Stage())

	require.NoError(t, s.RestartLevel())
	assert.Equal(t, tutorial.StagePlace, s.Tutorial().Stage())

	require.NoError(t, s.InitGame(modes.TutorialID, core.GameOptions{}))
	assert.Equal(t, tutorial.StageMove, s.Tutorial().Stage())

	require.NoError(t, s.InitGame(modes.FreePlayID, core.GameOptions{}))
	assert.Nil(t, s.Tutorial())
	assert.True(t, s.TutorialVisibility().Queue)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := started(t, modes.PuzzleID, core.GameOptions{World: 1, Level: 1})
	snap := s.Snapshot()

	assert.Equal(t, modes.PuzzleID, snap.Mode)
	assert.Len(t, snap.Preview, 3)
	assert.Equal(t, 1, snap.QueueLen)
	assert.False(t, snap.CanUndo)

	snap.Piece.Position = core.P(0, 0)
	snap.Target[0] = core.P(9, 9)
	assert.Equal(t, piece.StartPosition, s.Piece().Position)
	assert.Equal(t, bar3, s.Target())

	s.Place()
	assert.True(t, s.Snapshot().CanUndo)
}

func TestWithClockAndVisibleSize(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return at }), WithVisibleSize(5))
	require.NoError(t, s.InitGame(modes.FreePlayID, core.GameOptions{Seed: seed(8)}))

	assert.Len(t, s.Queue().Visible(), 5)
	sv, ok := s.Save()
	require.True(t, ok)
	assert.Equal(t, at.UnixMilli(), sv.StartTimestamp)
}
