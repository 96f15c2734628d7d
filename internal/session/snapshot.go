package session

import (
	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/piece"
	"github.com/vovakirdan/candlelight/internal/shapes"
	"github.com/vovakirdan/candlelight/internal/tutorial"
)

// TutorialView is the tutorial part of a Snapshot.
type TutorialView struct {
	Stage          tutorial.Stage          `json:"stage"`
	Name           string                  `json:"name"`
	Instruction    string                  `json:"instruction"`
	SubInstruction string                  `json:"subInstruction"`
	MoveStatus     []tutorial.ActionStatus `json:"-"`
	Pending        bool                    `json:"pending"`
	Complete       bool                    `json:"complete"`
}

// Snapshot is a read-only copy of everything a front-end draws. It shares
// no memory with the session.
type Snapshot struct {
	Mode       string              `json:"mode"`
	Board      board.Grid          `json:"board"`
	Piece      *piece.Piece        `json:"piece,omitempty"`
	Preview    []piece.Overlay     `json:"preview,omitempty"`
	Target     core.Shape          `json:"targetGem"`
	Queue      []shapes.ID         `json:"queue"`
	QueueLen   int                 `json:"queueLength"`
	Level      int                 `json:"level"`
	World      int                 `json:"world"`
	Score      int                 `json:"score"`
	BestScore  *int                `json:"bestScore,omitempty"`
	CanUndo    bool                `json:"canUndo"`
	Matched    []core.Shape        `json:"matchedGems,omitempty"`
	Visibility tutorial.Visibility `json:"visibility"`
	Tutorial   *TutorialView       `json:"tutorial,omitempty"`

	Paused              bool `json:"paused"`
	LevelComplete       bool `json:"levelComplete"`
	GameOver            bool `json:"gameOver"`
	GameComplete        bool `json:"gameComplete"`
	InteractionDisabled bool `json:"interactionDisabled"`
	NewBest             bool `json:"newBest"`
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:                s.Mode(),
		Board:               s.board.Serialize(),
		Piece:               s.Piece(),
		Preview:             s.Preview(),
		Target:              s.target.Clone(),
		Queue:               s.queue.Visible(),
		QueueLen:            s.queue.Len(),
		Level:               s.level,
		World:               s.world,
		Score:               s.score,
		BestScore:           s.BestScore(),
		CanUndo:             !s.history.IsEmpty() && !s.InteractionDisabled(),
		Matched:             s.MatchedGems(),
		Visibility:          s.TutorialVisibility(),
		Paused:              s.paused,
		LevelComplete:       s.levelComplete,
		GameOver:            s.gameOver,
		GameComplete:        s.gameComplete,
		InteractionDisabled: s.InteractionDisabled(),
		NewBest:             s.levelComplete && s.IsNewBest(),
	}

	if s.tutorial != nil {
		st := s.tutorial.State()
		info := tutorial.StageInfo(st.Stage)
		snap.Tutorial = &TutorialView{
			Stage:          st.Stage,
			Name:           info.Name,
			Instruction:    info.Instruction,
			SubInstruction: info.SubInstruction,
			MoveStatus:     tutorial.MoveStatus(st),
			Pending:        s.tutorial.Pending(),
			Complete:       st.Complete,
		}
	}
	return snap
}
