package session

import (
	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/gem"
	"github.com/vovakirdan/candlelight/internal/piece"
	"github.com/vovakirdan/candlelight/internal/tutorial"
)

// Move moves the active piece one cell in dir.
func (s *Session) Move(dir core.Dir) bool {
	if s.piece == nil || s.InteractionDisabled() {
		return false
	}
	if !piece.CanMove(*s.piece, s.board, dir) {
		return false
	}
	p := piece.Move(*s.piece, dir)
	s.piece = &p
	return true
}

// Rotate advances the active piece to its next rotation slot.
func (s *Session) Rotate() bool {
	if s.piece == nil || s.InteractionDisabled() {
		return false
	}
	if !piece.CanRotate(*s.piece, s.board) {
		return false
	}
	p := piece.Rotate(*s.piece)
	s.piece = &p
	return true
}

// Place stamps the active piece onto the board. A match completes the
// level and keeps the piece; otherwise the next queued piece becomes active
// or, if the queue is exhausted, the game is over.
func (s *Session) Place() bool {
	if s.piece == nil || s.InteractionDisabled() {
		return false
	}
	if !piece.CanPlace(*s.piece, s.board) {
		return false
	}

	s.history = s.history.Push(s.board, s.piece.Shape)
	s.board = piece.Place(*s.piece, s.board)
	s.score++

	if res := gem.FindGemsAndShapes(s.board, s.target); res.Matched() {
		s.levelComplete = true
		s.matched = res.Gems
		s.logger.Debug("level complete", "mode", s.Mode(), "level", s.level, "score", s.score)
		return true
	}

	if !s.drawPiece() {
		s.logger.Debug("queue exhausted", "mode", s.Mode(), "level", s.level, "score", s.score)
	}
	return true
}

// Undo restores the board from before the last placement. The piece that
// was placed becomes active again and the piece that was active goes back
// to the front of the queue.
func (s *Session) Undo() bool {
	if s.history.IsEmpty() || s.InteractionDisabled() {
		return false
	}

	rec, ok, h := s.history.Pop()
	if !ok {
		return false
	}
	s.history = h
	s.board = rec.Board

	if s.piece != nil {
		s.queue = s.queue.Undo(s.piece.Shape)
	}
	p := piece.New(rec.Shape)
	s.piece = &p

	s.score = core.Max(0, s.score-1)
	return true
}

// Apply performs action, honouring the tutorial's stage gating when a
// tutorial is running. Escape never changes the session; front-ends handle
// it.
func (s *Session) Apply(action core.Action) bool {
	if s.tutorial != nil && !s.tutorial.Allowed(action) {
		return false
	}

	var ok bool
	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dir, _ := action.Direction()
		ok = s.Move(dir)
	case core.ActionRotate:
		ok = s.Rotate()
	case core.ActionSelect:
		ok = s.Place()
	case core.ActionUndo:
		ok = s.Undo()
	}

	if ok && s.tutorial != nil {
		s.tutorial.Record(action, s.board.HasRegion(board.Light))
		if s.levelComplete {
			s.tutorial.LevelComplete()
		}
	}
	return ok
}

// TutorialPending reports whether a tutorial stage transition is waiting
// for AdvanceTutorial.
func (s *Session) TutorialPending() bool {
	return s.tutorial != nil && s.tutorial.Pending()
}

// AdvanceTutorial finishes an outstanding tutorial transition: the stage
// advances once and, when the transition came with a completed level, the
// next level starts or the game completes after the last stage. Front-ends
// call it after their pacing delay.
func (s *Session) AdvanceTutorial() bool {
	if s.tutorial == nil {
		return false
	}
	level := s.tutorial.LevelPending()
	st, ok := s.tutorial.FinishTransition()
	if !ok {
		return false
	}
	if st.Complete {
		s.finish()
		return true
	}
	if level {
		s.NextLevel()
	}
	return true
}

// TutorialVisibility returns which panels the front-end should show. Outside
// tutorial mode everything is visible.
func (s *Session) TutorialVisibility() tutorial.Visibility {
	if s.tutorial == nil {
		return tutorial.Visibility{TargetGem: true, Queue: true, HUD: true}
	}
	return tutorial.VisibilityFor(s.tutorial.Stage())
}

// Preview returns what the active piece would turn each covered cell into.
func (s *Session) Preview() []piece.Overlay {
	if s.piece == nil {
		return nil
	}
	return piece.Preview(*s.piece, s.board)
}
