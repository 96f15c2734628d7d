// Package session composes the engine into one game session: board, piece,
// queue, undo history and target, driven by a mode policy.
//
// A Session is an explicit value owned by its caller. It is not safe for
// concurrent use; every front-end connection owns its own session.
package session

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/history"
	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/piece"
	"github.com/vovakirdan/candlelight/internal/queue"
	"github.com/vovakirdan/candlelight/internal/registry"
	"github.com/vovakirdan/candlelight/internal/shapes"
	"github.com/vovakirdan/candlelight/internal/tutorial"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default is the charmbracelet/log default
// logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithClock sets the clock used for save timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithVisibleSize overrides the queue preview length for every mode.
func WithVisibleSize(n int) Option {
	return func(s *Session) { s.visibleSize = n }
}

// Session is one game in progress.
type Session struct {
	logger      *log.Logger
	now         func() time.Time
	visibleSize int

	policy registry.Policy
	opts   core.GameOptions // options the current level was started with

	board   board.Board
	piece   *piece.Piece
	queue   queue.Queue
	history history.History
	target  core.Shape
	matched []core.Shape

	level     int
	world     int
	score     int
	bestScore *int
	started   time.Time

	paused        bool
	hydrating     bool
	levelComplete bool
	gameOver      bool
	gameComplete  bool

	tutorial *tutorial.Machine
}

// New creates an empty session with no mode loaded.
func New(opts ...Option) *Session {
	s := &Session{
		logger: log.Default(),
		now:    time.Now,
		board:  board.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitGame starts mode with opts. It fails only for an unknown mode or a
// level the mode does not have.
func (s *Session) InitGame(mode string, opts core.GameOptions) error {
	p, err := registry.Create(mode)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return s.Init(p, opts)
}

// Init starts a game with an explicit policy.
func (s *Session) Init(p registry.Policy, opts core.GameOptions) error {
	return s.start(p, opts, false)
}

func (s *Session) start(p registry.Policy, opts core.GameOptions, keepTutorial bool) error {
	opts = opts.WithDefaults().Clone()

	setup, err := p.Setup(opts)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	target := setup.Target
	if len(opts.Target) > 0 {
		target = opts.Target.Clone()
	}

	qopts := setup.Queue
	if len(opts.Queue) > 0 {
		ids, err := shapes.ParseAll(opts.Queue)
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		qopts.Initial = ids
	}
	if s.visibleSize > 0 {
		qopts.VisibleSize = s.visibleSize
	}

	s.policy = p
	s.opts = opts
	s.board = board.New()
	s.history = history.New()
	s.target = target
	s.matched = nil
	s.level = opts.Level
	s.world = opts.World
	s.score = 0
	s.bestScore = opts.BestScore
	s.started = s.now()
	s.clearFlags()

	s.queue = queue.New(qopts)
	s.drawPiece()

	if p.ID() == modes.TutorialID {
		if s.tutorial == nil || !keepTutorial {
			s.tutorial = tutorial.NewMachine()
		}
	} else {
		s.tutorial = nil
	}

	s.logger.Debug("game started", "mode", p.ID(), "world", s.world, "level", s.level, "target", len(s.target))
	return nil
}

func (s *Session) clearFlags() {
	s.paused = false
	s.hydrating = false
	s.levelComplete = false
	s.gameOver = false
	s.gameComplete = false
}

// drawPiece makes the next queued shape the active piece. An exhausted
// queue leaves no piece and ends the game.
func (s *Session) drawPiece() bool {
	id, ok, q := s.queue.Next()
	s.queue = q
	if !ok {
		s.piece = nil
		s.gameOver = true
		return false
	}
	p := piece.New(id)
	s.piece = &p
	return true
}

// InteractionDisabled reports whether player actions are currently
// rejected.
func (s *Session) InteractionDisabled() bool {
	return s.policy == nil || s.paused || s.hydrating || s.levelComplete || s.gameOver || s.gameComplete
}

// Pause locks interaction without touching board, queue or history.
func (s *Session) Pause() {
	s.paused = true
}

// Resume lifts a Pause. A completed level or finished game stays locked.
func (s *Session) Resume() {
	s.paused = false
}

// BeginHydration locks interaction while state is being replaced from a
// save.
func (s *Session) BeginHydration() {
	s.hydrating = true
}

// EndHydration lifts the hydration lock.
func (s *Session) EndHydration() {
	s.hydrating = false
}

// NextLevel moves to the level after the current one. It returns false
// and sets GameComplete when the mode has nothing further.
func (s *Session) NextLevel() bool {
	if s.policy == nil {
		return false
	}
	if s.tutorial != nil && s.tutorial.Complete() {
		s.finish()
		return false
	}

	next, ok := s.policy.Next(s.opts)
	if !ok {
		s.finish()
		return false
	}
	next.BestScore = nil

	setup, err := s.policy.Setup(next)
	if err != nil {
		s.logger.Warn("cannot set up next level", "mode", s.policy.ID(), "err", err)
		s.finish()
		return false
	}

	s.opts = next.WithDefaults()
	s.board = board.New()
	s.history = history.New()
	s.target = setup.Target
	s.matched = nil
	s.level = s.opts.Level
	s.world = s.opts.World
	s.score = 0
	s.bestScore = nil
	s.levelComplete = false
	s.gameOver = false

	// refilling queues run on across levels, fixed queues are per level
	if !setup.Queue.Autofill || !s.queue.Autofill {
		if s.visibleSize > 0 {
			setup.Queue.VisibleSize = s.visibleSize
		}
		s.queue = queue.New(setup.Queue)
	}
	s.drawPiece()

	s.logger.Debug("next level", "mode", s.policy.ID(), "world", s.world, "level", s.level)
	return true
}

func (s *Session) finish() {
	s.gameComplete = true
	s.logger.Debug("game complete", "mode", s.policy.ID())
}

// RestartLevel starts the current level again with the same target and
// best score. Tutorial progress is kept.
func (s *Session) RestartLevel() error {
	if s.policy == nil {
		return nil
	}
	opts := s.opts.Clone()
	opts.Target = s.target.Clone()
	opts.BestScore = s.bestScore
	return s.start(s.policy, opts, true)
}

// Reset tears the session down to its state after New.
func (s *Session) Reset() {
	*s = Session{
		logger:      s.logger,
		now:         s.now,
		visibleSize: s.visibleSize,
		board:       board.New(),
	}
}

// SetBestScore records the best score the front-end loaded for the level.
func (s *Session) SetBestScore(best *int) {
	if best == nil {
		s.bestScore = nil
		return
	}
	v := *best
	s.bestScore = &v
}

// IsNewBest reports whether the current score beats the stored best.
func (s *Session) IsNewBest() bool {
	return modes.IsNewBest(s.score, s.bestScore)
}

// Mode returns the active mode id, or "" when no mode is loaded.
func (s *Session) Mode() string {
	if s.policy == nil {
		return ""
	}
	return s.policy.ID()
}

// Policy returns the active policy.
func (s *Session) Policy() registry.Policy { return s.policy }

func (s *Session) Board() board.Board { return s.board }
func (s *Session) Target() core.Shape { return s.target.Clone() }
func (s *Session) Queue() queue.Queue { return s.queue }
func (s *Session) History() history.History { return s.history }
func (s *Session) Level() int { return s.level }
func (s *Session) World() int { return s.world }
func (s *Session) Score() int { return s.score }
func (s *Session) LevelComplete() bool { return s.levelComplete }
func (s *Session) GameOver() bool { return s.gameOver }
func (s *Session) GameComplete() bool { return s.gameComplete }
func (s *Session) Paused() bool { return s.paused }

// Piece returns a copy of the active piece, or nil.
func (s *Session) Piece() *piece.Piece {
	if s.piece == nil {
		return nil
	}
	p := *s.piece
	return &p
}

// MatchedGems returns the regions that completed the level.
func (s *Session) MatchedGems() []core.Shape {
	out := make([]core.Shape, len(s.matched))
	for i, g := range s.matched {
		out[i] = g.Clone()
	}
	return out
}

// Tutorial returns the tutorial machine, or nil outside tutorial mode.
func (s *Session) Tutorial() *tutorial.Machine {
	return s.tutorial
}

// BestScore returns the stored best score, or nil.
func (s *Session) BestScore() *int {
	if s.bestScore == nil {
		return nil
	}
	v := *s.bestScore
	return &v
}
