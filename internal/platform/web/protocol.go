// Package web serves Candlelight over WebSocket. Every connection owns one
// session; clients send JSON commands and receive the session snapshot
// after each one. Pacing delays are left to the client, which sends "next"
// or "advance" when its own timer runs out.
package web

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/registry"
	"github.com/vovakirdan/candlelight/internal/session"
)

// Client message types.
const (
	TypeInit    = "init"
	TypeAction  = "action"
	TypePause   = "pause"
	TypeResume  = "resume"
	TypeRestart = "restart"
	TypeNext    = "next"
	TypeAdvance = "advance"
	TypeSave    = "save"
	TypeRestore = "restore"
	TypeState   = "state"
)

// Server message types.
const (
	TypeError = "error"
)

// InitOptions mirror core.GameOptions on the wire.
type InitOptions struct {
	Level     int        `json:"level,omitempty"`
	World     int        `json:"world,omitempty"`
	Target    core.Shape `json:"targetGem,omitempty"`
	Queue     []string   `json:"queue,omitempty"`
	Seed      *int64     `json:"seed,omitempty"`
	BestScore *int       `json:"bestScore,omitempty"`
}

// GameOptions converts the wire options.
func (o *InitOptions) GameOptions() core.GameOptions {
	if o == nil {
		return core.GameOptions{}
	}
	return core.GameOptions{
		Level:     o.Level,
		World:     o.World,
		Target:    o.Target,
		Queue:     o.Queue,
		Seed:      o.Seed,
		BestScore: o.BestScore,
	}
}

// ClientMessage is a command from the browser.
type ClientMessage struct {
	Type    string        `json:"type"`
	Action  string        `json:"action,omitempty"`
	Mode    string        `json:"mode,omitempty"`
	Options *InitOptions  `json:"options,omitempty"`
	Save    *session.Save `json:"save,omitempty"`
}

// ServerMessage is the reply to every command. OK carries the result of
// the player action, if there was one.
type ServerMessage struct {
	Type  string            `json:"type"`
	OK    *bool             `json:"ok,omitempty"`
	Data  *session.Snapshot `json:"data,omitempty"`
	Save  *session.Save     `json:"save,omitempty"`
	Error string            `json:"error,omitempty"`
}

var errNoGame = errors.New("web: no game started")

// Handler applies client messages to one session.
type Handler struct {
	sess    *session.Session
	catalog *levels.Catalog
}

// NewHandler wraps a fresh session. A nil catalog uses the built-in
// campaign.
func NewHandler(sess *session.Session, catalog *levels.Catalog) *Handler {
	if catalog == nil {
		catalog = levels.MustDefault()
	}
	return &Handler{sess: sess, catalog: catalog}
}

func (h *Handler) policy(mode string) (registry.Policy, error) {
	if mode == modes.PuzzleID {
		return modes.NewPuzzle(h.catalog), nil
	}
	return registry.Create(mode)
}

func errorMessage(err error) ServerMessage {
	return ServerMessage{Type: TypeError, Error: err.Error()}
}

func (h *Handler) state() ServerMessage {
	snap := h.sess.Snapshot()
	return ServerMessage{Type: TypeState, Data: &snap}
}

// Handle runs one command and builds the reply.
func (h *Handler) Handle(msg ClientMessage) ServerMessage {
	s := h.sess

	if msg.Type != TypeInit && msg.Type != TypeRestore && s.Mode() == "" {
		return errorMessage(errNoGame)
	}

	switch msg.Type {
	case TypeInit:
		p, err := h.policy(msg.Mode)
		if err != nil {
			return errorMessage(err)
		}
		if err := s.Init(p, msg.Options.GameOptions()); err != nil {
			return errorMessage(err)
		}

	case TypeAction:
		action, ok := core.ParseAction(msg.Action)
		if !ok {
			return errorMessage(fmt.Errorf("web: unknown action %q", msg.Action))
		}
		applied := s.Apply(action)
		reply := h.state()
		reply.OK = &applied
		return reply

	case TypePause:
		s.Pause()

	case TypeResume:
		s.Resume()

	case TypeRestart:
		if err := s.RestartLevel(); err != nil {
			return errorMessage(err)
		}

	case TypeNext:
		if s.TutorialPending() {
			return errorMessage(errors.New("web: tutorial transition pending, send advance"))
		}
		if !s.LevelComplete() {
			return errorMessage(errors.New("web: level is not complete"))
		}
		s.NextLevel()

	case TypeAdvance:
		s.AdvanceTutorial()

	case TypeSave:
		sv, ok := s.Save()
		if !ok {
			return errorMessage(errors.New("web: only free play games can be saved"))
		}
		reply := h.state()
		reply.Type = TypeSave
		reply.Save = &sv
		return reply

	case TypeRestore:
		if err := s.Restore(msg.Save); err != nil {
			return errorMessage(err)
		}

	case TypeState:

	default:
		return errorMessage(fmt.Errorf("web: unknown message type %q", msg.Type))
	}

	return h.state()
}
