package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candlelight/internal/core"
)

// GameKeyMap defines the key bindings while a level is in play.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Rotate  key.Binding
	Place   key.Binding
	Undo    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Place, k.Undo, k.Pause, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Rotate, k.Place, k.Undo},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("x", "e"),
			key.WithHelp("x", "rotate"),
		),
		Place: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "place"),
		),
		Undo: key.NewBinding(
			key.WithKeys("z", "u", "backspace"),
			key.WithHelp("z", "undo"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action. Keys with no game
// meaning give ActionNone.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Place):
		return core.ActionSelect
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.Back):
		return core.ActionEscape
	}
	return core.ActionNone
}

// KeyMapper translates Bubble Tea key messages to menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionNew
	MenuActionDelete
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "n":
		return MenuActionNew
	case "x", "delete":
		return MenuActionDelete
	}

	return MenuActionNone
}
