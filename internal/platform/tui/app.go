package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/modes"
)

type screen int

const (
	screenMenu screen = iota
	screenPuzzle
	screenSlots
	screenScores
	screenGame
)

// AppModel manages the full flow: menu -> level or slot picker -> game ->
// menu. It is the top-level model for `candlelight` without arguments and
// for every SSH session.
type AppModel struct {
	env      Env
	config   core.RuntimeConfig
	screen   screen
	menu     MenuModel
	puzzle   PuzzleMenuModel
	slots    SlotMenuModel
	scores   ScoreboardModel
	game     GameModel
	status   string
	quitting bool
}

// NewAppModel creates the app starting at the mode menu.
func NewAppModel(env Env, cfg core.RuntimeConfig) AppModel {
	m := AppModel{env: env, config: cfg}
	m.menu = m.newMenu()
	return m
}

func (m AppModel) newMenu() MenuModel {
	settings := m.env.Config.Settings
	if m.env.Store != nil {
		if stored, err := m.env.Store.LoadSettings(settings); err == nil {
			settings = stored
		}
	}
	return NewMenuModel(settings, m.config.ScreenW, m.config.ScreenH)
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the current screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPuzzle:
		return m.updatePuzzle(msg)
	case screenSlots:
		return m.updateSlots(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGame:
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m AppModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.env, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		switch selected.ModeID {
		case modes.PuzzleID:
			m.screen = screenPuzzle
			m.puzzle = NewPuzzleMenuModel(m.env, m.config.ScreenW, m.config.ScreenH)
			return m, m.puzzle.Init()
		case modes.FreePlayID:
			m.screen = screenSlots
			m.slots = NewSlotMenuModel(m.env, m.config.ScreenW, m.config.ScreenH)
			return m, m.slots.Init()
		}
		return m.startGame(Selection{Mode: selected.ModeID})
	}

	return m, cmd
}

func (m AppModel) updatePuzzle(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.puzzle.Update(msg)
	if pm, ok := newModel.(PuzzleMenuModel); ok {
		m.puzzle = pm
	}

	switch {
	case m.puzzle.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.puzzle.WantsBack():
		return m.toMenu()
	case m.puzzle.Selected() != nil:
		return m.startGame(*m.puzzle.Selected())
	}
	return m, cmd
}

func (m AppModel) updateSlots(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.slots.Update(msg)
	if sm, ok := newModel.(SlotMenuModel); ok {
		m.slots = sm
	}

	switch {
	case m.slots.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.slots.WantsBack():
		return m.toMenu()
	case m.slots.Selected() != nil:
		return m.startGame(*m.slots.Selected())
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scores = sm
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m AppModel) startGame(sel Selection) (tea.Model, tea.Cmd) {
	sess, err := m.env.NewSession(sel, m.config.SeedPtr())
	if err != nil {
		m.status = err.Error()
		return m.toMenu()
	}
	m.status = ""
	m.game = NewGameModel(m.env, sess, sel.Slot, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.BackToMenu() {
		return m.toMenu()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPuzzle:
		return m.puzzle.View()
	case screenSlots:
		return m.slots.View()
	case screenScores:
		return m.scores.View()
	case screenGame:
		return m.game.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + centerText(dimStyle.Render(m.status), m.config.ScreenW)
	}
	return view
}

// RunApp runs the menu-driven app until the player quits.
func RunApp(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewAppModel(env, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
