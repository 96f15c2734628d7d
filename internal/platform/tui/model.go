package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/session"
)

// GameModel is the Bubble Tea model for one game session. Pacing delays
// between levels and tutorial stages are scheduled here; the session itself
// never waits.
type GameModel struct {
	env     Env
	sess    *session.Session
	slot    string
	keys    GameKeyMap
	help    help.Model
	width   int
	height  int
	gen     int  // bumped whenever pending delays must be discarded
	waiting bool // a pacing delay is running
	newBest bool
	status  string

	standalone bool // quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel wraps a started session.
func NewGameModel(env Env, sess *session.Session, slot string, width, height int) GameModel {
	h := help.New()
	h.Width = width
	return GameModel{
		env:    env,
		sess:   sess,
		slot:   slot,
		keys:   DefaultGameKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case DelayMsg:
		return m.handleDelay(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.sess

	if key.Matches(msg, m.keys.Quit) {
		m.autoSave()
		m.quitting = true
		return m, tea.Quit
	}

	if s.GameComplete() {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Place) {
			return m.leave()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Restart) && !m.waiting {
		if err := s.RestartLevel(); err != nil {
			m.status = err.Error()
		}
		m.gen++
		m.newBest = false
		return m, nil
	}

	if s.GameOver() {
		if key.Matches(msg, m.keys.Back) {
			return m.leave()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		if s.Paused() {
			s.Resume()
		} else {
			s.Pause()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if s.Paused() {
			m.autoSave()
			return m.leave()
		}
		s.Pause()
		return m, nil
	}

	if m.waiting {
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}
	s.Apply(action)
	return m, m.afterAction()
}

// afterAction schedules the delay that follows a finished tutorial stage or
// a completed level.
func (m *GameModel) afterAction() tea.Cmd {
	s := m.sess
	timing := m.env.Config.Timing

	if s.TutorialPending() {
		m.waiting = true
		d := timing.TutorialStage
		if s.LevelComplete() {
			d = timing.TutorialLevel
		}
		return delayCmd(d, DelayMsg{Kind: delayAdvanceTutorial, Gen: m.gen})
	}

	if s.LevelComplete() {
		m.waiting = true
		m.newBest = s.IsNewBest()
		m.recordResult()
		return delayCmd(timing.LevelComplete, DelayMsg{Kind: delayNextLevel, Gen: m.gen})
	}
	return nil
}

// handleDelay runs the transition a pacing delay was waiting for.
func (m GameModel) handleDelay(msg DelayMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.waiting {
		return m, nil
	}
	m.waiting = false
	m.newBest = false
	m.gen++

	s := m.sess
	switch msg.Kind {
	case delayAdvanceTutorial:
		s.AdvanceTutorial()
	case delayNextLevel:
		s.NextLevel()
	}

	if s.GameComplete() {
		m.onGameComplete()
		return m, nil
	}

	if s.Mode() == modes.PuzzleID {
		s.SetBestScore(m.env.bestScore(modes.PuzzleID, s.World(), s.Level()))
	}
	if m.env.Config.FreePlay.AutoSave && s.ShouldAutoSave() {
		m.autoSave()
	}
	return m, nil
}

// recordResult stores a completed level: daily bests and puzzle progress.
func (m *GameModel) recordResult() {
	store := m.env.Store
	if store == nil {
		return
	}
	s := m.sess

	var err error
	switch s.Mode() {
	case modes.DailyID:
		_, err = store.SaveDailyScore(core.DateKey(time.Now()), s.Score())
	case modes.PuzzleID:
		_, err = store.CompletePuzzle(m.env.Catalog, s.World(), s.Level(), s.Score())
	}
	if err != nil {
		m.status = err.Error()
	}
}

func (m *GameModel) onGameComplete() {
	store := m.env.Store
	if store == nil || m.sess.Mode() != modes.TutorialID {
		return
	}
	settings, err := store.LoadSettings(m.env.Config.Settings)
	if err == nil {
		settings.HasSeenTutorial = true
		err = store.SaveSettings(settings)
	}
	if err != nil {
		m.status = err.Error()
	}
}

// autoSave writes the free play game into its slot. Other modes and games
// without a slot are left alone.
func (m *GameModel) autoSave() {
	if m.env.Store == nil || m.slot == "" {
		return
	}
	sv, ok := m.sess.Save()
	if !ok {
		return
	}
	if err := m.env.Store.SaveSlot(m.slot, sv); err != nil {
		m.status = err.Error()
	}
}

func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// banner returns the overlay text for the current state.
func (m GameModel) banner() string {
	s := m.sess
	switch {
	case s.GameComplete():
		return m.completeText() + " · enter for menu"
	case s.GameOver():
		return "Out of pieces · r to retry · esc for menu"
	case s.LevelComplete():
		if m.newBest {
			return "Gem complete! New best!"
		}
		return "Gem complete!"
	case s.Paused():
		return "Paused · p to resume · esc for menu"
	}
	return ""
}

func (m GameModel) completeText() string {
	s := m.sess
	switch s.Mode() {
	case modes.DailyID:
		return fmt.Sprintf("Daily complete in %d", s.Score())
	case modes.TutorialID:
		return "Tutorial complete"
	case modes.PuzzleID:
		return "Campaign complete"
	}
	return "Game complete"
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.sess.Snapshot()
	title := m.sess.Mode()
	if p := m.sess.Policy(); p != nil {
		title = p.Title()
	}

	var side []string
	if snap.Visibility.HUD {
		side = append(side, RenderHUD(title, snap))
	}
	if snap.Visibility.TargetGem {
		side = append(side, RenderTarget(snap.Target))
	}
	if snap.Visibility.Queue {
		side = append(side, RenderQueue(snap.Queue, snap.QueueLen))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderBoard(snap), " ", lipgloss.JoinVertical(lipgloss.Left, side...))

	var b strings.Builder
	b.WriteString(centerText(RenderBanner(m.banner()), m.width))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	if snap.Tutorial != nil {
		b.WriteString(RenderTutorial(snap.Tutorial))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Session returns the underlying session.
func (m GameModel) Session() *session.Session {
	return m.sess
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single selection and exits when the player leaves the game.
func Run(env Env, sel Selection, cfg core.RuntimeConfig) error {
	sess, err := env.NewSession(sel, cfg.SeedPtr())
	if err != nil {
		return err
	}

	model := NewGameModel(env, sess, sel.Slot, cfg.ScreenW, cfg.ScreenH)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
