package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candlelight/internal/config"
	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/registry"
)

// MenuItem represents a selectable mode in the menu.
type MenuItem struct {
	ModeID string
	Title  string
	Hint   string
}

var modeHints = map[string]string{
	modes.DailyID:    "same gem for everyone today",
	modes.PuzzleID:   "hand-made levels",
	modes.FreePlayID: "endless, saved in slots",
	modes.TutorialID: "learn the rules",
}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. Players who have not seen the
// tutorial start with it highlighted.
func NewMenuModel(settings config.SettingsConfig, width, height int) MenuModel {
	infos := registry.List()
	items := make([]MenuItem, 0, len(infos))
	cursor := 0

	for _, info := range infos {
		if info.ID == modes.TutorialID && !settings.HasSeenTutorial {
			cursor = len(items)
		}
		items = append(items, MenuItem{
			ModeID: info.ID,
			Title:  info.Title,
			Hint:   modeHints[info.ID],
		})
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  C A N D L E L I G H T  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-16s %s", cursor, item.Title, dimStyle.Render(item.Hint))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
