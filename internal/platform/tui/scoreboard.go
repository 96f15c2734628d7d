package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/candlelight/internal/levels"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show board list sidebar
	sidebarWidth       = 20 // Width of board list sidebar
	maxDailyRows       = 60 // Daily results to load
)

// scoreTab is one of the scoreboard's boards.
type scoreTab int

const (
	tabDaily scoreTab = iota
	tabPuzzle
)

var tabTitles = []string{"Daily", "Puzzle"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Back    key.Binding
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev board"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next board"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next board"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen: daily
// bests by date and puzzle progress by level.
type ScoreboardModel struct {
	env         Env
	tab         scoreTab
	rows        []table.Row
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show board list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(env Env, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		env:         env,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadRows()
	return m
}

func (m *ScoreboardModel) columns() []table.Column {
	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	last := min(max(tableWidth-30, 12), 20)

	if m.tab == tabPuzzle {
		return []table.Column{
			{Title: "Level", Width: 8},
			{Title: "World", Width: 14},
			{Title: "Best", Width: last},
		}
	}
	return []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Score", Width: 10},
		{Title: "Completed", Width: last},
	}
}

// createTable creates a new table with columns for the current board.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRows reads the current board from storage.
func (m *ScoreboardModel) loadRows() {
	m.rows = nil
	if m.env.Store != nil {
		switch m.tab {
		case tabDaily:
			m.rows = m.dailyRows()
		case tabPuzzle:
			m.rows = m.puzzleRows()
		}
	}
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) dailyRows() []table.Row {
	entries, err := m.env.Store.RecentDaily(maxDailyRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{e.DateKey, fmt.Sprintf("%d", e.Score), e.CompletedAt.Format("Jan 02 15:04")}
	}
	return rows
}

func (m *ScoreboardModel) puzzleRows() []table.Row {
	p, err := m.env.Store.LoadProgress()
	if err != nil || len(p.BestScores) == 0 {
		return nil
	}

	var rows []table.Row
	for _, info := range m.env.Catalog.Worlds() {
		for n := 1; n <= info.LevelCount; n++ {
			best, ok := p.Best(info.Number, n)
			if !ok {
				continue
			}
			rows = append(rows, table.Row{
				levels.PuzzleID(info.Number, n),
				info.Name,
				fmt.Sprintf("%d", best),
			})
		}
	}
	return rows
}

func (m *ScoreboardModel) switchTab(delta int) {
	n := len(tabTitles)
	m.tab = scoreTab((int(m.tab) + delta + n) % n)
	m.table = m.createTable()
	m.loadRows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Right):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.Left):
			m.switchTab(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("BEST SCORES - %s", tabTitles[m.tab])
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar listing the boards.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, t := range tabTitles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if scoreTab(i) == m.tab {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + t))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", panelStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the scoreboard with tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(tabTitles))
	for i, t := range tabTitles {
		if scoreTab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = dimStyle.Render(" " + t + " ")
		}
	}

	var b strings.Builder
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(panelStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.tab == tabPuzzle {
			return emptyStyle.Render("No puzzles solved yet.\nClear a level to record a best!")
		}
		return emptyStyle.Render("No daily challenges completed yet.\nPlay today's gem to set a score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
