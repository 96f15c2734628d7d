package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candlelight/internal/levels"
	"github.com/vovakirdan/candlelight/internal/modes"
)

// puzzleEntry is one selectable line of the level list.
type puzzleEntry struct {
	World, Level int
	WorldName    string
}

// PuzzleMenuModel lets users pick an unlocked puzzle level.
type PuzzleMenuModel struct {
	entries   []puzzleEntry
	progress  levels.Progress
	lockAll   bool // false when there is no stored progress to respect
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection *Selection
	quitting  bool
	back      bool
}

// NewPuzzleMenuModel lists every level of the catalog. The cursor starts on
// the furthest unlocked level.
func NewPuzzleMenuModel(env Env, width, height int) PuzzleMenuModel {
	progress, stored := env.progress()

	m := PuzzleMenuModel{
		progress:  progress,
		lockAll:   stored,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for _, info := range env.Catalog.Worlds() {
		w := env.Catalog.World(info.Number)
		for _, l := range w.Levels {
			if l.World == progress.MaxWorld && l.Number == progress.MaxLevel {
				m.cursor = len(m.entries)
			}
			m.entries = append(m.entries, puzzleEntry{World: l.World, Level: l.Number, WorldName: w.Name})
		}
	}
	return m
}

func (m PuzzleMenuModel) unlocked(e puzzleEntry) bool {
	return !m.lockAll || m.progress.IsUnlocked(e.World, e.Level)
}

// Init initializes the model.
func (m PuzzleMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PuzzleMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m PuzzleMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.entries) == 0 {
			return m, nil
		}
		e := m.entries[m.cursor]
		if !m.unlocked(e) {
			return m, nil
		}
		m.selection = &Selection{Mode: modes.PuzzleID, World: e.World, Level: e.Level}
	case MenuActionBack:
		m.back = true
	}
	return m, nil
}

// View renders the level list.
func (m PuzzleMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n")

	lastWorld := 0
	for i, e := range m.entries {
		if e.World != lastWorld {
			lastWorld = e.World
			b.WriteString("\n")
			b.WriteString(centerText(fmt.Sprintf("World %d: %s", e.World, e.WorldName), m.width))
			b.WriteString("\n")
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		status := dimStyle.Render("locked")
		if m.unlocked(e) {
			status = "open"
			if best, ok := m.progress.Best(e.World, e.Level); ok {
				status = doneStyle.Render(fmt.Sprintf("best %d", best))
			}
		}
		line := fmt.Sprintf("%s%d-%d  %s", cursor, e.World, e.Level, status)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m PuzzleMenuModel) Selected() *Selection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m PuzzleMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PuzzleMenuModel) WantsBack() bool {
	return m.back
}
