package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/storage"
)

// SlotMenuModel lets users continue or start a free play game in one of
// the save slots.
type SlotMenuModel struct {
	env       Env
	slots     []storage.SlotInfo
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection *Selection
	status    string
	quitting  bool
	back      bool
}

// NewSlotMenuModel loads the slot summaries. Without a store there is a
// single unsaved game.
func NewSlotMenuModel(env Env, width, height int) SlotMenuModel {
	m := SlotMenuModel{
		env:       env,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	m.reload()
	for i, s := range m.slots {
		if s.Slot == env.Config.FreePlay.DefaultSlot {
			m.cursor = i
		}
	}
	return m
}

func (m *SlotMenuModel) reload() {
	if m.env.Store == nil {
		m.slots = nil
		return
	}
	slots, err := m.env.Store.Slots()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.slots = slots
}

// Init initializes the model.
func (m SlotMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SlotMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SlotMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if len(m.slots) == 0 {
		switch action {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionSelect, MenuActionNew:
			m.selection = &Selection{Mode: modes.FreePlayID}
		case MenuActionBack:
			m.back = true
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.slots)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		slot := m.slots[m.cursor]
		m.selection = &Selection{Mode: modes.FreePlayID, Slot: slot.Slot, Resume: !slot.Empty}
	case MenuActionNew:
		m.selection = &Selection{Mode: modes.FreePlayID, Slot: m.slots[m.cursor].Slot}
	case MenuActionDelete:
		if err := m.env.Store.ClearSlot(m.slots[m.cursor].Slot); err != nil {
			m.status = err.Error()
		}
		m.reload()
	case MenuActionBack:
		m.back = true
	}
	return m, nil
}

// View renders the slot list.
func (m SlotMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("FREE PLAY"), m.width))
	b.WriteString("\n\n")

	if len(m.slots) == 0 {
		b.WriteString(centerText("> New game (not saved)", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))
		return b.String()
	}

	for i, s := range m.slots {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		desc := dimStyle.Render("empty")
		if !s.Empty {
			desc = fmt.Sprintf("level %d, %d alchemizations", s.Level, s.Score)
			if !s.UpdatedAt.IsZero() {
				desc += dimStyle.Render(s.UpdatedAt.Format("  Jan 02 15:04"))
			}
		}
		b.WriteString(centerText(fmt.Sprintf("%sSlot %s  %s", cursor, s.Slot, desc), m.width))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Continue/New  |  N: New  |  X: Clear  |  Esc: Back", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SlotMenuModel) Selected() *Selection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SlotMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SlotMenuModel) WantsBack() bool {
	return m.back
}
