package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/candlelight/internal/board"
	"github.com/vovakirdan/candlelight/internal/core"
	"github.com/vovakirdan/candlelight/internal/gem"
	"github.com/vovakirdan/candlelight/internal/modes"
	"github.com/vovakirdan/candlelight/internal/session"
	"github.com/vovakirdan/candlelight/internal/shapes"
	"github.com/vovakirdan/candlelight/internal/tutorial"
)

// Every board cell is drawn two columns wide so the grid looks square.
const cellWidth = 2

var (
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	darkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("61"))
	lightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	matchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	ghostDark    = lipgloss.NewStyle().Foreground(lipgloss.Color("61")).Background(lipgloss.Color("237"))
	ghostLight   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("237"))
	shapeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("183"))
	targetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 2)

// RenderBoard draws the board with the active piece previewed on top and
// matched gems highlighted.
func RenderBoard(snap session.Snapshot) string {
	b := board.Deserialize(snap.Board)

	ghosts := make(map[core.Point]board.CellState, len(snap.Preview))
	for _, o := range snap.Preview {
		ghosts[o.Point] = o.State
	}
	matched := make(map[core.Point]bool)
	for _, g := range snap.Matched {
		for _, p := range g {
			matched[p] = true
		}
	}

	var sb strings.Builder
	for y := range board.Height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range board.Width {
			p := core.P(x, y)
			if state, ok := ghosts[p]; ok {
				sb.WriteString(renderGhost(state))
				continue
			}
			sb.WriteString(renderCell(b.Get(p), matched[p], board.IsBorder(p)))
		}
	}
	return panelStyle.Render(sb.String())
}

func renderCell(state board.CellState, matched, border bool) string {
	switch {
	case state == board.Light && matched:
		return matchedStyle.Render("██")
	case state == board.Light:
		return lightStyle.Render("██")
	case state == board.Dark:
		return darkStyle.Render("▓▓")
	case border:
		return borderStyle.Render("··")
	}
	return emptyStyle.Render("··")
}

func renderGhost(state board.CellState) string {
	if state == board.Light {
		return ghostLight.Render("▒▒")
	}
	return ghostDark.Render("░░")
}

// renderMini draws a shape centered in a size×size square.
func renderMini(shape core.Shape, size int, style lipgloss.Style) string {
	cells := make(map[core.Point]bool, len(shape))
	for _, p := range shape {
		cells[p] = true
	}

	var sb strings.Builder
	for y := range size {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range size {
			if cells[core.P(x, y)] {
				sb.WriteString(style.Render("██"))
			} else {
				sb.WriteString(strings.Repeat(" ", cellWidth))
			}
		}
	}
	return sb.String()
}

// RenderTarget draws the target gem centered in its display square.
func RenderTarget(target core.Shape) string {
	body := renderMini(gem.CenteredCells(target.Normalize()), gem.MaxSize, targetStyle)
	return panelStyle.Render(titleStyle.Render("Target") + "\n" + body)
}

// RenderQueue draws the upcoming shapes, nearest first.
func RenderQueue(ids []shapes.ID, total int) string {
	var parts []string
	parts = append(parts, titleStyle.Render(fmt.Sprintf("Next (%d)", total)))
	if len(ids) == 0 {
		parts = append(parts, dimStyle.Render("empty"))
	}
	for _, id := range ids {
		parts = append(parts, renderMini(shapes.Rotation(id, 0), 3, shapeStyle))
	}
	return panelStyle.Render(strings.Join(parts, "\n"))
}

// RenderHUD draws the mode, level and score lines.
func RenderHUD(title string, snap session.Snapshot) string {
	lines := []string{titleStyle.Render(title)}
	switch snap.Mode {
	case modes.PuzzleID:
		lines = append(lines, fmt.Sprintf("Level %d-%d", snap.World, snap.Level))
	case modes.DailyID:
		lines = append(lines, dimStyle.Render(core.DateKey(time.Now())))
	default:
		lines = append(lines, fmt.Sprintf("Level %d", snap.Level))
	}
	lines = append(lines, fmt.Sprintf("Alchemizations: %d", snap.Score))
	if snap.BestScore != nil {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("Best: %d", *snap.BestScore)))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// RenderTutorial draws the current tutorial instructions.
func RenderTutorial(view *session.TutorialView) string {
	if view == nil {
		return ""
	}
	lines := []string{
		titleStyle.Render(view.Instruction),
		dimStyle.Render(view.SubInstruction),
	}
	if view.Stage == tutorial.StageMove {
		var marks []string
		for _, st := range view.MoveStatus {
			mark := "○ " + st.Action.String()
			if st.Completed {
				mark = doneStyle.Render("● " + st.Action.String())
			}
			marks = append(marks, mark)
		}
		lines = append(lines, strings.Join(marks, "  "))
	}
	if view.Pending {
		lines = append(lines, doneStyle.Render("Well done!"))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// RenderBanner draws a one-line status banner, or nothing for "".
func RenderBanner(text string) string {
	if text == "" {
		return ""
	}
	return bannerStyle.Render(text)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
