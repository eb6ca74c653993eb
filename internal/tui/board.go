package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/storyboard-creator/internal/model"
)

const (
	// maxPreviewWidth caps preview size on wide terminals.
	maxPreviewWidth = 40

	// Widths at which the board switches to two and three columns.
	twoColumnWidth   = 72
	threeColumnWidth = 112
)

// columnsFor returns the number of card columns for a terminal width.
func columnsFor(width int) int {
	switch {
	case width >= threeColumnWidth:
		return 3
	case width >= twoColumnWidth:
		return 2
	default:
		return 1
	}
}

// cardWidth returns the outer width of one card, borders included.
func cardWidth(width, columns int) int {
	if width <= 0 {
		width = twoColumnWidth
	}
	return max(width/columns, 12)
}

func (m Model) viewBoard(budget int) string {
	shots := m.studio.Shots()
	if len(shots) == 0 {
		return emptyStyle.Render("No shots yet") + "\n" +
			dimStyle.Render("Add your first shot to start building your storyboard")
	}

	columns := columnsFor(m.width)
	width := cardWidth(m.width, columns)

	var rows []string
	for start := 0; start < len(shots); start += columns {
		end := min(start+columns, len(shots))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.viewCard(shots[i], i, len(shots), width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(visibleRows(rows, m.selected/columns, budget), "\n")
}

func (m Model) viewCard(shot model.Shot, index, total, width int) string {
	inner := max(width-4, 1)

	parts := []string{
		m.previews.get(shot.ID, shot.ImageURL, min(inner, maxPreviewWidth)),
		badgeStyle.Render(fmt.Sprintf("Shot %d", shot.Number)),
		cardTitleStyle.Width(inner).Render(shot.Title),
	}
	if shot.HasDescription() {
		parts = append(parts, dimStyle.Width(inner).Render(shot.Description))
	}
	parts = append(parts, m.viewActions(index, total))

	style := cardStyle.Width(width - 2)
	if m.focus == focusBoard && index == m.selected {
		style = style.BorderForeground(selectedColor)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewActions(index, total int) string {
	up, down := actionStyle, actionStyle
	if index == 0 {
		up = disabledActionStyle
	}
	if index == total-1 {
		down = disabledActionStyle
	}
	return up.Render("↑ Up") + "  " + down.Render("↓ Down") + "  " + deleteStyle.Render("Delete")
}

// visibleRows returns the run of rows around selected that fits in budget
// lines. A budget of zero or less keeps every row.
func visibleRows(rows []string, selected, budget int) []string {
	if budget <= 0 || len(rows) == 0 {
		return rows
	}
	selected = min(max(selected, 0), len(rows)-1)

	start, end := selected, selected+1
	used := lipgloss.Height(rows[selected])
	for end < len(rows) && used+lipgloss.Height(rows[end]) <= budget {
		used += lipgloss.Height(rows[end])
		end++
	}
	for start > 0 && used+lipgloss.Height(rows[start-1]) <= budget {
		start--
		used += lipgloss.Height(rows[start])
	}
	return rows[start:end]
}
