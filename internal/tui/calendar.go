package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/consistency21/internal/model"
	"github.com/verte-zerg/consistency21/internal/stats"
)

const (
	maxGridCols  = 7
	minCellWidth = 14
	cellChrome   = 4 // border + padding
)

type dayStatus int

const (
	dayOpen dayStatus = iota
	dayPartial
	dayDone
)

func statusOf(reports map[int]model.DailyReport, day int) dayStatus {
	r, ok := reports[day]
	switch {
	case !ok:
		return dayOpen
	case r.Completed:
		return dayDone
	default:
		return dayPartial
	}
}

// gridColumns picks how many day cells fit side by side.
func gridColumns(width int) int {
	if width <= 0 {
		return maxGridCols
	}
	return min(max(width/(minCellWidth+cellChrome), 1), maxGridCols)
}

// moveSelection steps the selected day within the plan on a cols-wide grid.
func moveSelection(selected, days, cols, dx, dy int) int {
	if days == 0 {
		return 0
	}
	idx := selected - 1 + dx + dy*cols
	if idx < 0 || idx >= days {
		return selected
	}
	return idx + 1
}

func (m *Model) renderCalendar() string {
	state := m.mgr.State()
	st := m.styles
	width := max(m.width, 40)

	completed := stats.CompletedDays(state.Reports)
	m.progress.Width = max(10, min(width-24, 60))
	header := []string{
		st.title.Render(fmt.Sprintf("%d Day Challenge", model.ProgramDays)),
		st.text.Render(truncateLine(state.Goal, width)),
		"",
		st.muted.Render("Progress ") + m.progress.ViewAs(float64(completed)/float64(model.ProgramDays)) +
			st.text.Render(fmt.Sprintf("  %d/%d Days", completed, model.ProgramDays)),
		"",
	}

	cols := gridColumns(width)
	cellWidth := max(width/cols-cellChrome, minCellWidth-cellChrome)
	today := stats.CurrentDay(state, m.now())
	var rows []string
	var row []string
	for i, day := range state.Plan {
		row = append(row, m.renderDayCell(state, day, cellWidth, day.Day == today))
		if len(row) == cols || i == len(state.Plan)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	return strings.Join(header, "\n") + "\n" + strings.Join(rows, "\n")
}

func (m *Model) renderDayCell(state model.UserState, day model.DayPlan, width int, today bool) string {
	st := m.styles
	status := statusOf(state.Reports, day.Day)
	marker := st.muted.Render("○")
	detail := fmt.Sprintf("%d tasks", len(day.Activities))
	switch status {
	case dayDone:
		marker = st.success.Render("●")
		detail = fmt.Sprintf("%d/%d done", len(day.Activities), len(day.Activities))
	case dayPartial:
		marker = st.warning.Render("◐")
		detail = fmt.Sprintf("%d/%d done", len(state.Reports[day.Day].ActivitiesCompleted), len(day.Activities))
	}
	label := fmt.Sprintf("Day %d", day.Day)
	if today {
		label += " •"
	}
	lines := []string{
		st.text.Bold(true).Render(label) + " " + marker,
		st.text.Render(runewidth.Truncate(day.Title, width, "…")),
		st.muted.Render(runewidth.Truncate(detail, width, "…")),
	}
	cell := st.cell
	if day.Day == m.selected {
		cell = st.cellFocus
	}
	return cell.Width(width + 2).Render(strings.Join(lines, "\n"))
}
