package tui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/consistency21/internal/model"
	"github.com/verte-zerg/consistency21/internal/stats"
)

const reportPlotHeight = 8

// renderReportContent builds the scrollable final report body.
func renderReportContent(st styles, state model.UserState, width int) string {
	a := state.FinalAnalysis
	if a == nil {
		return ""
	}
	width = max(width, 40)
	points := stats.BuildChart(state.Reports, state.Plan)
	summary := stats.Summarize(state.Reports, state.Plan)

	var b strings.Builder
	b.WriteString(st.title.Render("Your Journey Report"))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(truncateLine(state.Goal, width)))
	b.WriteString("\n\n")

	score := st.card.Render(fmt.Sprintf("%s\n%s",
		st.cardTitle.Render("Consistency Score"),
		st.scoreStyle(a.ConsistencyScore).Render(fmt.Sprintf("%d/100", a.ConsistencyScore)),
	))
	cards := []string{
		score,
		metricCard(st, "Days Reported", fmt.Sprintf("%d/%d", summary.DaysReported, model.ProgramDays)),
		metricCard(st, "Full Days", strconv.Itoa(summary.FullDays)),
		metricCard(st, "Avg Mood", fmt.Sprintf("%.1f", summary.AverageMood)),
		metricCard(st, "Best Streak", fmt.Sprintf("%d days", summary.BestStreak)),
	}
	if width < 80 {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	b.WriteString("\n\n")

	section := func(title string, body []string) {
		b.WriteString(st.accent.Bold(true).Render(title))
		b.WriteString("\n")
		for _, line := range body {
			b.WriteString(st.text.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	bullets := func(items []string) []string {
		var out []string
		for _, item := range items {
			for i, line := range wrapWords(item, width-2) {
				prefix := "  "
				if i == 0 {
					prefix = "• "
				}
				out = append(out, prefix+line)
			}
		}
		return out
	}
	section("Executive Summary", wrapWords(a.Summary, width))
	section("Strengths", bullets(a.Strengths))
	section("Areas to Improve", bullets(a.Weaknesses))
	section("What's Next?", wrapWords(a.NextSteps, width))

	var plots bytes.Buffer
	if err := stats.RenderCurves(&plots, points, width, reportPlotHeight, true); err != nil {
		b.WriteString(st.danger.Render(fmt.Sprintf("Failed to render charts: %v", err)))
	} else {
		b.WriteString(strings.TrimRight(plots.String(), "\n"))
	}
	b.WriteString("\n\n")
	b.WriteString(st.accent.Bold(true).Render("Daily Log"))
	b.WriteString("\n")
	b.WriteString(dayTable(st, state, points, width).View())
	return b.String()
}

func metricCard(st styles, label, value string) string {
	return st.card.Render(fmt.Sprintf("%s\n%s", st.cardTitle.Render(label), st.cardValue.Render(value)))
}

func dayTable(st styles, state model.UserState, points []stats.ChartPoint, width int) table.Model {
	fixed := 4 + 6 + 6 + 5
	titleWidth := max(12, (width-fixed)/2)
	notesWidth := max(12, width-fixed-titleWidth-6)
	columns := []table.Column{
		{Title: "Day", Width: 4},
		{Title: "Title", Width: titleWidth},
		{Title: "Done", Width: 6},
		{Title: "Rate", Width: 6},
		{Title: "Mood", Width: 5},
		{Title: "Notes", Width: notesWidth},
	}
	rows := make([]table.Row, 0, len(points))
	for _, p := range points {
		title := ""
		if d, ok := state.DayPlanFor(p.Day); ok {
			title = d.Title
		}
		notes := strings.Join(strings.Fields(state.Reports[p.Day].Notes), " ")
		rows = append(rows, table.Row{
			strconv.Itoa(p.Day),
			runewidth.Truncate(title, titleWidth, "…"),
			fmt.Sprintf("%d/%d", p.Activities, p.TotalActivities),
			fmt.Sprintf("%.0f%%", p.CompletionRate),
			strconv.Itoa(p.Mood),
			runewidth.Truncate(notes, notesWidth, "…"),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(1, len(rows)+1)),
	)
	t.SetWidth(width)
	t.SetStyles(tableStyles(st))
	t.Blur()
	return t
}

func tableStyles(st styles) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(st.pal.border).
		Foreground(st.pal.muted).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	s.Cell = s.Cell.
		Foreground(st.pal.text).
		Padding(0, 1).
		PaddingLeft(0)
	s.Selected = s.Cell
	return s
}
