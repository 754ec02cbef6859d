package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/consistency21/internal/model"
)

const (
	reportPlotHeight = 8
	noteColumnWidth  = 40
	highlightDays    = 3
	moodTrendWindow  = 3
	dateLayout       = "2006-01-02"
)

// RenderReport writes the final report as plain text. Without an analysis it
// writes the progress overview instead.
func RenderReport(w io.Writer, state model.UserState, width int, color bool) error {
	if state.FinalAnalysis == nil {
		return RenderProgress(w, state)
	}
	if width <= 0 {
		width = terminalWidth()
	}
	a := state.FinalAnalysis
	rw := &reportWriter{w: w}

	rw.line("Final Report: %s", state.Goal)
	rw.line("Consistency Score: %d/100 (%s)", a.ConsistencyScore, ScoreBand(a.ConsistencyScore))
	rw.blank()
	rw.heading("Executive Summary")
	rw.paragraph(a.Summary, width)
	rw.heading("Strengths")
	rw.bullets(a.Strengths, width)
	rw.heading("Areas to Improve")
	rw.bullets(a.Weaknesses, width)
	rw.heading("What's Next?")
	rw.paragraph(a.NextSteps, width)
	if rw.err != nil {
		return rw.err
	}

	points := BuildChart(state.Reports, state.Plan)
	if err := RenderCurves(w, points, width, reportPlotHeight, color); err != nil {
		return err
	}
	return RenderDayTable(w, state, points)
}

// RenderCurves draws the mood trajectory and the task completion rate.
func RenderCurves(w io.Writer, points []ChartPoint, width, height int, color bool) error {
	if len(points) == 0 {
		return nil
	}
	plotWidth := PlotWidthFor(width)
	mood := MoodSeries(points)
	if err := PlotSeries(w, "Mood Trajectory", []Series{
		{Name: "Mood", Values: mood, Min: 0, Max: model.MaxMood},
		{Name: fmt.Sprintf("%d-day average", moodTrendWindow), Values: MovingAverage(mood, moodTrendWindow)},
	}, plotWidth, height, color); err != nil {
		return err
	}
	return PlotSeries(w, "Task Completion Rate", []Series{
		{Name: "Completion", Values: CompletionSeries(points), Min: 0, Max: 100, Unit: "%"},
	}, plotWidth, height, color)
}

// RenderDayTable prints one row per reported day followed by the best and toughest days.
func RenderDayTable(w io.Writer, state model.UserState, points []ChartPoint) error {
	if len(points) == 0 {
		_, err := fmt.Fprintln(w, "No daily reports yet.")
		return err
	}
	headers := []string{"Day", "Title", "Done", "Rate", "Mood", "Notes"}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		title := ""
		if d, ok := state.DayPlanFor(p.Day); ok {
			title = d.Title
		}
		rows = append(rows, []string{
			strconv.Itoa(p.Day),
			title,
			fmt.Sprintf("%d/%d", p.Activities, p.TotalActivities),
			fmt.Sprintf("%.0f%%", p.CompletionRate),
			strconv.Itoa(p.Mood),
			runewidth.Truncate(singleLine(state.Reports[p.Day].Notes), noteColumnWidth, "…"),
		})
	}
	rw := &reportWriter{w: w}
	rw.heading("Daily Log")
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 2: true, 3: true, 4: true}) {
		rw.line("%s", line)
	}
	rw.blank()
	rw.line("Best days: %s", dayList(BestDays(points, highlightDays)))
	rw.line("Toughest days: %s", dayList(ToughestDays(points, highlightDays)))
	return rw.err
}

// RenderProgress writes a short overview of an unfinished session.
func RenderProgress(w io.Writer, state model.UserState) error {
	rw := &reportWriter{w: w}
	if len(state.Plan) == 0 {
		rw.line("No active challenge.")
		return rw.err
	}
	s := Summarize(state.Reports, state.Plan)
	rw.line("Goal: %s", state.Goal)
	if started := state.Started(); !started.IsZero() {
		rw.line("Started: %s", started.Format(dateLayout))
	}
	rw.line("Progress: %d/%d days completed (%d%%)", s.FullDays, model.ProgramDays, ProgressPercent(state.Reports))
	rw.line("Reported: %d days", s.DaysReported)
	if s.DaysReported > 0 {
		rw.line("Average mood: %.1f", s.AverageMood)
		rw.line("Average completion: %.0f%%", s.AverageCompletion)
		rw.line("Best streak: %d days", s.BestStreak)
		points := BuildChart(state.Reports, state.Plan)
		rw.line("Mood: %s", Sparkline(MoodSeries(points), model.MinMood, model.MaxMood))
	}
	if state.FinalAnalysis != nil {
		rw.line("Final analysis: score %d/100", state.FinalAnalysis.ConsistencyScore)
	}
	return rw.err
}

// CurrentDay returns the program day for now, counting the start date as day 1.
func CurrentDay(state model.UserState, now time.Time) int {
	started := state.Started()
	if started.IsZero() || now.Before(started) {
		return 1
	}
	day := int(now.Sub(started).Hours()/24) + 1
	return min(day, model.ProgramDays)
}

func dayList(points []ChartPoint) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("Day %d (%.0f%%, mood %d)", p.Day, p.CompletionRate, p.Mood))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// reportWriter remembers the first write error so sections can be chained.
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) line(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *reportWriter) blank() {
	r.line("")
}

func (r *reportWriter) heading(title string) {
	r.line("%s", title)
	r.line("%s", strings.Repeat("-", runewidth.StringWidth(title)))
}

func (r *reportWriter) paragraph(text string, width int) {
	r.line("%s", ansi.Wordwrap(strings.TrimSpace(text), width, ""))
	r.blank()
}

func (r *reportWriter) bullets(items []string, width int) {
	for _, item := range items {
		wrapped := ansi.Wordwrap(strings.TrimSpace(item), max(width-2, 10), "")
		r.line("- %s", strings.ReplaceAll(wrapped, "\n", "\n  "))
	}
	r.blank()
}
