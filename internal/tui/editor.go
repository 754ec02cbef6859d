package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/consistency21/internal/model"
	"github.com/verte-zerg/consistency21/internal/session"
)

type editorFocus int

const (
	focusActivities editorFocus = iota
	focusMood
	focusNotes
	focusCount
)

const notesHeight = 4

// dayEditor is the modal for filling in one day's report.
type dayEditor struct {
	day     model.DayPlan
	checked []bool
	cursor  int
	mood    int
	notes   textarea.Model
	focus   editorFocus
	errMsg  string
}

func newDayEditor(day model.DayPlan, existing *model.DailyReport, width int) *dayEditor {
	notes := textarea.New()
	notes.Placeholder = "How did it go? Any challenges?"
	notes.ShowLineNumbers = false
	notes.CharLimit = 0
	notes.SetHeight(notesHeight)
	notes.SetWidth(max(20, width))

	e := &dayEditor{
		day:     day,
		checked: make([]bool, len(day.Activities)),
		mood:    model.DefaultMood,
		notes:   notes,
	}
	if existing != nil {
		for _, idx := range existing.ActivitiesCompleted {
			if idx >= 0 && idx < len(e.checked) {
				e.checked[idx] = true
			}
		}
		e.mood = session.ClampMood(existing.Mood)
		e.notes.SetValue(existing.Notes)
	}
	if len(day.Activities) == 0 {
		e.focus = focusMood
	}
	return e
}

func (e *dayEditor) completedIndices() []int {
	out := make([]int, 0, len(e.checked))
	for i, ok := range e.checked {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

func (e *dayEditor) doneCount() int {
	return len(e.completedIndices())
}

func (e *dayEditor) setWidth(width int) {
	e.notes.SetWidth(max(20, width))
}

func (e *dayEditor) report(now time.Time) (model.DailyReport, error) {
	return session.BuildReport(e.day, e.completedIndices(), e.notes.Value(), e.mood, now)
}

func (e *dayEditor) cycleFocus(delta int) tea.Cmd {
	next := (int(e.focus) + delta + int(focusCount)) % int(focusCount)
	if editorFocus(next) == focusActivities && len(e.day.Activities) == 0 {
		next = (next + delta + int(focusCount)) % int(focusCount)
	}
	e.focus = editorFocus(next)
	if e.focus == focusNotes {
		return e.notes.Focus()
	}
	e.notes.Blur()
	return nil
}

// update handles keys other than save and close.
func (e *dayEditor) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		return e.cycleFocus(1)
	case "shift+tab":
		return e.cycleFocus(-1)
	}
	switch e.focus {
	case focusActivities:
		switch msg.String() {
		case "up", "k":
			e.cursor = max(e.cursor-1, 0)
		case "down", "j":
			e.cursor = min(e.cursor+1, len(e.checked)-1)
		case " ", "x", "enter":
			if e.cursor < len(e.checked) {
				e.checked[e.cursor] = !e.checked[e.cursor]
			}
		}
	case focusMood:
		switch key := msg.String(); key {
		case "left", "h", "-":
			e.mood = session.ClampMood(e.mood - 1)
		case "right", "l", "+", "=":
			e.mood = session.ClampMood(e.mood + 1)
		case "0":
			e.mood = model.MaxMood
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				e.mood = int(key[0] - '0')
			}
		}
	case focusNotes:
		var cmd tea.Cmd
		e.notes, cmd = e.notes.Update(msg)
		return cmd
	}
	return nil
}

func (e *dayEditor) view(st styles, width int) string {
	inner := max(20, width)
	lines := []string{
		st.title.Render(fmt.Sprintf("Day %d: %s", e.day.Day, e.day.Title)),
		"",
		st.muted.Render("Today's Focus"),
	}
	for _, l := range wrapWords(e.day.Guidance, inner) {
		lines = append(lines, st.text.Render(l))
	}
	lines = append(lines, "", e.sectionTitle(st, focusActivities, fmt.Sprintf("Activities %d/%d", e.doneCount(), len(e.day.Activities))))
	if len(e.day.Activities) == 0 {
		lines = append(lines, st.muted.Render("  Rest day"))
	}
	for i, act := range e.day.Activities {
		box := "[ ]"
		style := st.text
		if e.checked[i] {
			box = "[x]"
			style = st.success
		}
		pointer := "  "
		if e.focus == focusActivities && i == e.cursor {
			pointer = st.accent.Render("> ")
		}
		lines = append(lines, pointer+style.Render(truncateLine(box+" "+act, inner-2)))
	}
	lines = append(lines,
		"",
		e.sectionTitle(st, focusMood, "How do you feel today?"),
		moodSlider(st, e.mood, inner),
		"",
		e.sectionTitle(st, focusNotes, "Journal Notes"),
		e.notes.View(),
	)
	if e.errMsg != "" {
		lines = append(lines, "", st.danger.Render(e.errMsg))
	}
	lines = append(lines, "", st.help.Render("tab: next field  space: toggle  ←/→: mood  ctrl+s: save  esc: close"))
	return strings.Join(lines, "\n")
}

func (e *dayEditor) sectionTitle(st styles, f editorFocus, title string) string {
	if e.focus == f {
		return st.accent.Bold(true).Render("▸ " + title)
	}
	return st.muted.Render("  " + title)
}

func moodSlider(st styles, mood, width int) string {
	cells := make([]string, 0, model.MaxMood)
	for v := model.MinMood; v <= model.MaxMood; v++ {
		switch {
		case v == mood:
			cells = append(cells, st.accent.Bold(true).Render("●"))
		case v < mood:
			cells = append(cells, st.accent.Render("━"))
		default:
			cells = append(cells, st.muted.Render("─"))
		}
	}
	slider := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	label := fmt.Sprintf(" %2d/%d", mood, model.MaxMood)
	line := st.muted.Render("Struggling ") + slider + st.muted.Render(" Amazing") + st.text.Render(label)
	return truncateLine(line, width)
}
