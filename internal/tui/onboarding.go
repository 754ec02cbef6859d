package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/consistency21/internal/model"
)

const goalCharLimit = 200

func newGoalInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "e.g., Learn to play guitar, Run a 5k, Meditate daily..."
	input.CharLimit = goalCharLimit
	input.Focus()
	return input
}

func (m *Model) renderOnboarding() string {
	st := m.styles
	width := min(max(m.width-8, 30), 72)
	m.goal.Width = width - 4
	lines := []string{
		st.title.Render(fmt.Sprintf("%d Days to a New You", model.ProgramDays)),
		"",
	}
	for _, l := range wrapWords("Tell us what you want to achieve. We'll build a personalized day-by-day plan to help you form a lasting habit.", width) {
		lines = append(lines, st.muted.Render(l))
	}
	lines = append(lines,
		"",
		m.goal.View(),
		"",
		st.help.Render(fmt.Sprintf("✨ Personalized  📅 %d Day Plan  AI Powered", model.ProgramDays)),
	)
	box := st.card.Width(width).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(max(m.width, width), max(m.bodyHeight(), lipgloss.Height(box)), lipgloss.Center, lipgloss.Center, box)
}
