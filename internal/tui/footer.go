package tui

import (
	"strings"

	"github.com/verte-zerg/consistency21/internal/model"
)

const footerHeight = 1

func (m *Model) helpText() string {
	switch {
	case m.loading != "" || m.mgr.Busy():
		return "ctrl+c: quit"
	case m.alert != "" || m.notice != "" || m.confirming:
		return ""
	case m.editor != nil:
		return ""
	}
	switch m.mgr.View().Kind() {
	case model.ViewOnboarding:
		return "enter: build plan  ctrl+t: theme  esc: quit"
	case model.ViewCalendar:
		return "←↑↓→: select  enter: log day  f: final report  s: simulate  t: theme  r: restart  q: quit"
	default:
		return "↑/↓: scroll  p: export PDF  t: theme  r: restart  q: quit"
	}
}

func (m *Model) renderFooter() string {
	segments := []string{}
	if help := m.helpText(); help != "" {
		segments = append(segments, m.styles.help.Render(help))
	}
	if m.status != "" {
		segments = append(segments, m.styles.accent.Render(m.status))
	}
	return strings.Join(segments, "  ")
}
