// Package tui provides the Bubble Tea habit tracking interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/consistency21/internal/config"
	"github.com/verte-zerg/consistency21/internal/generator"
	"github.com/verte-zerg/consistency21/internal/model"
	"github.com/verte-zerg/consistency21/internal/session"
	"github.com/verte-zerg/consistency21/internal/stats"
)

const (
	generationTimeout = 3 * time.Minute

	msgPlanLoading     = "Consulting the experts..."
	msgAnalysisLoading = "Analyzing your journey..."
	msgPlanFailed      = "Failed to generate plan. Please try again."
	msgAnalysisFailed  = "Failed to generate final report."
	msgNeedReport      = "Please complete at least one day before generating a report."
	msgConfirmRestart  = "Are you sure? This will clear your current progress."
	msgCorruptState    = "Your saved progress could not be read and was set aside. Starting fresh."
)

type planDoneMsg struct{ err error }

type analysisDoneMsg struct{ err error }

type pdfDoneMsg struct {
	path string
	err  error
}

// Options configures the TUI.
type Options struct {
	Theme   config.Theme
	Prefs   PrefStore
	PDFDir  string
	Outcome session.LoadOutcome
	Now     func() time.Time
}

// Model implements the Bubble Tea UI.
type Model struct {
	mgr   *session.Manager
	sim   *generator.Generator
	prefs PrefStore
	ctx   context.Context
	now   func() time.Time

	theme  config.Theme
	styles styles
	pdfDir string

	width  int
	height int

	goal     textinput.Model
	spinner  spinner.Model
	progress progress.Model
	report   viewport.Model
	editor   *dayEditor
	selected int

	loading    string
	alert      string
	notice     string
	status     string
	confirming bool
}

// NewModel constructs the TUI around a loaded session manager.
func NewModel(mgr *session.Manager, sim *generator.Generator, opts Options) *Model {
	ctx := context.Background()
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	theme := loadTheme(ctx, opts.Prefs, opts.Theme)
	m := &Model{
		mgr:      mgr,
		sim:      sim,
		prefs:    opts.Prefs,
		ctx:      ctx,
		now:      now,
		theme:    theme,
		styles:   newStyles(theme),
		pdfDir:   opts.PDFDir,
		goal:     newGoalInput(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithoutPercentage()),
		report:   viewport.New(0, 0),
		selected: 1,
	}
	m.applyTheme()
	if opts.Outcome == session.LoadCorrupt {
		m.notice = msgCorruptState
	}
	if mgr.View().Kind() == model.ViewCalendar {
		m.selected = stats.CurrentDay(mgr.State(), now())
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case spinner.TickMsg:
		if m.loading == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case planDoneMsg:
		m.loading = ""
		if msg.err != nil {
			m.alert = msgPlanFailed
			return m, nil
		}
		m.goal.Reset()
		m.selected = 1
		return m, nil
	case analysisDoneMsg:
		m.loading = ""
		if msg.err != nil {
			if errors.Is(msg.err, session.ErrNoReports) {
				m.alert = msgNeedReport
			} else {
				m.alert = msgAnalysisFailed
			}
			return m, nil
		}
		m.refreshReport()
		m.report.GotoTop()
		return m, nil
	case pdfDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("PDF export failed: %v", msg.err)
		} else {
			m.status = "PDF written to " + msg.path
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.editor != nil && m.editor.focus == focusNotes {
		var cmd tea.Cmd
		m.editor.notes, cmd = m.editor.notes.Update(msg)
		return m, cmd
	}
	if m.mgr.View().Kind() == model.ViewOnboarding {
		var cmd tea.Cmd
		m.goal, cmd = m.goal.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.loading != "" || m.mgr.Busy() {
		return m, nil
	}
	if m.alert != "" || m.notice != "" {
		switch msg.String() {
		case "enter", "esc", " ":
			m.alert = ""
			m.notice = ""
		}
		return m, nil
	}
	if m.confirming {
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirming = false
			if err := m.mgr.Restart(m.ctx, true); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.editor = nil
			m.status = ""
			m.goal.Reset()
			return m, m.goal.Focus()
		case "n", "N", "esc":
			m.confirming = false
		}
		return m, nil
	}
	if m.editor != nil {
		return m.handleEditorKey(msg)
	}
	switch m.mgr.View().Kind() {
	case model.ViewOnboarding:
		return m.handleOnboardingKey(msg)
	case model.ViewCalendar:
		return m.handleCalendarKey(msg)
	default:
		return m.handleReportKey(msg)
	}
}

func (m *Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "ctrl+t":
		m.toggleTheme()
		return m, nil
	case "enter":
		goal := strings.TrimSpace(m.goal.Value())
		if goal == "" {
			return m, nil
		}
		m.loading = msgPlanLoading
		return m, tea.Batch(m.spinner.Tick, m.generatePlanCmd(goal))
	}
	var cmd tea.Cmd
	m.goal, cmd = m.goal.Update(msg)
	return m, cmd
}

func (m *Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.mgr.State()
	cols := gridColumns(m.width)
	m.status = ""
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.selected = moveSelection(m.selected, len(state.Plan), cols, -1, 0)
	case "right", "l":
		m.selected = moveSelection(m.selected, len(state.Plan), cols, 1, 0)
	case "up", "k":
		m.selected = moveSelection(m.selected, len(state.Plan), cols, 0, -1)
	case "down", "j":
		m.selected = moveSelection(m.selected, len(state.Plan), cols, 0, 1)
	case "enter", " ":
		return m, m.openEditor(state)
	case "s":
		if err := m.mgr.ReplaceReports(m.ctx, m.sim.DemoReports(state.Plan, m.now())); err != nil {
			m.status = err.Error()
		} else {
			m.status = "Filled every day with demo reports."
		}
	case "f":
		if len(state.Reports) == 0 {
			m.alert = msgNeedReport
			return m, nil
		}
		m.loading = msgAnalysisLoading
		return m, tea.Batch(m.spinner.Tick, m.finalizeCmd())
	case "t":
		m.toggleTheme()
	case "r":
		m.confirming = true
	}
	return m, nil
}

func (m *Model) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.confirming = true
		return m, nil
	case "p":
		m.status = "Exporting PDF..."
		return m, m.exportPDFCmd()
	case "t":
		m.toggleTheme()
		return m, nil
	case "g", "home":
		m.report.GotoTop()
		return m, nil
	case "G", "end":
		m.report.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor = nil
		return m, nil
	case "ctrl+s":
		report, err := m.editor.report(m.now())
		if err == nil {
			err = m.mgr.SaveReport(m.ctx, report)
		}
		if err != nil {
			m.editor.errMsg = err.Error()
			return m, nil
		}
		log.Printf("INFO: [TUI] saved report for day %d", report.Day)
		m.editor = nil
		return m, nil
	}
	return m, m.editor.update(msg)
}

func (m *Model) openEditor(state model.UserState) tea.Cmd {
	day, ok := state.DayPlanFor(m.selected)
	if !ok {
		return nil
	}
	var existing *model.DailyReport
	if r, ok := state.Reports[day.Day]; ok {
		existing = &r
	}
	m.editor = newDayEditor(day, existing, m.modalInnerWidth())
	return nil
}

func (m *Model) generatePlanCmd(goal string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, generationTimeout)
		defer cancel()
		return planDoneMsg{err: m.mgr.GeneratePlan(ctx, goal)}
	}
}

func (m *Model) finalizeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, generationTimeout)
		defer cancel()
		return analysisDoneMsg{err: m.mgr.Finalize(ctx)}
	}
}

func (m *Model) exportPDFCmd() tea.Cmd {
	state := m.mgr.State()
	path := filepath.Join(m.pdfDir, fmt.Sprintf("consistency21-report-%s.pdf", m.now().Format("20060102-150405")))
	return func() tea.Msg {
		return pdfDoneMsg{path: path, err: stats.WritePDF(path, state)}
	}
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.applyTheme()
	saveTheme(m.ctx, m.prefs, m.theme)
}

func (m *Model) applyTheme() {
	m.styles = newStyles(m.theme)
	m.spinner.Style = m.styles.accent
	m.progress.FullColor = string(m.styles.pal.accent)
	m.progress.EmptyColor = string(m.styles.pal.subtle)
	m.refreshReport()
}

func (m *Model) refreshReport() {
	state := m.mgr.State()
	if state.FinalAnalysis == nil {
		m.report.SetContent("")
		return
	}
	m.report.SetContent(renderReportContent(m.styles, state, m.width))
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.report.Width = m.width
	m.report.Height = m.bodyHeight()
	if m.editor != nil {
		m.editor.setWidth(m.modalInnerWidth())
	}
	m.refreshReport()
}

func (m *Model) bodyHeight() int {
	return max(1, m.height-footerHeight)
}

func modalWidth(width int) int {
	return max(40, min(width-4, 80))
}

func (m *Model) modalInnerWidth() int {
	return max(20, modalWidth(m.width)-6)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	bodyHeight := m.bodyHeight()
	var body string
	switch {
	case m.loading != "":
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+m.styles.text.Render(m.loading))
	case m.alert != "":
		body = m.renderModal(m.styles.danger.Bold(true), m.alert, "enter: dismiss")
	case m.notice != "":
		body = m.renderModal(m.styles.warning, m.notice, "enter: dismiss")
	case m.confirming:
		body = m.renderModal(m.styles.text, msgConfirmRestart, "y: restart  n: cancel")
	case m.editor != nil:
		box := m.styles.modal.Width(modalWidth(m.width)).Render(m.editor.view(m.styles, m.modalInnerWidth()))
		body = lipgloss.Place(m.width, max(bodyHeight, lipgloss.Height(box)), lipgloss.Center, lipgloss.Top, box)
	default:
		switch m.mgr.View().Kind() {
		case model.ViewOnboarding:
			body = m.renderOnboarding()
		case model.ViewCalendar:
			body = m.renderCalendar()
		default:
			body = m.report.View()
		}
	}
	return fitLines(body, m.width, bodyHeight) + "\n" + fitLines(m.renderFooter(), m.width, footerHeight)
}

func (m *Model) renderModal(style lipgloss.Style, message, help string) string {
	lines := wrapWords(message, m.modalInnerWidth())
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	content := strings.Join(lines, "\n") + "\n\n" + m.styles.help.Render(help)
	box := m.styles.modal.Width(modalWidth(m.width)).Render(content)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}
