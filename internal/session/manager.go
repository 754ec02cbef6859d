// Package session owns the habit-tracking aggregate and the transitions between screens.
package session

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/verte-zerg/consistency21/internal/model"
)

// DefaultKey is the persistence key for the serialized aggregate.
const DefaultKey = "consistency21_state_v1"

// PlanGenerator produces a day-by-day plan for a goal.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, goal string) ([]model.DayPlan, error)
}

// AnalysisGenerator produces the final analysis from the collected reports.
type AnalysisGenerator interface {
	GenerateAnalysis(ctx context.Context, goal string, reports []model.DailyReport, plan []model.DayPlan) (model.FinalAnalysis, error)
}

// Store is the persistence collaborator.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// LoadOutcome describes what Load found in the store.
type LoadOutcome int

const (
	// LoadFresh means nothing usable was stored; the session starts empty.
	LoadFresh LoadOutcome = iota
	// LoadRestored means a saved session was restored.
	LoadRestored
	// LoadCorrupt means a stored blob could not be parsed and was set aside.
	LoadCorrupt
)

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithKey overrides the persistence key.
func WithKey(key string) Option {
	return func(m *Manager) {
		m.key = key
	}
}

// Manager is the session state manager.
type Manager struct {
	store    Store
	plans    PlanGenerator
	analyses AnalysisGenerator
	key      string
	now      func() time.Time

	mu    sync.Mutex
	state model.UserState
	busy  atomic.Bool
}

// New constructs a Manager holding an empty aggregate.
func New(store Store, plans PlanGenerator, analyses AnalysisGenerator, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		plans:    plans,
		analyses: analyses,
		key:      DefaultKey,
		now:      time.Now,
		state:    model.EmptyState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Key returns the persistence key.
func (m *Manager) Key() string {
	return m.key
}

// Load makes a single attempt to restore the persisted aggregate. It never fails:
// unreadable or empty data leaves the session at Onboarding. A corrupt blob is moved
// to the backup key so later launches start clean.
func (m *Manager) Load(ctx context.Context) LoadOutcome {
	state, outcome, raw := m.read(ctx)
	switch outcome {
	case LoadCorrupt:
		if err := m.store.Set(ctx, m.BackupKey(), raw); err != nil {
			log.Printf("ERROR: [Session] failed to back up corrupt state: %v", err)
			return outcome
		}
		if err := m.store.Remove(ctx, m.key); err != nil {
			log.Printf("ERROR: [Session] failed to clear corrupt state: %v", err)
		}
	case LoadRestored:
		m.mu.Lock()
		m.state = state
		m.mu.Unlock()
		log.Printf("INFO: [Session] restored %d-day plan with %d reports", len(state.Plan), len(state.Reports))
	}
	return outcome
}

// Inspect reads the persisted aggregate without touching the store or the session.
// Anything but LoadRestored comes back as the empty aggregate.
func (m *Manager) Inspect(ctx context.Context) (model.UserState, LoadOutcome) {
	state, outcome, _ := m.read(ctx)
	return state, outcome
}

// BackupKey is where Load sets aside a blob it could not parse.
func (m *Manager) BackupKey() string {
	return m.key + ".corrupt"
}

func (m *Manager) read(ctx context.Context) (model.UserState, LoadOutcome, string) {
	raw, ok, err := m.store.Get(ctx, m.key)
	if err != nil {
		log.Printf("WARN: [Session] failed to read saved state: %v", err)
		return model.EmptyState(), LoadFresh, ""
	}
	if !ok || raw == "" {
		return model.EmptyState(), LoadFresh, ""
	}
	state, err := Decode(raw)
	if err != nil {
		log.Printf("WARN: [Session] failed to load state: %v", err)
		return model.EmptyState(), LoadCorrupt, raw
	}
	if len(state.Plan) == 0 {
		return model.EmptyState(), LoadFresh, ""
	}
	return state, LoadRestored, raw
}

// State returns a copy of the aggregate.
func (m *Manager) State() model.UserState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// View returns the current screen.
func (m *Manager) View() model.View {
	return model.ViewOf(m.State())
}

// Busy reports whether a generation call is outstanding.
func (m *Manager) Busy() bool {
	return m.busy.Load()
}

// GeneratePlan requests a plan for goal and, on success, starts a new session with it.
// On failure the aggregate is left untouched.
func (m *Manager) GeneratePlan(ctx context.Context, goal string) error {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return ErrEmptyGoal
	}
	if m.View().Kind() != model.ViewOnboarding {
		return ErrWrongView
	}
	if !m.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer m.busy.Store(false)

	plan, err := m.plans.GeneratePlan(ctx, goal)
	if err != nil {
		log.Printf("ERROR: [Session] plan generation failed: %v", err)
		return &GenerationError{Op: "generate plan", Err: err}
	}
	if len(plan) == 0 {
		log.Printf("ERROR: [Session] plan generation returned no days")
		return &GenerationError{Op: "generate plan", Err: ErrEmptyPlan}
	}

	m.mu.Lock()
	m.state = model.UserState{
		Goal:      goal,
		Plan:      plan,
		Reports:   map[int]model.DailyReport{},
		StartDate: m.now().UnixMilli(),
	}
	m.mu.Unlock()
	log.Printf("INFO: [Session] generated %d-day plan", len(plan))
	m.persist(ctx)
	return nil
}

// SaveReport stores report under its day, replacing any earlier report for that day.
// The Completed flag is taken as given.
func (m *Manager) SaveReport(ctx context.Context, report model.DailyReport) error {
	m.mu.Lock()
	if model.ViewOf(m.state).Kind() != model.ViewCalendar {
		m.mu.Unlock()
		return ErrWrongView
	}
	if _, ok := m.state.DayPlanFor(report.Day); !ok {
		m.mu.Unlock()
		return ErrUnknownDay
	}
	report.ActivitiesCompleted = append([]int(nil), report.ActivitiesCompleted...)
	m.state.Reports[report.Day] = report
	m.mu.Unlock()
	m.persist(ctx)
	return nil
}

// ReplaceReports swaps the whole reports mapping, as the demo simulator does.
func (m *Manager) ReplaceReports(ctx context.Context, reports map[int]model.DailyReport) error {
	m.mu.Lock()
	if model.ViewOf(m.state).Kind() != model.ViewCalendar {
		m.mu.Unlock()
		return ErrWrongView
	}
	next := make(map[int]model.DailyReport, len(reports))
	for day, r := range reports {
		if _, ok := m.state.DayPlanFor(day); !ok || r.Day != day {
			m.mu.Unlock()
			return ErrUnknownDay
		}
		r.ActivitiesCompleted = append([]int(nil), r.ActivitiesCompleted...)
		next[day] = r
	}
	m.state.Reports = next
	m.mu.Unlock()
	m.persist(ctx)
	return nil
}

// Finalize requests the final analysis from all saved reports.
// With no reports it returns ErrNoReports without calling the generator.
func (m *Manager) Finalize(ctx context.Context) error {
	m.mu.Lock()
	snapshot := m.state.Clone()
	m.mu.Unlock()

	if len(snapshot.Plan) == 0 {
		return ErrWrongView
	}
	if len(snapshot.Reports) == 0 {
		return ErrNoReports
	}
	if !m.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer m.busy.Store(false)

	analysis, err := m.analyses.GenerateAnalysis(ctx, snapshot.Goal, SortedReports(snapshot.Reports), snapshot.Plan)
	if err != nil {
		log.Printf("ERROR: [Session] analysis generation failed: %v", err)
		return &GenerationError{Op: "generate analysis", Err: err}
	}

	m.mu.Lock()
	m.state.FinalAnalysis = &analysis
	m.mu.Unlock()
	log.Printf("INFO: [Session] final analysis stored (score %d)", analysis.ConsistencyScore)
	m.persist(ctx)
	return nil
}

// Restart discards the aggregate, the persisted copy and any corrupt backup. It requires confirmation.
func (m *Manager) Restart(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if m.busy.Load() {
		return ErrBusy
	}
	for _, key := range []string{m.key, m.BackupKey()} {
		if err := m.store.Remove(ctx, key); err != nil {
			log.Printf("ERROR: [Session] failed to remove %s: %v", key, err)
		}
	}
	m.mu.Lock()
	m.state = model.EmptyState()
	m.mu.Unlock()
	log.Printf("INFO: [Session] session restarted")
	return nil
}

// persist writes the whole aggregate when a plan exists.
func (m *Manager) persist(ctx context.Context) {
	m.mu.Lock()
	state := m.state.Clone()
	m.mu.Unlock()
	if len(state.Plan) == 0 {
		return
	}
	raw, err := Encode(state)
	if err != nil {
		log.Printf("ERROR: [Session] %v", err)
		return
	}
	if err := m.store.Set(ctx, m.key, raw); err != nil {
		log.Printf("ERROR: [Session] failed to save state: %v", err)
	}
}

// SortedReports returns the reports ordered by day.
func SortedReports(reports map[int]model.DailyReport) []model.DailyReport {
	out := make([]model.DailyReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day < out[j].Day
	})
	return out
}
