package model

// ViewKind names the three application screens.
type ViewKind int

const (
	ViewOnboarding ViewKind = iota
	ViewCalendar
	ViewReport
)

func (k ViewKind) String() string {
	switch k {
	case ViewOnboarding:
		return "onboarding"
	case ViewCalendar:
		return "calendar"
	case ViewReport:
		return "report"
	default:
		return "unknown"
	}
}

// View is the active screen. Implementations are Onboarding, Calendar and Report.
type View interface {
	Kind() ViewKind
	isView()
}

// Onboarding is the goal entry screen; no plan exists.
type Onboarding struct{}

// Calendar is the 21-day grid; a plan exists and no analysis has been generated.
type Calendar struct {
	Plan []DayPlan
}

// Report is the terminal screen; Analysis is never nil.
type Report struct {
	Analysis *FinalAnalysis
}

func (Onboarding) Kind() ViewKind { return ViewOnboarding }
func (Calendar) Kind() ViewKind   { return ViewCalendar }
func (Report) Kind() ViewKind     { return ViewReport }

func (Onboarding) isView() {}
func (Calendar) isView()   {}
func (Report) isView()     {}

// ViewOf derives the screen from the aggregate.
func ViewOf(s UserState) View {
	switch {
	case len(s.Plan) == 0:
		return Onboarding{}
	case s.FinalAnalysis != nil:
		return Report{Analysis: s.FinalAnalysis}
	default:
		return Calendar{Plan: s.Plan}
	}
}
