// Package model defines shared data structures.
package model

import "time"

const (
	// ProgramDays is the length of a plan in days.
	ProgramDays = 21
	// MinMood and MaxMood bound the daily mood rating.
	MinMood = 1
	MaxMood = 10
	// DefaultMood preselects the mood for a day without a report.
	DefaultMood = 8
)

// DayPlan is one calendar day of the program.
type DayPlan struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Guidance   string   `json:"guidance"`
	Activities []string `json:"activities"`
}

// DailyReport is the user's record for one day.
type DailyReport struct {
	Day                 int    `json:"day"`
	Completed           bool   `json:"completed"`
	ActivitiesCompleted []int  `json:"activitiesCompleted"`
	Notes               string `json:"notes"`
	Mood                int    `json:"mood"`
	Timestamp           int64  `json:"timestamp"`
}

// FinalAnalysis is the summary produced from all daily reports.
type FinalAnalysis struct {
	Summary          string   `json:"summary"`
	ConsistencyScore int      `json:"consistencyScore"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	NextSteps        string   `json:"nextSteps"`
}

// UserState is the aggregate persisted as one unit.
type UserState struct {
	Goal          string              `json:"goal"`
	Plan          []DayPlan           `json:"plan"`
	Reports       map[int]DailyReport `json:"reports"`
	FinalAnalysis *FinalAnalysis      `json:"finalAnalysis"`
	StartDate     int64               `json:"startDate"`
}

// EmptyState returns the aggregate in its initial form.
func EmptyState() UserState {
	return UserState{
		Plan:    []DayPlan{},
		Reports: map[int]DailyReport{},
	}
}

// DayPlanFor returns the plan entry for a day.
func (s UserState) DayPlanFor(day int) (DayPlan, bool) {
	for _, d := range s.Plan {
		if d.Day == day {
			return d, true
		}
	}
	return DayPlan{}, false
}

// Started returns the plan generation instant.
func (s UserState) Started() time.Time {
	if s.StartDate == 0 {
		return time.Time{}
	}
	return time.UnixMilli(s.StartDate)
}

// Clone returns a deep copy of the aggregate.
func (s UserState) Clone() UserState {
	out := UserState{
		Goal:      s.Goal,
		Plan:      make([]DayPlan, len(s.Plan)),
		Reports:   make(map[int]DailyReport, len(s.Reports)),
		StartDate: s.StartDate,
	}
	for i, d := range s.Plan {
		d.Activities = append([]string(nil), d.Activities...)
		out.Plan[i] = d
	}
	for day, r := range s.Reports {
		r.ActivitiesCompleted = append([]int(nil), r.ActivitiesCompleted...)
		out.Reports[day] = r
	}
	if s.FinalAnalysis != nil {
		fa := *s.FinalAnalysis
		fa.Strengths = append([]string(nil), fa.Strengths...)
		fa.Weaknesses = append([]string(nil), fa.Weaknesses...)
		out.FinalAnalysis = &fa
	}
	return out
}
