package stats

import (
	"fmt"

	"github.com/verte-zerg/consistency21/internal/model"
)

func samplePlan() []model.DayPlan {
	plan := make([]model.DayPlan, 0, model.ProgramDays)
	for d := 1; d <= model.ProgramDays; d++ {
		plan = append(plan, model.DayPlan{
			Day:        d,
			Title:      fmt.Sprintf("Step %d", d),
			Guidance:   "Focus.",
			Activities: []string{"a", "b", "c", "d"},
		})
	}
	return plan
}

func sampleState() model.UserState {
	analysis := model.FinalAnalysis{
		Summary:          "You showed up most days and your mood improved over time.",
		ConsistencyScore: 64,
		Strengths:        []string{"Early momentum", "Honest notes", "Recovery after misses"},
		Weaknesses:       []string{"Weekend dips", "Skipped warmups", "Late starts"},
		NextSteps:        "Keep a shorter daily routine for the next month.",
	}
	return model.UserState{
		Goal: "Learn guitar",
		Plan: samplePlan(),
		Reports: map[int]model.DailyReport{
			1: {Day: 1, Completed: true, ActivitiesCompleted: []int{0, 1, 2, 3}, Notes: "Great start", Mood: 9},
			2: {Day: 2, Completed: true, ActivitiesCompleted: []int{0, 1, 2, 3}, Notes: "Still good", Mood: 8},
			3: {Day: 3, Completed: false, ActivitiesCompleted: []int{0}, Notes: "Busy\nday", Mood: 4},
			5: {Day: 5, Completed: true, ActivitiesCompleted: []int{0, 1, 2, 3}, Notes: "", Mood: 7},
		},
		FinalAnalysis: &analysis,
		StartDate:     1767268800000,
	}
}
