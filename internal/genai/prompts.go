package genai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/verte-zerg/consistency21/internal/model"
)

type reportDigest struct {
	Day                      int    `json:"day"`
	Notes                    string `json:"notes"`
	Mood                     int    `json:"mood"`
	CompletedActivitiesCount int    `json:"completed_activities_count"`
	TotalActivitiesCount     int    `json:"total_activities_count"`
}

func planPrompt(goal string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a structured %d-day plan to help the user achieve this goal: %q.\n", model.ProgramDays, goal)
	fmt.Fprintf(&b, "The plan is based on the \"%d Days to form a habit\" concept.\n\n", model.ProgramDays)
	fmt.Fprintf(&b, "For each day (1 through %d), provide:\n", model.ProgramDays)
	b.WriteString("1. A short, motivating title (3-6 words).\n")
	b.WriteString("2. A guidance paragraph explaining the focus of the day (30-50 words).\n")
	b.WriteString("3. A list of 1 to 5 specific, actionable, small activities/tasks the user must do.\n\n")
	b.WriteString("Ensure the difficulty ramps up gradually or follows a logical progression.\n")
	b.WriteString("Return the days in a JSON object under the \"days\" key.\n")
	return b.String()
}

func digestReports(reports []model.DailyReport, plan []model.DayPlan) []reportDigest {
	totals := make(map[int]int, len(plan))
	for _, d := range plan {
		totals[d.Day] = len(d.Activities)
	}
	out := make([]reportDigest, 0, len(reports))
	for _, r := range reports {
		out = append(out, reportDigest{
			Day:                      r.Day,
			Notes:                    r.Notes,
			Mood:                     r.Mood,
			CompletedActivitiesCount: len(r.ActivitiesCompleted),
			TotalActivitiesCount:     totals[r.Day],
		})
	}
	return out
}

func analysisPrompt(goal string, reports []model.DailyReport, plan []model.DayPlan) (string, error) {
	data, err := json.MarshalIndent(digestReports(reports, plan), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode reports: %w", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "The user has completed a %d-day challenge for the goal: %q.\n", model.ProgramDays, goal)
	b.WriteString("Here is the data from their daily reports:\n")
	b.Write(data)
	b.WriteString("\n\nAnalyze their consistency, mood patterns, and note content.\n")
	b.WriteString("Provide a final status report containing:\n")
	b.WriteString("1. A summary paragraph of their journey.\n")
	b.WriteString("2. A consistency score (0-100) based on completion and mood.\n")
	b.WriteString("3. A list of 3 key strengths they exhibited.\n")
	b.WriteString("4. A list of 3 weaknesses or areas for improvement.\n")
	b.WriteString("5. Actionable next steps to maintain the habit.\n")
	return b.String(), nil
}
