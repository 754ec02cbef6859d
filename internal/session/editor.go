package session

import (
	"fmt"
	"time"

	"github.com/verte-zerg/consistency21/internal/model"
)

// BuildReport assembles the report the day editor hands to SaveReport.
// Completed is true iff every activity of the day is checked.
func BuildReport(day model.DayPlan, completed []int, notes string, mood int, now time.Time) (model.DailyReport, error) {
	seen := make(map[int]struct{}, len(completed))
	indices := make([]int, 0, len(completed))
	for _, idx := range completed {
		if idx < 0 || idx >= len(day.Activities) {
			return model.DailyReport{}, fmt.Errorf("%w: %d (day %d has %d activities)", ErrActivityIndex, idx, day.Day, len(day.Activities))
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		indices = append(indices, idx)
	}
	return model.DailyReport{
		Day:                 day.Day,
		Completed:           IsComplete(day, indices),
		ActivitiesCompleted: indices,
		Notes:               notes,
		Mood:                ClampMood(mood),
		Timestamp:           now.UnixMilli(),
	}, nil
}

// IsComplete reports whether the completed indices cover every activity of the day.
func IsComplete(day model.DayPlan, completed []int) bool {
	return len(completed) == len(day.Activities)
}

// ClampMood bounds a mood rating to 1..10.
func ClampMood(mood int) int {
	if mood < model.MinMood {
		return model.MinMood
	}
	if mood > model.MaxMood {
		return model.MaxMood
	}
	return mood
}
