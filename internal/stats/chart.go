package stats

import (
	"sort"

	"github.com/verte-zerg/consistency21/internal/model"
)

const (
	fallbackTotalActivities = 5
	fallbackDivisor         = 1
)

// ChartPoint is one reported day as shown on the final report charts.
type ChartPoint struct {
	Day             int
	Mood            int
	Activities      int
	TotalActivities int
	CompletionRate  float64
}

// BuildChart converts reports into chart points ordered by day. A day without
// activities in the plan counts 5 total activities and a divisor of 1.
func BuildChart(reports map[int]model.DailyReport, plan []model.DayPlan) []ChartPoint {
	planned := make(map[int]int, len(plan))
	for _, d := range plan {
		planned[d.Day] = len(d.Activities)
	}
	points := make([]ChartPoint, 0, len(reports))
	for _, r := range reports {
		count := planned[r.Day]
		total, divisor := count, count
		if count == 0 {
			total, divisor = fallbackTotalActivities, fallbackDivisor
		}
		done := len(r.ActivitiesCompleted)
		points = append(points, ChartPoint{
			Day:             r.Day,
			Mood:            r.Mood,
			Activities:      done,
			TotalActivities: total,
			CompletionRate:  float64(done) / float64(divisor) * 100,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})
	return points
}

// MoodSeries extracts the mood of each point.
func MoodSeries(points []ChartPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = float64(p.Mood)
	}
	return out
}

// CompletionSeries extracts the completion rate of each point.
func CompletionSeries(points []ChartPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.CompletionRate
	}
	return out
}
