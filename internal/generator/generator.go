// Package generator fills a plan with simulated daily reports.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/consistency21/internal/model"
)

const (
	demoMoodMin  = 5
	demoMoodSpan = 5
)

// Generator produces randomized demo reports.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// DemoReports builds one report for every day of plan. Each day checks a random
// prefix of its activities and is completed only when the prefix covers them all.
func (g *Generator) DemoReports(plan []model.DayPlan, now time.Time) map[int]model.DailyReport {
	reports := make(map[int]model.DailyReport, len(plan))
	ts := now.UnixMilli()
	for _, day := range plan {
		count := g.rnd.Intn(len(day.Activities) + 1)
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		complete := count == len(day.Activities)
		reports[day.Day] = model.DailyReport{
			Day:                 day.Day,
			Completed:           complete,
			ActivitiesCompleted: indices,
			Notes:               demoNote(day.Day, complete),
			Mood:                demoMoodMin + g.rnd.Intn(demoMoodSpan),
			Timestamp:           ts,
		}
	}
	return reports
}

func demoNote(day int, complete bool) string {
	feeling := "okay"
	if complete {
		feeling = "great"
	}
	return fmt.Sprintf("Demo note for day %d. Felt %s.", day, feeling)
}
