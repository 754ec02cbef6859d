// Package stats contains progress calculations and final report rendering.
package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/consistency21/internal/model"
)

const sparkChars = "▁▂▃▄▅▆▇█"

// Summary aggregates the daily reports of a session.
type Summary struct {
	DaysReported      int
	FullDays          int
	AverageMood       float64
	AverageCompletion float64
	BestStreak        int
}

// CompletedDays counts reports whose every activity was done.
func CompletedDays(reports map[int]model.DailyReport) int {
	count := 0
	for _, r := range reports {
		if r.Completed {
			count++
		}
	}
	return count
}

// ProgressPercent is the share of the program's days fully completed, rounded.
func ProgressPercent(reports map[int]model.DailyReport) int {
	return int(math.Round(float64(CompletedDays(reports)) / float64(model.ProgramDays) * 100))
}

// Summarize computes aggregate figures over all reports.
func Summarize(reports map[int]model.DailyReport, plan []model.DayPlan) Summary {
	points := BuildChart(reports, plan)
	s := Summary{DaysReported: len(points), FullDays: CompletedDays(reports)}
	if len(points) == 0 {
		return s
	}
	var mood, completion float64
	for _, p := range points {
		mood += float64(p.Mood)
		completion += p.CompletionRate
	}
	s.AverageMood = mood / float64(len(points))
	s.AverageCompletion = completion / float64(len(points))
	s.BestStreak = bestStreak(reports)
	return s
}

// bestStreak is the longest run of consecutive days with a completed report.
func bestStreak(reports map[int]model.DailyReport) int {
	days := make([]int, 0, len(reports))
	for day, r := range reports {
		if r.Completed {
			days = append(days, day)
		}
	}
	sort.Ints(days)
	best, run := 0, 0
	for i, day := range days {
		if i > 0 && day == days[i-1]+1 {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}

// Band classifies a consistency score for colouring.
type Band string

const (
	BandHigh Band = "high"
	BandMid  Band = "mid"
	BandLow  Band = "low"
)

// ScoreBand maps a score to high (>80), mid (>50) or low.
func ScoreBand(score int) Band {
	switch {
	case score > 80:
		return BandHigh
	case score > 50:
		return BandMid
	default:
		return BandLow
	}
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// Sparkline renders values on one line of block characters scaled to [lo, hi].
func Sparkline(values []float64, lo, hi float64) string {
	if len(values) == 0 {
		return ""
	}
	levels := []rune(sparkChars)
	if hi-lo < 1e-9 {
		return strings.Repeat(string(levels[len(levels)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - lo) / (hi - lo)
		idx := int(math.Round(pos * float64(len(levels)-1)))
		b.WriteRune(levels[min(max(idx, 0), len(levels)-1)])
	}
	return b.String()
}
