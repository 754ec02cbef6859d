package stats

import (
	"math"
	"testing"

	"github.com/verte-zerg/consistency21/internal/model"
)

func TestCompletedDaysAndProgress(t *testing.T) {
	state := sampleState()
	if got := CompletedDays(state.Reports); got != 3 {
		t.Fatalf("expected 3 completed days, got %d", got)
	}
	if got := ProgressPercent(state.Reports); got != 14 {
		t.Fatalf("expected 14%% progress, got %d", got)
	}
	if got := ProgressPercent(nil); got != 0 {
		t.Fatalf("expected 0%% progress without reports, got %d", got)
	}
}

func TestSummarize(t *testing.T) {
	state := sampleState()
	s := Summarize(state.Reports, state.Plan)
	if s.DaysReported != 4 || s.FullDays != 3 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if math.Abs(s.AverageMood-7) > 1e-9 {
		t.Fatalf("expected average mood 7, got %.2f", s.AverageMood)
	}
	if math.Abs(s.AverageCompletion-81.25) > 1e-9 {
		t.Fatalf("expected average completion 81.25, got %.2f", s.AverageCompletion)
	}
	if s.BestStreak != 2 {
		t.Fatalf("expected best streak 2, got %d", s.BestStreak)
	}

	empty := Summarize(map[int]model.DailyReport{}, state.Plan)
	if empty != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", empty)
	}
}

func TestScoreBand(t *testing.T) {
	cases := map[int]Band{100: BandHigh, 81: BandHigh, 80: BandMid, 51: BandMid, 50: BandLow, 0: BandLow}
	for score, want := range cases {
		if got := ScoreBand(score); got != want {
			t.Fatalf("score %d: expected %s, got %s", score, want, got)
		}
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{3, 6, 9, 12}, 2)
	want := []float64{3, 4.5, 7.5, 10.5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: expected %.2f, got %.2f", i, want[i], got[i])
		}
	}
	same := MovingAverage([]float64{1, 2}, 1)
	if same[0] != 1 || same[1] != 2 {
		t.Fatalf("window 1 should copy values, got %v", same)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{1, 10}, 1, 10); got != "▁█" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{5, 5, 5}, 5, 5); got != "▅▅▅" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if got := Sparkline(nil, 0, 1); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
}
