package tui

import (
	"testing"

	"github.com/verte-zerg/consistency21/internal/model"
)

func TestMoveSelection(t *testing.T) {
	cases := []struct {
		name             string
		selected, dx, dy int
		want             int
	}{
		{name: "right", selected: 1, dx: 1, want: 2},
		{name: "left at start", selected: 1, dx: -1, want: 1},
		{name: "down", selected: 3, dy: 1, want: 10},
		{name: "down past end", selected: 18, dy: 1, want: 18},
		{name: "up", selected: 10, dy: -1, want: 3},
		{name: "right at end", selected: 21, dx: 1, want: 21},
	}
	for _, tc := range cases {
		if got := moveSelection(tc.selected, 21, 7, tc.dx, tc.dy); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestGridColumns(t *testing.T) {
	if got := gridColumns(0); got != maxGridCols {
		t.Fatalf("expected %d columns for unknown width, got %d", maxGridCols, got)
	}
	if got := gridColumns(10); got != 1 {
		t.Fatalf("expected 1 column for narrow width, got %d", got)
	}
	if got := gridColumns(500); got != maxGridCols {
		t.Fatalf("expected columns capped at %d, got %d", maxGridCols, got)
	}
}

func TestStatusOf(t *testing.T) {
	reports := map[int]model.DailyReport{
		1: {Day: 1, Completed: true},
		2: {Day: 2, ActivitiesCompleted: []int{0}},
	}
	if statusOf(reports, 1) != dayDone {
		t.Fatalf("expected day 1 done")
	}
	if statusOf(reports, 2) != dayPartial {
		t.Fatalf("expected day 2 partial")
	}
	if statusOf(reports, 3) != dayOpen {
		t.Fatalf("expected day 3 open")
	}
}
