package stats

import "sort"

// ToughestDays selects the lowest completion days, breaking ties by lower mood.
func ToughestDays(points []ChartPoint, n int) []ChartPoint {
	candidates := make([]ChartPoint, len(points))
	copy(candidates, points)
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.CompletionRate != b.CompletionRate {
			return a.CompletionRate < b.CompletionRate
		}
		if a.Mood != b.Mood {
			return a.Mood < b.Mood
		}
		return a.Day < b.Day
	})
	return firstN(candidates, n)
}
