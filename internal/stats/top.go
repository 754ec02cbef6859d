package stats

import "sort"

// BestDays selects the highest completion days, breaking ties by higher mood.
func BestDays(points []ChartPoint, n int) []ChartPoint {
	candidates := make([]ChartPoint, len(points))
	copy(candidates, points)
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.CompletionRate != b.CompletionRate {
			return a.CompletionRate > b.CompletionRate
		}
		if a.Mood != b.Mood {
			return a.Mood > b.Mood
		}
		return a.Day < b.Day
	})
	return firstN(candidates, n)
}

func firstN(points []ChartPoint, n int) []ChartPoint {
	if n <= 0 || n > len(points) {
		n = len(points)
	}
	return points[:n]
}
