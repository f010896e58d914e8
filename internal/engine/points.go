package engine

// PointsPerActivity is awarded once per activity per day.
const PointsPerActivity = 10

// ProgressPercent returns completed/total as a percentage in [0, 100].
func ProgressPercent(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return completed * 100 / total
}
