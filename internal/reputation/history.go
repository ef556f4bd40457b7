package reputation

import (
	"github.com/skingem1/agent-reputation-dashboard/internal/types"
)

const (
	seedOffsetDrift = 100
	seedOffsetDaily = 200
)

// GenerateHistory produces a synthetic 30-day score series ending near
// overall, plus its trend classification. The series seeds a few points
// below the current overall and random-walks toward it: a small seeded
// daily delta, a constant per-agent drift whose sign is chosen once,
// and a gentle mean-reversion pull. The final point is deliberately not
// snapped to overall; convergence is biased, never forced.
func GenerateHistory(overall int, seedBase int64, p Params) ([]int, types.Trend) {
	drift := p.HistoryDrift
	if Seeded(seedBase+seedOffsetDrift) < 0.5 {
		drift = -drift
	}

	history := make([]int, p.HistoryDays)
	v := float64(overall) - p.HistorySeedBelow
	for day := 0; day < p.HistoryDays; day++ {
		delta := noise(seedBase+seedOffsetDaily+int64(day), p.HistoryDailyDelta)
		v += delta + drift + (float64(overall)-v)*p.HistoryReversion
		history[day] = Clamp(v, p.HistoryFloor, p.HistoryCeil)
		v = float64(history[day])
	}
	return history, ClassifyTrend(history, p)
}

// ClassifyTrend compares the mean of the last window against the mean
// of the window preceding it. Differences inside the threshold band are
// stable.
func ClassifyTrend(history []int, p Params) types.Trend {
	w := p.TrendWindow
	if len(history) < 2*w {
		return types.TrendStable
	}
	last := windowMean(history[len(history)-w:])
	prev := windowMean(history[len(history)-2*w : len(history)-w])

	switch diff := last - prev; {
	case diff > p.TrendThreshold:
		return types.TrendUp
	case diff < -p.TrendThreshold:
		return types.TrendDown
	default:
		return types.TrendStable
	}
}

func windowMean(window []int) float64 {
	sum := 0
	for _, v := range window {
		sum += v
	}
	return float64(sum) / float64(len(window))
}
