// Online burst-length prediction for the Femto-Window policy: a bounded
// trailing window of completed-burst lengths per process, classified as
// stable, ramping, or volatile, folded into one shared quantum per cycle.

package sim

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// PredictorWindowSize bounds the trailing history window; oldest
	// entries fall out first.
	PredictorWindowSize = 5

	// MinQuantum and MaxQuantum clamp the per-cycle system quantum.
	MinQuantum = 5
	MaxQuantum = 40

	// stableRangeRatio: a window whose spread is under this fraction of
	// its mean is classified as stable.
	stableRangeRatio = 0.20

	// rampGrowthFactor scales the last observation when the window is
	// strictly increasing.
	rampGrowthFactor = 1.2
)

// PredictBurst forecasts the length of p's current burst from its recent
// completed-burst history, evaluated fresh every dispatch cycle. The
// forecast and volatility classification are recorded on the process as
// advisory fields.
//
// With no history the forecast is a warm-up default that grows with the
// work already observed this burst. Otherwise the trailing window (up to
// the last PredictorWindowSize entries) is classified:
//   - stable:  spread < 20% of mean → forecast the mean
//   - ramping: strictly increasing  → forecast last × 1.2
//   - volatile: anything else       → forecast the window maximum
//
// The forecast is floored at AccumulatedTime+2: a burst is never predicted
// shorter than the work it has already received.
func PredictBurst(p *Process) float64 {
	var predicted float64

	if len(p.BurstHistory) == 0 {
		predicted = float64(MinQuantum)
		if warm := float64(p.AccumulatedTime + MinQuantum); warm > predicted {
			predicted = warm
		}
		p.Volatile = false
	} else {
		window := trailingWindow(p.BurstHistory)
		mean := stat.Mean(window, nil)
		minV := floats.Min(window)
		maxV := floats.Max(window)

		switch {
		case maxV-minV < stableRangeRatio*mean:
			predicted = mean
			p.Volatile = false
		case strictlyIncreasing(window):
			predicted = window[len(window)-1] * rampGrowthFactor
			p.Volatile = false
		default:
			predicted = maxV
			p.Volatile = true
		}
	}

	if floor := float64(p.AccumulatedTime + 2); predicted < floor {
		predicted = floor
	}
	p.PredictedNext = predicted
	return predicted
}

// SystemQuantum derives the shared quantum for one dispatch cycle: the
// median of every ready process's individual forecast, truncated to an
// integer and clamped to [MinQuantum, MaxQuantum].
func SystemQuantum(ready []*Process) int {
	if len(ready) == 0 {
		return MinQuantum
	}
	preds := make([]float64, len(ready))
	for i, p := range ready {
		preds[i] = PredictBurst(p)
	}
	quantum := int(median(preds))
	if quantum < MinQuantum {
		quantum = MinQuantum
	}
	if quantum > MaxQuantum {
		quantum = MaxQuantum
	}
	return quantum
}

func trailingWindow(history []int) []float64 {
	start := 0
	if len(history) > PredictorWindowSize {
		start = len(history) - PredictorWindowSize
	}
	window := make([]float64, 0, PredictorWindowSize)
	for _, h := range history[start:] {
		window = append(window, float64(h))
	}
	return window
}

func strictlyIncreasing(window []float64) bool {
	for i := 1; i < len(window); i++ {
		if window[i-1] >= window[i] {
			return false
		}
	}
	return true
}

// median averages the two middle elements for even-sized inputs. gonum's
// empirical quantile picks one of them instead, so this stays hand-rolled.
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
