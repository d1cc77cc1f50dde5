package sim

import (
	"math"
	"testing"
)

func predProc(t *testing.T, history []int, accumulated int) *Process {
	t.Helper()
	p := mkProc(t, "P", 0, []int{100}, 1)
	p.BurstHistory = append(p.BurstHistory, history...)
	p.AccumulatedTime = accumulated
	return p
}

func TestPredictBurst_EmptyHistoryWarmup(t *testing.T) {
	// No history: forecast grows with work already observed this burst.
	cases := []struct {
		accumulated int
		want        float64
	}{
		{0, 5},
		{3, 8},
		{7, 12},
	}
	for _, tc := range cases {
		p := predProc(t, nil, tc.accumulated)
		if got := PredictBurst(p); got != tc.want {
			t.Errorf("accumulated=%d: predicted %.1f, want %.1f", tc.accumulated, got, tc.want)
		}
		if p.Volatile {
			t.Errorf("accumulated=%d: volatile flag set on warm-up", tc.accumulated)
		}
	}
}

func TestPredictBurst_StableWindow(t *testing.T) {
	// Spread 3 < 20% of mean 50.4 → forecast the mean.
	p := predProc(t, []int{50, 52, 51, 49, 50}, 0)
	got := PredictBurst(p)
	if math.Abs(got-50.4) > 1e-9 {
		t.Errorf("predicted %.2f, want 50.4", got)
	}
	if p.Volatile {
		t.Error("stable window flagged volatile")
	}
}

func TestPredictBurst_RampingWindow(t *testing.T) {
	// Strictly increasing and not stable → last × 1.2.
	p := predProc(t, []int{5, 10, 15, 20, 25}, 0)
	got := PredictBurst(p)
	if math.Abs(got-30.0) > 1e-9 {
		t.Errorf("predicted %.2f, want 30.0", got)
	}
	if p.Volatile {
		t.Error("ramping window flagged volatile")
	}
}

func TestPredictBurst_VolatileWindow(t *testing.T) {
	// Wide spread, not monotonic → forecast the maximum.
	p := predProc(t, []int{2, 40, 3, 45, 2}, 0)
	got := PredictBurst(p)
	if got != 45 {
		t.Errorf("predicted %.2f, want 45", got)
	}
	if !p.Volatile {
		t.Error("volatile window not flagged")
	}
}

func TestPredictBurst_FloorNeverBelowObservedWork(t *testing.T) {
	// Stable forecast of 3 is floored to accumulated+2.
	p := predProc(t, []int{3, 3, 3, 3, 3}, 6)
	if got := PredictBurst(p); got != 8 {
		t.Errorf("predicted %.2f, want 8 (floor)", got)
	}
}

func TestPredictBurst_UsesTrailingWindowOnly(t *testing.T) {
	// Only the last five entries matter: [1 2 3 4 5] is ramping.
	p := predProc(t, []int{100, 100, 1, 2, 3, 4, 5}, 0)
	got := PredictBurst(p)
	if math.Abs(got-6.0) > 1e-9 {
		t.Errorf("predicted %.2f, want 6.0", got)
	}
}

func TestSystemQuantum_EmptyReadySet(t *testing.T) {
	if got := SystemQuantum(nil); got != MinQuantum {
		t.Errorf("quantum = %d, want %d", got, MinQuantum)
	}
}

func TestSystemQuantum_MedianTruncated(t *testing.T) {
	// Forecasts 10 and 15 → median 12.5 → truncated to 12.
	ready := []*Process{
		predProc(t, []int{10, 10, 10, 10, 10}, 0),
		predProc(t, []int{15, 15, 15, 15, 15}, 0),
	}
	ready[1].ID = "Q"
	if got := SystemQuantum(ready); got != 12 {
		t.Errorf("quantum = %d, want 12", got)
	}
}

func TestSystemQuantum_ClampBounds(t *testing.T) {
	high := []*Process{predProc(t, []int{100, 100, 100, 100, 100}, 0)}
	if got := SystemQuantum(high); got != MaxQuantum {
		t.Errorf("high quantum = %d, want %d", got, MaxQuantum)
	}

	low := []*Process{predProc(t, []int{1, 1, 1, 1, 1}, 0)}
	if got := SystemQuantum(low); got != MinQuantum {
		t.Errorf("low quantum = %d, want %d", got, MinQuantum)
	}
}

func TestSystemQuantum_AlwaysInRange(t *testing.T) {
	// Mixed extreme forecasts never escape [MinQuantum, MaxQuantum].
	histories := [][]int{
		nil,
		{1},
		{1, 1, 1, 1, 1},
		{500, 500, 500, 500, 500},
		{1, 2, 3, 4, 5},
		{80, 2, 90, 3, 70},
	}
	ready := make([]*Process, 0, len(histories))
	for i, h := range histories {
		p := predProc(t, h, i)
		p.ID = string(rune('A' + i))
		ready = append(ready, p)
	}
	for n := 1; n <= len(ready); n++ {
		q := SystemQuantum(ready[:n])
		if q < MinQuantum || q > MaxQuantum {
			t.Errorf("n=%d: quantum %d outside [%d, %d]", n, q, MinQuantum, MaxQuantum)
		}
	}
}
