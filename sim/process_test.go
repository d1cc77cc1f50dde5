package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcess_Valid(t *testing.T) {
	p, err := NewProcess("P0", 3, []int{4, 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, StateQueued, p.State)
	assert.Equal(t, 4, p.RemainingTime)
	assert.Equal(t, TimeUnset, p.StartTime)
	assert.Equal(t, TimeUnset, p.CompletionTime)
	assert.Empty(t, p.BurstHistory)
}

func TestNewProcess_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		id       string
		arrival  int
		bursts   []int
		priority int
	}{
		{"empty id", "", 0, []int{1}, 1},
		{"negative arrival", "P0", -1, []int{1}, 1},
		{"empty bursts", "P0", 0, nil, 1},
		{"zero burst", "P0", 0, []int{3, 0}, 1},
		{"negative burst", "P0", 0, []int{-2}, 1},
		{"zero priority", "P0", 0, []int{1}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProcess(tc.id, tc.arrival, tc.bursts, tc.priority)
			assert.Error(t, err)
		})
	}
}

func TestClone_Independence(t *testing.T) {
	p := mkProc(t, "P0", 0, []int{5, 3}, 2)
	c := p.Clone()

	c.RemainingTime = 0
	c.Bursts[0] = 99
	c.BurstHistory = append(c.BurstHistory, 7)

	assert.Equal(t, 5, p.RemainingTime)
	assert.Equal(t, 5, p.Bursts[0])
	assert.Empty(t, p.BurstHistory)
}

func TestTotalBurstTime(t *testing.T) {
	p := mkProc(t, "P0", 0, []int{5, 3, 2}, 1)
	assert.Equal(t, 10, p.TotalBurstTime())
}

func TestValidateWorkload(t *testing.T) {
	good := []*Process{mkProc(t, "P0", 0, []int{1}, 1)}
	assert.NoError(t, ValidateWorkload(good))

	assert.Error(t, ValidateWorkload(nil), "empty workload")

	dup := []*Process{
		mkProc(t, "P0", 0, []int{1}, 1),
		mkProc(t, "P0", 1, []int{2}, 1),
	}
	assert.Error(t, ValidateWorkload(dup), "duplicate IDs")

	// Bypass NewProcess to simulate a corrupted descriptor.
	bad := []*Process{{ID: "P0", Bursts: []int{}}}
	assert.Error(t, ValidateWorkload(bad), "empty burst sequence")
}
