package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Spec)
		ok     bool
	}{
		{"default", func(s *Spec) {}, true},
		{"zero processes", func(s *Spec) { s.Processes = 0 }, false},
		{"zero min bursts", func(s *Spec) { s.MinBursts = 0 }, false},
		{"max below min bursts", func(s *Spec) { s.MaxBursts = s.MinBursts - 1 }, false},
		{"zero gap", func(s *Spec) { s.MaxGap = 0 }, false},
		{"zero min priority", func(s *Spec) { s.MinPriority = 0 }, false},
		{"max below min priority", func(s *Spec) { s.MaxPriority = 0 }, false},
		{"single burst count", func(s *Spec) { s.MinBursts, s.MaxBursts = 4, 4 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := DefaultSpec()
			tc.mutate(&spec)
			err := spec.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workload.yaml")
	content := "seed: 7\nprocesses: 5\nmin_bursts: 2\nmax_bursts: 3\nmax_arrival_gap: 2\nmin_priority: 1\nmax_priority: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	spec, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), spec.Seed)
	assert.Equal(t, 5, spec.Processes)
	assert.Equal(t, 3, spec.MaxPriority)
}

func TestLoadSpec_MissingFile(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSpec_InvalidContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("processes: -3\n"), 0o644))

	_, err := LoadSpec(path)
	assert.Error(t, err)
}
