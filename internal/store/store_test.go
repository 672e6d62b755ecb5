package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dx-tools/cli/internal/domain"
	"github.com/dx-tools/cli/internal/testutil"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewWithDB(testutil.NewTestDB(t))
}

func record(t *testing.T, s *Store, cmd string, exit int, started time.Time, args ...string) {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	require.NoError(t, s.Record(domain.RunRecord{
		ID:        cmd + "-" + started.Format(time.RFC3339Nano),
		Command:   cmd,
		Args:      args,
		ExitCode:  exit,
		Duration:  150 * time.Millisecond,
		StartedAt: started,
	}))
}

func TestRecordAndList(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	record(t, s, "cd", 0, base, "widgets")
	record(t, s, "clone", 1, base.Add(time.Minute), "acme/widgets")
	record(t, s, "cd", 0, base.Add(2*time.Minute))

	runs, err := s.List(domain.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Newest first.
	require.Equal(t, "cd", runs[0].Command)
	require.True(t, runs[0].StartedAt.After(runs[1].StartedAt))

	// Round trip of the row content.
	require.Equal(t, "clone", runs[1].Command)
	require.Equal(t, []string{"acme/widgets"}, runs[1].Args)
	require.Equal(t, 1, runs[1].ExitCode)
	require.Equal(t, 150*time.Millisecond, runs[1].Duration)
	require.True(t, runs[1].StartedAt.Equal(base.Add(time.Minute)))
}

func TestList_FilterByCommand(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	record(t, s, "cd", 0, base)
	record(t, s, "clone", 0, base.Add(time.Minute))

	runs, err := s.List(domain.RunFilter{Command: "clone"})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "clone", runs[0].Command)
}

func TestList_FailedOnly(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	record(t, s, "cd", 0, base)
	record(t, s, "up", 1, base.Add(time.Minute))
	record(t, s, "run", 2, base.Add(2*time.Minute))

	runs, err := s.List(domain.RunFilter{FailedOnly: true})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		require.NotZero(t, r.ExitCode)
	}
}

func TestList_SinceAndLimit(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		record(t, s, "cd", 0, base.Add(time.Duration(i)*time.Hour))
	}

	cutoff := base.Add(2 * time.Hour)
	runs, err := s.List(domain.RunFilter{Since: &cutoff})
	require.NoError(t, err)
	require.Len(t, runs, 3)

	runs, err = s.List(domain.RunFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
}

func TestPrune(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	record(t, s, "cd", 0, base)
	record(t, s, "cd", 0, base.Add(time.Hour))
	record(t, s, "cd", 0, base.Add(2*time.Hour))

	n, err := s.Prune(base.Add(90 * time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	runs, err := s.List(domain.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.True(t, runs[0].StartedAt.Equal(base.Add(2*time.Hour)))
}

func TestRecord_EmptyArgs(t *testing.T) {
	s := testStore(t)

	record(t, s, "version", 0, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC))

	runs, err := s.List(domain.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.NotNil(t, runs[0].Args)
	require.Empty(t, runs[0].Args)
}
