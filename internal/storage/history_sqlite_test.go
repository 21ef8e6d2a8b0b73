package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/manfredi31/timerapplication/internal/core/model"
	"github.com/stretchr/testify/require"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()

	history, err := OpenHistory(filepath.Join(t.TempDir(), "TimerApp", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, history.Close()) })
	return history
}

// TestHistoryRecordAndRecent checks inserts assign IDs and read back newest
// first with fields intact.
func TestHistoryRecordAndRecent(t *testing.T) {
	t.Parallel()

	history := openTestHistory(t)
	startedAt := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	first := model.SessionRecord{
		Label:     "Tea",
		Total:     210 * time.Second,
		Elapsed:   210 * time.Second,
		StartedAt: startedAt,
		EndedAt:   startedAt.Add(210 * time.Second),
		Outcome:   model.OutcomeCompleted,
	}
	second := model.SessionRecord{
		Label:     "Stand-up",
		Total:     10 * time.Minute,
		Elapsed:   4 * time.Minute,
		StartedAt: startedAt.Add(time.Hour),
		EndedAt:   startedAt.Add(time.Hour + 4*time.Minute),
		Outcome:   model.OutcomeStopped,
	}

	require.NoError(t, history.Record(&first))
	require.NoError(t, history.Record(&second))
	require.Positive(t, first.ID)
	require.Greater(t, second.ID, first.ID)

	records, err := history.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, "Stand-up", records[0].Label)
	require.Equal(t, model.OutcomeStopped, records[0].Outcome)
	require.Equal(t, 4*time.Minute, records[0].Elapsed)

	require.Equal(t, "Tea", records[1].Label)
	require.Equal(t, model.OutcomeCompleted, records[1].Outcome)
	require.Equal(t, 210*time.Second, records[1].Total)
	require.True(t, records[1].StartedAt.Equal(first.StartedAt))
	require.True(t, records[1].EndedAt.Equal(first.EndedAt))
}

// TestHistoryRecentLimit checks the row cap and the default for bad limits.
func TestHistoryRecentLimit(t *testing.T) {
	t.Parallel()

	history := openTestHistory(t)
	endedAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		record := model.SessionRecord{
			Label:     "run",
			Total:     time.Minute,
			Elapsed:   time.Minute,
			StartedAt: endedAt.Add(-time.Minute),
			EndedAt:   endedAt,
			Outcome:   model.OutcomeCompleted,
		}
		require.NoError(t, history.Record(&record))
	}

	records, err := history.Recent(2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	records, err = history.Recent(0)
	require.NoError(t, err)
	require.Len(t, records, 5)
}

// TestHistoryTotalsSince checks the aggregate respects the cutoff.
func TestHistoryTotalsSince(t *testing.T) {
	t.Parallel()

	history := openTestHistory(t)
	cutoff := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	old := model.SessionRecord{
		Label:     "yesterday",
		Total:     time.Hour,
		Elapsed:   time.Hour,
		StartedAt: cutoff.Add(-2 * time.Hour),
		EndedAt:   cutoff.Add(-time.Hour),
		Outcome:   model.OutcomeCompleted,
	}
	fresh := model.SessionRecord{
		Label:     "today",
		Total:     30 * time.Minute,
		Elapsed:   20 * time.Minute,
		StartedAt: cutoff.Add(time.Hour),
		EndedAt:   cutoff.Add(time.Hour + 20*time.Minute),
		Outcome:   model.OutcomeStopped,
	}
	require.NoError(t, history.Record(&old))
	require.NoError(t, history.Record(&fresh))

	sessions, elapsed, err := history.TotalsSince(cutoff)
	require.NoError(t, err)
	require.Equal(t, 1, sessions)
	require.Equal(t, 20*time.Minute, elapsed)

	sessions, elapsed, err = history.TotalsSince(cutoff.Add(-24 * time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, sessions)
	require.Equal(t, time.Hour+20*time.Minute, elapsed)
}

// TestHistoryClear checks the wipe leaves an empty, still usable log.
func TestHistoryClear(t *testing.T) {
	t.Parallel()

	history := openTestHistory(t)
	record := model.SessionRecord{
		Label:     "gone",
		Total:     time.Minute,
		Elapsed:   time.Minute,
		StartedAt: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		EndedAt:   time.Date(2025, 6, 2, 8, 1, 0, 0, time.UTC),
		Outcome:   model.OutcomeCompleted,
	}
	require.NoError(t, history.Record(&record))

	require.NoError(t, history.Clear())

	records, err := history.Recent(10)
	require.NoError(t, err)
	require.Empty(t, records)

	require.NoError(t, history.Record(&record))
	records, err = history.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
}
