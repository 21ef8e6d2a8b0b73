package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/manfredi31/timerapplication/internal/core/model"
)

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	started := time.Date(2025, time.March, 1, 14, 3, 0, 0, time.Local)

	record := model.SessionRecord{
		Label:     "Tea",
		Total:     210 * time.Second,
		Elapsed:   210 * time.Second,
		StartedAt: started,
		EndedAt:   started.Add(210 * time.Second),
		Outcome:   model.OutcomeCompleted,
	}
	require.Equal(t, "Mar 1 14:03 · Tea · 03:30 of 03:30 · completed", formatRecord(record))

	record.Label = ""
	record.Elapsed = 45 * time.Second
	record.Outcome = model.OutcomeStopped
	require.Equal(t, "Mar 1 14:03 · Untitled · 00:45 of 03:30 · stopped", formatRecord(record))
}

func TestFormatTotals(t *testing.T) {
	t.Parallel()

	require.Equal(t, "No sessions today", formatTotals(0, 0))
	require.Equal(t, "Today: 1 session · 25:00 focused", formatTotals(1, 25*time.Minute))
	require.Equal(t, "Today: 3 sessions · 1:15:00 focused", formatTotals(3, 75*time.Minute))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	require.Equal(t, "00:00", formatDuration(0))
	require.Equal(t, "00:59", formatDuration(59*time.Second))
	require.Equal(t, "05:00", formatDuration(5*time.Minute))
	require.Equal(t, "1:01:01", formatDuration(3661*time.Second))
	require.Equal(t, "00:00", formatDuration(-time.Second))
}

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 1, 18, 45, 12, 999, time.UTC)
	start := startOfDay(now)

	require.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, now.Location(), start.Location())
}
