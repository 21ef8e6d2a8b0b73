package popover

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/manfredi31/timerapplication/internal/core/countdown"
)

func TestStatusText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		snapshot countdown.Snapshot
		want     string
	}{
		{
			name:     "idle",
			snapshot: countdown.Snapshot{State: countdown.StateIdle},
			want:     "Ready",
		},
		{
			name:     "running without label",
			snapshot: countdown.Snapshot{State: countdown.StateRunning, Remaining: time.Minute},
			want:     "Counting down",
		},
		{
			name:     "running with label",
			snapshot: countdown.Snapshot{State: countdown.StateRunning, Label: "Tea"},
			want:     "Tea",
		},
		{
			name:     "paused with label",
			snapshot: countdown.Snapshot{State: countdown.StatePaused, Label: "Tea"},
			want:     "Paused · Tea",
		},
		{
			name:     "alarming without label",
			snapshot: countdown.Snapshot{State: countdown.StateAlarming},
			want:     "Time's up!",
		},
		{
			name:     "alarming with label",
			snapshot: countdown.Snapshot{State: countdown.StateAlarming, Label: "Eggs"},
			want:     "Time's up! · Eggs",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.want, statusText(testCase.snapshot))
		})
	}
}

func TestFormatPick(t *testing.T) {
	t.Parallel()

	require.Equal(t, "05:00", formatPick(5))
	require.Equal(t, "25:00", formatPick(25))
	require.Equal(t, "59:00", formatPick(59))
	require.Equal(t, "1:00:00", formatPick(60))
	require.Equal(t, "1:30:00", formatPick(90))
	require.Equal(t, "2:00:00", formatPick(120))
}

func TestClampMinutes(t *testing.T) {
	t.Parallel()

	require.Equal(t, minMinutes, clampMinutes(0))
	require.Equal(t, minMinutes, clampMinutes(-10))
	require.Equal(t, 25, clampMinutes(25))
	require.Equal(t, maxMinutes, clampMinutes(500))
}

func TestPauseCaption(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Pause", pauseCaption(countdown.StateRunning))
	require.Equal(t, "Resume", pauseCaption(countdown.StatePaused))
	require.Equal(t, "Pause", pauseCaption(countdown.StateAlarming))
}
