package panel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/manfredi31/timerapplication/internal/core/countdown"
)

func TestPanelCaption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		snapshot countdown.Snapshot
		want     string
	}{
		{
			name:     "idle shows ready",
			snapshot: countdown.Snapshot{State: countdown.StateIdle},
			want:     "Ready",
		},
		{
			name:     "running with label",
			snapshot: countdown.Snapshot{State: countdown.StateRunning, Label: "Tea", Remaining: time.Minute},
			want:     "Tea",
		},
		{
			name:     "running without label",
			snapshot: countdown.Snapshot{State: countdown.StateRunning, Remaining: time.Minute},
			want:     "Countdown",
		},
		{
			name:     "alarming without label",
			snapshot: countdown.Snapshot{State: countdown.StateAlarming},
			want:     "Time's up!",
		},
		{
			name:     "alarming keeps label",
			snapshot: countdown.Snapshot{State: countdown.StateAlarming, Label: "Eggs"},
			want:     "Eggs",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.want, panelCaption(testCase.snapshot))
		})
	}
}

func TestButtonCaptions(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Pause", pauseCaption(countdown.StateRunning))
	require.Equal(t, "Resume", pauseCaption(countdown.StatePaused))
	require.Equal(t, "Pause", pauseCaption(countdown.StateIdle))

	require.Equal(t, "Stop", stopCaption(countdown.StateRunning))
	require.Equal(t, "Stop", stopCaption(countdown.StatePaused))
	require.Equal(t, "Dismiss", stopCaption(countdown.StateAlarming))
}

func TestStateColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, runningColor, stateColor(countdown.StateRunning))
	require.Equal(t, pausedColor, stateColor(countdown.StatePaused))
	require.Equal(t, alarmColor, stateColor(countdown.StateAlarming))
	require.Equal(t, idleColor, stateColor(countdown.StateIdle))
}
