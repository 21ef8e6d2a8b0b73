package tray

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/manfredi31/timerapplication/internal/core/countdown"
	"github.com/manfredi31/timerapplication/internal/core/model"
)

// TestStatusLine checks the tooltip line for every engine state.
func TestStatusLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
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
			name: "running with label",
			snapshot: countdown.Snapshot{
				State:     countdown.StateRunning,
				Total:     5 * time.Minute,
				Remaining: 4*time.Minute + 30*time.Second,
				Label:     "Tea",
			},
			want: "Running: 04:30 (Tea)",
		},
		{
			name: "paused without label",
			snapshot: countdown.Snapshot{
				State:     countdown.StatePaused,
				Total:     time.Minute,
				Remaining: 10 * time.Second,
			},
			want: "Paused: 00:10",
		},
		{
			name: "alarming",
			snapshot: countdown.Snapshot{
				State: countdown.StateAlarming,
				Label: "Stand-up",
			},
			want: "Finished (Stand-up)",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, statusLine(tc.snapshot))
		})
	}
}

// TestSetPresetsBuildsMenu checks the quick-start submenu lists every preset
// and keeps the custom entry last.
func TestSetPresetsBuildsMenu(t *testing.T) {
	t.Parallel()

	var started []string
	manager := New(nil, "TimerApp", nil, Callbacks{
		OnStartPreset: func(preset model.Preset) {
			started = append(started, preset.Name)
		},
	})

	manager.SetPresets([]model.Preset{
		{Name: "Tea", Minutes: 3, Seconds: 30},
		{Name: "Pomodoro", Minutes: 25},
	})

	require.NotNil(t, manager.startItem.ChildMenu)
	items := manager.startItem.ChildMenu.Items
	require.Len(t, items, 3)
	require.Equal(t, "Tea (3:30)", items[0].Label)
	require.Equal(t, "Pomodoro (25:00)", items[1].Label)
	require.Equal(t, "Custom...", items[2].Label)

	items[1].Action()
	require.Equal(t, []string{"Pomodoro"}, started)
}
