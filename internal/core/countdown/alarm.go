package countdown

import "time"

// SoundPlayer starts alarm playback. Play returns the duration of the sound
// so the engine can size the alarm grace period; a zero duration or an error
// makes the engine fall back to system beeps.
type SoundPlayer interface {
	Play(soundID string) (time.Duration, error)
	Beep() error
	Silence()
}

// Notifier posts a user-facing notification. Failures are the notifier's
// problem; the engine never inspects them.
type Notifier interface {
	Notify(title, body string)
}

const (
	// notificationTitle is fixed so stacked notifications group together.
	notificationTitle = "Time's up!"

	// graceFactor scales the sound duration into the window the alarm stays
	// up before auto-reset.
	graceFactor = 3

	// Fallback alarm shape when no sound file is playable: a short run of
	// system beeps, then a fixed grace window.
	fallbackBeepCount   = 5
	fallbackBeepSpacing = 500 * time.Millisecond
	fallbackGrace       = 3 * time.Second
)

type nopPlayer struct{}

func (nopPlayer) Play(string) (time.Duration, error) { return 0, nil }
func (nopPlayer) Beep() error                        { return nil }
func (nopPlayer) Silence()                           {}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}
