package notify

import "fyne.io/fyne/v2"

// Sink posts desktop notifications through the running fyne application.
// It satisfies the countdown engine's notifier contract.
type Sink struct {
	app fyne.App
}

// NewSink creates a Sink bound to the given application.
func NewSink(app fyne.App) *Sink {
	return &Sink{app: app}
}

// Notify shows a desktop notification. Platforms without notification
// support drop it silently.
func (sink *Sink) Notify(title, body string) {
	if sink.app == nil {
		return
	}
	sink.app.SendNotification(fyne.NewNotification(title, body))
}
