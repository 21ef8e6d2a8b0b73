package countdown

import "time"

// Clock supplies every time primitive the engine uses, so tests can drive
// ticks and deferred work without wall-clock waits.
type Clock interface {
	Now() time.Time
	Ticker(interval time.Duration) Ticker
	AfterFunc(delay time.Duration, fn func()) Timer
}

// Ticker is a cancellable repeating wake-up source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Timer is a cancellable deferred task. Stop is safe to call any number of
// times, including after the task has fired.
type Timer interface {
	Stop() bool
}

// SystemClock returns a Clock backed by the runtime timers.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Ticker(interval time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(interval)}
}

func (systemClock) AfterFunc(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t *systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *systemTicker) Stop() {
	t.ticker.Stop()
}
