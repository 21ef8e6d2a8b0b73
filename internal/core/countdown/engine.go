package countdown

import (
	"errors"
	"sync"
	"time"
)

// ErrInvalidDuration indicates a start request with a non-positive duration.
var ErrInvalidDuration = errors.New("countdown duration must be positive")

// ErrClosed indicates the engine has been shut down.
var ErrClosed = errors.New("countdown engine closed")

// Options contains runtime options for the Engine.
type Options struct {
	// TickInterval is the wall-clock distance between countdown decrements.
	// Zero means one second.
	TickInterval time.Duration
	// AlarmSound is the initial sound identifier handed to the SoundPlayer
	// when a countdown expires.
	AlarmSound string
}

// Engine is the countdown state machine. It owns the full timer lifecycle:
// ticking, expiry, the alarm sequence, and the auto-reset back to idle.
// All methods are safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	options  Options
	clock    Clock
	player   SoundPlayer
	notifier Notifier

	state     State
	total     time.Duration
	remaining time.Duration
	label     string
	startedAt time.Time
	soundID   string

	// session identifies one start-to-idle lifetime. Deferred callbacks
	// capture it and bail out when it no longer matches.
	session uint64
	// tickGen invalidates ticker goroutines that outlive their arming.
	tickGen  uint64
	tickStop chan struct{}

	resetTimer Timer
	beepTimer  Timer
	beepsLeft  int

	subscribers []chan Event
	closed      bool
}

// New creates an Engine wired to the given sound player and notifier.
// Either dependency may be nil, in which case that alarm step is skipped.
func New(player SoundPlayer, notifier Notifier, options Options) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if player == nil {
		player = nopPlayer{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}

	return &Engine{
		options:  options,
		clock:    SystemClock(),
		player:   player,
		notifier: notifier,
		state:    StateIdle,
		soundID:  options.AlarmSound,
	}
}

// SetClock injects an alternate time source. Call before the first Start.
func (engine *Engine) SetClock(clock Clock) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if clock != nil {
		engine.clock = clock
	}
}

// SetAlarmSound changes the sound identifier used by future expiries.
func (engine *Engine) SetAlarmSound(soundID string) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.soundID = soundID
}

// Subscribe registers a new observer channel. When the buffer is full the
// oldest pending event is dropped so the freshest snapshot always lands.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.subscribers = append(engine.subscribers, ch)
	engine.mu.Unlock()
	return ch
}

// Snapshot returns the current timer state.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// Start begins a countdown for the given duration, replacing whatever the
// engine was doing before. Sub-second precision is truncated away.
func (engine *Engine) Start(total time.Duration, label string) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.closed {
		return ErrClosed
	}
	total = total.Truncate(time.Second)
	if total <= 0 {
		return ErrInvalidDuration
	}

	engine.cancelAlarmLocked()
	engine.cancelTickerLocked()

	engine.session++
	engine.state = StateRunning
	engine.total = total
	engine.remaining = total
	engine.label = label
	engine.startedAt = engine.clock.Now()

	engine.armTickerLocked()
	engine.emitLocked(EventStateChange)
	return nil
}

// Pause freezes a running countdown. Any other state is left untouched.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.pauseLocked()
}

// Resume continues a paused countdown. Any other state is left untouched.
func (engine *Engine) Resume() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.resumeLocked()
}

// TogglePause pauses a running countdown or resumes a paused one.
func (engine *Engine) TogglePause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	switch engine.state {
	case StateRunning:
		engine.pauseLocked()
	case StatePaused:
		engine.resumeLocked()
	}
}

// Stop returns the engine to idle from any state, silencing an active alarm.
// Stopping an idle engine is a no-op.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.stopLocked()
}

// Close stops the engine and closes all subscriber channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.closed {
		return
	}
	engine.stopLocked()
	engine.closed = true
	for _, ch := range engine.subscribers {
		close(ch)
	}
	engine.subscribers = nil
}

func (engine *Engine) pauseLocked() {
	if engine.state != StateRunning {
		return
	}
	engine.cancelTickerLocked()
	engine.state = StatePaused
	engine.emitLocked(EventStateChange)
}

func (engine *Engine) resumeLocked() {
	if engine.state != StatePaused {
		return
	}
	engine.state = StateRunning
	engine.armTickerLocked()
	engine.emitLocked(EventStateChange)
}

func (engine *Engine) stopLocked() {
	if engine.state == StateIdle {
		return
	}

	engine.cancelTickerLocked()
	engine.cancelAlarmLocked()

	engine.state = StateIdle
	engine.total = 0
	engine.remaining = 0
	engine.label = ""
	engine.startedAt = time.Time{}

	engine.emitLocked(EventStateChange)
}

func (engine *Engine) armTickerLocked() {
	stop := make(chan struct{})
	engine.tickStop = stop
	go engine.runTicker(engine.clock.Ticker(engine.options.TickInterval), engine.tickGen, stop)
}

// cancelTickerLocked tears down the ticker goroutine and bumps the tick
// generation so a tick already in flight lands as a no-op.
func (engine *Engine) cancelTickerLocked() {
	if engine.tickStop != nil {
		close(engine.tickStop)
		engine.tickStop = nil
	}
	engine.tickGen++
}

func (engine *Engine) runTicker(ticker Ticker, gen uint64, stop <-chan struct{}) {
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			engine.tick(gen)
		}
	}
}

func (engine *Engine) tick(gen uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if gen != engine.tickGen || engine.state != StateRunning {
		return
	}

	if engine.remaining > engine.options.TickInterval {
		engine.remaining -= engine.options.TickInterval
		engine.emitLocked(EventProgress)
		return
	}

	// The tick that exhausts the countdown also raises the alarm, so an
	// n second timer completes after exactly n ticks.
	engine.remaining = 0
	engine.expireLocked()
}

func (engine *Engine) expireLocked() {
	engine.cancelTickerLocked()
	engine.state = StateAlarming
	engine.emitLocked(EventStateChange)

	grace := fallbackGrace
	soundDuration, err := engine.player.Play(engine.soundID)
	if err != nil || soundDuration <= 0 {
		engine.startFallbackBeepsLocked()
	} else {
		grace = soundDuration * graceFactor
	}

	engine.notifyLocked()

	session := engine.session
	engine.resetTimer = engine.clock.AfterFunc(grace, func() {
		engine.autoReset(session)
	})
}

func (engine *Engine) notifyLocked() {
	body := "Your countdown has finished."
	if engine.label != "" {
		body = "Finished: " + engine.label
	}
	engine.notifier.Notify(notificationTitle, body)
}

func (engine *Engine) startFallbackBeepsLocked() {
	engine.beepsLeft = fallbackBeepCount
	engine.beepLocked()
}

func (engine *Engine) beepLocked() {
	if engine.beepsLeft <= 0 || engine.state != StateAlarming {
		return
	}
	engine.beepsLeft--
	_ = engine.player.Beep()

	if engine.beepsLeft == 0 {
		engine.beepTimer = nil
		return
	}
	session := engine.session
	engine.beepTimer = engine.clock.AfterFunc(fallbackBeepSpacing, func() {
		engine.beep(session)
	})
}

// beep is the deferred half of the fallback chain. The session and state
// checks keep a late callback from sounding into a timer it does not own.
func (engine *Engine) beep(session uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if session != engine.session || engine.state != StateAlarming {
		return
	}
	engine.beepLocked()
}

// autoReset fires after the alarm grace period and performs the same
// transition as an explicit Stop, unless something pre-empted the alarm.
func (engine *Engine) autoReset(session uint64) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if session != engine.session || engine.state != StateAlarming {
		return
	}
	engine.stopLocked()
}

func (engine *Engine) cancelAlarmLocked() {
	if engine.resetTimer != nil {
		engine.resetTimer.Stop()
		engine.resetTimer = nil
	}
	if engine.beepTimer != nil {
		engine.beepTimer.Stop()
		engine.beepTimer = nil
	}
	engine.beepsLeft = 0
	if engine.state == StateAlarming {
		engine.player.Silence()
	}
}

func (engine *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		State:     engine.state,
		Total:     engine.total,
		Remaining: engine.remaining,
		Label:     engine.label,
		StartedAt: engine.startedAt,
	}
}

func (engine *Engine) emitLocked(eventType EventType) {
	event := Event{
		Type:     eventType,
		Snapshot: engine.snapshotLocked(),
		At:       engine.clock.Now(),
	}
	for _, ch := range engine.subscribers {
		select {
		case ch <- event:
		default:
			// Full buffer: evict the oldest pending event and retry so a
			// slow observer still converges on the latest state.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- event:
			default:
			}
		}
	}
}
