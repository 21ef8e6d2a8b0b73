package hotkeys

import (
	"errors"
	"fmt"
	"sync"

	"golang.design/x/hotkey"
)

// Callbacks bundles the actions reachable through global hotkeys.
type Callbacks struct {
	Start       func()
	TogglePause func()
	Stop        func()
}

// Manager owns the process-wide hotkey registrations.
type Manager struct {
	mu    sync.Mutex
	bound []*binding
}

type binding struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Apply replaces every registration with the three configured specs.
// Disabled specs are skipped. Binding keeps going past failures so one
// conflicting combo cannot take down the rest; the combined error is
// returned once every spec has been tried.
func (manager *Manager) Apply(start, togglePause, stop string, callbacks Callbacks) error {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	manager.unbindAllLocked()

	specs := []struct {
		spec   string
		action func()
	}{
		{spec: start, action: callbacks.Start},
		{spec: togglePause, action: callbacks.TogglePause},
		{spec: stop, action: callbacks.Stop},
	}

	var errs []error
	for _, item := range specs {
		if item.action == nil {
			continue
		}
		if err := manager.bindLocked(item.spec, item.action); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close unregisters everything.
func (manager *Manager) Close() {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.unbindAllLocked()
}

func (manager *Manager) bindLocked(spec string, action func()) error {
	combo, err := ParseCombo(spec)
	if err != nil {
		return err
	}
	if !combo.Enabled() {
		return nil
	}

	hk := hotkey.New(combo.Mods, combo.Key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey %s: %w", combo, err)
	}

	bound := &binding{hk: hk, stop: make(chan struct{})}
	manager.bound = append(manager.bound, bound)
	go bound.listen(action)
	return nil
}

func (manager *Manager) unbindAllLocked() {
	for _, bound := range manager.bound {
		close(bound.stop)
		bound.hk.Unregister()
	}
	manager.bound = nil
}

func (bound *binding) listen(action func()) {
	for {
		select {
		case <-bound.stop:
			return
		case _, ok := <-bound.hk.Keydown():
			if !ok {
				return
			}
			action()
		}
	}
}
