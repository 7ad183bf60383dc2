package settings

import (
	"github.com/go-drift/settings/pkg/controls"
	"github.com/go-drift/settings/pkg/errors"
	"github.com/go-drift/settings/pkg/handlers"
)

// IsTouched reports whether the in-memory state has diverged from the last
// save or load. It is a cheap, signal-driven heuristic; HasUnsavedChanges
// is the authoritative recomputation.
func (m *Manager) IsTouched() bool {
	return m.touched
}

// MarkTouched forces the touched flag on. The transition notification is
// edge-triggered: marking an already-touched manager emits nothing.
func (m *Manager) MarkTouched() {
	m.setTouched(true)
}

// MarkUntouched forces the touched flag off. Idempotent like MarkTouched.
func (m *Manager) MarkUntouched() {
	m.setTouched(false)
}

func (m *Manager) setTouched(touched bool) {
	if m.touched == touched {
		return
	}
	m.touched = touched
	for _, fn := range m.touchedListeners {
		fn(touched)
	}
}

// OnTouchedChanged adds a listener fired once per touched transition and
// returns a function that removes it.
func (m *Manager) OnTouchedChanged(fn func(touched bool)) func() {
	id := m.nextListenerID
	m.nextListenerID++
	m.touchedListeners[id] = fn
	return func() {
		delete(m.touchedListeners, id)
	}
}

// controlChanged handles a monitored signal firing from a control.
func (m *Manager) controlChanged(handle int) {
	if m.skipped[handle] {
		return
	}
	m.setTouched(true)
}

// connectControl subscribes to the control's monitored signals. Already-
// connected and ineligible controls are left alone, so repeated connect
// traversals never stack subscriptions.
func (m *Manager) connectControl(c controls.Control, h handlers.Handler) {
	handle := m.handleFor(c)
	if len(m.subs[handle]) > 0 {
		return
	}
	if m.shouldSkip(c) {
		return
	}

	signals := collectSignals(c, h)
	if len(signals) == 0 {
		return
	}
	cancels := make([]func(), 0, len(signals))
	for _, sig := range signals {
		cancels = append(cancels, sig.Connect(func() {
			m.controlChanged(handle)
		}))
	}
	m.subs[handle] = cancels
}

// collectSignals queries the handler with panic recovery; a faulty
// SignalsToMonitor must not abort the connect traversal.
func collectSignals(c controls.Control, h handlers.Handler) (signals []*controls.Signal) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "settings.collectSignals",
				Value:      r,
				Control:    c.Name(),
				StackTrace: errors.CaptureStack(),
			})
			signals = nil
		}
	}()
	for _, sig := range h.SignalsToMonitor(c) {
		if sig != nil {
			signals = append(signals, sig)
		}
	}
	return signals
}

// disconnectControl removes the control's subscriptions.
func (m *Manager) disconnectControl(handle int) {
	for _, cancel := range m.subs[handle] {
		cancel()
	}
	delete(m.subs, handle)
}

// disconnectAll tears down every subscription. Called at the start of each
// load so repeated loads never accumulate duplicates.
func (m *Manager) disconnectAll() {
	for handle := range m.subs {
		for _, cancel := range m.subs[handle] {
			cancel()
		}
	}
	m.subs = make(map[int][]func())
}
