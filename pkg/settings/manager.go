package settings

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-drift/settings/pkg/controls"
	"github.com/go-drift/settings/pkg/errors"
	"github.com/go-drift/settings/pkg/handlers"
	"github.com/go-drift/settings/pkg/store"
)

// Manager is the persistence facade for one control tree.
//
// Controls are identified internally by stable integer handles assigned at
// discovery time; the skip set and the subscription table are keyed by
// handle so a control destroyed out of band can never alias a live one.
type Manager struct {
	root     controls.Control
	store    store.Store
	registry *handlers.Registry
	log      zerolog.Logger

	touched          bool
	touchedListeners map[int]func(bool)
	nextListenerID   int

	handles    map[controls.Control]int
	nextHandle int
	skipped    map[int]bool
	subs       map[int][]func()
}

// Option configures a Manager at construction.
type Option func(*Manager)

// WithLogger routes the manager's log output through l.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// WithRegistry replaces the default handler registry.
func WithRegistry(r *handlers.Registry) Option {
	return func(m *Manager) {
		m.registry = r
	}
}

// NewManager creates a manager bound to the given root control and default
// backing store.
func NewManager(root controls.Control, st store.Store, opts ...Option) *Manager {
	m := &Manager{
		root:             root,
		store:            st,
		registry:         handlers.DefaultRegistry(),
		log:              errors.Logger(),
		touchedListeners: make(map[int]func(bool)),
		handles:          make(map[controls.Control]int),
		skipped:          make(map[int]bool),
		subs:             make(map[int][]func()),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterHandler maps a control kind to a handler, overriding any default.
// Panics on a nil kind or handler; that is a programming error, not a
// runtime condition.
func (m *Manager) RegisterHandler(kind *controls.Kind, h handlers.Handler) {
	m.registry.Register(kind, h)
	m.log.Debug().Str("kind", kind.Name()).Msg("registered handler")
}

// SaveState saves the control tree into the default store.
func (m *Manager) SaveState() error {
	m.log.Info().Msg("saving state to default store")
	return m.performSave(m.store)
}

// LoadState loads the control tree from the default store.
func (m *Manager) LoadState() error {
	m.log.Info().Msg("loading state from default store")
	m.performLoad(m.store)
	return nil
}

// SaveToFile saves the control tree into a transient store at path.
func (m *Manager) SaveToFile(path string) error {
	m.log.Info().Str("path", path).Msg("saving state to file")
	return m.performSave(store.OpenFile(path))
}

// LoadFromFile loads the control tree from a transient store at path.
//
// When the store reports an error status nothing is applied: existing
// subscriptions are torn down, the touched flag resets to clean, and no
// control is mutated.
func (m *Manager) LoadFromFile(path string) error {
	m.log.Info().Str("path", path).Msg("loading state from file")
	st := store.OpenFile(path)
	if status := st.Status(); status != store.StatusOK {
		m.log.Warn().Str("path", path).Stringer("status", status).
			Msg("cannot load settings file, state unchanged")
		m.disconnectAll()
		m.MarkUntouched()
		return &errors.SettingsError{
			Op:   "settings.LoadFromFile",
			Kind: errors.KindStore,
			Err:  fmt.Errorf("store %q unusable: %s", path, status),
		}
	}
	m.performLoad(st)
	return nil
}

// performSave walks the tree with the save operation, flushes st and
// resets the touched flag. A store flush failure is logged and reported,
// not propagated as a partial state.
func (m *Manager) performSave(st store.Store) error {
	if m.root == nil {
		m.log.Warn().Msg("no root control to save")
	} else {
		m.walk(m.root, st, opSave, nil)
	}
	err := st.Sync()
	if err != nil {
		errors.Report(&errors.SettingsError{
			Op:   "settings.performSave",
			Kind: errors.KindStore,
			Err:  err,
		})
	}
	m.MarkUntouched()
	return err
}

// performLoad tears down existing subscriptions, applies stored values with
// per-control signal blocking, reconnects monitoring and resets the touched
// flag. Subscriptions are always rebuilt from scratch so repeated loads
// never accumulate duplicates.
func (m *Manager) performLoad(st store.Store) {
	m.disconnectAll()
	if m.root == nil {
		m.log.Warn().Msg("no root control to load")
	} else {
		m.walk(m.root, st, opLoad, nil)
		m.walk(m.root, nil, opConnect, nil)
	}
	m.MarkUntouched()
}

// SkipControl excludes c from persistence, comparison and monitoring.
func (m *Manager) SkipControl(c controls.Control) {
	h := m.handleFor(c)
	if m.skipped[h] {
		return
	}
	m.log.Debug().Str("control", c.Name()).Str("kind", c.Kind().Name()).Msg("skipping control")
	m.skipped[h] = true
	m.disconnectControl(h)
}

// UnskipControl re-includes c. Monitoring is re-established immediately
// when the control is otherwise eligible.
func (m *Manager) UnskipControl(c controls.Control) {
	h := m.handleFor(c)
	if !m.skipped[h] {
		return
	}
	m.log.Debug().Str("control", c.Name()).Str("kind", c.Kind().Name()).Msg("unskipping control")
	delete(m.skipped, h)
	if c.Name() == "" {
		return
	}
	if handler, _ := m.registry.Resolve(c); handler != nil {
		m.connectControl(c, handler)
	}
}

// ManagedControls returns every control that currently participates in
// persistence: named, not skipped, and owned by a resolvable handler.
func (m *Manager) ManagedControls() []controls.Control {
	var managed []controls.Control
	if m.root != nil {
		m.walk(m.root, nil, opCollect, &managed)
	}
	return managed
}

// handleFor returns c's stable handle, assigning one on first sight.
func (m *Manager) handleFor(c controls.Control) int {
	if h, ok := m.handles[c]; ok {
		return h
	}
	h := m.nextHandle
	m.nextHandle++
	m.handles[c] = h
	return h
}

// shouldSkip reports whether the per-node operation must not run on c.
// The universal exclusion rule: an unnamed control is never persisted,
// compared, or monitored.
func (m *Manager) shouldSkip(c controls.Control) bool {
	if c.Name() == "" {
		return true
	}
	return m.skipped[m.handleFor(c)]
}
