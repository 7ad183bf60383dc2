// Package handlers maps control kinds to the save/load/compare/monitor
// strategies the settings engine applies per node.
//
// A Registry resolves a control's handler in two phases: an exact match on
// the control's kind, then a walk up the kind's parent chain most-derived
// first. The distinction matters to traversal: an exact match claims the
// node and its children, an ancestor match handles the node generically
// while children are still visited independently.
package handlers

import (
	"fmt"

	"github.com/go-drift/settings/pkg/controls"
	"github.com/go-drift/settings/pkg/errors"
	"github.com/go-drift/settings/pkg/store"
)

// FloatTolerance is the absolute difference below which two floating-point
// values compare as equal.
const FloatTolerance = 1e-6

// Handler is the persistence strategy for one control kind. Implementations
// must be stateless and reentrant; a single instance is shared across all
// controls of the kind.
type Handler interface {
	// Save writes the control's current value into the store under its
	// declared name.
	Save(c controls.Control, st store.Store) error
	// Load reads the stored value and applies it to the control, falling
	// back to the control's current value when absent. Load must never
	// leave the control in an invalid state.
	Load(c controls.Control, st store.Store) error
	// Compare reports whether the control's current value differs from the
	// stored value.
	Compare(c controls.Control, st store.Store) (bool, error)
	// SignalsToMonitor returns the change signals whose firing marks the
	// document touched. May be empty.
	SignalsToMonitor(c controls.Control) []*controls.Signal
}

// Registry owns the kind-to-handler mapping.
type Registry struct {
	handlers map[*controls.Kind]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[*controls.Kind]Handler)}
}

// DefaultRegistry returns a registry pre-populated with the built-in
// handlers. Each call returns a fresh instance so per-manager overrides
// never leak.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(controls.KindMainWindow, MainWindowHandler{})
	r.Register(controls.KindCheckbox, CheckboxHandler{})
	r.Register(controls.KindTextField, TextFieldHandler{})
	r.Register(controls.KindTextArea, TextAreaHandler{})
	r.Register(controls.KindPushButton, PushButtonHandler{})
	r.Register(controls.KindRadioButton, RadioButtonHandler{})
	r.Register(controls.KindComboBox, ComboBoxHandler{})
	r.Register(controls.KindSpinBox, SpinBoxHandler{})
	r.Register(controls.KindDoubleSpinBox, DoubleSpinBoxHandler{})
	r.Register(controls.KindSlider, SliderHandler{})
	r.Register(controls.KindTabBar, TabBarHandler{})
	return r
}

// Register maps kind to h, overwriting any existing mapping including a
// built-in default. Registering a nil kind or handler is a programming
// error and panics.
func (r *Registry) Register(kind *controls.Kind, h Handler) {
	if kind == nil {
		panic("handlers: Register called with nil kind")
	}
	if h == nil {
		panic("handlers: Register called with nil handler")
	}
	r.handlers[kind] = h
}

// Lookup returns the handler registered for exactly kind.
func (r *Registry) Lookup(kind *controls.Kind) (Handler, bool) {
	h, ok := r.handlers[kind]
	return h, ok
}

// Resolve returns the handler for the control's most specific kind. exact
// reports whether the match was on the control's own kind rather than an
// ancestor. Returns (nil, false) when no kind in the chain is registered.
func (r *Registry) Resolve(c controls.Control) (h Handler, exact bool) {
	kind := c.Kind()
	if kind == nil {
		return nil, false
	}
	if h, ok := r.handlers[kind]; ok {
		return h, true
	}
	for cur := kind.Parent(); cur != nil; cur = cur.Parent() {
		if h, ok := r.handlers[cur]; ok {
			return h, false
		}
	}
	return nil, false
}

// mismatch builds the error for a handler invoked on a control of an
// unexpected concrete type.
func mismatch(op string, c controls.Control) error {
	return &errors.SettingsError{
		Op:      op,
		Kind:    errors.KindHandler,
		Control: c.Name(),
		Err:     fmt.Errorf("unexpected control type %T", c),
	}
}
