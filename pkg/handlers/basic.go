package handlers

import (
	"github.com/go-drift/settings/pkg/controls"
	"github.com/go-drift/settings/pkg/store"
)

// Handlers assert small per-kind interfaces rather than the concrete
// adapter structs, so a custom control embedding a built-in adapter keeps
// working with the handler its kind inherits.

type checkControl interface {
	controls.Control
	Checked() bool
	SetChecked(checked bool)
	OnChanged() *controls.Signal
}

type textControl interface {
	controls.Control
	Text() string
	SetText(text string)
	OnChanged() *controls.Signal
}

type toggleButton interface {
	controls.Control
	Checkable() bool
	Checked() bool
	SetChecked(checked bool)
	OnToggled() *controls.Signal
}

type radioControl interface {
	controls.Control
	Checked() bool
	SetChecked(checked bool)
	OnToggled() *controls.Signal
}

// CheckboxHandler persists a checkbox's checked state.
type CheckboxHandler struct{}

func (CheckboxHandler) Save(c controls.Control, st store.Store) error {
	cb, ok := c.(checkControl)
	if !ok {
		return mismatch("handlers.Checkbox.Save", c)
	}
	st.Set(cb.Name(), cb.Checked())
	return nil
}

func (CheckboxHandler) Load(c controls.Control, st store.Store) error {
	cb, ok := c.(checkControl)
	if !ok {
		return mismatch("handlers.Checkbox.Load", c)
	}
	cb.SetChecked(st.GetBool(cb.Name(), cb.Checked()))
	return nil
}

func (CheckboxHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	cb, ok := c.(checkControl)
	if !ok {
		return false, mismatch("handlers.Checkbox.Compare", c)
	}
	return cb.Checked() != st.GetBool(cb.Name(), cb.Checked()), nil
}

func (CheckboxHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	if cb, ok := c.(checkControl); ok {
		return []*controls.Signal{cb.OnChanged()}
	}
	return nil
}

// TextFieldHandler persists a single-line text input.
type TextFieldHandler struct{}

func (TextFieldHandler) Save(c controls.Control, st store.Store) error {
	f, ok := c.(textControl)
	if !ok {
		return mismatch("handlers.TextField.Save", c)
	}
	st.Set(f.Name(), f.Text())
	return nil
}

func (TextFieldHandler) Load(c controls.Control, st store.Store) error {
	f, ok := c.(textControl)
	if !ok {
		return mismatch("handlers.TextField.Load", c)
	}
	f.SetText(st.GetString(f.Name(), f.Text()))
	return nil
}

func (TextFieldHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	f, ok := c.(textControl)
	if !ok {
		return false, mismatch("handlers.TextField.Compare", c)
	}
	return f.Text() != st.GetString(f.Name(), f.Text()), nil
}

func (TextFieldHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	if f, ok := c.(textControl); ok {
		return []*controls.Signal{f.OnChanged()}
	}
	return nil
}

// TextAreaHandler persists a multi-line text editor's plain content.
type TextAreaHandler struct{}

func (TextAreaHandler) Save(c controls.Control, st store.Store) error {
	a, ok := c.(textControl)
	if !ok {
		return mismatch("handlers.TextArea.Save", c)
	}
	st.Set(a.Name(), a.Text())
	return nil
}

func (TextAreaHandler) Load(c controls.Control, st store.Store) error {
	a, ok := c.(textControl)
	if !ok {
		return mismatch("handlers.TextArea.Load", c)
	}
	a.SetText(st.GetString(a.Name(), a.Text()))
	return nil
}

func (TextAreaHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	a, ok := c.(textControl)
	if !ok {
		return false, mismatch("handlers.TextArea.Compare", c)
	}
	return a.Text() != st.GetString(a.Name(), a.Text()), nil
}

func (TextAreaHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	if a, ok := c.(textControl); ok {
		return []*controls.Signal{a.OnChanged()}
	}
	return nil
}

// PushButtonHandler persists a push button's toggle state. A button that is
// not in checkable mode carries no persistable state, so every operation is
// a no-op for it.
type PushButtonHandler struct{}

func (PushButtonHandler) Save(c controls.Control, st store.Store) error {
	b, ok := c.(toggleButton)
	if !ok {
		return mismatch("handlers.PushButton.Save", c)
	}
	if b.Checkable() {
		st.Set(b.Name(), b.Checked())
	}
	return nil
}

func (PushButtonHandler) Load(c controls.Control, st store.Store) error {
	b, ok := c.(toggleButton)
	if !ok {
		return mismatch("handlers.PushButton.Load", c)
	}
	if b.Checkable() {
		b.SetChecked(st.GetBool(b.Name(), b.Checked()))
	}
	return nil
}

func (PushButtonHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	b, ok := c.(toggleButton)
	if !ok {
		return false, mismatch("handlers.PushButton.Compare", c)
	}
	if !b.Checkable() {
		return false, nil
	}
	return b.Checked() != st.GetBool(b.Name(), b.Checked()), nil
}

func (PushButtonHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	if b, ok := c.(toggleButton); ok && b.Checkable() {
		return []*controls.Signal{b.OnToggled()}
	}
	return nil
}

// RadioButtonHandler persists an exclusive-choice button. Unlike most
// controls, a checked radio with no stored value compares as changed: its
// unset state is semantically meaningful within the exclusive group.
type RadioButtonHandler struct{}

func (RadioButtonHandler) Save(c controls.Control, st store.Store) error {
	r, ok := c.(radioControl)
	if !ok {
		return mismatch("handlers.RadioButton.Save", c)
	}
	st.Set(r.Name(), r.Checked())
	return nil
}

func (RadioButtonHandler) Load(c controls.Control, st store.Store) error {
	r, ok := c.(radioControl)
	if !ok {
		return mismatch("handlers.RadioButton.Load", c)
	}
	// Only apply a stored value. Loading defaults must not uncheck a radio
	// that is checked by construction.
	if st.Contains(r.Name()) {
		r.SetChecked(st.GetBool(r.Name(), r.Checked()))
	}
	return nil
}

func (RadioButtonHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	r, ok := c.(radioControl)
	if !ok {
		return false, mismatch("handlers.RadioButton.Compare", c)
	}
	if st.Contains(r.Name()) {
		return r.Checked() != st.GetBool(r.Name(), false), nil
	}
	return r.Checked(), nil
}

func (RadioButtonHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	if r, ok := c.(radioControl); ok {
		return []*controls.Signal{r.OnToggled()}
	}
	return nil
}
