package controls

// RadioButton adapts an exclusive-choice button. Exclusivity among a group
// is the surrounding UI's concern; the adapter only tracks this button's
// own checked state.
type RadioButton struct {
	base
	checked bool
	toggled Signal
}

// NewRadioButton wraps a radio button with the given declared name and
// initial state.
func NewRadioButton(name string, checked bool) *RadioButton {
	return &RadioButton{base: base{name: name}, checked: checked}
}

func (r *RadioButton) Kind() *Kind {
	return KindRadioButton
}

// Checked returns the current state.
func (r *RadioButton) Checked() bool {
	return r.checked
}

// SetChecked updates the state, emitting OnToggled when it changes.
func (r *RadioButton) SetChecked(checked bool) {
	if r.checked == checked {
		return
	}
	r.checked = checked
	r.emit(&r.toggled)
}

// OnToggled fires whenever the checked state changes.
func (r *RadioButton) OnToggled() *Signal {
	return &r.toggled
}
