package controls

// PushButton adapts a button that may act as a toggle. Only a checkable
// button carries persistable state; a plain push button has none.
type PushButton struct {
	base
	checkable bool
	checked   bool
	toggled   Signal
}

// NewPushButton wraps a non-checkable push button.
func NewPushButton(name string) *PushButton {
	return &PushButton{base: base{name: name}}
}

func (b *PushButton) Kind() *Kind {
	return KindPushButton
}

// Checkable reports whether the button acts as a toggle.
func (b *PushButton) Checkable() bool {
	return b.checkable
}

// SetCheckable switches the button between push and toggle mode.
// Leaving toggle mode clears the checked state without emitting.
func (b *PushButton) SetCheckable(checkable bool) {
	b.checkable = checkable
	if !checkable {
		b.checked = false
	}
}

// Checked returns the toggle state. Always false when not checkable.
func (b *PushButton) Checked() bool {
	return b.checked
}

// SetChecked updates the toggle state. Ignored when not checkable.
func (b *PushButton) SetChecked(checked bool) {
	if !b.checkable || b.checked == checked {
		return
	}
	b.checked = checked
	b.emit(&b.toggled)
}

// OnToggled fires whenever the toggle state changes.
func (b *PushButton) OnToggled() *Signal {
	return &b.toggled
}
