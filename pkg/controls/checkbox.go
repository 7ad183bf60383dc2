package controls

// Checkbox adapts a two-state check control.
//
// SetChecked mutates the live value and emits OnChanged only on an actual
// transition, matching toggle semantics in desktop toolkits.
type Checkbox struct {
	base
	checked bool
	changed Signal
}

// NewCheckbox wraps a check control with the given declared name and
// initial value.
func NewCheckbox(name string, checked bool) *Checkbox {
	return &Checkbox{base: base{name: name}, checked: checked}
}

func (c *Checkbox) Kind() *Kind {
	return KindCheckbox
}

// Checked returns the current value.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked updates the value, emitting OnChanged when it changes.
func (c *Checkbox) SetChecked(checked bool) {
	if c.checked == checked {
		return
	}
	c.checked = checked
	c.emit(&c.changed)
}

// OnChanged fires whenever the checked state changes.
func (c *Checkbox) OnChanged() *Signal {
	return &c.changed
}
