package controls

// SpinBox adapts an integer spinner with a clamping range.
type SpinBox struct {
	base
	minimum int
	maximum int
	value   int
	changed Signal
}

// NewSpinBox wraps a spinner with the given declared name and initial
// value. The default range is 0..99; adjust with SetRange.
func NewSpinBox(name string, value int) *SpinBox {
	s := &SpinBox{base: base{name: name}, minimum: 0, maximum: 99}
	s.value = s.clamp(value)
	return s
}

func (s *SpinBox) Kind() *Kind {
	return KindSpinBox
}

// Minimum returns the lower bound of the range.
func (s *SpinBox) Minimum() int {
	return s.minimum
}

// Maximum returns the upper bound of the range.
func (s *SpinBox) Maximum() int {
	return s.maximum
}

// SetRange adjusts the bounds and re-clamps the current value.
func (s *SpinBox) SetRange(minimum, maximum int) {
	s.minimum = minimum
	s.maximum = maximum
	s.SetValue(s.value)
}

// Value returns the current value.
func (s *SpinBox) Value() int {
	return s.value
}

// SetValue updates the value, clamped into range, emitting OnChanged when
// it changes.
func (s *SpinBox) SetValue(value int) {
	value = s.clamp(value)
	if s.value == value {
		return
	}
	s.value = value
	s.emit(&s.changed)
}

func (s *SpinBox) clamp(value int) int {
	if value < s.minimum {
		return s.minimum
	}
	if value > s.maximum {
		return s.maximum
	}
	return value
}

// OnChanged fires whenever the value changes.
func (s *SpinBox) OnChanged() *Signal {
	return &s.changed
}
