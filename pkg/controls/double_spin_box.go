package controls

// DoubleSpinBox adapts a floating-point spinner with a clamping range.
type DoubleSpinBox struct {
	base
	minimum float64
	maximum float64
	value   float64
	changed Signal
}

// NewDoubleSpinBox wraps a spinner with the given declared name and
// initial value. The default range is 0..99.99; adjust with SetRange.
func NewDoubleSpinBox(name string, value float64) *DoubleSpinBox {
	s := &DoubleSpinBox{base: base{name: name}, minimum: 0, maximum: 99.99}
	s.value = s.clamp(value)
	return s
}

func (s *DoubleSpinBox) Kind() *Kind {
	return KindDoubleSpinBox
}

// Minimum returns the lower bound of the range.
func (s *DoubleSpinBox) Minimum() float64 {
	return s.minimum
}

// Maximum returns the upper bound of the range.
func (s *DoubleSpinBox) Maximum() float64 {
	return s.maximum
}

// SetRange adjusts the bounds and re-clamps the current value.
func (s *DoubleSpinBox) SetRange(minimum, maximum float64) {
	s.minimum = minimum
	s.maximum = maximum
	s.SetValue(s.value)
}

// Value returns the current value.
func (s *DoubleSpinBox) Value() float64 {
	return s.value
}

// SetValue updates the value, clamped into range, emitting OnChanged when
// it changes.
func (s *DoubleSpinBox) SetValue(value float64) {
	value = s.clamp(value)
	if s.value == value {
		return
	}
	s.value = value
	s.emit(&s.changed)
}

func (s *DoubleSpinBox) clamp(value float64) float64 {
	if value < s.minimum {
		return s.minimum
	}
	if value > s.maximum {
		return s.maximum
	}
	return value
}

// OnChanged fires whenever the value changes.
func (s *DoubleSpinBox) OnChanged() *Signal {
	return &s.changed
}
