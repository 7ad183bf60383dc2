package controls

// Slider adapts a ranged integer control. Values are clamped to
// [minimum, maximum] on set, matching toolkit slider behavior.
type Slider struct {
	base
	minimum int
	maximum int
	value   int
	changed Signal
}

// NewSlider wraps a slider with the given declared name, range and
// initial value. The initial value is clamped into range.
func NewSlider(name string, minimum, maximum, value int) *Slider {
	s := &Slider{base: base{name: name}, minimum: minimum, maximum: maximum}
	s.value = s.clamp(value)
	return s
}

func (s *Slider) Kind() *Kind {
	return KindSlider
}

// Minimum returns the lower bound of the range.
func (s *Slider) Minimum() int {
	return s.minimum
}

// Maximum returns the upper bound of the range.
func (s *Slider) Maximum() int {
	return s.maximum
}

// Value returns the current value.
func (s *Slider) Value() int {
	return s.value
}

// SetValue updates the value, clamped into range, emitting OnChanged when
// it changes.
func (s *Slider) SetValue(value int) {
	value = s.clamp(value)
	if s.value == value {
		return
	}
	s.value = value
	s.emit(&s.changed)
}

func (s *Slider) clamp(value int) int {
	if value < s.minimum {
		return s.minimum
	}
	if value > s.maximum {
		return s.maximum
	}
	return value
}

// OnChanged fires whenever the value changes.
func (s *Slider) OnChanged() *Signal {
	return &s.changed
}
