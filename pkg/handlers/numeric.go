package handlers

import (
	"math"

	"github.com/go-drift/settings/pkg/controls"
	"github.com/go-drift/settings/pkg/errors"
	"github.com/go-drift/settings/pkg/store"
)

type intSpinner interface {
	controls.Control
	Value() int
	SetValue(value int)
	OnChanged() *controls.Signal
}

type floatSpinner interface {
	controls.Control
	Value() float64
	SetValue(value float64)
	OnChanged() *controls.Signal
}

type rangedControl interface {
	controls.Control
	Value() int
	SetValue(value int)
	Minimum() int
	Maximum() int
	OnChanged() *controls.Signal
}

// SpinBoxHandler persists an integer spinner's value.
type SpinBoxHandler struct{}

func (SpinBoxHandler) Save(c controls.Control, st store.Store) error {
	s, ok := c.(intSpinner)
	if !ok {
		return mismatch("handlers.SpinBox.Save", c)
	}
	st.Set(s.Name(), s.Value())
	return nil
}

func (SpinBoxHandler) Load(c controls.Control, st store.Store) error {
	s, ok := c.(intSpinner)
	if !ok {
		return mismatch("handlers.SpinBox.Load", c)
	}
	s.SetValue(st.GetInt(s.Name(), s.Value()))
	return nil
}

func (SpinBoxHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	s, ok := c.(intSpinner)
	if !ok {
		return false, mismatch("handlers.SpinBox.Compare", c)
	}
	return s.Value() != st.GetInt(s.Name(), s.Value()), nil
}

func (SpinBoxHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	if s, ok := c.(intSpinner); ok {
		return []*controls.Signal{s.OnChanged()}
	}
	return nil
}

// DoubleSpinBoxHandler persists a floating-point spinner's value.
// Comparison uses FloatTolerance rather than exact equality.
type DoubleSpinBoxHandler struct{}

func (DoubleSpinBoxHandler) Save(c controls.Control, st store.Store) error {
	s, ok := c.(floatSpinner)
	if !ok {
		return mismatch("handlers.DoubleSpinBox.Save", c)
	}
	st.Set(s.Name(), s.Value())
	return nil
}

func (DoubleSpinBoxHandler) Load(c controls.Control, st store.Store) error {
	s, ok := c.(floatSpinner)
	if !ok {
		return mismatch("handlers.DoubleSpinBox.Load", c)
	}
	s.SetValue(st.GetFloat(s.Name(), s.Value()))
	return nil
}

func (DoubleSpinBoxHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	s, ok := c.(floatSpinner)
	if !ok {
		return false, mismatch("handlers.DoubleSpinBox.Compare", c)
	}
	saved := st.GetFloat(s.Name(), s.Value())
	return math.Abs(s.Value()-saved) > FloatTolerance, nil
}

func (DoubleSpinBoxHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	if s, ok := c.(floatSpinner); ok {
		return []*controls.Signal{s.OnChanged()}
	}
	return nil
}

// SliderHandler persists a ranged integer control's value. A stored value
// outside the control's current range is rejected with a warning and the
// control keeps its current value.
type SliderHandler struct{}

func (SliderHandler) Save(c controls.Control, st store.Store) error {
	s, ok := c.(rangedControl)
	if !ok {
		return mismatch("handlers.Slider.Save", c)
	}
	st.Set(s.Name(), s.Value())
	return nil
}

func (SliderHandler) Load(c controls.Control, st store.Store) error {
	s, ok := c.(rangedControl)
	if !ok {
		return mismatch("handlers.Slider.Load", c)
	}
	value := st.GetInt(s.Name(), s.Value())
	if value < s.Minimum() || value > s.Maximum() {
		l := errors.Logger()
		l.Warn().
			Str("control", s.Name()).
			Int("value", value).
			Int("min", s.Minimum()).
			Int("max", s.Maximum()).
			Msg("stored slider value out of range, keeping current value")
		return nil
	}
	s.SetValue(value)
	return nil
}

func (SliderHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	s, ok := c.(rangedControl)
	if !ok {
		return false, mismatch("handlers.Slider.Compare", c)
	}
	return s.Value() != st.GetInt(s.Name(), s.Value()), nil
}

func (SliderHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	if s, ok := c.(rangedControl); ok {
		return []*controls.Signal{s.OnChanged()}
	}
	return nil
}
