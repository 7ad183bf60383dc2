package handlers

import (
	"github.com/go-drift/settings/pkg/controls"
	"github.com/go-drift/settings/pkg/store"
)

type selectorControl interface {
	controls.Control
	Count() int
	CurrentIndex() int
	SetCurrentIndex(index int)
	Editable() bool
	CurrentText() string
	SetCurrentText(text string)
	OnIndexChanged() *controls.Signal
	OnTextChanged() *controls.Signal
}

type tabControl interface {
	controls.Control
	Count() int
	CurrentIndex() int
	SetCurrentIndex(index int)
	OnChanged() *controls.Signal
}

type windowControl interface {
	controls.Control
	Geometry() controls.Geometry
	SetGeometry(g controls.Geometry)
	Maximized() bool
	SetMaximized(maximized bool)
}

// ComboBoxHandler persists a selector's index, and for editable combos the
// free text alongside it under namespaced sub-keys.
type ComboBoxHandler struct{}

func (ComboBoxHandler) Save(c controls.Control, st store.Store) error {
	cb, ok := c.(selectorControl)
	if !ok {
		return mismatch("handlers.ComboBox.Save", c)
	}
	key := cb.Name()
	st.Set(key+"/currentIndex", cb.CurrentIndex())
	if cb.Editable() {
		st.Set(key+"/currentText", cb.CurrentText())
	}
	return nil
}

func (ComboBoxHandler) Load(c controls.Control, st store.Store) error {
	cb, ok := c.(selectorControl)
	if !ok {
		return mismatch("handlers.ComboBox.Load", c)
	}
	key := cb.Name()
	index := st.GetInt(key+"/currentIndex", cb.CurrentIndex())
	switch {
	case index >= 0 && index < cb.Count():
		cb.SetCurrentIndex(index)
	case cb.Count() > 0:
		// Stored index no longer fits the item list; fall back to the
		// first item rather than leave the selection undefined.
		cb.SetCurrentIndex(0)
	}
	if cb.Editable() {
		cb.SetCurrentText(st.GetString(key+"/currentText", cb.CurrentText()))
	}
	return nil
}

func (ComboBoxHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	cb, ok := c.(selectorControl)
	if !ok {
		return false, mismatch("handlers.ComboBox.Compare", c)
	}
	key := cb.Name()
	if cb.CurrentIndex() != st.GetInt(key+"/currentIndex", cb.CurrentIndex()) {
		return true, nil
	}
	if cb.Editable() {
		return cb.CurrentText() != st.GetString(key+"/currentText", cb.CurrentText()), nil
	}
	return false, nil
}

func (ComboBoxHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	cb, ok := c.(selectorControl)
	if !ok {
		return nil
	}
	signals := []*controls.Signal{cb.OnIndexChanged()}
	if cb.Editable() {
		signals = append(signals, cb.OnTextChanged())
	}
	return signals
}

// TabBarHandler persists the selected tab index. Page contents are owned by
// the bar and are not visited independently.
type TabBarHandler struct{}

func (TabBarHandler) Save(c controls.Control, st store.Store) error {
	t, ok := c.(tabControl)
	if !ok {
		return mismatch("handlers.TabBar.Save", c)
	}
	st.Set(t.Name(), t.CurrentIndex())
	return nil
}

func (TabBarHandler) Load(c controls.Control, st store.Store) error {
	t, ok := c.(tabControl)
	if !ok {
		return mismatch("handlers.TabBar.Load", c)
	}
	index := st.GetInt(t.Name(), t.CurrentIndex())
	switch {
	case index >= 0 && index < t.Count():
		t.SetCurrentIndex(index)
	case t.Count() > 0:
		t.SetCurrentIndex(0)
	}
	return nil
}

func (TabBarHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	t, ok := c.(tabControl)
	if !ok {
		return false, mismatch("handlers.TabBar.Compare", c)
	}
	return t.CurrentIndex() != st.GetInt(t.Name(), t.CurrentIndex()), nil
}

func (TabBarHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	if t, ok := c.(tabControl); ok {
		return []*controls.Signal{t.OnChanged()}
	}
	return nil
}

// MainWindowHandler persists window geometry and state as a grouped
// multi-field entry. Windows carry no monitored signals: moving or
// resizing never marks the document dirty.
type MainWindowHandler struct{}

// windowKey falls back to a fixed key so an unnamed-but-reachable window
// still groups its fields consistently.
func windowKey(w controls.Control) string {
	if w.Name() != "" {
		return w.Name()
	}
	return "MainWindow"
}

func (MainWindowHandler) Save(c controls.Control, st store.Store) error {
	w, ok := c.(windowControl)
	if !ok {
		return mismatch("handlers.MainWindow.Save", c)
	}
	g := w.Geometry()
	st.BeginGroup(windowKey(w))
	st.Set("geometry/x", g.X)
	st.Set("geometry/y", g.Y)
	st.Set("geometry/width", g.Width)
	st.Set("geometry/height", g.Height)
	st.Set("state/maximized", w.Maximized())
	st.EndGroup()
	return nil
}

func (MainWindowHandler) Load(c controls.Control, st store.Store) error {
	w, ok := c.(windowControl)
	if !ok {
		return mismatch("handlers.MainWindow.Load", c)
	}
	g := w.Geometry()
	st.BeginGroup(windowKey(w))
	g.X = st.GetInt("geometry/x", g.X)
	g.Y = st.GetInt("geometry/y", g.Y)
	g.Width = st.GetInt("geometry/width", g.Width)
	g.Height = st.GetInt("geometry/height", g.Height)
	maximized := st.GetBool("state/maximized", w.Maximized())
	st.EndGroup()
	w.SetGeometry(g)
	w.SetMaximized(maximized)
	return nil
}

func (MainWindowHandler) Compare(c controls.Control, st store.Store) (bool, error) {
	w, ok := c.(windowControl)
	if !ok {
		return false, mismatch("handlers.MainWindow.Compare", c)
	}
	g := w.Geometry()
	st.BeginGroup(windowKey(w))
	defer st.EndGroup()
	if g.X != st.GetInt("geometry/x", g.X) {
		return true, nil
	}
	if g.Y != st.GetInt("geometry/y", g.Y) {
		return true, nil
	}
	if g.Width != st.GetInt("geometry/width", g.Width) {
		return true, nil
	}
	if g.Height != st.GetInt("geometry/height", g.Height) {
		return true, nil
	}
	return w.Maximized() != st.GetBool("state/maximized", w.Maximized()), nil
}

func (MainWindowHandler) SignalsToMonitor(c controls.Control) []*controls.Signal {
	return nil
}
