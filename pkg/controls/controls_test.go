package controls

import "testing"

func TestKindDerivesFrom(t *testing.T) {
	if !KindCheckbox.DerivesFrom(KindButton) {
		t.Error("checkbox should derive from button")
	}
	if !KindCheckbox.DerivesFrom(KindControl) {
		t.Error("checkbox should derive from the root kind")
	}
	if !KindSlider.DerivesFrom(KindSlider) {
		t.Error("a kind derives from itself")
	}
	if KindSlider.DerivesFrom(KindButton) {
		t.Error("slider should not derive from button")
	}

	custom := NewKind("volume-dial", KindSlider)
	if !custom.DerivesFrom(KindSlider) || !custom.DerivesFrom(KindControl) {
		t.Error("custom kind should derive through its parent chain")
	}
}

func TestCheckboxEmitsOnChangeOnly(t *testing.T) {
	cb := NewCheckbox("auto_save", false)
	fired := 0
	cb.OnChanged().Connect(func() { fired++ })

	cb.SetChecked(true)
	cb.SetChecked(true) // no transition
	cb.SetChecked(false)
	if fired != 2 {
		t.Errorf("expected 2 change emissions, got %d", fired)
	}
}

func TestCheckboxBlockedSignals(t *testing.T) {
	cb := NewCheckbox("auto_save", false)
	fired := 0
	cb.OnChanged().Connect(func() { fired++ })

	cb.SetBlockSignals(true)
	cb.SetChecked(true)
	cb.SetBlockSignals(false)

	if !cb.Checked() {
		t.Error("value must still be applied while signals are blocked")
	}
	if fired != 0 {
		t.Errorf("expected no emissions while blocked, got %d", fired)
	}
}

func TestSliderClampsOnSet(t *testing.T) {
	s := NewSlider("volume", 0, 100, 50)
	s.SetValue(250)
	if s.Value() != 100 {
		t.Errorf("value = %d, want clamped 100", s.Value())
	}
	s.SetValue(-5)
	if s.Value() != 0 {
		t.Errorf("value = %d, want clamped 0", s.Value())
	}
}

func TestSpinBoxRange(t *testing.T) {
	s := NewSpinBox("count", 10)
	s.SetRange(0, 5)
	if s.Value() != 5 {
		t.Errorf("value after shrinking range = %d, want 5", s.Value())
	}
}

func TestComboBoxIndexAndText(t *testing.T) {
	c := NewComboBox("mode", "fast", "balanced", "thorough")
	if c.CurrentIndex() != 0 || c.CurrentText() != "fast" {
		t.Fatalf("initial selection = %d/%q", c.CurrentIndex(), c.CurrentText())
	}

	indexFired, textFired := 0, 0
	c.OnIndexChanged().Connect(func() { indexFired++ })
	c.OnTextChanged().Connect(func() { textFired++ })

	c.SetCurrentIndex(2)
	if c.CurrentText() != "thorough" {
		t.Errorf("text after select = %q", c.CurrentText())
	}
	c.SetCurrentIndex(99) // ignored
	if c.CurrentIndex() != 2 {
		t.Errorf("out-of-range select changed index to %d", c.CurrentIndex())
	}
	if indexFired != 1 || textFired != 1 {
		t.Errorf("emissions = %d/%d, want 1/1", indexFired, textFired)
	}
}

func TestComboBoxEditableText(t *testing.T) {
	c := NewComboBox("search", "a", "b")
	c.SetEditable(true)
	c.SetCurrentText("custom query")
	if c.CurrentText() != "custom query" {
		t.Errorf("editable text = %q", c.CurrentText())
	}
	if c.CurrentIndex() != 0 {
		t.Errorf("free text should not move the index, got %d", c.CurrentIndex())
	}
}

func TestComboBoxNonEditableTextSelects(t *testing.T) {
	c := NewComboBox("mode", "a", "b")
	c.SetCurrentText("b")
	if c.CurrentIndex() != 1 {
		t.Errorf("matching text should select item, index = %d", c.CurrentIndex())
	}
	c.SetCurrentText("zzz") // no matching item, ignored
	if c.CurrentText() != "b" {
		t.Errorf("non-matching text mutated text to %q", c.CurrentText())
	}
}

func TestPushButtonCheckableGate(t *testing.T) {
	b := NewPushButton("record")
	fired := 0
	b.OnToggled().Connect(func() { fired++ })

	b.SetChecked(true) // not checkable: ignored
	if b.Checked() || fired != 0 {
		t.Error("non-checkable button must ignore SetChecked")
	}

	b.SetCheckable(true)
	b.SetChecked(true)
	if !b.Checked() || fired != 1 {
		t.Errorf("checkable toggle: checked=%v fired=%d", b.Checked(), fired)
	}

	b.SetCheckable(false)
	if b.Checked() {
		t.Error("leaving checkable mode should clear checked state")
	}
}

func TestTabBarPagesAndIndex(t *testing.T) {
	tb := NewTabBar("main_tabs")
	if tb.CurrentIndex() != -1 {
		t.Errorf("empty tab bar index = %d, want -1", tb.CurrentIndex())
	}
	tb.AddTab("General", NewPanel(""))
	tb.AddTab("Advanced", NewPanel(""))
	if tb.CurrentIndex() != 0 {
		t.Errorf("first tab should become current, index = %d", tb.CurrentIndex())
	}
	if len(tb.Children()) != 2 {
		t.Errorf("Children() = %d pages, want 2", len(tb.Children()))
	}
	tb.SetCurrentIndex(5)
	if tb.CurrentIndex() != 0 {
		t.Error("out-of-range tab select must be ignored")
	}
}

func TestMainWindowContentAndGeometry(t *testing.T) {
	content := NewPanel("")
	w := NewMainWindow("MainWindow", content)
	if w.Content() != content {
		t.Error("Content should return the constructor argument")
	}
	w.SetGeometry(Geometry{X: 10, Y: 20, Width: 800, Height: 600})
	if g := w.Geometry(); g.Width != 800 || g.Height != 600 {
		t.Errorf("geometry = %+v", g)
	}
	w.SetMaximized(true)
	if !w.Maximized() {
		t.Error("expected maximized")
	}
}

// Compile-time interface checks for the adapter set.
var (
	_ Container     = (*GroupBox)(nil)
	_ Container     = (*Panel)(nil)
	_ Container     = (*TabBar)(nil)
	_ ContentHost   = (*MainWindow)(nil)
	_ SignalBlocker = (*Checkbox)(nil)
	_ SignalBlocker = (*MainWindow)(nil)
)
