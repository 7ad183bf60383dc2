package settings_test

import (
	"testing"

	"github.com/go-drift/settings/pkg/controls"
	"github.com/go-drift/settings/pkg/settings"
	"github.com/go-drift/settings/pkg/store"
)

func TestLoadDoesNotMarkTouched(t *testing.T) {
	f := newFixture()
	f.store.Set("user_name", "restored")
	f.store.Set("volume", 90)

	if err := f.manager.LoadState(); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if f.text.Text() != "restored" || f.slider.Value() != 90 {
		t.Fatal("values not applied")
	}
	if f.manager.IsTouched() {
		t.Error("applying stored values must not look like a user edit")
	}
}

func TestRepeatedLoadsNoDuplicateSubscriptions(t *testing.T) {
	f := newFixture()
	for i := 0; i < 3; i++ {
		if err := f.manager.LoadState(); err != nil {
			t.Fatalf("LoadState #%d: %v", i, err)
		}
	}
	if n := f.checkbox.OnChanged().ListenerCount(); n != 1 {
		t.Errorf("checkbox listeners after repeated loads = %d, want 1", n)
	}

	notifications := 0
	f.manager.OnTouchedChanged(func(bool) { notifications++ })
	f.checkbox.SetChecked(true)
	if notifications != 1 {
		t.Errorf("notifications = %d, want 1", notifications)
	}
}

func TestMarkTouchedExplicit(t *testing.T) {
	f := newFixture()
	var got []bool
	f.manager.OnTouchedChanged(func(touched bool) { got = append(got, touched) })

	f.manager.MarkTouched()
	f.manager.MarkTouched() // no transition, no notification
	f.manager.MarkUntouched()

	want := []bool{true, false}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("notifications = %v, want %v", got, want)
		}
	}
}

func TestOnTouchedChangedUnsubscribe(t *testing.T) {
	f := newFixture()
	calls := 0
	cancel := f.manager.OnTouchedChanged(func(bool) { calls++ })
	cancel()
	cancel() // second cancel is a no-op

	f.manager.MarkTouched()
	if calls != 0 {
		t.Errorf("cancelled listener still received %d notifications", calls)
	}
}

func TestSaveResetsTouched(t *testing.T) {
	f := newFixture()
	if err := f.manager.LoadState(); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	f.spin.SetValue(9)
	if !f.manager.IsTouched() {
		t.Fatal("expected touched")
	}
	if err := f.manager.SaveState(); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if f.manager.IsTouched() {
		t.Error("save must reset to clean")
	}

	// Monitoring survives a save; the next edit dirties again.
	f.spin.SetValue(2)
	if !f.manager.IsTouched() {
		t.Error("expected touched after post-save edit")
	}
}

func TestLoadResetsTouched(t *testing.T) {
	f := newFixture()
	if err := f.manager.LoadState(); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	f.area.SetText("dirty")
	if !f.manager.IsTouched() {
		t.Fatal("expected touched")
	}
	if err := f.manager.LoadState(); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if f.manager.IsTouched() {
		t.Error("load must reset to clean")
	}
}

func TestComboMonitorsBothSignals(t *testing.T) {
	combo := controls.NewComboBox("mode", "a", "b")
	combo.SetEditable(true)
	window := controls.NewMainWindow("MainWindow", controls.NewPanel("", combo))
	m := settings.NewManager(window, store.NewMemoryStore())
	if err := m.LoadState(); err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	combo.SetCurrentText("free text")
	if !m.IsTouched() {
		t.Error("editable combo text edit should mark touched")
	}

	m.MarkUntouched()
	combo.SetCurrentIndex(1)
	if !m.IsTouched() {
		t.Error("combo index change should mark touched")
	}
}
