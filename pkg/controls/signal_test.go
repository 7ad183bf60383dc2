package controls

import "testing"

func TestSignalConnectEmit(t *testing.T) {
	var s Signal
	count := 0
	s.Connect(func() { count++ })
	s.Emit()
	s.Emit()
	if count != 2 {
		t.Errorf("expected 2 emissions, got %d", count)
	}
}

func TestSignalDisconnect(t *testing.T) {
	var s Signal
	count := 0
	cancel := s.Connect(func() { count++ })
	s.Emit()
	cancel()
	s.Emit()
	if count != 1 {
		t.Errorf("expected 1 emission after disconnect, got %d", count)
	}
	if s.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners, got %d", s.ListenerCount())
	}
}

func TestSignalMultipleListeners(t *testing.T) {
	var s Signal
	a, b := 0, 0
	s.Connect(func() { a++ })
	cancelB := s.Connect(func() { b++ })
	s.Emit()
	cancelB()
	cancelB() // double cancel is harmless
	s.Emit()
	if a != 2 || b != 1 {
		t.Errorf("a = %d, b = %d; want 2, 1", a, b)
	}
}

func TestSignalEmitEmpty(t *testing.T) {
	var s Signal
	s.Emit() // must not panic with no listeners
}
