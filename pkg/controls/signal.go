package controls

// Signal is a change-notification stream. Listeners are keyed by an
// incrementing id so disconnection is stable regardless of connection order.
type Signal struct {
	listeners map[int]func()
	nextID    int
}

// Connect adds a listener and returns a function that removes it.
func (s *Signal) Connect(fn func()) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]func())
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// Emit invokes every connected listener.
func (s *Signal) Emit() {
	for _, fn := range s.listeners {
		fn()
	}
}

// ListenerCount returns the number of connected listeners.
func (s *Signal) ListenerCount() int {
	return len(s.listeners)
}
