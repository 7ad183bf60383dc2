package controls

// Control is a UI element the settings engine can observe and mutate.
// A control with an empty declared name is never persisted, compared, or
// monitored.
type Control interface {
	// Name returns the declared name used as the persistence key.
	Name() string
	// Kind returns the kind descriptor used for handler dispatch.
	Kind() *Kind
}

// Container is a control with enumerable direct children.
// Children returns direct children only, in declaration order.
type Container interface {
	Control
	Children() []Control
}

// ContentHost is a container with a single designated content area,
// traversed instead of raw child enumeration.
type ContentHost interface {
	Control
	Content() Control
}

// SignalBlocker suppresses a control's change signals while the engine
// applies loaded values.
type SignalBlocker interface {
	SetBlockSignals(block bool)
}

// base carries the declared name and signal-block flag shared by all
// built-in adapters.
type base struct {
	name    string
	blocked bool
}

func (b *base) Name() string {
	return b.name
}

func (b *base) SetBlockSignals(block bool) {
	b.blocked = block
}

// emit fires s unless signals are blocked.
func (b *base) emit(s *Signal) {
	if !b.blocked {
		s.Emit()
	}
}
