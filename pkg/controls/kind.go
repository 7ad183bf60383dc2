package controls

// Kind identifies a control kind for handler dispatch. Kinds form a parent
// chain walked most-derived first when no exact handler is registered.
type Kind struct {
	name   string
	parent *Kind
}

// NewKind creates a kind descriptor. parent may be nil for a root kind.
func NewKind(name string, parent *Kind) *Kind {
	return &Kind{name: name, parent: parent}
}

// Name returns the kind's display name.
func (k *Kind) Name() string {
	return k.name
}

// Parent returns the kind this kind derives from, or nil.
func (k *Kind) Parent() *Kind {
	return k.parent
}

// DerivesFrom reports whether k is other or derives from it.
func (k *Kind) DerivesFrom(other *Kind) bool {
	for cur := k; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Built-in control kinds. The button family shares a common ancestor so a
// handler registered for KindButton covers all derived button kinds that
// lack an exact handler.
var (
	KindControl       = NewKind("control", nil)
	KindButton        = NewKind("button", KindControl)
	KindCheckbox      = NewKind("checkbox", KindButton)
	KindPushButton    = NewKind("push-button", KindButton)
	KindRadioButton   = NewKind("radio-button", KindButton)
	KindTextField     = NewKind("text-field", KindControl)
	KindTextArea      = NewKind("text-area", KindControl)
	KindComboBox      = NewKind("combo-box", KindControl)
	KindSpinBox       = NewKind("spin-box", KindControl)
	KindDoubleSpinBox = NewKind("double-spin-box", KindControl)
	KindSlider        = NewKind("slider", KindControl)
	KindTabBar        = NewKind("tab-bar", KindControl)
	KindGroupBox      = NewKind("group-box", KindControl)
	KindPanel         = NewKind("panel", KindControl)
	KindMainWindow    = NewKind("main-window", KindControl)
)
