package controls

// Panel adapts a plain layout container with no persistable state of its
// own. Panels are typically unnamed; their children are still discovered.
type Panel struct {
	base
	children []Control
}

// NewPanel wraps a layout container holding the given children. name may
// be empty.
func NewPanel(name string, children ...Control) *Panel {
	return &Panel{base: base{name: name}, children: children}
}

func (p *Panel) Kind() *Kind {
	return KindPanel
}

// AddChild appends a child control.
func (p *Panel) AddChild(c Control) {
	p.children = append(p.children, c)
}

// Children returns the direct children in declaration order.
func (p *Panel) Children() []Control {
	return p.children
}
