package controls

// GroupBox adapts a titled grouping frame. It is a transparent container:
// the engine always recurses into its children and persists no state of
// its own.
type GroupBox struct {
	base
	children []Control
}

// NewGroupBox wraps a grouping frame holding the given children.
func NewGroupBox(name string, children ...Control) *GroupBox {
	return &GroupBox{base: base{name: name}, children: children}
}

func (g *GroupBox) Kind() *Kind {
	return KindGroupBox
}

// AddChild appends a child control.
func (g *GroupBox) AddChild(c Control) {
	g.children = append(g.children, c)
}

// Children returns the direct children in declaration order.
func (g *GroupBox) Children() []Control {
	return g.children
}
