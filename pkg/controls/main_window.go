package controls

// Geometry is a window's position and size on screen.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MainWindow adapts the application's top-level window. It hosts a single
// content area traversed in place of raw child enumeration, and carries
// geometry plus a maximized flag persisted as a grouped multi-field entry.
//
// Geometry changes carry no change signal: window moves and resizes never
// mark the document dirty.
type MainWindow struct {
	base
	content   Control
	geometry  Geometry
	maximized bool
}

// NewMainWindow wraps a top-level window with the given declared name and
// content area.
func NewMainWindow(name string, content Control) *MainWindow {
	return &MainWindow{base: base{name: name}, content: content}
}

func (w *MainWindow) Kind() *Kind {
	return KindMainWindow
}

// Content returns the designated content area, or nil.
func (w *MainWindow) Content() Control {
	return w.content
}

// SetContent replaces the content area.
func (w *MainWindow) SetContent(c Control) {
	w.content = c
}

// Geometry returns the current position and size.
func (w *MainWindow) Geometry() Geometry {
	return w.geometry
}

// SetGeometry moves and resizes the window.
func (w *MainWindow) SetGeometry(g Geometry) {
	w.geometry = g
}

// Maximized reports whether the window is maximized.
func (w *MainWindow) Maximized() bool {
	return w.maximized
}

// SetMaximized sets the maximized state.
func (w *MainWindow) SetMaximized(maximized bool) {
	w.maximized = maximized
}
