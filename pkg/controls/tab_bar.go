package controls

// TabBar adapts a tabbed container. The bar owns its pages: the engine
// persists only the selected index and never descends into page contents,
// so a composite view hosted in a tab is not independently persisted.
type TabBar struct {
	base
	titles  []string
	pages   []Control
	index   int
	changed Signal
}

// NewTabBar wraps a tabbed container with the given declared name.
func NewTabBar(name string) *TabBar {
	return &TabBar{base: base{name: name}, index: -1}
}

func (t *TabBar) Kind() *Kind {
	return KindTabBar
}

// AddTab appends a page under the given title. The first tab added becomes
// current.
func (t *TabBar) AddTab(title string, page Control) {
	t.titles = append(t.titles, title)
	t.pages = append(t.pages, page)
	if t.index < 0 {
		t.index = 0
	}
}

// Count returns the number of tabs.
func (t *TabBar) Count() int {
	return len(t.pages)
}

// Children returns the pages in declaration order.
func (t *TabBar) Children() []Control {
	return t.pages
}

// CurrentIndex returns the selected tab index, -1 when empty.
func (t *TabBar) CurrentIndex() int {
	return t.index
}

// SetCurrentIndex selects the tab at index. An out-of-range index is
// ignored.
func (t *TabBar) SetCurrentIndex(index int) {
	if index < 0 || index >= len(t.pages) || t.index == index {
		return
	}
	t.index = index
	t.emit(&t.changed)
}

// OnChanged fires whenever the selected tab changes.
func (t *TabBar) OnChanged() *Signal {
	return &t.changed
}
