package controls

// ComboBox adapts a drop-down selector. An editable combo additionally
// carries free text alongside the selected index.
type ComboBox struct {
	base
	items        []string
	index        int
	editable     bool
	text         string
	indexChanged Signal
	textChanged  Signal
}

// NewComboBox wraps a selector with the given declared name and items.
// The first item is selected when items is non-empty, otherwise the
// index is -1.
func NewComboBox(name string, items ...string) *ComboBox {
	c := &ComboBox{base: base{name: name}, items: items, index: -1}
	if len(items) > 0 {
		c.index = 0
		c.text = items[0]
	}
	return c
}

func (c *ComboBox) Kind() *Kind {
	return KindComboBox
}

// Count returns the number of items.
func (c *ComboBox) Count() int {
	return len(c.items)
}

// Items returns the item list.
func (c *ComboBox) Items() []string {
	return c.items
}

// Editable reports whether free text entry is enabled.
func (c *ComboBox) Editable() bool {
	return c.editable
}

// SetEditable enables or disables free text entry.
func (c *ComboBox) SetEditable(editable bool) {
	c.editable = editable
}

// CurrentIndex returns the selected index, -1 when nothing is selected.
func (c *ComboBox) CurrentIndex() int {
	return c.index
}

// SetCurrentIndex selects the item at index. An out-of-range index is
// ignored. Selecting an item also updates the current text.
func (c *ComboBox) SetCurrentIndex(index int) {
	if index < 0 || index >= len(c.items) || c.index == index {
		return
	}
	c.index = index
	c.emit(&c.indexChanged)
	if c.text != c.items[index] {
		c.text = c.items[index]
		c.emit(&c.textChanged)
	}
}

// CurrentText returns the displayed text: the selected item, or the free
// text of an editable combo.
func (c *ComboBox) CurrentText() string {
	return c.text
}

// SetCurrentText sets the displayed text. On a non-editable combo the text
// must match an item, which is then selected; otherwise the call is
// ignored.
func (c *ComboBox) SetCurrentText(text string) {
	if !c.editable {
		for i, item := range c.items {
			if item == text {
				c.SetCurrentIndex(i)
				return
			}
		}
		return
	}
	if c.text == text {
		return
	}
	c.text = text
	c.emit(&c.textChanged)
}

// OnIndexChanged fires whenever the selected index changes.
func (c *ComboBox) OnIndexChanged() *Signal {
	return &c.indexChanged
}

// OnTextChanged fires whenever the displayed text changes.
func (c *ComboBox) OnTextChanged() *Signal {
	return &c.textChanged
}
