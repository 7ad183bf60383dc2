package controls

// TextField adapts a single-line text input.
type TextField struct {
	base
	text    string
	changed Signal
}

// NewTextField wraps a text input with the given declared name and
// initial text.
func NewTextField(name, text string) *TextField {
	return &TextField{base: base{name: name}, text: text}
}

func (f *TextField) Kind() *Kind {
	return KindTextField
}

// Text returns the current text.
func (f *TextField) Text() string {
	return f.text
}

// SetText updates the text, emitting OnChanged when it changes.
func (f *TextField) SetText(text string) {
	if f.text == text {
		return
	}
	f.text = text
	f.emit(&f.changed)
}

// OnChanged fires whenever the text changes.
func (f *TextField) OnChanged() *Signal {
	return &f.changed
}
