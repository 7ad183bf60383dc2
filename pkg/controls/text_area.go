package controls

// TextArea adapts a multi-line text editor.
type TextArea struct {
	base
	text    string
	changed Signal
}

// NewTextArea wraps a text editor with the given declared name and
// initial content.
func NewTextArea(name, text string) *TextArea {
	return &TextArea{base: base{name: name}, text: text}
}

func (a *TextArea) Kind() *Kind {
	return KindTextArea
}

// Text returns the current plain-text content.
func (a *TextArea) Text() string {
	return a.text
}

// SetText replaces the content, emitting OnChanged when it changes.
func (a *TextArea) SetText(text string) {
	if a.text == text {
		return
	}
	a.text = text
	a.emit(&a.changed)
}

// OnChanged fires whenever the content changes.
func (a *TextArea) OnChanged() *Signal {
	return &a.changed
}
