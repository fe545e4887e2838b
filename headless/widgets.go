package headless

import (
	"dialogkit/formlayout"
	"dialogkit/toolkit"
)

type base struct {
	data   *formlayout.Data
	bounds formlayout.Rect
}

func (b *base) SetLayoutData(data *formlayout.Data) { b.data = data }
func (b *base) LayoutData() *formlayout.Data        { return b.data }
func (b *base) Bounds() formlayout.Rect             { return b.bounds }
func (b *base) setBounds(r formlayout.Rect)         { b.bounds = r }

// Label is an in-memory toolkit.Label.
type Label struct {
	base
	window *Window
	style  toolkit.LabelStyle
	text   string
	image  toolkit.Icon
}

var _ toolkit.Label = (*Label)(nil)

func (l *Label) SetText(text string)        { l.text = text }
func (l *Label) Text() string               { return l.text }
func (l *Label) SetImage(icon toolkit.Icon) { l.image = icon }
func (l *Label) Image() toolkit.Icon        { return l.image }

// Wraps reports whether the label was created with toolkit.LabelWrap.
func (l *Label) Wraps() bool { return l.style&toolkit.LabelWrap != 0 }

func (l *Label) wraps() bool { return l.Wraps() && l.image == nil }

func (l *Label) preferredSize(wrapWidth int) (int, int) {
	if l.image != nil {
		// system icons are drawn at their natural size
		return 32, 32
	}
	if !l.Wraps() {
		wrapWidth = 0
	}
	return l.window.display.measure(l.text, wrapWidth)
}

// Button is an in-memory toolkit.Button.
type Button struct {
	base
	window    *Window
	text      string
	listeners []func(toolkit.SelectionEvent)
}

var _ toolkit.Button = (*Button)(nil)

func (b *Button) SetText(text string) { b.text = text }
func (b *Button) Text() string        { return b.text }

func (b *Button) AddSelectionListener(listener func(toolkit.SelectionEvent)) {
	b.listeners = append(b.listeners, listener)
}

// Click queues a selection event, as a mouse click would.
func (b *Button) Click() {
	b.window.display.Post(b.fire)
}

func (b *Button) fire() {
	if b.window.disposed {
		return
	}
	for _, l := range b.listeners {
		l(toolkit.SelectionEvent{Widget: b})
	}
}

func (b *Button) wraps() bool { return false }

func (b *Button) preferredSize(int) (int, int) {
	w, _ := b.window.display.measure(b.text, 0)
	return w + 2*b.window.display.CharWidth, b.window.display.ButtonHeight
}
