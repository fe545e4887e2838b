package fyneui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"dialogkit/formlayout"
	"dialogkit/toolkit"
)

type base struct {
	mutex  sync.Mutex
	data   *formlayout.Data
	bounds formlayout.Rect
}

func (b *base) SetLayoutData(data *formlayout.Data) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.data = data
}

func (b *base) LayoutData() *formlayout.Data {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.data
}

// Bounds returns the bounds assigned by the last layout pass.
func (b *base) Bounds() formlayout.Rect {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bounds
}

func (b *base) setBounds(r formlayout.Rect) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.bounds = r
}

// Label is a widget showing either wrapped text or an icon
type Label struct {
	widget.BaseWidget
	base
	window *Window
	text   *widget.Label
	icon   *widget.Icon
	value  string
	image  toolkit.Icon
}

var _ toolkit.Label = (*Label)(nil)

func newLabel(w *Window, style toolkit.LabelStyle) *Label {
	l := &Label{
		window: w,
		text:   widget.NewLabel(""),
		icon:   widget.NewIcon(nil),
	}
	if style&toolkit.LabelWrap != 0 {
		l.text.Wrapping = fyne.TextWrapWord
	}
	l.icon.Hide()
	l.ExtendBaseWidget(l)
	return l
}

// CreateRenderer creates the widget renderer
func (l *Label) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(l.icon, l.text))
}

func (l *Label) object() fyne.CanvasObject { return l }

// SetText implements toolkit.Label.
func (l *Label) SetText(text string) {
	l.value = text
	fyne.DoAndWait(func() { l.text.SetText(text) })
}

// Text implements toolkit.Label.
func (l *Label) Text() string { return l.value }

// SetImage implements toolkit.Label. A nil icon shows the text again.
func (l *Label) SetImage(icon toolkit.Icon) {
	l.image = icon
	res, _ := icon.(fyne.Resource)
	fyne.DoAndWait(func() {
		l.icon.SetResource(res)
		if res != nil {
			l.icon.Show()
			l.text.Hide()
		} else {
			l.icon.Hide()
			l.text.Show()
		}
		l.Refresh()
	})
}

// Image implements toolkit.Label.
func (l *Label) Image() toolkit.Icon { return l.image }

// Button is a push button that reports clicks through the display queue
type Button struct {
	base
	window    *Window
	button    *widget.Button
	value     string
	listeners []func(toolkit.SelectionEvent)
}

var _ toolkit.Button = (*Button)(nil)

func newButton(w *Window) *Button {
	b := &Button{window: w}
	b.button = widget.NewButton("", func() {
		w.display.post(b.fire)
	})
	return b
}

func (b *Button) object() fyne.CanvasObject { return b.button }

// SetText implements toolkit.Button.
func (b *Button) SetText(text string) {
	b.value = text
	fyne.DoAndWait(func() { b.button.SetText(text) })
}

// Text implements toolkit.Button.
func (b *Button) Text() string { return b.value }

// AddSelectionListener implements toolkit.Button.
func (b *Button) AddSelectionListener(listener func(toolkit.SelectionEvent)) {
	b.listeners = append(b.listeners, listener)
}

// fire runs on the pumping goroutine.
func (b *Button) fire() {
	if b.window.IsDisposed() {
		return
	}
	for _, l := range b.listeners {
		l(toolkit.SelectionEvent{Widget: b})
	}
}
