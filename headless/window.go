package headless

import (
	"dialogkit/formlayout"
	apperrors "dialogkit/internal/errors"
	"dialogkit/internal/keymanager"
	"dialogkit/toolkit"
)

// Window is an in-memory toolkit.Window.
type Window struct {
	display *Display
	parent  *Window
	style   toolkit.Style

	title  string
	image  toolkit.Icon
	width  int
	height int

	widgets       []widget
	defaultButton *Button
	keyHandler    *keymanager.DialogKeyHandler

	opened   bool
	disposed bool
	// closedByBox is set when the window was closed without a button.
	closedByBox bool
}

type widget interface {
	toolkit.Widget
	preferredSize(wrapWidth int) (int, int)
	setBounds(r formlayout.Rect)
	wraps() bool
}

var _ toolkit.Window = (*Window)(nil)

// Display implements toolkit.Window.
func (w *Window) Display() toolkit.Display { return w.display }

// Parent implements toolkit.Window.
func (w *Window) Parent() toolkit.Window {
	if w.parent == nil {
		return nil
	}
	return w.parent
}

// Style implements toolkit.Window.
func (w *Window) Style() toolkit.Style { return w.style }

// SetTitle implements toolkit.Window.
func (w *Window) SetTitle(title string) { w.title = title }

// Title implements toolkit.Window.
func (w *Window) Title() string { return w.title }

// SetImage implements toolkit.Window.
func (w *Window) SetImage(icon toolkit.Icon) { w.image = icon }

// Image returns the window icon.
func (w *Window) Image() toolkit.Icon { return w.image }

// SetSize implements toolkit.Window.
func (w *Window) SetSize(width, height int) {
	w.width, w.height = width, height
}

// Size implements toolkit.Window.
func (w *Window) Size() (int, int) { return w.width, w.height }

// NewLabel implements toolkit.Window.
func (w *Window) NewLabel(style toolkit.LabelStyle) (toolkit.Label, error) {
	if w.disposed {
		return nil, apperrors.NewToolkitError("new_label", w.title, toolkit.ErrDisposed)
	}
	l := &Label{window: w, style: style}
	w.widgets = append(w.widgets, l)
	return l, nil
}

// NewButton implements toolkit.Window.
func (w *Window) NewButton() (toolkit.Button, error) {
	if w.disposed {
		return nil, apperrors.NewToolkitError("new_button", w.title, toolkit.ErrDisposed)
	}
	b := &Button{window: w}
	w.widgets = append(w.widgets, b)
	return b, nil
}

// SetDefaultButton implements toolkit.Window.
func (w *Window) SetDefaultButton(b toolkit.Button) {
	hb, ok := b.(*Button)
	if !ok || hb.window != w {
		w.defaultButton = nil
		return
	}
	w.defaultButton = hb
}

// DefaultButton returns the button activated by Return.
func (w *Window) DefaultButton() *Button { return w.defaultButton }

// Open implements toolkit.Window.
func (w *Window) Open() error {
	if w.disposed {
		return apperrors.NewToolkitError("open", w.title, toolkit.ErrDisposed)
	}
	if w.opened {
		return nil
	}
	w.opened = true
	if w.style.Has(toolkit.StyleDialogTrim) {
		w.keyHandler = keymanager.NewDialogKeyHandler(w, w.display.debugPrint)
		w.display.keyManager.PushHandler(w.keyHandler)
	}
	w.display.debugPrint("headless: opened %q (%dx%d)", w.title, w.width, w.height)
	return nil
}

// Opened reports whether Open has been called.
func (w *Window) Opened() bool { return w.opened }

// Layout implements toolkit.Window. Wrapping labels are measured against the
// width their horizontal attachments give them.
func (w *Window) Layout() error {
	if w.disposed {
		return apperrors.NewToolkitError("layout", w.title, toolkit.ErrDisposed)
	}

	children := make([]formlayout.Child, len(w.widgets))
	for i, wd := range w.widgets {
		pw, ph := wd.preferredSize(0)
		children[i] = formlayout.Child{Control: wd, Data: wd.LayoutData(), PrefWidth: pw, PrefHeight: ph}
	}
	rects, err := formlayout.Solve(w.width, w.height, children)
	if err != nil {
		return apperrors.NewLayoutError("layout", w.title, err)
	}

	// Second pass: re-measure wrapping labels at their assigned width.
	rewrapped := false
	for i, wd := range w.widgets {
		if !wd.wraps() {
			continue
		}
		_, ph := wd.preferredSize(rects[i].Width)
		if ph != children[i].PrefHeight {
			children[i].PrefHeight = ph
			rewrapped = true
		}
	}
	if rewrapped {
		if rects, err = formlayout.Solve(w.width, w.height, children); err != nil {
			return apperrors.NewLayoutError("layout", w.title, err)
		}
	}

	for i, wd := range w.widgets {
		wd.setBounds(rects[i])
	}
	return nil
}

// Dispose implements toolkit.Window. Child windows are disposed first.
func (w *Window) Dispose() {
	if w.disposed {
		return
	}
	for _, c := range w.display.windows {
		if c.parent == w {
			c.Dispose()
		}
	}
	w.disposed = true
	if w.keyHandler != nil {
		w.display.keyManager.RemoveHandler(w.keyHandler)
		w.keyHandler = nil
	}
	w.display.debugPrint("headless: disposed %q", w.title)
}

// IsDisposed implements toolkit.Window.
func (w *Window) IsDisposed() bool { return w.disposed }

// Close simulates the close box: the window is disposed by a queued event
// without any button being clicked.
func (w *Window) Close() {
	w.display.Post(func() {
		if w.disposed {
			return
		}
		w.closedByBox = true
		w.Dispose()
	})
}

// ClosedByBox reports whether the window was closed through Close.
func (w *Window) ClosedByBox() bool { return w.closedByBox }

// ActivateDefault implements keymanager.DialogWindowInterface.
func (w *Window) ActivateDefault() {
	if w.defaultButton != nil {
		w.defaultButton.fire()
	}
}

// CloseByKey implements keymanager.DialogWindowInterface.
func (w *Window) CloseByKey() {
	if w.disposed {
		return
	}
	w.closedByBox = true
	w.Dispose()
}

// Labels returns the window's labels in creation order.
func (w *Window) Labels() []*Label {
	var labels []*Label
	for _, wd := range w.widgets {
		if l, ok := wd.(*Label); ok {
			labels = append(labels, l)
		}
	}
	return labels
}

// Buttons returns the window's buttons in creation order.
func (w *Window) Buttons() []*Button {
	var buttons []*Button
	for _, wd := range w.widgets {
		if b, ok := wd.(*Button); ok {
			buttons = append(buttons, b)
		}
	}
	return buttons
}

// ButtonByText returns the first button showing text, or nil.
func (w *Window) ButtonByText(text string) *Button {
	for _, b := range w.Buttons() {
		if b.text == text {
			return b
		}
	}
	return nil
}

// ImageLabel returns the first label showing an image, or nil.
func (w *Window) ImageLabel() *Label {
	for _, l := range w.Labels() {
		if l.image != nil {
			return l
		}
	}
	return nil
}

// TextLabel returns the first label showing text, or nil.
func (w *Window) TextLabel() *Label {
	for _, l := range w.Labels() {
		if l.image == nil {
			return l
		}
	}
	return nil
}
