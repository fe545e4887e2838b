// Package headless is an in-memory toolkit backend. It lays out widgets with
// fixed font metrics and dispatches scripted clicks and key presses through
// the same event pump a real backend uses, which makes dialogs testable
// without a display server.
package headless

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"dialogkit/internal/constants"
	apperrors "dialogkit/internal/errors"
	"dialogkit/internal/keymanager"
	"dialogkit/toolkit"
)

// Icon is a named system icon.
type Icon struct {
	Kind toolkit.IconKind
}

// Name implements toolkit.Icon.
func (i *Icon) Name() string { return "headless-" + i.Kind.String() }

// Display is an in-memory toolkit.Display. It is not safe for concurrent use;
// like a real UI thread, everything runs on the goroutine that pumps it.
type Display struct {
	queue      []func()
	idle       []func()
	windows    []*Window
	icons      map[toolkit.IconKind]*Icon
	keyManager *keymanager.KeyManager
	debugPrint func(format string, args ...interface{})

	// CharWidth and LineHeight drive text measurement.
	CharWidth  int
	LineHeight int
	// ButtonHeight is the preferred height of every button.
	ButtonHeight int

	starved int
}

// Option customizes a Display.
type Option func(*Display)

// WithDebug routes debug output to debugPrint.
func WithDebug(debugPrint func(format string, args ...interface{})) Option {
	return func(d *Display) { d.debugPrint = debugPrint }
}

// NewDisplay creates an empty display.
func NewDisplay(opts ...Option) *Display {
	d := &Display{
		icons:        make(map[toolkit.IconKind]*Icon),
		debugPrint:   func(string, ...interface{}) {},
		CharWidth:    7,
		LineHeight:   constants.DefaultLineHeight,
		ButtonHeight: constants.DefaultButtonSize,
	}
	for _, o := range opts {
		o(d)
	}
	d.keyManager = keymanager.NewKeyManager(d.debugPrint)
	return d
}

// SystemIcon implements toolkit.Display. Repeated lookups return the same
// icon instance.
func (d *Display) SystemIcon(kind toolkit.IconKind) toolkit.Icon {
	if kind == toolkit.IconNone {
		return nil
	}
	if icon, ok := d.icons[kind]; ok {
		return icon
	}
	icon := &Icon{Kind: kind}
	d.icons[kind] = icon
	return icon
}

// NewWindow implements toolkit.Display.
func (d *Display) NewWindow(parent toolkit.Window, style toolkit.Style) (toolkit.Window, error) {
	w, err := d.newWindow(parent, style)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// NewShell creates a top-level window, typically used as a dialog parent.
func (d *Display) NewShell(title string) *Window {
	w, _ := d.newWindow(nil, toolkit.StyleNone)
	w.title = title
	return w
}

func (d *Display) newWindow(parent toolkit.Window, style toolkit.Style) (*Window, error) {
	if !style.Valid() {
		return nil, apperrors.NewToolkitError("new_window", fmt.Sprintf("style %s", style), toolkit.ErrUnsupportedStyle)
	}

	var p *Window
	if parent != nil {
		var ok bool
		p, ok = parent.(*Window)
		if !ok || p.display != d {
			return nil, apperrors.NewToolkitError("new_window", "parent belongs to another display", toolkit.ErrInvalidParent)
		}
		if p.disposed {
			return nil, apperrors.NewToolkitError("new_window", "parent "+p.title, toolkit.ErrDisposed)
		}
	}

	w := &Window{
		display: d,
		parent:  p,
		style:   style,
	}
	d.windows = append(d.windows, w)
	d.debugPrint("headless: created window #%d style=%s", len(d.windows), style)
	return w, nil
}

// ReadAndDispatch implements toolkit.Display.
func (d *Display) ReadAndDispatch() bool {
	if len(d.queue) == 0 {
		return false
	}
	ev := d.queue[0]
	d.queue = d.queue[1:]
	ev()
	return true
}

// Sleep implements toolkit.Display. It runs the next idle action queued with
// OnIdle. With nothing left to run the loop would never end, so every live
// window is closed through its close box and the starvation is counted.
func (d *Display) Sleep() {
	if len(d.idle) > 0 {
		action := d.idle[0]
		d.idle = d.idle[1:]
		action()
		return
	}

	d.starved++
	log.Printf("headless: event loop starved, closing %d live windows", len(d.LiveWindows()))
	for _, w := range d.LiveWindows() {
		if w.parent != nil {
			w.Close()
		}
	}
	if len(d.queue) == 0 {
		// Only top-level windows remain; close them too.
		for _, w := range d.LiveWindows() {
			w.Close()
		}
	}
}

// OnIdle queues actions that run, one per idle cycle, while the loop waits.
func (d *Display) OnIdle(actions ...func()) {
	d.idle = append(d.idle, actions...)
}

// Post queues an event for the next ReadAndDispatch.
func (d *Display) Post(ev func()) {
	d.queue = append(d.queue, ev)
}

// Starved reports how many times Sleep ran out of idle actions.
func (d *Display) Starved() int { return d.starved }

// Windows returns every window created on the display, disposed or not.
func (d *Display) Windows() []*Window {
	return append([]*Window(nil), d.windows...)
}

// LiveWindows returns the windows that have not been disposed.
func (d *Display) LiveWindows() []*Window {
	var live []*Window
	for _, w := range d.windows {
		if !w.disposed {
			live = append(live, w)
		}
	}
	return live
}

// ActiveWindow returns the most recently opened live window.
func (d *Display) ActiveWindow() *Window {
	for i := len(d.windows) - 1; i >= 0; i-- {
		w := d.windows[i]
		if w.opened && !w.disposed {
			return w
		}
	}
	return nil
}

// PressKey delivers a typed key to the top key handler.
func (d *Display) PressKey(name fyne.KeyName) {
	d.Post(func() {
		d.keyManager.HandleTypedKey(&fyne.KeyEvent{Name: name})
	})
}

// Blocked reports whether input to w is currently blocked by an open modal
// window.
func (d *Display) Blocked(w *Window) bool {
	for _, m := range d.LiveWindows() {
		if m == w || !m.opened {
			continue
		}
		switch {
		case m.style.Has(toolkit.StyleApplicationModal), m.style.Has(toolkit.StyleSystemModal):
			return true
		case m.style.Has(toolkit.StylePrimaryModal) && m.parent == w:
			return true
		}
	}
	return false
}

// measure returns the preferred size of text, wrapped to wrapWidth when > 0.
func (d *Display) measure(text string, wrapWidth int) (int, int) {
	if text == "" {
		return 0, d.LineHeight
	}
	width := len([]rune(text)) * d.CharWidth
	if wrapWidth <= 0 || width <= wrapWidth {
		return width, d.LineHeight
	}
	lines := (width + wrapWidth - 1) / wrapWidth
	return wrapWidth, lines * d.LineHeight
}
