// Package fyneui binds the toolkit interfaces to Fyne.
//
// Fyne owns its event loop, so the Display keeps a queue of its own: widget
// callbacks running on the Fyne goroutine only post work to the queue, and
// the goroutine that shows a dialog drains it in ReadAndDispatch. Widget
// mutations are marshalled back with fyne.DoAndWait. A dialog must therefore
// be shown from a goroutine other than the Fyne event loop, for example:
//
//	button.OnTapped = func() {
//		go func() {
//			ok, err := dialog.ShowOption(parent, dialog.TypeQuestion, "Quit", "Really quit?", dialog.ModalityApplication)
//			...
//		}()
//	}
package fyneui

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"dialogkit/internal/constants"
	apperrors "dialogkit/internal/errors"
	"dialogkit/internal/keymanager"
	"dialogkit/toolkit"
)

// Display is a toolkit.Display backed by a fyne.App.
type Display struct {
	app        fyne.App
	events     chan func()
	pending    func()
	idle       time.Duration
	keyManager *keymanager.KeyManager
	debugPrint func(format string, args ...interface{})

	mutex   sync.Mutex
	windows []*Window
}

var _ toolkit.Display = (*Display)(nil)

// NewDisplay creates a display for app.
func NewDisplay(app fyne.App, debugPrint func(format string, args ...interface{})) *Display {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	return &Display{
		app:        app,
		events:     make(chan func(), constants.EventBufferSize),
		idle:       constants.IdleInterval,
		keyManager: keymanager.NewKeyManager(debugPrint),
		debugPrint: debugPrint,
	}
}

// Wrap adopts a window created elsewhere in the application so it can be
// used as a dialog parent. Wrapped windows cannot hold dialog widgets.
func (d *Display) Wrap(fw fyne.Window) *Window {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for _, w := range d.windows {
		if w.fw == fw {
			return w
		}
	}
	w := &Window{display: d, fw: fw, wrapped: true, title: fw.Title()}
	d.windows = append(d.windows, w)
	return w
}

// SystemIcon implements toolkit.Display using the current theme's icons.
func (d *Display) SystemIcon(kind toolkit.IconKind) toolkit.Icon {
	switch kind {
	case toolkit.IconInformation:
		return theme.InfoIcon()
	case toolkit.IconWarning:
		return theme.WarningIcon()
	case toolkit.IconError:
		return theme.ErrorIcon()
	case toolkit.IconQuestion:
		return theme.QuestionIcon()
	default:
		return nil
	}
}

// NewWindow implements toolkit.Display.
func (d *Display) NewWindow(parent toolkit.Window, style toolkit.Style) (toolkit.Window, error) {
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
		if p.IsDisposed() {
			return nil, apperrors.NewToolkitError("new_window", "parent "+p.Title(), toolkit.ErrDisposed)
		}
	}

	w := &Window{display: d, parent: p, style: style, layout: newFormLayout()}
	fyne.DoAndWait(func() {
		w.fw = d.app.NewWindow("")
		w.fw.SetPadded(false)
		w.content = newContainer(w.layout)
		w.fw.SetContent(w.content)
		if style.Has(toolkit.StyleDialogTrim) {
			w.fw.SetFixedSize(true)
		}
		w.fw.SetOnClosed(w.closed)
		w.fw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
			d.post(func() { d.keyManager.HandleTypedKey(ev) })
		})
		w.fw.Canvas().SetOnTypedRune(func(r rune) {
			d.post(func() { d.keyManager.HandleTypedRune(r) })
		})
	})

	d.mutex.Lock()
	d.windows = append(d.windows, w)
	d.mutex.Unlock()

	d.debugPrint("fyneui: created window style=%s", style)
	return w, nil
}

// ReadAndDispatch implements toolkit.Display.
func (d *Display) ReadAndDispatch() bool {
	ev := d.pending
	d.pending = nil
	if ev == nil {
		select {
		case ev = <-d.events:
		default:
			return false
		}
	}
	ev()
	return true
}

// Sleep implements toolkit.Display. It returns when an event arrives or
// after the idle interval, whichever comes first.
func (d *Display) Sleep() {
	if d.pending != nil {
		return
	}
	timer := time.NewTimer(d.idle)
	defer timer.Stop()

	select {
	case ev := <-d.events:
		d.pending = ev
	case <-timer.C:
	}
}

// post queues ev for the pumping goroutine. It is called from Fyne callbacks
// and never blocks the Fyne event loop.
func (d *Display) post(ev func()) {
	select {
	case d.events <- ev:
	default:
		d.debugPrint("fyneui: event queue full, dropping event")
	}
}

// wake makes a sleeping pump re-check its window.
func (d *Display) wake() {
	d.post(func() {})
}

func (d *Display) children(parent *Window) []*Window {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	var children []*Window
	for _, w := range d.windows {
		if w.parent == parent {
			children = append(children, w)
		}
	}
	return children
}

func (d *Display) forget(w *Window) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for i, other := range d.windows {
		if other == w {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			return
		}
	}
}

// liveDialogs returns the windows created by NewWindow that are still open.
func (d *Display) liveDialogs() []*Window {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	var live []*Window
	for _, w := range d.windows {
		if !w.wrapped && !w.IsDisposed() {
			live = append(live, w)
		}
	}
	return live
}

// tracked returns how many windows the display still knows about.
func (d *Display) tracked() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return len(d.windows)
}
