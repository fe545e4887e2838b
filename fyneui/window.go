package fyneui

import (
	"image/color"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	apperrors "dialogkit/internal/errors"
	"dialogkit/internal/keymanager"
	"dialogkit/toolkit"
)

// Window is a toolkit.Window backed by a fyne.Window.
type Window struct {
	display *Display
	parent  *Window
	style   toolkit.Style
	wrapped bool

	fw      fyne.Window
	content *fyne.Container
	layout  *formLayout

	title         string
	image         toolkit.Icon
	width         int
	height        int
	defaultButton *Button

	keyHandler  *keymanager.DialogKeyHandler
	shields     []*widget.PopUp
	opened      bool
	disposed    atomic.Bool
	releaseOnce sync.Once
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

// FyneWindow returns the underlying Fyne window.
func (w *Window) FyneWindow() fyne.Window { return w.fw }

// SetTitle implements toolkit.Window.
func (w *Window) SetTitle(title string) {
	w.title = title
	fyne.DoAndWait(func() { w.fw.SetTitle(title) })
}

// Title implements toolkit.Window.
func (w *Window) Title() string { return w.title }

// SetImage implements toolkit.Window. Icons that are not Fyne resources are
// ignored.
func (w *Window) SetImage(icon toolkit.Icon) {
	w.image = icon
	res, ok := icon.(fyne.Resource)
	if !ok {
		return
	}
	fyne.DoAndWait(func() { w.fw.SetIcon(res) })
}

// SetSize implements toolkit.Window.
func (w *Window) SetSize(width, height int) {
	w.width, w.height = width, height
	fyne.DoAndWait(func() { w.fw.Resize(fyne.NewSize(float32(width), float32(height))) })
}

// Size implements toolkit.Window.
func (w *Window) Size() (int, int) {
	if w.wrapped {
		var size fyne.Size
		fyne.DoAndWait(func() { size = w.fw.Canvas().Size() })
		return int(size.Width), int(size.Height)
	}
	return w.width, w.height
}

// NewLabel implements toolkit.Window.
func (w *Window) NewLabel(style toolkit.LabelStyle) (toolkit.Label, error) {
	if err := w.checkOwned("new_label"); err != nil {
		return nil, err
	}
	var l *Label
	fyne.DoAndWait(func() {
		l = newLabel(w, style)
		w.layout.register(l)
		w.content.Add(l)
	})
	return l, nil
}

// NewButton implements toolkit.Window.
func (w *Window) NewButton() (toolkit.Button, error) {
	if err := w.checkOwned("new_button"); err != nil {
		return nil, err
	}
	var b *Button
	fyne.DoAndWait(func() {
		b = newButton(w)
		w.layout.register(b)
		w.content.Add(b.button)
	})
	return b, nil
}

func (w *Window) checkOwned(op string) error {
	if w.IsDisposed() {
		return apperrors.NewToolkitError(op, w.title, toolkit.ErrDisposed)
	}
	if w.wrapped {
		return apperrors.NewToolkitError(op, "wrapped windows cannot hold widgets", toolkit.ErrInvalidParent)
	}
	return nil
}

// SetDefaultButton implements toolkit.Window.
func (w *Window) SetDefaultButton(b toolkit.Button) {
	fb, ok := b.(*Button)
	if !ok || fb.window != w {
		return
	}
	w.defaultButton = fb
	fyne.DoAndWait(func() {
		fb.button.Importance = widget.HighImportance
		fb.button.Refresh()
	})
}

// Open implements toolkit.Window. Modal windows cover the windows they block
// with a modal overlay until they are disposed. Fyne cannot block other
// applications, so system modality behaves like application modality.
func (w *Window) Open() error {
	if w.IsDisposed() {
		return apperrors.NewToolkitError("open", w.title, toolkit.ErrDisposed)
	}
	if w.opened || w.wrapped {
		return nil
	}
	w.opened = true

	if w.style.Has(toolkit.StyleDialogTrim) {
		w.keyHandler = keymanager.NewDialogKeyHandler(w, w.display.debugPrint)
		w.display.keyManager.PushHandler(w.keyHandler)
	}

	fyne.DoAndWait(func() {
		for _, blocked := range w.blockedWindows() {
			shield := widget.NewModalPopUp(canvas.NewRectangle(color.Transparent), blocked.Canvas())
			shield.Show()
			w.shields = append(w.shields, shield)
		}
		w.fw.CenterOnScreen()
		w.fw.Show()
		w.fw.RequestFocus()
	})
	w.display.debugPrint("fyneui: opened %q, blocking %d windows", w.title, len(w.shields))
	return nil
}

// blockedWindows must run on the Fyne goroutine.
func (w *Window) blockedWindows() []fyne.Window {
	switch {
	case w.style.Has(toolkit.StylePrimaryModal):
		if w.parent != nil {
			return []fyne.Window{w.parent.fw}
		}
	case w.style.Has(toolkit.StyleApplicationModal), w.style.Has(toolkit.StyleSystemModal):
		var blocked []fyne.Window
		for _, other := range w.display.app.Driver().AllWindows() {
			if other != w.fw {
				blocked = append(blocked, other)
			}
		}
		return blocked
	}
	return nil
}

// Layout implements toolkit.Window.
func (w *Window) Layout() error {
	if w.IsDisposed() {
		return apperrors.NewToolkitError("layout", w.title, toolkit.ErrDisposed)
	}
	if w.wrapped {
		return nil
	}
	var err error
	fyne.DoAndWait(func() {
		err = w.layout.apply(w.content.Objects, fyne.NewSize(float32(w.width), float32(w.height)))
	})
	if err != nil {
		return apperrors.NewLayoutError("layout", w.title, err)
	}
	return nil
}

// Dispose implements toolkit.Window. Child windows are disposed first.
func (w *Window) Dispose() {
	if w.disposed.Swap(true) {
		return
	}
	for _, c := range w.display.children(w) {
		c.Dispose()
	}
	w.release()
	fyne.DoAndWait(w.fw.Close)
	w.display.forget(w)
	w.display.debugPrint("fyneui: disposed %q", w.title)
}

// IsDisposed implements toolkit.Window.
func (w *Window) IsDisposed() bool { return w.disposed.Load() }

// closed runs on the Fyne goroutine when the window is closed, whether by
// Dispose or by the close box.
func (w *Window) closed() {
	if w.disposed.Swap(true) {
		w.display.wake()
		return
	}
	w.display.debugPrint("fyneui: %q closed by the window manager", w.title)
	w.teardown()
	w.display.wake()
}

// teardown releases w and its child windows. It runs on the Fyne goroutine
// after w has been marked disposed, so child windows are closed directly.
func (w *Window) teardown() {
	for _, c := range w.display.children(w) {
		if c.disposed.Swap(true) {
			continue
		}
		c.teardown()
		c.fw.Close()
	}
	w.release()
	w.display.forget(w)
}

// buttons returns the buttons created in w, in creation order.
func (w *Window) buttons() []*Button {
	var objects []fyne.CanvasObject
	fyne.DoAndWait(func() { objects = append(objects, w.content.Objects...) })

	w.layout.mutex.Lock()
	defer w.layout.mutex.Unlock()
	var buttons []*Button
	for _, o := range objects {
		if b, ok := w.layout.widgets[o].(*Button); ok {
			buttons = append(buttons, b)
		}
	}
	return buttons
}

func (w *Window) release() {
	w.releaseOnce.Do(func() {
		if w.keyHandler != nil {
			w.display.keyManager.RemoveHandler(w.keyHandler)
		}
		shields := w.shields
		w.shields = nil
		if len(shields) > 0 {
			fyne.Do(func() {
				for _, s := range shields {
					s.Hide()
				}
			})
		}
	})
}

// ActivateDefault implements keymanager.DialogWindowInterface.
func (w *Window) ActivateDefault() {
	if w.defaultButton != nil {
		w.defaultButton.fire()
	}
}

// CloseByKey implements keymanager.DialogWindowInterface.
func (w *Window) CloseByKey() {
	w.Dispose()
}
