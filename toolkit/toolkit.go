// Package toolkit defines the capabilities a widget toolkit has to provide
// so that dialogs can be written once and bound to any backend: window
// creation, label and button widgets, attachment layout, system icons and a
// blocking event pump.
package toolkit

import (
	"errors"
	"strings"

	"dialogkit/formlayout"
)

var (
	// ErrInvalidParent is returned when a window is created for a parent the
	// backend does not own, or when a required parent is missing.
	ErrInvalidParent = errors.New("invalid parent window")

	// ErrDisposed is returned when operating on a window that has been disposed.
	ErrDisposed = errors.New("window is disposed")

	// ErrUnsupportedStyle is returned for style bits the backend does not know.
	ErrUnsupportedStyle = errors.New("unsupported window style")
)

// Style is a set of window trim and modality flags.
type Style uint32

const (
	StyleNone Style = 0

	// StyleDialogTrim gives the window a title bar and close box and makes
	// it non-resizable.
	StyleDialogTrim Style = 1 << iota

	// StylePrimaryModal blocks input to the parent window.
	StylePrimaryModal
	// StyleApplicationModal blocks input to every other application window.
	StyleApplicationModal
	// StyleSystemModal blocks input to every window on the system, where
	// the backend supports it.
	StyleSystemModal

	styleMask = StyleDialogTrim | StylePrimaryModal | StyleApplicationModal | StyleSystemModal
)

// Has reports whether every bit of f is set.
func (s Style) Has(f Style) bool { return s&f == f && f != 0 }

// Modal reports whether any modality bit is set.
func (s Style) Modal() bool {
	return s&(StylePrimaryModal|StyleApplicationModal|StyleSystemModal) != 0
}

// Valid reports whether s only contains known bits and at most one
// modality bit.
func (s Style) Valid() bool {
	if s&^styleMask != 0 {
		return false
	}
	n := 0
	for _, f := range []Style{StylePrimaryModal, StyleApplicationModal, StyleSystemModal} {
		if s.Has(f) {
			n++
		}
	}
	return n <= 1
}

func (s Style) String() string {
	if s == StyleNone {
		return "none"
	}
	var parts []string
	if s.Has(StyleDialogTrim) {
		parts = append(parts, "dialog-trim")
	}
	if s.Has(StylePrimaryModal) {
		parts = append(parts, "primary-modal")
	}
	if s.Has(StyleApplicationModal) {
		parts = append(parts, "application-modal")
	}
	if s.Has(StyleSystemModal) {
		parts = append(parts, "system-modal")
	}
	if s&^styleMask != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// IconKind selects one of the system icons.
type IconKind int

const (
	IconNone IconKind = iota
	IconInformation
	IconWarning
	IconError
	IconQuestion
)

func (k IconKind) String() string {
	switch k {
	case IconNone:
		return "none"
	case IconInformation:
		return "information"
	case IconWarning:
		return "warning"
	case IconError:
		return "error"
	case IconQuestion:
		return "question"
	default:
		return "unknown"
	}
}

// Icon is an image handle owned by a backend.
type Icon interface {
	Name() string
}

// LabelStyle controls label rendering.
type LabelStyle uint32

const (
	LabelNone LabelStyle = 0
	// LabelWrap wraps text at word boundaries to the label width.
	LabelWrap LabelStyle = 1 << 0
)

// SelectionEvent is delivered when a button is clicked.
type SelectionEvent struct {
	// Widget is the button that originated the event.
	Widget Widget
}

// Widget is a control placed in a window with attachment layout data.
type Widget interface {
	SetLayoutData(data *formlayout.Data)
	LayoutData() *formlayout.Data
	// Bounds returns the bounds computed by the last Window.Layout call.
	Bounds() formlayout.Rect
}

// Label displays text or an image.
type Label interface {
	Widget
	SetText(text string)
	Text() string
	SetImage(icon Icon)
	Image() Icon
}

// Button is a push button.
type Button interface {
	Widget
	SetText(text string)
	Text() string
	AddSelectionListener(listener func(SelectionEvent))
}

// Window is a top-level shell. All calls must happen on the goroutine that
// pumps the owning Display.
type Window interface {
	Display() Display
	Parent() Window
	Style() Style

	SetTitle(title string)
	Title() string
	SetImage(icon Icon)
	SetSize(width, height int)
	Size() (width, height int)

	NewLabel(style LabelStyle) (Label, error)
	NewButton() (Button, error)
	// SetDefaultButton selects the button activated by the Return key.
	SetDefaultButton(b Button)

	// Open makes the window visible and applies its modality.
	Open() error
	// Layout positions every child widget from its layout data.
	Layout() error
	// Dispose closes the window and releases its widgets. Disposing twice
	// is a no-op.
	Dispose()
	IsDisposed() bool
}

// Display owns the event queue of a backend.
type Display interface {
	// SystemIcon returns the icon for kind, or nil for IconNone.
	SystemIcon(kind IconKind) Icon
	// NewWindow creates a hidden window. parent may be nil for a top-level
	// window.
	NewWindow(parent Window, style Style) (Window, error)
	// ReadAndDispatch dispatches one pending event and reports whether
	// there was one.
	ReadAndDispatch() bool
	// Sleep blocks until an event may be pending.
	Sleep()
}

// RunUntilDisposed pumps the display of w until w is disposed.
func RunUntilDisposed(w Window) {
	d := w.Display()
	for !w.IsDisposed() {
		if !d.ReadAndDispatch() {
			d.Sleep()
		}
	}
}
