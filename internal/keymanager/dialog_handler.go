package keymanager

import (
	"fyne.io/fyne/v2"
)

// DialogWindowInterface defines the interface needed by DialogKeyHandler
type DialogWindowInterface interface {
	// ActivateDefault clicks the default button, if any
	ActivateDefault()
	// CloseByKey closes the window the same way its close box does
	CloseByKey()
	// Title is used for debug output
	Title() string
}

// DialogKeyHandler handles keyboard events for a modal dialog window
type DialogKeyHandler struct {
	window     DialogWindowInterface
	debugPrint func(format string, args ...interface{})
}

// NewDialogKeyHandler creates a new dialog key handler
func NewDialogKeyHandler(w DialogWindowInterface, debugPrint func(format string, args ...interface{})) *DialogKeyHandler {
	return &DialogKeyHandler{
		window:     w,
		debugPrint: debugPrint,
	}
}

// GetName returns the name of this handler
func (dh *DialogKeyHandler) GetName() string {
	return "Dialog:" + dh.window.Title()
}

// OnTypedKey handles typed key events
func (dh *DialogKeyHandler) OnTypedKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		dh.debugPrint("Dialog: Enter detected - activating default button")
		dh.window.ActivateDefault()

	case fyne.KeyEscape:
		dh.debugPrint("Dialog: Escape detected - closing")
		dh.window.CloseByKey()

	default:
		// Consume all other keys so they never reach the parent window
		dh.debugPrint("Dialog: Consuming key event: %s", ev.Name)
	}
	return true
}

// OnTypedRune consumes text input while the dialog is open
func (dh *DialogKeyHandler) OnTypedRune(r rune) bool {
	return true
}
