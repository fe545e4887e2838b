package keymanager

import (
	"sync"

	"fyne.io/fyne/v2"
)

// KeyHandler defines the interface for handling keyboard events
type KeyHandler interface {
	// OnTypedKey handles typed key events
	OnTypedKey(ev *fyne.KeyEvent) bool // returns true if handled

	// OnTypedRune handles text input
	OnTypedRune(r rune) bool // returns true if handled

	// GetName returns a descriptive name for this handler (for debugging)
	GetName() string
}

// KeyManager manages a stack of key handlers. Only the top handler
// receives events, so an open dialog shadows everything beneath it.
type KeyManager struct {
	handlers   []KeyHandler
	mutex      sync.RWMutex
	debugPrint func(format string, args ...interface{})
}

// NewKeyManager creates a new KeyManager instance
func NewKeyManager(debugPrint func(format string, args ...interface{})) *KeyManager {
	return &KeyManager{
		handlers:   make([]KeyHandler, 0),
		debugPrint: debugPrint,
	}
}

// PushHandler adds a new key handler to the top of the stack
func (km *KeyManager) PushHandler(handler KeyHandler) {
	km.mutex.Lock()
	defer km.mutex.Unlock()

	km.handlers = append(km.handlers, handler)
	km.debugPrint("KeyManager: Pushed handler '%s', stack size: %d", handler.GetName(), len(km.handlers))
}

// PopHandler removes the top key handler from the stack
func (km *KeyManager) PopHandler() KeyHandler {
	km.mutex.Lock()
	defer km.mutex.Unlock()

	if len(km.handlers) == 0 {
		km.debugPrint("KeyManager: Attempted to pop from empty stack")
		return nil
	}

	handler := km.handlers[len(km.handlers)-1]
	km.handlers = km.handlers[:len(km.handlers)-1]

	km.debugPrint("KeyManager: Popped handler '%s', stack size: %d", handler.GetName(), len(km.handlers))
	return handler
}

// RemoveHandler removes handler wherever it sits in the stack. Windows are
// not always closed in the order they were opened.
func (km *KeyManager) RemoveHandler(handler KeyHandler) bool {
	km.mutex.Lock()
	defer km.mutex.Unlock()

	for i := len(km.handlers) - 1; i >= 0; i-- {
		if km.handlers[i] == handler {
			km.handlers = append(km.handlers[:i], km.handlers[i+1:]...)
			km.debugPrint("KeyManager: Removed handler '%s', stack size: %d", handler.GetName(), len(km.handlers))
			return true
		}
	}
	return false
}

// GetCurrentHandler returns the top handler without removing it
func (km *KeyManager) GetCurrentHandler() KeyHandler {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	if len(km.handlers) == 0 {
		return nil
	}

	return km.handlers[len(km.handlers)-1]
}

// HandleTypedKey routes typed key events to the current top handler
func (km *KeyManager) HandleTypedKey(ev *fyne.KeyEvent) bool {
	currentHandler := km.GetCurrentHandler()
	if currentHandler == nil {
		km.debugPrint("KeyManager: No handler available for TypedKey event")
		return false
	}

	handled := currentHandler.OnTypedKey(ev)
	km.debugPrint("KeyManager: TypedKey event handled by '%s': %t", currentHandler.GetName(), handled)
	return handled
}

// HandleTypedRune routes typed runes to the current top handler
func (km *KeyManager) HandleTypedRune(r rune) bool {
	currentHandler := km.GetCurrentHandler()
	if currentHandler == nil {
		km.debugPrint("KeyManager: No handler available for TypedRune event")
		return false
	}

	handled := currentHandler.OnTypedRune(r)
	km.debugPrint("KeyManager: TypedRune event handled by '%s': %t", currentHandler.GetName(), handled)
	return handled
}

// GetStackSize returns the current number of handlers in the stack
func (km *KeyManager) GetStackSize() int {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	return len(km.handlers)
}

// ListHandlers returns the names of all handlers in the stack (for debugging)
func (km *KeyManager) ListHandlers() []string {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	names := make([]string, len(km.handlers))
	for i, handler := range km.handlers {
		names[i] = handler.GetName()
	}

	return names
}
