package keymanager

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func dummyDebug(format string, args ...interface{}) {}

type fakeDialog struct {
	title     string
	activated int
	closed    int
}

func (f *fakeDialog) ActivateDefault() { f.activated++ }
func (f *fakeDialog) CloseByKey()      { f.closed++ }
func (f *fakeDialog) Title() string    { return f.title }

func TestKeyManagerStack(t *testing.T) {
	km := NewKeyManager(dummyDebug)
	assert.Nil(t, km.GetCurrentHandler())
	assert.Nil(t, km.PopHandler())
	assert.False(t, km.HandleTypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape}))

	first := NewDialogKeyHandler(&fakeDialog{title: "first"}, dummyDebug)
	second := NewDialogKeyHandler(&fakeDialog{title: "second"}, dummyDebug)
	km.PushHandler(first)
	km.PushHandler(second)

	assert.Equal(t, 2, km.GetStackSize())
	assert.Equal(t, []string{"Dialog:first", "Dialog:second"}, km.ListHandlers())
	assert.Same(t, second, km.GetCurrentHandler())

	assert.Same(t, second, km.PopHandler())
	assert.Same(t, first, km.GetCurrentHandler())
}

func TestKeyManagerRemoveHandler(t *testing.T) {
	km := NewKeyManager(dummyDebug)
	first := NewDialogKeyHandler(&fakeDialog{title: "first"}, dummyDebug)
	second := NewDialogKeyHandler(&fakeDialog{title: "second"}, dummyDebug)
	km.PushHandler(first)
	km.PushHandler(second)

	assert.True(t, km.RemoveHandler(first))
	assert.False(t, km.RemoveHandler(first))
	assert.Equal(t, []string{"Dialog:second"}, km.ListHandlers())
}

func TestDialogKeyHandlerRouting(t *testing.T) {
	dlg := &fakeDialog{title: "Confirm"}
	km := NewKeyManager(dummyDebug)
	km.PushHandler(NewDialogKeyHandler(dlg, dummyDebug))

	assert.True(t, km.HandleTypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn}))
	assert.True(t, km.HandleTypedKey(&fyne.KeyEvent{Name: fyne.KeyEnter}))
	assert.Equal(t, 2, dlg.activated)

	assert.True(t, km.HandleTypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape}))
	assert.Equal(t, 1, dlg.closed)

	// Other keys and runes are swallowed without side effects
	assert.True(t, km.HandleTypedKey(&fyne.KeyEvent{Name: fyne.KeyY}))
	assert.True(t, km.HandleTypedRune('y'))
	assert.Equal(t, 2, dlg.activated)
	assert.Equal(t, 1, dlg.closed)
}
