package dialog_test

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dialogkit/dialog"
	"dialogkit/formlayout"
	"dialogkit/headless"
	"dialogkit/toolkit"
)

// snapshot records a dialog window while it is open.
type snapshot struct {
	window  *headless.Window
	width   int
	height  int
	icon    *headless.Label
	message formlayout.Rect
	text    string
	buttons map[string]formlayout.Rect
	blocked bool
}

func take(d *headless.Display, parent *headless.Window, s *snapshot) func() {
	return func() {
		w := d.ActiveWindow()
		s.window = w
		s.width, s.height = w.Size()
		s.icon = w.ImageLabel()
		s.message = w.TextLabel().Bounds()
		s.text = w.TextLabel().Text()
		s.buttons = make(map[string]formlayout.Rect)
		for _, b := range w.Buttons() {
			s.buttons[b.Text()] = b.Bounds()
		}
		s.blocked = d.Blocked(parent)
	}
}

func click(d *headless.Display, text string) func() {
	return func() {
		d.ActiveWindow().ButtonByText(text).Click()
	}
}

func TestShowOptionNoReturnsFalse(t *testing.T) {
	d := headless.NewDisplay()
	parent := d.NewShell("main")

	var s snapshot
	d.OnIdle(take(d, parent, &s), click(d, "No"))

	result, err := dialog.ShowOption(parent, dialog.TypeQuestion, "Confirm", "Proceed?", dialog.ModalityApplication)
	require.NoError(t, err)

	assert.False(t, result)
	assert.Equal(t, "Proceed?", s.text)
	assert.True(t, s.blocked)
	assert.True(t, s.window.IsDisposed())
	assert.False(t, s.window.ClosedByBox())
	assert.Equal(t, []*headless.Window{parent}, d.LiveWindows())
	assert.False(t, d.Blocked(parent))
	assert.Zero(t, d.Starved())
}

func TestShowOptionYesReturnsTrue(t *testing.T) {
	d := headless.NewDisplay()
	parent := d.NewShell("main")
	d.OnIdle(click(d, "Yes"))

	result, err := dialog.ShowOption(parent, dialog.TypeWarning, "Overwrite", "Replace the file?", dialog.ModalityPrimary)
	require.NoError(t, err)
	assert.True(t, result)
	assert.Len(t, d.LiveWindows(), 1)
}

func TestShowOptionDismiss(t *testing.T) {
	testCases := []struct {
		name     string
		opts     []dialog.Option
		expected bool
	}{
		{"default is negative", nil, false},
		{"configured affirmative", []dialog.Option{dialog.WithDismissResult(true)}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" close box", func(t *testing.T) {
			d := headless.NewDisplay()
			parent := d.NewShell("main")
			var closed *headless.Window
			d.OnIdle(func() {
				closed = d.ActiveWindow()
				closed.Close()
			})

			result, err := dialog.ShowOption(parent, dialog.TypeNone, "Close", "Close me", dialog.ModalityNone, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
			assert.True(t, closed.ClosedByBox())
		})

		t.Run(tc.name+" escape", func(t *testing.T) {
			d := headless.NewDisplay()
			parent := d.NewShell("main")
			d.OnIdle(func() { d.PressKey(fyne.KeyEscape) })

			result, err := dialog.ShowOption(parent, dialog.TypeNone, "Close", "Close me", dialog.ModalityNone, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestShowOptionReturnActivatesYes(t *testing.T) {
	d := headless.NewDisplay()
	parent := d.NewShell("main")
	d.OnIdle(func() { d.PressKey(fyne.KeyReturn) })

	result, err := dialog.ShowOption(parent, dialog.TypeQuestion, "Confirm", "Proceed?", dialog.ModalityApplication)
	require.NoError(t, err)
	assert.True(t, result)
}

func TestShowMessageOK(t *testing.T) {
	d := headless.NewDisplay()
	parent := d.NewShell("main")

	var s snapshot
	d.OnIdle(take(d, parent, &s), click(d, "OK"))

	err := dialog.ShowMessage(parent, dialog.TypeInfo, "Saved", "The document has been saved.", dialog.ModalityPrimary)
	require.NoError(t, err)

	assert.True(t, s.window.IsDisposed())
	assert.False(t, s.window.ClosedByBox())
	assert.Equal(t, "Saved", s.window.Title())
	assert.Equal(t, toolkit.StyleDialogTrim|toolkit.StylePrimaryModal, s.window.Style())
	assert.True(t, s.blocked)
	require.Len(t, s.buttons, 1)
	assert.Equal(t, formlayout.Rect{X: 135, Y: 125, Width: 70, Height: 25}, s.buttons["OK"])
	assert.Len(t, d.LiveWindows(), 1)
}

func TestShowMessageDismissedWithoutOK(t *testing.T) {
	testCases := []struct {
		name    string
		dismiss func(d *headless.Display)
	}{
		{"close box", func(d *headless.Display) { d.ActiveWindow().Close() }},
		{"escape", func(d *headless.Display) { d.PressKey(fyne.KeyEscape) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := headless.NewDisplay()
			parent := d.NewShell("main")
			var w *headless.Window
			d.OnIdle(func() {
				w = d.ActiveWindow()
				tc.dismiss(d)
			})

			err := dialog.ShowMessage(parent, dialog.TypeWarning, "Careful", "Disk almost full", dialog.ModalityPrimary)
			require.NoError(t, err)
			assert.True(t, w.IsDisposed())
			assert.True(t, w.ClosedByBox())
			assert.Zero(t, d.Starved())
			assert.Len(t, d.LiveWindows(), 1)
		})
	}
}

func TestShowMessagePumpsPendingEvents(t *testing.T) {
	d := headless.NewDisplay()
	parent := d.NewShell("main")

	clicks := 0
	d.OnIdle(
		func() { d.Post(func() { clicks++ }) },
		click(d, "OK"),
	)

	require.NoError(t, dialog.ShowMessage(parent, dialog.TypeNone, "Note", "text", dialog.ModalityNone))
	assert.Equal(t, 1, clicks)
}

func TestWindowSizeAndIconLayout(t *testing.T) {
	testCases := []struct {
		typ         dialog.Type
		option      bool
		hasIcon     bool
		messageLeft int
		messageEnd  int
	}{
		{dialog.TypeNone, false, false, 15, 325},
		{dialog.TypeInfo, false, true, 116, 330},
		{dialog.TypeWarning, false, true, 116, 330},
		{dialog.TypeError, false, true, 116, 330},
		{dialog.TypeNone, true, false, 15, 325},
		{dialog.TypeInfo, true, true, 116, 330},
		{dialog.TypeWarning, true, true, 116, 330},
		{dialog.TypeError, true, true, 116, 330},
		{dialog.TypeQuestion, true, true, 116, 330},
	}

	for _, tc := range testCases {
		name := tc.typ.String()
		if tc.option {
			name += "/option"
		}
		t.Run(name, func(t *testing.T) {
			d := headless.NewDisplay()
			parent := d.NewShell("main")
			var s snapshot
			var err error
			if tc.option {
				d.OnIdle(take(d, parent, &s), click(d, "No"))
				_, err = dialog.ShowOption(parent, tc.typ, "t", "m", dialog.ModalityNone)
			} else {
				d.OnIdle(take(d, parent, &s), click(d, "OK"))
				err = dialog.ShowMessage(parent, tc.typ, "t", "m", dialog.ModalityNone)
			}
			require.NoError(t, err)

			assert.Equal(t, 340, s.width)
			assert.Equal(t, 160, s.height)
			assert.Equal(t, tc.hasIcon, s.icon != nil)
			if tc.hasIcon {
				assert.Equal(t, formlayout.Rect{X: 10, Y: 10, Width: 96, Height: 96}, s.icon.Bounds())
				assert.Equal(t, s.icon.Image(), s.window.Image())
				assert.Equal(t, d.SystemIcon(tc.typ.Icon()), s.icon.Image())
			} else {
				assert.Nil(t, s.window.Image())
			}
			assert.Equal(t, 15, s.message.Y)
			assert.Equal(t, tc.messageLeft, s.message.X)
			assert.Equal(t, tc.messageEnd, s.message.Right())
			// message ends 10 units above the button row
			assert.Equal(t, 115, s.message.Bottom())
		})
	}
}

func TestOptionButtonRow(t *testing.T) {
	d := headless.NewDisplay()
	parent := d.NewShell("main")
	var s snapshot
	d.OnIdle(take(d, parent, &s), click(d, "Yes"))

	_, err := dialog.ShowOption(parent, dialog.TypeQuestion, "Confirm", "Proceed?", dialog.ModalityNone)
	require.NoError(t, err)

	assert.Equal(t, formlayout.Rect{X: 95, Y: 125, Width: 70, Height: 25}, s.buttons["Yes"])
	assert.Equal(t, formlayout.Rect{X: 175, Y: 125, Width: 70, Height: 25}, s.buttons["No"])
	assert.Same(t, s.window.ButtonByText("Yes"), s.window.DefaultButton())
}

func TestLabelsAtConstruction(t *testing.T) {
	d := headless.NewDisplay()
	parent := d.NewShell("main")

	provider := &countingProvider{labels: dialog.Labels{OK: "Okay", Yes: "Ja", No: "Nein"}}

	var s snapshot
	d.OnIdle(take(d, parent, &s), func() {
		// changing the provider after construction must not affect this dialog
		provider.labels = dialog.Labels{Yes: "Oui", No: "Non"}
	}, click(d, "Nein"))

	result, err := dialog.ShowOption(parent, dialog.TypeQuestion, "Frage", "Weiter?", dialog.ModalityNone, dialog.WithLabels(provider))
	require.NoError(t, err)
	assert.False(t, result)
	assert.Contains(t, s.buttons, "Ja")
	assert.Contains(t, s.buttons, "Nein")
	assert.Equal(t, 1, provider.calls)

	// the next dialog picks up the new captions
	d.OnIdle(take(d, parent, &s), click(d, "Oui"))
	result, err = dialog.ShowOption(parent, dialog.TypeQuestion, "Question", "Continuer ?", dialog.ModalityNone, dialog.WithLabels(provider))
	require.NoError(t, err)
	assert.True(t, result)
	assert.Contains(t, s.buttons, "Non")
}

func TestOverrideLabels(t *testing.T) {
	p := dialog.Override(dialog.DefaultLabels(), dialog.Labels{No: "Cancel"})
	assert.Equal(t, dialog.Labels{OK: "OK", Yes: "Yes", No: "Cancel"}, p.Labels())

	p = dialog.Override(nil, dialog.Labels{OK: "Got it"})
	assert.Equal(t, "Got it", p.Labels().OK)
	assert.Equal(t, "Yes", p.Labels().Yes)
}

func TestWithSize(t *testing.T) {
	d := headless.NewDisplay()
	parent := d.NewShell("main")
	var s snapshot
	d.OnIdle(take(d, parent, &s), click(d, "OK"))

	require.NoError(t, dialog.ShowMessage(parent, dialog.TypeNone, "t", "m", dialog.ModalityNone, dialog.WithSize(400, 200)))
	assert.Equal(t, 400, s.width)
	assert.Equal(t, 200, s.height)
	assert.Equal(t, formlayout.Rect{X: 165, Y: 165, Width: 70, Height: 25}, s.buttons["OK"])
}

func TestShowErrors(t *testing.T) {
	d := headless.NewDisplay()
	parent := d.NewShell("main")

	err := dialog.ShowMessage(nil, dialog.TypeInfo, "t", "m", dialog.ModalityNone)
	assert.ErrorIs(t, err, toolkit.ErrInvalidParent)

	err = dialog.ShowMessage(parent, dialog.TypeQuestion, "t", "m", dialog.ModalityNone)
	assert.ErrorIs(t, err, dialog.ErrUnsupportedType)

	_, err = dialog.ShowOption(parent, dialog.Type(42), "t", "m", dialog.ModalityNone)
	assert.ErrorIs(t, err, dialog.ErrUnsupportedType)

	foreign := headless.NewDisplay()
	foreignParent := foreign.NewShell("foreign")
	foreignParent.Dispose()
	_, err = dialog.ShowOption(foreignParent, dialog.TypeNone, "t", "m", dialog.ModalityNone)
	assert.ErrorIs(t, err, toolkit.ErrDisposed)

	assert.Len(t, d.Windows(), 1)
}

func TestTypeAndModality(t *testing.T) {
	assert.Equal(t, toolkit.IconNone, dialog.TypeNone.Icon())
	assert.Equal(t, toolkit.IconInformation, dialog.TypeInfo.Icon())
	assert.Equal(t, toolkit.IconWarning, dialog.TypeWarning.Icon())
	assert.Equal(t, toolkit.IconError, dialog.TypeError.Icon())
	assert.Equal(t, toolkit.IconQuestion, dialog.TypeQuestion.Icon())

	assert.Equal(t, toolkit.StyleDialogTrim, dialog.ModalityNone.Style())
	assert.Equal(t, toolkit.StyleDialogTrim|toolkit.StyleSystemModal, dialog.ModalitySystem.Style())

	typ, err := dialog.ParseType("Warning")
	require.NoError(t, err)
	assert.Equal(t, dialog.TypeWarning, typ)
	_, err = dialog.ParseType("fatal")
	assert.Error(t, err)

	m, err := dialog.ParseModality("APPLICATION")
	require.NoError(t, err)
	assert.Equal(t, dialog.ModalityApplication, m)
	_, err = dialog.ParseModality("global")
	assert.Error(t, err)

	assert.Equal(t, "Type(9)", dialog.Type(9).String())
	assert.Equal(t, "Modality(9)", dialog.Modality(9).String())
}

type countingProvider struct {
	labels dialog.Labels
	calls  int
}

func (p *countingProvider) Labels() dialog.Labels {
	p.calls++
	return dialog.Override(dialog.DefaultLabels(), p.labels).Labels()
}
