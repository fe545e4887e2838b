package dialog

import (
	"errors"

	"dialogkit/formlayout"
	"dialogkit/internal/constants"
	apperrors "dialogkit/internal/errors"
	"dialogkit/toolkit"
)

// ErrUnsupportedType is returned when a dialog is asked for a type it cannot show.
var ErrUnsupportedType = errors.New("unsupported dialog type")

// frame is the layout shared by both dialogs: an optional icon in the
// top-left corner, a wrapping message filling the rest of the top area, and
// a row of buttons centered along the bottom edge.
type frame struct {
	op          string
	window      toolkit.Window
	message     toolkit.Label
	messageData *formlayout.Data
	buttons     []toolkit.Button
	opts        *options
}

func newFrame(op string, parent toolkit.Window, typ Type, title, text string, modality Modality, o *options) (*frame, error) {
	if parent == nil {
		return nil, apperrors.NewDialogError(op, "a parent window is required", toolkit.ErrInvalidParent)
	}
	if parent.IsDisposed() {
		return nil, apperrors.NewDialogError(op, "parent window", toolkit.ErrDisposed)
	}

	display := parent.Display()
	icon := display.SystemIcon(typ.Icon())

	window, err := display.NewWindow(parent, modality.Style())
	if err != nil {
		return nil, err
	}
	f := &frame{op: op, window: window, opts: o}

	window.SetImage(icon)
	window.SetSize(o.width, o.height)
	window.SetTitle(title)

	var iconLabel toolkit.Label
	if icon != nil {
		if iconLabel, err = window.NewLabel(toolkit.LabelNone); err != nil {
			window.Dispose()
			return nil, err
		}
		iconLabel.SetLayoutData(&formlayout.Data{
			Top:    formlayout.Attach(0, constants.IconMargin),
			Left:   formlayout.Attach(0, constants.IconMargin),
			Width:  constants.IconSize,
			Height: constants.IconSize,
		})
		iconLabel.SetImage(icon)
	}

	if f.message, err = window.NewLabel(toolkit.LabelWrap); err != nil {
		window.Dispose()
		return nil, err
	}
	f.messageData = &formlayout.Data{Top: formlayout.Attach(0, constants.MessageTop)}
	if iconLabel != nil {
		f.messageData.Left = formlayout.AttachTo(iconLabel, constants.MessageIconGap)
		f.messageData.Right = formlayout.Attach(formlayout.Denominator, -constants.MessageRightInset)
	} else {
		f.messageData.Left = formlayout.Attach(0, constants.MessageInset)
		f.messageData.Right = formlayout.Attach(formlayout.Denominator, -constants.MessageInset)
	}
	f.message.SetLayoutData(f.messageData)
	f.message.SetText(text)

	o.debugPrint("%s: built %q type=%s modality=%s", op, title, typ, modality)
	return f, nil
}

// addButton adds a bottom-row button spanning left..right around the
// horizontal center. The first button added also bounds the message label.
func (f *frame) addButton(text string, left, right int) (toolkit.Button, error) {
	b, err := f.window.NewButton()
	if err != nil {
		f.window.Dispose()
		return nil, err
	}
	if len(f.buttons) == 0 {
		f.messageData.Bottom = formlayout.AttachTo(b, -constants.MessageButtonGap)
	}
	b.SetLayoutData(&formlayout.Data{
		Bottom: formlayout.Attach(formlayout.Denominator, -constants.ButtonBottom),
		Left:   formlayout.Attach(formlayout.Denominator/2, left),
		Right:  formlayout.Attach(formlayout.Denominator/2, right),
	})
	b.SetText(text)
	f.buttons = append(f.buttons, b)
	return b, nil
}

// run opens the window and pumps events until it is disposed. The window
// is always disposed when run returns.
func (f *frame) run() error {
	if err := f.window.Open(); err != nil {
		f.window.Dispose()
		return err
	}
	if err := f.window.Layout(); err != nil {
		f.window.Dispose()
		return err
	}
	toolkit.RunUntilDisposed(f.window)
	f.opts.debugPrint("%s: window disposed", f.op)
	return nil
}
