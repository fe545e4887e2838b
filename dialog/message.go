package dialog

import (
	"fmt"

	"dialogkit/internal/constants"
	apperrors "dialogkit/internal/errors"
	"dialogkit/toolkit"
)

// ShowMessage shows a message with a single OK button and blocks until the
// window is disposed, either by clicking OK or by closing the window with
// the close box or Escape.
// Toolkit failures are returned unchanged.
func ShowMessage(parent toolkit.Window, typ Type, title, message string, modality Modality, opts ...Option) error {
	if typ < TypeNone || typ >= TypeQuestion {
		return apperrors.NewDialogError("show_message", fmt.Sprintf("type %s", typ), ErrUnsupportedType)
	}
	o := newOptions(opts)
	labels := o.labels.Labels()

	f, err := newFrame("show_message", parent, typ, title, message, modality, o)
	if err != nil {
		return err
	}

	ok, err := f.addButton(labels.OK, -constants.SingleButtonHalf, constants.SingleButtonHalf)
	if err != nil {
		return err
	}
	ok.AddSelectionListener(func(toolkit.SelectionEvent) {
		o.debugPrint("show_message: %q clicked", labels.OK)
		f.window.Dispose()
	})
	f.window.SetDefaultButton(ok)

	return f.run()
}
