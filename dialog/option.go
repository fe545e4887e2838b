package dialog

import (
	"fmt"

	"dialogkit/internal/constants"
	apperrors "dialogkit/internal/errors"
	"dialogkit/toolkit"
)

// ShowOption asks a yes/no question and blocks until the window is disposed.
// It returns true when Yes was clicked and false when No was clicked. A
// window closed any other way returns the dismiss result, false unless
// changed with WithDismissResult. On error the result is false.
func ShowOption(parent toolkit.Window, typ Type, title, question string, modality Modality, opts ...Option) (bool, error) {
	if typ < TypeNone || typ > TypeQuestion {
		return false, apperrors.NewDialogError("show_option", fmt.Sprintf("type %s", typ), ErrUnsupportedType)
	}
	o := newOptions(opts)
	labels := o.labels.Labels()

	f, err := newFrame("show_option", parent, typ, title, question, modality, o)
	if err != nil {
		return false, err
	}

	yes, err := f.addButton(labels.Yes, -constants.PairButtonOuter, -constants.PairButtonInner)
	if err != nil {
		return false, err
	}
	no, err := f.addButton(labels.No, constants.PairButtonInner, constants.PairButtonOuter)
	if err != nil {
		return false, err
	}

	result := o.dismissResult
	onSelected := func(e toolkit.SelectionEvent) {
		switch e.Widget {
		case yes:
			result = true
		case no:
			result = false
		}
		o.debugPrint("show_option: result=%t", result)
		f.window.Dispose()
	}
	yes.AddSelectionListener(onSelected)
	no.AddSelectionListener(onSelected)
	f.window.SetDefaultButton(yes)

	if err := f.run(); err != nil {
		return false, err
	}
	return result, nil
}
