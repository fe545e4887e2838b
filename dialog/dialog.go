// Package dialog shows modal message and option dialogs on any toolkit
// backend. Both dialogs block the calling goroutine, pumping the backend's
// event loop, until their window is disposed.
package dialog

import (
	"fmt"
	"strings"

	"dialogkit/internal/constants"
	"dialogkit/toolkit"
)

// Type selects the system icon shown in the dialog.
type Type int

const (
	// TypeNone shows no icon.
	TypeNone Type = iota
	TypeInfo
	TypeWarning
	TypeError
	// TypeQuestion is only accepted by option dialogs.
	TypeQuestion
)

// Icon returns the system icon kind for t.
func (t Type) Icon() toolkit.IconKind {
	switch t {
	case TypeInfo:
		return toolkit.IconInformation
	case TypeWarning:
		return toolkit.IconWarning
	case TypeError:
		return toolkit.IconError
	case TypeQuestion:
		return toolkit.IconQuestion
	default:
		return toolkit.IconNone
	}
}

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeInfo:
		return "info"
	case TypeWarning:
		return "warning"
	case TypeError:
		return "error"
	case TypeQuestion:
		return "question"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses the String form of a Type, case-insensitively.
func ParseType(s string) (Type, error) {
	for t := TypeNone; t <= TypeQuestion; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return TypeNone, fmt.Errorf("unknown dialog type %q", s)
}

// Modality is the scope of windows blocked while a dialog is open.
type Modality int

const (
	ModalityNone Modality = iota
	// ModalityPrimary blocks the parent window.
	ModalityPrimary
	// ModalityApplication blocks every window of the application.
	ModalityApplication
	// ModalitySystem blocks every window on the system.
	ModalitySystem
)

// Style returns the window style for a dialog of modality m.
func (m Modality) Style() toolkit.Style {
	switch m {
	case ModalityPrimary:
		return toolkit.StyleDialogTrim | toolkit.StylePrimaryModal
	case ModalityApplication:
		return toolkit.StyleDialogTrim | toolkit.StyleApplicationModal
	case ModalitySystem:
		return toolkit.StyleDialogTrim | toolkit.StyleSystemModal
	default:
		return toolkit.StyleDialogTrim
	}
}

func (m Modality) String() string {
	switch m {
	case ModalityNone:
		return "none"
	case ModalityPrimary:
		return "primary"
	case ModalityApplication:
		return "application"
	case ModalitySystem:
		return "system"
	default:
		return fmt.Sprintf("Modality(%d)", int(m))
	}
}

// ParseModality parses the String form of a Modality, case-insensitively.
func ParseModality(s string) (Modality, error) {
	for m := ModalityNone; m <= ModalitySystem; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return ModalityNone, fmt.Errorf("unknown modality %q", s)
}

// Labels holds the button captions.
type Labels struct {
	OK  string
	Yes string
	No  string
}

// DefaultLabels returns the English captions.
func DefaultLabels() Labels {
	return Labels{
		OK:  constants.DefaultOKText,
		Yes: constants.DefaultYesText,
		No:  constants.DefaultNoText,
	}
}

// Labels implements LabelProvider, so a Labels value can be passed directly.
func (l Labels) Labels() Labels { return l }

// LabelProvider supplies button captions. It is consulted once per dialog,
// at construction time.
type LabelProvider interface {
	Labels() Labels
}

type overrideProvider struct {
	base     LabelProvider
	override Labels
}

func (o overrideProvider) Labels() Labels {
	l := o.base.Labels()
	if o.override.OK != "" {
		l.OK = o.override.OK
	}
	if o.override.Yes != "" {
		l.Yes = o.override.Yes
	}
	if o.override.No != "" {
		l.No = o.override.No
	}
	return l
}

// Override returns a provider that takes captions from base and replaces the
// ones set in override.
func Override(base LabelProvider, override Labels) LabelProvider {
	if base == nil {
		base = DefaultLabels()
	}
	return overrideProvider{base: base, override: override}
}

type options struct {
	labels        LabelProvider
	width         int
	height        int
	dismissResult bool
	debugPrint    func(format string, args ...interface{})
}

// Option customizes a single dialog.
type Option func(*options)

// WithLabels sets the caption provider.
func WithLabels(p LabelProvider) Option {
	return func(o *options) {
		if p != nil {
			o.labels = p
		}
	}
}

// WithSize overrides the window size.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithDismissResult sets what an option dialog returns when its window is
// closed without clicking Yes or No, for example with the close box or the
// Escape key. The default is false.
func WithDismissResult(result bool) Option {
	return func(o *options) { o.dismissResult = result }
}

// WithDebug routes debug output to debugPrint.
func WithDebug(debugPrint func(format string, args ...interface{})) Option {
	return func(o *options) {
		if debugPrint != nil {
			o.debugPrint = debugPrint
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		labels:        DefaultLabels(),
		width:         constants.DialogWidth,
		height:        constants.DialogHeight,
		dismissResult: constants.DefaultDismiss,
		debugPrint:    func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
