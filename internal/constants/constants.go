package constants

import "time"

// Application constants
const (
	ApplicationName  = "dialogkit"
	ApplicationTitle = "Dialog Kit"
)

// Dialog dimensions, in logical units
const (
	// Window size shared by the message and option dialogs
	DialogWidth  = 340
	DialogHeight = 160

	// Icon shown in the top-left corner for typed dialogs
	IconSize   = 96
	IconMargin = 10

	// Message label insets
	MessageTop        = 15
	MessageInset      = 15 // no icon: left and right inset
	MessageIconGap    = 10 // gap between icon and message
	MessageRightInset = 10 // right inset when an icon is shown
	MessageButtonGap  = 10 // gap between message bottom and button row

	// Button row
	ButtonBottom      = 10
	SingleButtonHalf  = 35 // OK spans center-35 .. center+35
	PairButtonOuter   = 75 // Yes spans center-75 .. center-5
	PairButtonInner   = 5  // No spans center+5 .. center+75
	DefaultButtonSize = 25 // preferred button height for backends without metrics
	DefaultLineHeight = 18 // preferred label line height for backends without metrics
)

// Demo application window
const (
	DefaultWindowWidth  = 420
	DefaultWindowHeight = 220
)

// Event loop
const (
	// IdleInterval bounds how long an idle pump sleeps before re-checking
	// the dialog window state.
	IdleInterval    = 20 * time.Millisecond
	EventBufferSize = 64
)

// Default button labels
const (
	DefaultOKText  = "OK"
	DefaultYesText = "Yes"
	DefaultNoText  = "No"
)

// Message catalog identifiers for the button labels
const (
	MessageIDOK  = "ButtonOK"
	MessageIDYes = "ButtonYes"
	MessageIDNo  = "ButtonNo"
)

// Theme constants
const (
	DefaultFontSize  = 14
	DarkThemeDefault = true
)

// Configuration constants
const (
	ConfigFileName  = "config.json"
	DefaultLocale   = "en"
	DefaultDismiss  = false
	VendorDirectory = "vorb"
)
