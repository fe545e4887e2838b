package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeString(t *testing.T) {
	testCases := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeConfig, "config"},
		{ErrorTypeToolkit, "toolkit"},
		{ErrorTypeLayout, "layout"},
		{ErrorTypeDialog, "dialog"},
		{ErrorTypeLocale, "locale"},
		{ErrorTypeTheme, "theme"},
		{ErrorType(999), "unknown"}, // Invalid error type
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.errorType.String())
	}
}

func TestAppErrorError(t *testing.T) {
	// With path
	err := &AppError{
		Type:      ErrorTypeConfig,
		Operation: "load_config",
		Path:      "/home/user/.config/dialogkit/config.json",
		Message:   "invalid JSON",
		Err:       errors.New("syntax error"),
	}
	assert.Equal(t, "config error in load_config [/home/user/.config/dialogkit/config.json]: invalid JSON", err.Error())

	// Without path, with cause
	err2 := &AppError{
		Type:      ErrorTypeToolkit,
		Operation: "new_window",
		Message:   "parent rejected",
		Err:       errors.New("disposed"),
	}
	assert.Equal(t, "toolkit error in new_window: parent rejected: disposed", err2.Error())

	// Neither path nor cause
	err3 := &AppError{
		Type:      ErrorTypeDialog,
		Operation: "show_message",
		Message:   "question type not supported",
	}
	assert.Equal(t, "dialog error in show_message: question type not supported", err3.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := NewLayoutError("layout", "cycle", originalErr)
	assert.Same(t, originalErr, appErr.Unwrap())

	assert.Nil(t, NewDialogError("show", "bad type", nil).Unwrap())
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	testCases := []struct {
		name     string
		err      *AppError
		expected ErrorType
		path     string
	}{
		{"config", NewConfigError("save", "/tmp/c.json", "write failed", cause), ErrorTypeConfig, "/tmp/c.json"},
		{"toolkit", NewToolkitError("new_button", "window disposed", cause), ErrorTypeToolkit, ""},
		{"layout", NewLayoutError("layout", "cycle", cause), ErrorTypeLayout, ""},
		{"dialog", NewDialogError("show_option", "no parent", cause), ErrorTypeDialog, ""},
		{"locale", NewLocaleError("load_messages", "de.toml", "parse failed", cause), ErrorTypeLocale, "de.toml"},
		{"theme", NewThemeError("load_font", "font.ttf", "missing", cause), ErrorTypeTheme, "font.ttf"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Type)
			assert.Equal(t, tc.path, tc.err.Path)
			assert.ErrorIs(t, tc.err, cause)
		})
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := errors.New("original")
	var err error = NewToolkitError("open", "failed", originalErr)

	assert.True(t, errors.Is(err, originalErr))

	var appErr *AppError
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Equal(t, ErrorTypeToolkit, appErr.Type)
	}
}
