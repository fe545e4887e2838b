package errors

import (
	"fmt"
)

// ErrorType represents different types of errors that can occur
type ErrorType int

const (
	ErrorTypeConfig ErrorType = iota
	ErrorTypeToolkit
	ErrorTypeLayout
	ErrorTypeDialog
	ErrorTypeLocale
	ErrorTypeTheme
)

// String returns a string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeToolkit:
		return "toolkit"
	case ErrorTypeLayout:
		return "layout"
	case ErrorTypeDialog:
		return "dialog"
	case ErrorTypeLocale:
		return "locale"
	case ErrorTypeTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// AppError represents a structured error raised by one of the dialog layers
type AppError struct {
	Type      ErrorType
	Operation string
	Path      string
	Message   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error in %s [%s]: %s", e.Type, e.Operation, e.Path, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s error in %s: %s: %v", e.Type, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error
func NewConfigError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeConfig,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewToolkitError creates an error raised by a widget toolkit binding
func NewToolkitError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeToolkit,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewLayoutError creates an error for attachments that cannot be resolved
func NewLayoutError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeLayout,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewDialogError creates an error for invalid dialog requests
func NewDialogError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeDialog,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewLocaleError creates an error for message catalogs that fail to load
func NewLocaleError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeLocale,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewThemeError creates a new theme error
func NewThemeError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeTheme,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}
