package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can branch without string matching
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller supplied bad input
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested record does not exist
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a record that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates an internal failure
	CodeInternal Code = "internal"

	// CodeUnavailable indicates the data provider could not be reached or answered badly
	CodeUnavailable Code = "unavailable"

	// CodeDataFormat indicates an external payload is missing a required field
	CodeDataFormat Code = "data_format"

	// CodeMalformedVarietyData indicates wrong stat or type cardinality in variety data
	CodeMalformedVarietyData Code = "malformed_variety_data"

	// CodeInsufficientMoves indicates move sampling could not find enough unique moves
	CodeInsufficientMoves Code = "insufficient_moves"

	// CodeSelectionExhausted indicates a bounded re-sampling ran out of attempts
	CodeSelectionExhausted Code = "selection_exhausted"

	// CodeStore indicates a persistence failure
	CodeStore Code = "store"
)

// Error is an application error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var botErr *Error
	if errors.As(err, &botErr) {
		return &Error{
			Code:    botErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(botErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error and forces the given code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// DataFormatf creates a formatted data format error
func DataFormatf(format string, args ...any) *Error {
	return Newf(CodeDataFormat, format, args...)
}

// MalformedVarietyDataf creates a formatted malformed variety data error
func MalformedVarietyDataf(format string, args ...any) *Error {
	return Newf(CodeMalformedVarietyData, format, args...)
}

// InsufficientMovesf creates a formatted insufficient moves error
func InsufficientMovesf(format string, args ...any) *Error {
	return Newf(CodeInsufficientMoves, format, args...)
}

// SelectionExhaustedf creates a formatted selection exhausted error
func SelectionExhaustedf(format string, args ...any) *Error {
	return Newf(CodeSelectionExhausted, format, args...)
}

// Store wraps a persistence failure
func Store(err error, message string) *Error {
	return WrapWithCode(err, CodeStore, message)
}

// Is checks if the error carries the given code
func Is(err error, code Code) bool {
	var botErr *Error
	if errors.As(err, &botErr) {
		return botErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var botErr *Error
	if errors.As(err, &botErr) {
		return botErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var botErr *Error
	if errors.As(err, &botErr) {
		return botErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
