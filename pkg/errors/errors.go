// Package errors provides the coded error type shared by the apidoc
// packages and the CLI.
//
// Every error raised on purpose carries a [Code] telling the caller what went
// wrong without parsing messages:
//   - INVALID_*: the snapshot, config, path or command input is malformed
//   - *_NOT_FOUND: a snapshot file or an exporter does not exist
//   - IO_ERROR: reading an input or writing an output sink failed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeExporterNotFound, "unknown exporter %q", name)
//	if errors.Is(err, errors.ErrCodeExporterNotFound) {
//	    // list the registry
//	}
//
//	err = errors.Wrap(errors.ErrCodeIO, cause, "create %s", path)
//	fmt.Println(errors.UserMessage(err)) // "create graph.json: permission denied"
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidSnapshot Code = "INVALID_SNAPSHOT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Missing resources
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeExporterNotFound Code = "EXPORTER_NOT_FOUND"

	// I/O errors
	ErrCodeIO Code = "IO_ERROR"
)

// Codes lists every error code.
func Codes() []Code {
	return []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidSnapshot,
		ErrCodeInvalidConfig,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeExporterNotFound,
		ErrCodeIO,
	}
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface as "CODE: message: cause".
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap creates an Error around cause. A nil cause is allowed.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err for humans: the messages of a chain of *Error
// values joined by ": ", without their codes, followed by the first foreign
// cause.
func UserMessage(err error) string {
	var parts []string
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			parts = append(parts, err.Error())
			break
		}
		if e.Message != "" {
			parts = append(parts, e.Message)
		}
		err = e.Cause
	}
	return strings.Join(parts, ": ")
}
