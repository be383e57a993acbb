// Package errors defines the structured error type shared by every layer of
// the recommendation engine.  Handlers, CLI commands, and the metrics layer
// all key off the ErrorCode carried here, so errors created anywhere in the
// tree should go through New or Wrap.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// stackDepth caps the number of frames captured per error.
const stackDepth = 32

// captureStack formats the call stack starting two frames above the caller,
// skipping captureStack itself and the factory that invoked it.
func captureStack(skip int) string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		f, more := frames.Next()
		// Runtime frames add nothing when reading a trace.
		if !strings.Contains(f.File, "runtime/") {
			fmt.Fprintf(&sb, "\n\t%s:%d %s", f.File, f.Line, f.Function)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

// AppError carries a typed code, a caller-facing message, and optional
// debugging detail.  It wraps in the Go 1.13 sense, so errors.Is / errors.As
// traverse the Cause chain.
//
//	return errors.New(errors.ErrCodeSummaryNotFound, "no evidence summary for Suzuki")
//	return errors.Wrap(storeErr, errors.ErrCodeStorageError, "failed to load summary")
type AppError struct {
	Code    ErrorCode
	Message string

	// Detail holds supplementary context (tags, paths, generation IDs) that
	// helps debugging without widening Message.
	Detail string

	// Cause is the wrapped lower-level error, if any.
	Cause error

	// Stack is the call stack captured at construction.  It is excluded from
	// Error() output; the logging middleware reads it directly.
	Stack string
}

// Error renders "[<code>] <message>: <detail>", dropping the detail segment
// when empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a copy of the receiver with Detail set.  Nil-safe.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithCause returns a copy of the receiver wrapping err.  Nil-safe.
func (e *AppError) WithCause(err error) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Cause = err
	return &clone
}

// New constructs an AppError with a fresh stack snapshot.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Stack:   captureStack(1),
	}
}

// Wrap attaches a code and message to an existing error.  A nil err yields
// nil, so Wrap can sit directly on a return:
//
//	return errors.Wrap(store.Load(ctx, tag), errors.ErrCodeStorageError, "load failed")
//
// Passing CodeUnknown keeps the code of a wrapped *AppError, so context can
// be added mid-chain without re-classifying the failure.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
		Stack:   captureStack(1),
	}
}

// IsCode reports whether any *AppError in err's chain carries code.
//
//	if errors.IsCode(err, errors.ErrCodeSummaryNotFound) { ... }
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// NotFound constructs a generic not-found error with the given message.
func NotFound(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
		Stack:   captureStack(1),
	}
}

// Internal constructs an internal error with the given message.
func Internal(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Stack:   captureStack(1),
	}
}

// IsNotFound reports whether err's code maps to HTTP 404.  This covers the
// generic ErrCodeNotFound as well as domain variants such as
// ErrCodeSummaryNotFound and ErrCodeReagentUnknown.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return HTTPStatusForCode(GetCode(err)) == http.StatusNotFound
}

// GetCode returns the code of the first *AppError in err's chain, CodeUnknown
// for foreign errors, and CodeOK for nil.  The metrics and HTTP layers use it
// to label failures without knowing the domain error set.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}
