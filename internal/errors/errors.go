package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a structured error with code, step, message, and metadata.
//
// Parse errors carry the offending text in Input. Out-of-bounds errors carry
// the whole group in Lines and the index that was attempted in Index.
type Error struct {
	Code    Code                   `json:"code"`
	Step    Step                   `json:"step,omitempty"`
	Message string                 `json:"message"`
	Input   string                 `json:"input,omitempty"`
	Lines   []string               `json:"lines,omitempty"`
	Index   int                    `json:"index,omitempty"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Step != "" {
		b.WriteString(" [")
		b.WriteString(string(e.Step))
		b.WriteString("]")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type. A target with a step
// only matches errors from that step.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		if targetErr.Step != "" && targetErr.Step != e.Step {
			return false
		}
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// WithMetaMap adds multiple metadata entries
func (e *Error) WithMetaMap(meta map[string]interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	for k, v := range meta {
		e.Meta[k] = v
	}
	return e
}

// WithCause attaches the underlying error
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
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
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code and step if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Step:    existingErr.Step,
			Message: message,
			Input:   existingErr.Input,
			Lines:   existingErr.Lines,
			Index:   existingErr.Index,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	meta := make(map[string]interface{})
	if errors.As(err, &existingErr) && existingErr.Meta != nil {
		for k, v := range existingErr.Meta {
			meta[k] = v
		}
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}
}

// WrapWithCodef wraps an error with a specific code and formatted message
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// Constructor functions for the structural kinds

// Parse creates a grammar violation for the given step and offending text
func Parse(step Step, input string) *Error {
	return &Error{
		Code:    CodeParse,
		Step:    step,
		Message: fmt.Sprintf("cannot parse %q", input),
		Input:   input,
	}
}

// Parsef creates a grammar violation with an explanatory message
func Parsef(step Step, input, format string, args ...interface{}) *Error {
	return &Error{
		Code:    CodeParse,
		Step:    step,
		Message: fmt.Sprintf("cannot parse %q: %s", input, fmt.Sprintf(format, args...)),
		Input:   input,
	}
}

// OutOfBounds creates a cardinality violation. The lines are copied so the
// error keeps the group verbatim.
func OutOfBounds(step Step, lines []string, index int) *Error {
	kept := make([]string, len(lines))
	copy(kept, lines)
	return &Error{
		Code:    CodeOutOfBounds,
		Step:    step,
		Message: fmt.Sprintf("index %d out of bounds for %d lines", index, len(lines)),
		Lines:   kept,
		Index:   index,
	}
}

// Other constructor functions

// IO creates a read error
func IO(message string) *Error {
	return &Error{Code: CodeIO, Step: StepLoad, Message: message}
}

// IOf creates a read error with formatted message
func IOf(format string, args ...interface{}) *Error {
	return &Error{Code: CodeIO, Step: StepLoad, Message: fmt.Sprintf(format, args...)}
}

// Format creates a serialization error
func Format(message string) *Error {
	return &Error{Code: CodeFormat, Step: StepExport, Message: message}
}

// Formatf creates a serialization error with formatted message
func Formatf(format string, args ...interface{}) *Error {
	return &Error{Code: CodeFormat, Step: StepExport, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// Unavailable creates an unavailable error
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// Unavailablef creates an unavailable error with formatted message
func Unavailablef(format string, args ...interface{}) *Error {
	return Newf(CodeUnavailable, format, args...)
}

// Canceled creates a canceled error
func Canceled(message string) *Error {
	return New(CodeCanceled, message)
}
