// Package domainerrors defines the coded error type shared by every domain package.
//
// Two channels coexist:
//   - CodeValidation: a factory rejected its raw input. The message lists every
//     failed rule joined with "; ".
//   - CodeRequiredArgument: a mutator received an absent value it structurally
//     needs. This is a caller bug, not a data-quality issue.
//
// Other codes describe aggregate-level outcomes (conflicting state transitions,
// broken invariants).
package domainerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a domain error.
type Code string

const (
	CodeValidation         Code = "validation"
	CodeInvalidInput       Code = "invalid_input"
	CodeInvariantViolation Code = "invariant_violation"
	CodeRequiredArgument   Code = "required_argument"
	CodeConflict           Code = "conflict"
	CodeNotFound           Code = "not_found"
	CodeInternal           Code = "internal"
)

// MessageSeparator joins collected validation messages.
const MessageSeparator = "; "

// Error is a domain error carrying a Code.
type Error struct {
	Code    Code
	Message string
	// Messages holds the individual rule failures for CodeValidation errors.
	Messages []string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode reports whether any error in err's chain is an *Error with code.
func HasCode(err error, code Code) bool {
	var de *Error
	if !errors.As(err, &de) {
		return false
	}
	if de.Code == code {
		return true
	}
	return de.Err != nil && HasCode(de.Err, code)
}

// Is is an alias of HasCode kept for call sites that read better with it.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf returns the code of the outermost *Error in err's chain, or "" when
// err carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Messages returns the individual validation messages carried by err. Errors
// that are not validation failures yield a single-element slice with their text.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) && len(de.Messages) > 0 {
		return append([]string(nil), de.Messages...)
	}
	return []string{err.Error()}
}

// Validation collects rule failures for one factory call so callers see every
// problem at once instead of the first one.
type Validation struct {
	messages []string
}

// Add records a failed rule.
func (v *Validation) Add(msg string) {
	v.messages = append(v.messages, msg)
}

// Addf records a failed rule built from a format string.
func (v *Validation) Addf(format string, args ...any) {
	v.Add(fmt.Sprintf(format, args...))
}

// Check records msg when ok is false.
func (v *Validation) Check(ok bool, msg string) {
	if !ok {
		v.Add(msg)
	}
}

// Merge folds the messages of a nested factory error into this collection.
func (v *Validation) Merge(err error) {
	if err == nil {
		return
	}
	v.messages = append(v.messages, Messages(err)...)
}

// Empty reports whether nothing has been collected.
func (v *Validation) Empty() bool {
	return len(v.messages) == 0
}

// Err returns nil when no rule failed, otherwise a CodeValidation error whose
// message joins every failure in the order they were recorded.
func (v *Validation) Err() error {
	if len(v.messages) == 0 {
		return nil
	}
	msgs := append([]string(nil), v.messages...)
	return &Error{
		Code:     CodeValidation,
		Message:  strings.Join(msgs, MessageSeparator),
		Messages: msgs,
	}
}

// Required returns a CodeRequiredArgument error for the named argument.
func Required(name string) error {
	return New(CodeRequiredArgument, name+" is required")
}
