// Package apperr holds the error taxonomy shared by the storefront managers.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindConflict:
		return "CONFLICT"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Error is raised before any state mutation; Message is safe to show to the user as-is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func IsValidation(err error) bool { return is(err, KindValidation) }
func IsConflict(err error) bool   { return is(err, KindConflict) }
func IsNotFound(err error) bool   { return is(err, KindNotFound) }
