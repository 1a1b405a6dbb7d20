// Package errors defines the error taxonomy shared by services and handlers.
// Every failure that reaches a caller is a *DomainError of one Kind; the
// handler layer maps the Kind onto an HTTP status.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a DomainError.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindPermission     Kind = "permission"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindStore          Kind = "store"
)

type DomainError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches another DomainError with the same kind and code, so sentinel
// values keep matching after Wrap.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// Wrap copies the error and attaches a cause.
func (e *DomainError) Wrap(err error) *DomainError {
	cp := *e
	cp.Err = err
	return &cp
}

func New(kind Kind, code, msg string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: msg}
}

func Validation(msg string) *DomainError {
	return New(KindValidation, "VALIDATION_ERROR", msg)
}

// Store wraps an unexpected persistence failure.
func Store(op string, err error) *DomainError {
	return &DomainError{
		Kind:    KindStore,
		Code:    "STORE_ERROR",
		Message: fmt.Sprintf("failed to %s", op),
		Err:     err,
	}
}

// KindOf returns the Kind of err, or KindStore for foreign errors.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStore
}

// HTTPStatus maps an error onto the status code used by the API.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindPermission:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// As is errors.As, re-exported because this package shadows the standard one.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is is errors.Is, re-exported for the same reason.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
