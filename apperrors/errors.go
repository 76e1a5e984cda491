// Package apperrors classifies failures so handlers can map them to HTTP
// status codes in one place instead of re-checking gorm errors everywhere.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func Validation(msg string) error   { return &Error{kind: KindValidation, msg: msg} }
func Unauthorized(msg string) error { return &Error{kind: KindUnauthorized, msg: msg} }
func Forbidden(msg string) error    { return &Error{kind: KindForbidden, msg: msg} }
func NotFound(msg string) error     { return &Error{kind: KindNotFound, msg: msg} }
func Conflict(msg string) error     { return &Error{kind: KindConflict, msg: msg} }

// Internal wraps an unexpected storage or downstream failure. The wrapped
// detail stays in server logs; clients only see the message.
func Internal(msg string, err error) error { return &Error{kind: KindInternal, msg: msg, err: err} }

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns what the client is allowed to see. Internal detail is
// replaced with a generic message.
func Message(err error) string {
	if KindOf(err) == KindInternal {
		return "internal server error"
	}
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	return "internal server error"
}
