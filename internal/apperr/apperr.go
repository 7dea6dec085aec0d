package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure so handlers can map it to a status code.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindState      Kind = "state"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Statef(format string, args ...any) *Error {
	return &Error{Kind: KindState, Msg: fmt.Sprintf(format, args...)}
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsValidation(err error) bool { k, ok := KindOf(err); return ok && k == KindValidation }
func IsNotFound(err error) bool   { k, ok := KindOf(err); return ok && k == KindNotFound }
func IsConflict(err error) bool   { k, ok := KindOf(err); return ok && k == KindConflict }
func IsState(err error) bool      { k, ok := KindOf(err); return ok && k == KindState }
