package errors

import (
	"errors"
	"fmt"
)

// Stage faults. Each pipeline stage wraps its underlying error in exactly one
// of these so callers can tell where a run stopped without losing the cause.
var (
	ErrDecode       = NewError("DECODE_FAULT", "failed to decode log payload")
	ErrInflate      = NewError("INFLATE_FAULT", "failed to inflate log payload")
	ErrParse        = NewError("PARSE_FAULT", "failed to parse log batch")
	ErrFormat       = NewError("FORMAT_FAULT", "log message has no JSON body")
	ErrNotification = NewError("NOTIFICATION_FAULT", "failed to build notification")
	ErrResolve      = NewError("RESOLVE_FAULT", "failed to resolve topic")
	ErrPublish      = NewError("PUBLISH_FAULT", "failed to publish notification")
	ErrInternal     = NewError("INTERNAL_ERROR", "internal error")
)

type Error struct {
	Code    string
	Message string
	Details map[string]interface{}
	Cause   error
}

func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code, so the package
// level sentinels can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *Error) WithCause(cause error) *Error {
	err := *e
	err.Cause = cause
	return &err
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	err := *e
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	err.Details = details
	return &err
}

func Wrap(err error, appErr *Error) *Error {
	if err == nil {
		return nil
	}
	return appErr.WithCause(err)
}

// CodeOf returns the code of the outermost *Error in err's chain, or "" if
// there is none.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
