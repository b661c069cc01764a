package errdef

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeUnknown       Code = "unknown"
	CodeNotFound      Code = "not_found"
	CodeInvalidFormat Code = "invalid_format"
	CodeValidation    Code = "validation"
	CodeParse         Code = "parse"
	CodeFilesystem    Code = "filesystem"
	CodeConfig        Code = "config"
	CodeStore         Code = "store"
)

// Error carries a classification code alongside the human readable message.
// Field is set for validation failures and names the offending document path.
type Error struct {
	Code    Code
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Field != "" {
		if msg == "" {
			msg = e.Field
		} else {
			msg = e.Field + ": " + msg
		}
	}
	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: sprintf(format, args...)}
}

func Wrap(code Code, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: sprintf(format, args...), Err: err}
}

// Invalid reports a validation failure for a single field.
func Invalid(field, format string, args ...any) error {
	return &Error{Code: CodeValidation, Field: field, Message: sprintf(format, args...)}
}

// CodeOf returns the code of the outermost *Error in err's chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Err
	}
	return false
}

// FieldOf returns the field recorded on the first validation error in err's chain.
func FieldOf(err error) string {
	var e *Error
	for err != nil && errors.As(err, &e) {
		if e.Field != "" {
			return e.Field
		}
		err = e.Err
	}
	return ""
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
