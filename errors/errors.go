// Package errors provides const-declarable error values and shadows the parts of the standard errors package the rest of the module uses.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeparator separates a message from its cause in a wrapped error message.
const ErrSeparator = " -- "

// Error provides a string based error type allowing the definition of const errors in packages.
type Error string

func (s Error) Error() string {
	return string(s)
}

// Is reports whether target carries the same message as s, either exactly or as the prefix of a wrapped error.
func (s Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return s.Error() == target.Error() || strings.HasPrefix(target.Error(), s.Error()+ErrSeparator)
}

// Wrap adds err as the cause of this Error and returns the wrapped error.
func (s Error) Wrap(err error) error {
	return wrappedError{cause: err, msg: string(s)}
}

// Wrapf adds a formatted detail message as the cause of this Error.
func (s Error) Wrapf(format string, args ...any) error {
	return wrappedError{cause: fmt.Errorf(format, args...), msg: string(s)}
}

type wrappedError struct {
	cause error
	msg   string
}

func (w wrappedError) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s%s%v", w.msg, ErrSeparator, w.cause)
	}
	return w.msg
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// Is reports whether any error in err's tree matches target.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns a new error with the specified message.
func New(message string) error {
	return errors.New(message)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// JoinedErrors is implemented by errors created with Join.
type JoinedErrors interface {
	Unwrap() []error
}

// UnwrapErrors flattens a joined error into its parts. A plain error is returned as a single element slice.
func UnwrapErrors(err error) []error {
	if err == nil {
		return nil
	}

	if je, ok := err.(JoinedErrors); ok {
		return je.Unwrap()
	}
	return []error{err}
}
