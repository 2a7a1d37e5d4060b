package dbase

import (
	"errors"
	"strings"
)

// Error wraps an error with the chain of places it passed through.
// The context tags are ordered from the outermost call to the origin.
type Error struct {
	context []string
	err     error
}

func newError(context string, err error) Error {
	if e, ok := err.(Error); ok {
		e.context = append([]string{context}, e.context...)
		return e
	}
	return Error{
		context: []string{context},
		err:     err,
	}
}

func (e Error) Error() string {
	if e.err == nil {
		return "unknown error"
	}
	return e.err.Error()
}

func (e Error) Unwrap() error {
	return e.err
}

// Context returns the context tags of the error
func (e Error) Context() []string {
	return e.context
}

func (e Error) trace() string {
	return strings.Join(append(append([]string{}, e.context...), e.Error()), ":")
}

// GetErrorTrace returns a new error containing the context trace of err.
// Errors not created by this package are returned unchanged.
func GetErrorTrace(err error) error {
	var e Error
	if errors.As(err, &e) {
		return errors.New(e.trace())
	}
	return err
}
