package helpers

import (
	"github.com/ztrue/tracerr"
)

// Error carries a stack trace from the point it was created. The zero
// value and NilError both mean "no error"; check with IsNil / HasError
// rather than comparing against nil.
type Error struct {
	err tracerr.Error
}

var NilError = Error{nil}

func Errorf(format string, args ...interface{}) Error {
	return Error{tracerr.Errorf(format, args...)}
}

func Wrap(err error) Error {
	if err == nil {
		return NilError
	}
	if traceable, ok := err.(Error); ok {
		return traceable
	}
	return Error{tracerr.Wrap(err)}
}

func WrapReturn[T any](x T, err error) (T, Error) {
	return x, Wrap(err)
}

func IsNil(err error) bool {
	if traceable, ok := err.(Error); ok {
		return traceable.err == nil
	}
	if traceable, ok := err.(*Error); ok {
		return traceable == nil || traceable.err == nil
	}
	return err == nil
}

func (e Error) IsNil() bool {
	return e.err == nil
}

func (e Error) HasError() bool {
	return e.err != nil
}

func (e Error) Error() string {
	if e.err == nil {
		return "<nil>"
	}
	return e.err.Error()
}

func (e Error) String() string {
	if e.err == nil {
		return "<nil>"
	}
	return tracerr.Sprint(e.err)
}

func (e Error) Unwrap() error {
	return e.err
}
