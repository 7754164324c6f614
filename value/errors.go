package value

import (
	"errors"
	"fmt"
)

var (
	// ErrCast is matched by errors from Cast and CastRef when the handle
	// does not hold the requested scalar.
	ErrCast = errors.New("cast error")
	// ErrBoolean is only matched by ParseBool on malformed input, no
	// boolean operation fails.
	ErrBoolean = errors.New("boolean error")
	// ErrInteger is matched by division or modulo by zero, and by any
	// integer operation on a null operand.
	ErrInteger = errors.New("integer error")
	// ErrFloat is matched by division by zero, and by any float operation
	// on a null operand.
	ErrFloat = errors.New("float error")
	// ErrString is matched by construction from a nil source, out of range
	// access, and access to a null string.
	ErrString = errors.New("string error")
	// ErrNull is matched whenever an operation needs a payload and the
	// scalar is null.
	ErrNull = errors.New("used while null")
)

// Error is the single error type returned by this package. It carries
// a formatted message and the kinds it belongs to.
type Error struct {
	kinds []error
	msg   string
}

// NewError builds an error of the given kind, the kind is one of the
// sentinels above or another package's sentinel such as vm.ErrUnsupported.
func NewError(kind error, format string, args ...interface{}) *Error {
	return &Error{kinds: []error{kind}, msg: fmt.Sprintf(format, args...)}
}

func nullError(kind error, vt ValueType) *Error {
	return &Error{kinds: []error{kind, ErrNull}, msg: fmt.Sprintf("%s used while null", vt)}
}

func (e *Error) Error() string   { return e.msg }
func (e *Error) Unwrap() []error { return e.kinds }
