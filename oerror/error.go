package oerror

import "fmt"

// Error is the error type returned by freerun packages for invalid input that a caller can fix, such as a
// configuration value out of range.
type Error struct {
	Err string
}

// New returns a new Error with a message formatted from the format and args given.
func New(format string, args ...any) *Error {
	if len(args) == 0 {
		return &Error{Err: format}
	}
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
