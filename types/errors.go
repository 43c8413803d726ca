package types

import (
	"errors"
	"fmt"
)

const (
	ErrInvalidInput     = "Invalid input"
	ErrStorageError     = "Storage error"
	ErrUnauthorizedText = "Unauthorized access"
	ErrInternalError    = "internal server error"
	ErrEmployeeNotFound = "Employee not found"
)

var (
	// ErrNotFound is returned when an id lookup on update, delete, view or payroll fails.
	ErrNotFound = errors.New("employee not found")

	// ErrUnauthorized is returned by the authentication boundary.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidAmount is returned for a salary figure that is NaN or infinite.
	ErrInvalidAmount = errors.New("amount must be a finite number")
)

// ParseError reports a malformed record in the employee file. Record is
// 1-based and does not count blank lines. A load that returns one leaves
// the collection untouched.
type ParseError struct {
	Path   string
	Record int
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: record %d: invalid %s %q: %v", e.Path, e.Record, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: record %d: %v", e.Path, e.Record, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError wraps a failure to open or write one of the backing files.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidAmount(err error) bool {
	return errors.Is(err, ErrInvalidAmount)
}

func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func IsIOError(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}
