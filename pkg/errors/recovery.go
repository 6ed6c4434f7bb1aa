package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/cockroachdb/errors"
)

// PanicError is a recovered panic turned into an error.
//
// LogisticRegression.Fit indexes rows without checking them, so a malformed
// row panics. Callers that cannot validate their input up front run Fit
// under SafeExecute and get a PanicError instead.
type PanicError struct {
	Operation  string
	PanicValue interface{}
	Stack      []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf(prefix+"panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap exposes the panic value when it is an error, such as a
// runtime.Error from an out-of-range index.
func (e *PanicError) Unwrap() error {
	err, _ := e.PanicValue.(error)
	return err
}

// Format prints the goroutine stack captured at recovery for %+v.
func (e *PanicError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\n%s", e.Error(), e.Stack)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover stores a recovered panic in *err. It must be deferred directly:
//
//	func (m *Model) Do() (err error) {
//	    defer errors.Recover(&err, "Model.Do")
//	    ...
//	}
//
// An error already in *err is kept as a secondary error of the PanicError.
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	pe := &PanicError{Operation: operation, PanicValue: r, Stack: debug.Stack()}
	if *err != nil {
		*err = errors.WithSecondaryError(pe, *err)
		return
	}
	*err = pe
}

// SafeExecute runs fn and returns its error, or a *PanicError if fn panics.
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
