package advanced

import "github.com/pkg/errors"

var (
	// The polygon, the query point or the options can't be classified.
	ErrInvalidInput = errors.New("invalid input")
	// Every ray tried grazed a vertex. Only returned in strict mode; otherwise
	// the classification degrades to OnBoundary.
	ErrRetryExhausted = errors.New("retry budget exhausted")
)

// Returned in strict mode when no clean ray was found. Result holds the
// engine's working from the last attempt.
type ExhaustedError struct {
	Result Result
	cause  error
}

func (e *ExhaustedError) Error() string {
	return e.cause.Error()
}

func (e *ExhaustedError) Unwrap() error {
	return e.cause
}

// Threading errors through the engine's case analysis would obscure it, so
// invalid input panics with a ClassifyError and the public API recovers to
// convert it back to an error.
type ClassifyError struct {
	error
}

func (e ClassifyError) Unwrap() error {
	return e.error
}

// Panic with a ClassifyError wrapping err.
func throw(err error) {
	panic(ClassifyError{err})
}

func fatalf(format string, args ...interface{}) {
	throw(errors.Wrapf(ErrInvalidInput, format, args...))
}

// Turn a recovered ClassifyError back into an error. Any other panic value is
// a bug, and is re-panicked.
func HandleClassifyPanicRecover(r interface{}) error {
	if r != nil {
		if classifyError, ok := r.(ClassifyError); ok {
			return classifyError.error
		}
		panic(r)
	}
	return nil
}
