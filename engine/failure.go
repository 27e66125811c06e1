package engine

import "testing"

// AssertionFailure is reported whenever an expectation is not met.
type AssertionFailure struct {
	Message string
}

func (f *AssertionFailure) Error() string {
	return f.Message
}

// FailHandler receives every failure produced by an Engine.
type FailHandler func(failure *AssertionFailure)

// PanicHandler is the default FailHandler. It panics with the failure so callers can
// recover it with Capture.
func PanicHandler(failure *AssertionFailure) {
	panic(failure)
}

// TestingTHandler reports failures on t and stops the running test.
func TestingTHandler(t testing.TB) FailHandler {
	return func(failure *AssertionFailure) {
		t.Helper()
		t.Fatal(failure.Message)
	}
}

// Capture runs f and returns the failure it panicked with, or nil when f completed.
// Panics that are not an *AssertionFailure are re-raised.
func Capture(f func()) (failure *AssertionFailure) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if af, ok := r.(*AssertionFailure); ok {
			failure = af
			return
		}
		panic(r)
	}()

	f()
	return nil
}

// Run calls code and returns its error. An *AssertionFailure panic raised by code is
// returned as the error instead; other panics are re-raised.
func Run(code TestDelegate) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if af, ok := r.(*AssertionFailure); ok {
			err = af
			return
		}
		panic(r)
	}()

	return code()
}

func newFailure(message string) *AssertionFailure {
	return &AssertionFailure{Message: message}
}
