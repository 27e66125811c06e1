// Package expect lets tests call Expect and the constraint builders as package-level
// functions instead of through legacy.AssertionHelper.
//
// Every Expect function takes an optional description: a format string followed by
// its arguments, or a single func() string evaluated only when the expectation fails.
//
//	expect.RegisterTestingT(t)
//	expect.ExpectThat(names, expect.Exactly(1).EqualTo("pack"))
//	expect.ExpectCode(func() error { return run() }, expect.ThrowsNothing, "running %s", name)
package expect

import (
	"testing"

	"github.com/buildpacks/expect/engine"
)

// Expect fails when condition is false.
func Expect(condition bool, description ...any) {
	engine.Default().True(condition, description...)
}

// ExpectFunc calls condition once and fails when it returns false.
func ExpectFunc(condition func() bool, description ...any) {
	engine.Default().True(condition(), description...)
}

// ExpectValue calls del once and applies c to the value it returns.
func ExpectValue[T any](del engine.ActualValueDelegate[T], c engine.Constraint, description ...any) {
	engine.Default().That(del(), c, description...)
}

// ExpectCode runs code and applies c to the error it returns. Use the Throws
// constraints to describe the expected error. A failed expectation inside code is
// inspected as an *engine.AssertionFailure error; any other panic propagates.
func ExpectCode(code engine.TestDelegate, c engine.Constraint, description ...any) {
	engine.Default().That(engine.Run(code), c, description...)
}

// ExpectThat applies c to actual.
func ExpectThat(actual any, c engine.Constraint, description ...any) {
	engine.Default().That(actual, c, description...)
}

// RegisterFailHandler routes failures of the package-level functions to handler. A nil
// handler restores engine.PanicHandler.
func RegisterFailHandler(handler engine.FailHandler) {
	engine.Default().SetFailHandler(handler)
}

// RegisterTestingT makes failures of the package-level functions fail t.
func RegisterTestingT(t testing.TB) {
	RegisterFailHandler(engine.TestingTHandler(t))
}

// Capture runs f and returns the assertion failure it raised under the default
// engine.PanicHandler, or nil.
func Capture(f func()) *engine.AssertionFailure {
	return engine.Capture(f)
}
