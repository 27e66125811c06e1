// Package engine adapts gomega to the expect facade. It owns the constraint type, the
// delegate types accepted by the Expect family, and the routing of gomega failures to
// a FailHandler as *AssertionFailure values.
package engine

import (
	"sync"
	"testing"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// Constraint is anything an actual value can be matched against.
type Constraint = types.GomegaMatcher

// ActualValueDelegate produces the value under test when the expectation runs.
type ActualValueDelegate[T any] func() T

// TestDelegate runs the code under test. The returned error is what throws constraints
// inspect; a nil error means nothing was raised.
type TestDelegate func() error

// Engine applies constraints through gomega and reports failures to its FailHandler.
type Engine struct {
	mu      sync.RWMutex
	handler FailHandler
	g       gomega.Gomega
}

var defaultEngine = New(PanicHandler)

// New returns an Engine reporting to handler. A nil handler means PanicHandler.
func New(handler FailHandler) *Engine {
	e := &Engine{}
	e.SetFailHandler(handler)
	e.g = gomega.NewGomega(e.fail)
	return e
}

// NewForT returns an Engine that fails t.
func NewForT(t testing.TB) *Engine {
	return New(TestingTHandler(t))
}

// Default is the Engine behind the package-level expect functions.
func Default() *Engine {
	return defaultEngine
}

// SetFailHandler replaces the handler failures are reported to.
func (e *Engine) SetFailHandler(handler FailHandler) {
	if handler == nil {
		handler = PanicHandler
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.handler = handler
}

func (e *Engine) fail(message string, _ ...int) {
	e.mu.RLock()
	handler := e.handler
	e.mu.RUnlock()

	handler(newFailure(message))
}

// That applies c to actual. The optional description is either a format string with
// arguments or a single func() string evaluated only on failure.
func (e *Engine) That(actual any, c Constraint, description ...any) {
	e.g.Expect(actual).To(c, description...)
}

// True asserts that condition holds.
func (e *Engine) True(condition bool, description ...any) {
	e.That(condition, gomega.BeTrue(), description...)
}
