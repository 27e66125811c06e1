// Package throws holds constraints about the error returned by an engine.TestDelegate.
package throws

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gcustom"
	pkgerrors "github.com/pkg/errors"

	"github.com/buildpacks/expect/engine"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

var (
	// Nothing succeeds when no error was returned.
	Nothing = gomega.Succeed()

	// Exception succeeds when any error was returned.
	Exception = gomega.HaveOccurred()
)

// InstanceOf succeeds when the returned error, or an error it wraps, can be assigned to
// a t. t is an error type or an interface.
func InstanceOf(t reflect.Type) engine.Constraint {
	return gcustom.MakeMatcher(func(actual any) (bool, error) {
		if t == nil || (t.Kind() != reflect.Interface && !t.Implements(errorType)) {
			return false, pkgerrors.Errorf("%s does not implement error", t)
		}
		err, ok := actual.(error)
		if !ok || err == nil {
			return false, nil
		}
		return errors.As(err, reflect.New(t).Interface()), nil
	}, engine.Literal(fmt.Sprintf("be an error assignable to %s", t)))
}

// TypeOf succeeds when the returned error itself has exactly the type t.
func TypeOf(t reflect.Type) engine.Constraint {
	return gcustom.MakeMatcher(func(actual any) (bool, error) {
		if _, ok := actual.(error); !ok || actual == nil {
			return false, nil
		}
		return reflect.TypeOf(actual) == t, nil
	}, engine.Literal(fmt.Sprintf("be an error of type %s", t)))
}

// WithMessage succeeds when an error was returned and its message satisfies c.
func WithMessage(c engine.Constraint) engine.Constraint {
	return gomega.MatchError(c)
}
