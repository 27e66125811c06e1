package is

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega/gcustom"

	"github.com/buildpacks/expect/engine"
)

// InstanceOf succeeds when the actual value can be used as a t: it has type t, or t is
// an interface the value implements. Go has no subclasses; for concrete types this is
// the same check as TypeOf.
func InstanceOf(t reflect.Type) engine.Constraint {
	return typeMatcher(fmt.Sprintf("be an instance of %s", t), func(actual reflect.Type) bool {
		return actual.AssignableTo(t)
	})
}

// TypeOf succeeds when the dynamic type of the actual value is exactly t.
func TypeOf(t reflect.Type) engine.Constraint {
	return typeMatcher(fmt.Sprintf("be of type %s", t), func(actual reflect.Type) bool {
		return actual == t
	})
}

// AssignableTo succeeds when a value of the actual type can be assigned to a t.
func AssignableTo(t reflect.Type) engine.Constraint {
	return typeMatcher(fmt.Sprintf("be assignable to %s", t), func(actual reflect.Type) bool {
		return actual.AssignableTo(t)
	})
}

// AssignableFrom succeeds when a value of type t can be assigned to a variable of the
// actual type.
func AssignableFrom(t reflect.Type) engine.Constraint {
	return typeMatcher(fmt.Sprintf("be assignable from %s", t), func(actual reflect.Type) bool {
		return t.AssignableTo(actual)
	})
}

func typeMatcher(message string, accept func(actual reflect.Type) bool) engine.Constraint {
	return gcustom.MakeMatcher(func(actual any) (bool, error) {
		rt := reflect.TypeOf(actual)
		if rt == nil {
			return false, nil
		}
		return accept(rt), nil
	}, message)
}
