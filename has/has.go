// Package has holds constraint expressions about what the actual value has: items
// matching a constraint, a length, a field, an error message.
package has

import (
	"errors"
	"reflect"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/format"
	pkgerrors "github.com/pkg/errors"

	"github.com/buildpacks/expect/engine"
)

var (
	// No negates the following constraint.
	No = engine.NewExpression(gomega.Not)

	// Some succeeds when at least one item of a collection satisfies the following
	// constraint.
	Some = engine.NewExpression(func(c engine.Constraint) engine.Constraint {
		return gomega.ContainElement(c)
	})

	// None succeeds when no item of a collection satisfies the following constraint.
	None = engine.NewExpression(func(c engine.Constraint) engine.Constraint {
		return gomega.Not(gomega.ContainElement(c))
	})

	// Length applies the following constraint to the length of a string, slice, array,
	// map or channel.
	Length = engine.NewExpression(func(c engine.Constraint) engine.Constraint {
		return gomega.WithTransform(length, c)
	})

	// Count is Length.
	Count = engine.NewExpression(func(c engine.Constraint) engine.Constraint {
		return gomega.WithTransform(length, c)
	})

	// Message applies the following constraint to the message of an error.
	Message = engine.NewExpression(func(c engine.Constraint) engine.Constraint {
		return gomega.WithTransform(message, c)
	})

	// Wrapped applies the following constraint to the error an error wraps.
	Wrapped = engine.NewExpression(func(c engine.Constraint) engine.Constraint {
		return gomega.WithTransform(wrapped, c)
	})
)

// Exactly succeeds when exactly count items of a collection satisfy the following
// constraint.
func Exactly(count int) *engine.Expression {
	return &engine.NewItemsExpression(count).Expression
}

// Property applies the following constraint to the named field or zero-argument method
// of the actual value.
func Property(name string) *engine.Expression {
	return engine.NewExpression(func(c engine.Constraint) engine.Constraint {
		return gomega.HaveField(name, c)
	})
}

// Member succeeds when a collection contains expected.
func Member(expected any) engine.Constraint {
	return gomega.ContainElement(expected)
}

func length(actual any) (int, error) {
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len(), nil
	default:
		return 0, pkgerrors.Errorf("expected a value with a length. Got:\n%s", format.Object(actual, 1))
	}
}

func message(actual any) (string, error) {
	err, ok := actual.(error)
	if !ok || err == nil {
		return "", pkgerrors.Errorf("expected an error. Got:\n%s", format.Object(actual, 1))
	}
	return err.Error(), nil
}

func wrapped(actual any) (error, error) {
	err, ok := actual.(error)
	if !ok || err == nil {
		return nil, pkgerrors.Errorf("expected an error. Got:\n%s", format.Object(actual, 1))
	}
	return errors.Unwrap(err), nil
}
