// Package is holds the constraints describing what the actual value is: equal to,
// greater than, null, empty, ordered, of a type, under a path.
package is

import (
	"math"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gcustom"

	"github.com/buildpacks/expect/engine"
)

var (
	// Not negates the following constraint.
	Not = engine.NewExpression(gomega.Not)

	// All applies the following constraint to every item of a collection.
	All = engine.NewExpression(func(c engine.Constraint) engine.Constraint {
		return gomega.HaveEach(c)
	})

	Null  = gomega.BeNil()
	True  = gomega.BeTrue()
	False = gomega.BeFalse()
	Zero  = gomega.BeZero()
	Empty = gomega.BeEmpty()

	Positive = gomega.BeNumerically(">", 0)
	Negative = gomega.BeNumerically("<", 0)

	NaN = gcustom.MakeMatcher(func(actual float64) (bool, error) {
		return math.IsNaN(actual), nil
	}, "be NaN")

	// Unique succeeds when no two items of a collection are equal.
	Unique = gcustom.MakeMatcher(unique, "contain unique items")

	// Ordered succeeds when the items of a collection are in ascending order.
	Ordered = gcustom.MakeMatcher(ordered, "be ordered ascending")
)

func EqualTo(expected any) engine.Constraint {
	return gomega.Equal(expected)
}

func GreaterThan(expected any) engine.Constraint {
	return gomega.BeNumerically(">", expected)
}

func GreaterThanOrEqualTo(expected any) engine.Constraint {
	return gomega.BeNumerically(">=", expected)
}

func LessThan(expected any) engine.Constraint {
	return gomega.BeNumerically("<", expected)
}

func LessThanOrEqualTo(expected any) engine.Constraint {
	return gomega.BeNumerically("<=", expected)
}

// AtLeast is GreaterThanOrEqualTo.
func AtLeast(expected any) engine.Constraint {
	return GreaterThanOrEqualTo(expected)
}

// AtMost is LessThanOrEqualTo.
func AtMost(expected any) engine.Constraint {
	return LessThanOrEqualTo(expected)
}

// InRange succeeds when the actual number lies within [from, to].
func InRange(from, to float64) engine.Constraint {
	return engine.InRange(from, to)
}

// SameAs succeeds when actual and expected are identical, pointers included.
func SameAs(expected any) engine.Constraint {
	return gomega.BeIdenticalTo(expected)
}
