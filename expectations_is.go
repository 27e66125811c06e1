package expect

import (
	"reflect"

	"github.com/buildpacks/expect/engine"
	"github.com/buildpacks/expect/is"
)

var (
	Not      = is.Not
	All      = is.All
	Null     = is.Null
	True     = is.True
	False    = is.False
	Zero     = is.Zero
	Empty    = is.Empty
	Positive = is.Positive
	Negative = is.Negative
	NaN      = is.NaN
	Unique   = is.Unique
	Ordered  = is.Ordered

	EqualTo              = is.EqualTo
	GreaterThan          = is.GreaterThan
	GreaterThanOrEqualTo = is.GreaterThanOrEqualTo
	LessThan             = is.LessThan
	LessThanOrEqualTo    = is.LessThanOrEqualTo
	AtLeast              = is.AtLeast
	AtMost               = is.AtMost
	SameAs               = is.SameAs
	EquivalentTo         = is.EquivalentTo
	SubsetOf             = is.SubsetOf
	SupersetOf           = is.SupersetOf
	SamePath             = is.SamePath
	SamePathOrUnder      = is.SamePathOrUnder
	SubPathOf            = is.SubPathOf

	// InRange accepts any pair of numbers gomega can compare with the actual value,
	// not only float64.
	InRange = engine.InRange
)

func InstanceOf(t reflect.Type) engine.Constraint {
	return is.InstanceOf(t)
}

func TypeOf(t reflect.Type) engine.Constraint {
	return is.TypeOf(t)
}

func AssignableTo(t reflect.Type) engine.Constraint {
	return is.AssignableTo(t)
}

func AssignableFrom(t reflect.Type) engine.Constraint {
	return is.AssignableFrom(t)
}
