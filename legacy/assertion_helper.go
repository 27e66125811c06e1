// Package legacy holds the instance-based assertion helper that predates the
// package-level functions of github.com/buildpacks/expect.
package legacy

import (
	"reflect"
	"testing"

	"github.com/buildpacks/expect/does"
	"github.com/buildpacks/expect/engine"
	"github.com/buildpacks/expect/has"
	"github.com/buildpacks/expect/is"
	"github.com/buildpacks/expect/throws"
)

// AssertionHelper carries the Expect family and every constraint builder as methods.
// The zero value reports failures through engine.Default.
//
// Deprecated: call the package-level functions of github.com/buildpacks/expect instead.
type AssertionHelper struct {
	engine *engine.Engine
}

// NewAssertionHelper returns a helper that fails t.
func NewAssertionHelper(t testing.TB) *AssertionHelper {
	return &AssertionHelper{engine: engine.NewForT(t)}
}

// NewAssertionHelperWithHandler returns a helper reporting to handler.
func NewAssertionHelperWithHandler(handler engine.FailHandler) *AssertionHelper {
	return &AssertionHelper{engine: engine.New(handler)}
}

func (a *AssertionHelper) e() *engine.Engine {
	if a.engine == nil {
		return engine.Default()
	}
	return a.engine
}

func (a *AssertionHelper) Expect(condition bool, description ...any) {
	a.e().True(condition, description...)
}

func (a *AssertionHelper) ExpectFunc(condition func() bool, description ...any) {
	a.e().True(condition(), description...)
}

func (a *AssertionHelper) ExpectValue(del engine.ActualValueDelegate[any], c engine.Constraint, description ...any) {
	a.e().That(del(), c, description...)
}

func (a *AssertionHelper) ExpectCode(code engine.TestDelegate, c engine.Constraint, description ...any) {
	a.e().That(engine.Run(code), c, description...)
}

func (a *AssertionHelper) ExpectThat(actual any, c engine.Constraint, description ...any) {
	a.e().That(actual, c, description...)
}

func (a *AssertionHelper) Not() *engine.Expression            { return is.Not }
func (a *AssertionHelper) All() *engine.Expression            { return is.All }
func (a *AssertionHelper) Null() engine.Constraint            { return is.Null }
func (a *AssertionHelper) True() engine.Constraint            { return is.True }
func (a *AssertionHelper) False() engine.Constraint           { return is.False }
func (a *AssertionHelper) Zero() engine.Constraint            { return is.Zero }
func (a *AssertionHelper) Empty() engine.Constraint           { return is.Empty }
func (a *AssertionHelper) Positive() engine.Constraint        { return is.Positive }
func (a *AssertionHelper) Negative() engine.Constraint        { return is.Negative }
func (a *AssertionHelper) NaN() engine.Constraint             { return is.NaN }
func (a *AssertionHelper) Unique() engine.Constraint          { return is.Unique }
func (a *AssertionHelper) Ordered() engine.Constraint         { return is.Ordered }
func (a *AssertionHelper) No() *engine.Expression             { return has.No }
func (a *AssertionHelper) Some() *engine.Expression           { return has.Some }
func (a *AssertionHelper) None() *engine.Expression           { return has.None }
func (a *AssertionHelper) Length() *engine.Expression         { return has.Length }
func (a *AssertionHelper) Count() *engine.Expression          { return has.Count }
func (a *AssertionHelper) Message() *engine.Expression        { return has.Message }
func (a *AssertionHelper) Wrapped() *engine.Expression        { return has.Wrapped }
func (a *AssertionHelper) Exist() engine.Constraint           { return does.Exist }
func (a *AssertionHelper) ThrowsNothing() engine.Constraint   { return throws.Nothing }
func (a *AssertionHelper) ThrowsException() engine.Constraint { return throws.Exception }

func (a *AssertionHelper) EqualTo(expected any) engine.Constraint {
	return is.EqualTo(expected)
}

func (a *AssertionHelper) GreaterThan(expected any) engine.Constraint {
	return is.GreaterThan(expected)
}

func (a *AssertionHelper) GreaterThanOrEqualTo(expected any) engine.Constraint {
	return is.GreaterThanOrEqualTo(expected)
}

func (a *AssertionHelper) LessThan(expected any) engine.Constraint {
	return is.LessThan(expected)
}

func (a *AssertionHelper) LessThanOrEqualTo(expected any) engine.Constraint {
	return is.LessThanOrEqualTo(expected)
}

func (a *AssertionHelper) AtLeast(expected any) engine.Constraint {
	return is.AtLeast(expected)
}

func (a *AssertionHelper) AtMost(expected any) engine.Constraint {
	return is.AtMost(expected)
}

func (a *AssertionHelper) InRange(from, to float64) engine.Constraint {
	return is.InRange(from, to)
}

func (a *AssertionHelper) SameAs(expected any) engine.Constraint {
	return is.SameAs(expected)
}

func (a *AssertionHelper) EquivalentTo(expected any) engine.Constraint {
	return is.EquivalentTo(expected)
}

func (a *AssertionHelper) SubsetOf(expected any) engine.Constraint {
	return is.SubsetOf(expected)
}

func (a *AssertionHelper) SupersetOf(expected any) engine.Constraint {
	return is.SupersetOf(expected)
}

func (a *AssertionHelper) SamePath(expected string) engine.Constraint {
	return is.SamePath(expected)
}

func (a *AssertionHelper) SamePathOrUnder(expected string) engine.Constraint {
	return is.SamePathOrUnder(expected)
}

func (a *AssertionHelper) SubPathOf(expected string) engine.Constraint {
	return is.SubPathOf(expected)
}

func (a *AssertionHelper) InstanceOf(t reflect.Type) engine.Constraint {
	return is.InstanceOf(t)
}

func (a *AssertionHelper) TypeOf(t reflect.Type) engine.Constraint {
	return is.TypeOf(t)
}

func (a *AssertionHelper) AssignableTo(t reflect.Type) engine.Constraint {
	return is.AssignableTo(t)
}

func (a *AssertionHelper) AssignableFrom(t reflect.Type) engine.Constraint {
	return is.AssignableFrom(t)
}

func (a *AssertionHelper) Exactly(count int) *engine.Expression {
	return has.Exactly(count)
}

func (a *AssertionHelper) Property(name string) *engine.Expression {
	return has.Property(name)
}

func (a *AssertionHelper) Member(expected any) engine.Constraint {
	return has.Member(expected)
}

func (a *AssertionHelper) Contain(expected any) engine.Constraint {
	return does.Contain(expected)
}

func (a *AssertionHelper) ContainKey(expected any) engine.Constraint {
	return does.ContainKey(expected)
}

func (a *AssertionHelper) ContainValue(expected any) engine.Constraint {
	return does.ContainValue(expected)
}

func (a *AssertionHelper) StartWith(prefix string) engine.Constraint {
	return does.StartWith(prefix)
}

func (a *AssertionHelper) EndWith(suffix string) engine.Constraint {
	return does.EndWith(suffix)
}

func (a *AssertionHelper) Match(pattern string) engine.Constraint {
	return does.Match(pattern)
}

func (a *AssertionHelper) ThrowsInstanceOf(t reflect.Type) engine.Constraint {
	return throws.InstanceOf(t)
}

func (a *AssertionHelper) ThrowsTypeOf(t reflect.Type) engine.Constraint {
	return throws.TypeOf(t)
}

func (a *AssertionHelper) ThrowsWithMessage(c engine.Constraint) engine.Constraint {
	return throws.WithMessage(c)
}
