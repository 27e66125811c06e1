package compat_test

import (
	"reflect"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/expect/compat"
	h "github.com/buildpacks/expect/testhelpers"
)

func TestType(t *testing.T) {
	spec.Run(t, "Type", testType, spec.Parallel(), spec.Report(report.Terminal{}))
}

type box[T any] struct{ value T }

func testType(t *testing.T, when spec.G, it spec.S) {
	when("#TypeOf", func() {
		it("describes concrete types by name", func() {
			typ := compat.TypeOf(reflect.TypeOf(""))

			h.AssertEq(t, typ.Kind, compat.Concrete)
			h.AssertEq(t, typ.String(), "string")
		})

		it("describes instantiated generics by their definition", func() {
			ints := compat.TypeOf(reflect.TypeOf(box[int]{}))
			strs := compat.TypeOf(reflect.TypeOf(box[string]{}))

			h.AssertEq(t, ints.Kind, compat.GenericDefinition)
			h.AssertEq(t, ints.Name, "compat_test.box")
			h.AssertEq(t, ints.String(), "compat_test.box[...]")
			h.AssertTrue(t, compat.Similar(ints, strs))
		})

		it("describes nil as void", func() {
			h.AssertEq(t, compat.TypeOf(nil).String(), compat.Void.String())
		})
	})

	when("#Similar", func() {
		it("matches type parameters by position", func() {
			h.AssertTrue(t, compat.Similar(compat.Param(0), compat.Param(0)))
			h.AssertFalse(t, compat.Similar(compat.Param(0), compat.Param(1)))
		})

		it("never matches a type parameter with a concrete type", func() {
			h.AssertFalse(t, compat.Similar(compat.Param(0), compat.Named("T0")))
		})

		it("matches generic definitions by name", func() {
			h.AssertTrue(t, compat.Similar(compat.Generic("compat_test.box"), compat.TypeOf(reflect.TypeOf(box[bool]{}))))
			h.AssertFalse(t, compat.Similar(compat.Generic("compat_test.crate"), compat.TypeOf(reflect.TypeOf(box[bool]{}))))
		})

		it("matches concrete types by name", func() {
			h.AssertTrue(t, compat.Similar(compat.Named("int"), compat.TypeOf(reflect.TypeOf(1))))
			h.AssertFalse(t, compat.Similar(compat.Named("int64"), compat.TypeOf(reflect.TypeOf(1))))
		})
	})

	when("#Kind", func() {
		it("has a readable name", func() {
			h.AssertEq(t, compat.Concrete.String(), "concrete")
			h.AssertEq(t, compat.GenericDefinition.String(), "generic")
			h.AssertEq(t, compat.GenericParameter.String(), "type-parameter")
		})
	})
}
