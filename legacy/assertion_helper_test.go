package legacy_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/heroku/color"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/expect/engine"
	"github.com/buildpacks/expect/legacy"
	h "github.com/buildpacks/expect/testhelpers"
)

func TestAssertionHelper(t *testing.T) {
	color.Disable(true)
	defer color.Disable(false)
	spec.Run(t, "AssertionHelper", testAssertionHelper, spec.Parallel(), spec.Report(report.Terminal{}))
}

var errArgument = errors.New("invalid argument")

func testAssertionHelper(t *testing.T, when spec.G, it spec.S) {
	var (
		failures []*engine.AssertionFailure
		helper   *legacy.AssertionHelper
	)

	it.Before(func() {
		failures = nil
		helper = legacy.NewAssertionHelperWithHandler(func(failure *engine.AssertionFailure) {
			failures = append(failures, failure)
		})
	})

	when("#Expect", func() {
		it("fails for false conditions with the formatted message", func() {
			helper.Expect(true, "msg %s", "x")
			h.AssertEq(t, len(failures), 0)

			helper.Expect(false, "msg %s", "x")
			h.AssertEq(t, len(failures), 1)
			h.AssertContains(t, failures[0].Message, "msg x")
		})
	})

	when("#ExpectFunc", func() {
		it("calls the condition once", func() {
			calls := 0
			helper.ExpectFunc(func() bool { calls++; return false })

			h.AssertEq(t, calls, 1)
			h.AssertEq(t, len(failures), 1)
		})
	})

	when("#ExpectValue", func() {
		it("applies the constraint to the produced value", func() {
			helper.ExpectValue(func() any { return 5 }, helper.EqualTo(5))
			h.AssertEq(t, len(failures), 0)

			helper.ExpectValue(func() any { return 4 }, helper.EqualTo(5))
			h.AssertEq(t, len(failures), 1)
		})
	})

	when("#ExpectCode", func() {
		it("inspects the returned error", func() {
			helper.ExpectCode(func() error { return errArgument }, helper.ThrowsException())
			helper.ExpectCode(func() error { return nil }, helper.ThrowsNothing())
			h.AssertEq(t, len(failures), 0)

			helper.ExpectCode(func() error { return errArgument }, helper.ThrowsTypeOf(reflect.TypeOf(&engine.AssertionFailure{})))
			h.AssertEq(t, len(failures), 1)
		})
	})

	when("#ExpectThat", func() {
		it("applies builders", func() {
			helper.ExpectThat([]int{1, 2, 3}, helper.Exactly(1).EqualTo(2))
			helper.ExpectThat(2.5, helper.InRange(1, 3))
			helper.ExpectThat("pack", helper.StartsWith("pa"))
			helper.ExpectThat("pack", helper.Contains("ac"))
			helper.ExpectThat([]string{"pack"}, helper.Contains("pack"))
			helper.ExpectThat([]int{1, 2}, helper.Contains(2))
			helper.ExpectThat("pack", helper.DoesNotContain("x"))
			helper.ExpectThat("pack", helper.StringMatching("^p"))
			helper.ExpectThat(nil, helper.Null())
			helper.ExpectThat([]int{1, 2}, helper.Not().Empty())
			h.AssertEq(t, len(failures), 0)
		})
	})

	when("#Map", func() {
		it("projects properties", func() {
			mapper, err := helper.Map([]error{errArgument})
			h.AssertNil(t, err)

			messages, err := mapper.Property("Error")
			h.AssertNil(t, err)
			h.AssertEq(t, messages, []any{"invalid argument"})
		})
	})

	when("zero value", func() {
		it("reports to the default engine", func() {
			var zero legacy.AssertionHelper

			failure := engine.Capture(func() {
				zero.Expect(false, "from the zero value")
			})

			h.AssertNotNil(t, failure)
			h.AssertContains(t, failure.Message, "from the zero value")
		})
	})

	when("#NewAssertionHelper", func() {
		it("passes t when expectations hold", func() {
			legacy.NewAssertionHelper(t).ExpectThat("pack", legacy.NewAssertionHelper(t).EndsWith("ck"))
		})
	})
}
