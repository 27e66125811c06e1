package has_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/expect/engine"
	"github.com/buildpacks/expect/has"
	h "github.com/buildpacks/expect/testhelpers"
)

func TestHas(t *testing.T) {
	spec.Run(t, "Has", testHas, spec.Parallel(), spec.Report(report.Terminal{}))
}

type buildpack struct {
	ID      string
	Version string
}

func testHas(t *testing.T, when spec.G, it spec.S) {
	var numbers = []int{1, 2, 3, 4, 5}

	match := func(c engine.Constraint, actual any) bool {
		t.Helper()

		ok, err := c.Match(actual)
		h.AssertNil(t, err)
		return ok
	}

	when("quantifiers", func() {
		it("#Some", func() {
			h.AssertTrue(t, match(has.Some.EqualTo(3), numbers))
			h.AssertFalse(t, match(has.Some.GreaterThan(5), numbers))
		})

		it("#None", func() {
			h.AssertTrue(t, match(has.None.GreaterThan(5), numbers))
			h.AssertFalse(t, match(has.None.EqualTo(1), numbers))
		})

		it("#No", func() {
			h.AssertTrue(t, match(has.No.Empty(), numbers))
		})

		it("#Exactly", func() {
			h.AssertTrue(t, match(has.Exactly(1).EqualTo(3), numbers))
			h.AssertTrue(t, match(has.Exactly(2).LessThan(3), numbers))
			h.AssertFalse(t, match(has.Exactly(1).EqualTo(9), numbers))
		})

		it("#Exactly describes the count", func() {
			h.AssertContains(t, has.Exactly(1).EqualTo(9).FailureMessage(numbers), "to contain exactly 1 item(s) equal to <int>: 9")
		})
	})

	when("projections", func() {
		it("#Length", func() {
			h.AssertTrue(t, match(has.Length.EqualTo(5), numbers))
			h.AssertTrue(t, match(has.Length.EqualTo(4), "pack"))
			h.AssertTrue(t, match(has.Count.GreaterThan(0), map[string]int{"a": 1}))
		})

		it("#Length errors for values without a length", func() {
			_, err := has.Length.EqualTo(1).Match(1)
			h.AssertError(t, err, "expected a value with a length")
		})

		it("#Property", func() {
			bp := buildpack{ID: "some/bp", Version: "1.2.3"}

			h.AssertTrue(t, match(has.Property("ID").EqualTo("some/bp"), bp))
			h.AssertTrue(t, match(has.Property("Version").StartWith("1."), &bp))
			h.AssertFalse(t, match(has.Property("ID").EqualTo("other"), bp))
		})

		it("#Message", func() {
			err := fmt.Errorf("reading config: %w", os.ErrNotExist)

			h.AssertTrue(t, match(has.Message.Contain("reading config"), err))
			h.AssertTrue(t, match(has.Message.EndWith("does not exist"), err))
		})

		it("#Message errors for values that are not errors", func() {
			_, err := has.Message.Contain("x").Match("x")
			h.AssertError(t, err, "expected an error")
		})

		it("#Wrapped", func() {
			err := fmt.Errorf("reading config: %w", os.ErrNotExist)

			h.AssertTrue(t, match(has.Wrapped.EqualTo(os.ErrNotExist), err))
			h.AssertTrue(t, match(has.Wrapped.Null(), os.ErrNotExist))
		})
	})

	when("#Member", func() {
		it("looks for an item", func() {
			h.AssertTrue(t, match(has.Member(2), numbers))
			h.AssertFalse(t, match(has.Member(9), numbers))
			h.AssertTrue(t, match(has.Member(gomega.BeNumerically(">", 4)), numbers))
		})
	})
}
