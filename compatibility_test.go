package expect_test

import (
	"context"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/expect"
	"github.com/buildpacks/expect/compat"
	h "github.com/buildpacks/expect/testhelpers"
)

func TestCompatibility(t *testing.T) {
	spec.Run(t, "Compatibility", testCompatibility, spec.Parallel(), spec.Report(report.Terminal{}))
}

func testCompatibility(t *testing.T, when spec.G, it spec.S) {
	var (
		special  compat.SpecialCases
		verifier *compat.Verifier
	)

	it.Before(func() {
		var err error
		special, err = expect.SpecialCases()
		h.AssertNil(t, err)
		verifier = compat.NewVerifier(expect.Members(), special)
	})

	outcome := func(result compat.Result) {
		t.Helper()

		switch result.Outcome {
		case compat.Skipped:
			t.Skip(result.Reason)
		case compat.Failed:
			t.Fatal(result.Reason)
		}
	}

	when("legacy.AssertionHelper", func() {
		for _, sig := range compat.Reference(expect.Reference) {
			sig := sig
			it("implements "+sig.String(), func() {
				outcome(verifier.Check(sig))
			})
		}
	})

	for _, agg := range expect.Aggregates() {
		agg := agg
		when("package "+agg.Name, func() {
			it("is re-exported", func() {
				for _, result := range verifier.VerifyAggregate(agg) {
					if result.Outcome == compat.Failed {
						t.Error(result.Reason)
					}
				}
			})
		})
	}

	when("#Verify", func() {
		it("skips exactly the declared special cases", func() {
			rep, err := expect.Verify(context.Background())
			h.AssertNil(t, err)

			h.AssertTrue(t, rep.OK())

			var skipped []string
			for _, r := range rep.Results {
				if r.Outcome == compat.Skipped {
					skipped = append(skipped, r.Member)
				}
			}
			h.AssertEq(t, skipped, []string{
				"Exactly(int) *engine.Expression",
				"InRange(float64, float64) types.GomegaMatcher",
				"has.Exactly",
				"is.InRange",
			})
		})
	})

	when("#SpecialCases", func() {
		it("rewrites to the facade signatures", func() {
			var rewrites []string
			for _, c := range special.All() {
				rewrites = append(rewrites, c.Original.String()+" => "+c.Rewrite.String())
			}

			h.AssertEq(t, rewrites, []string{
				"Exactly(int) *engine.Expression => Exactly(int) *engine.ItemsExpression",
				"InRange(float64, float64) types.GomegaMatcher => InRange(interface {}, interface {}) types.GomegaMatcher",
			})
		})
	})
}
