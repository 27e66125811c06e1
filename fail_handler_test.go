package expect_test

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/expect"
	"github.com/buildpacks/expect/engine"
	h "github.com/buildpacks/expect/testhelpers"
)

func TestFailHandler(t *testing.T) {
	spec.Run(t, "FailHandler", testFailHandler, spec.Sequential(), spec.Report(report.Terminal{}))
}

func testFailHandler(t *testing.T, when spec.G, it spec.S) {
	it.After(func() {
		expect.RegisterFailHandler(nil)
	})

	when("#RegisterFailHandler", func() {
		it("routes failures to the handler", func() {
			var failures []string
			expect.RegisterFailHandler(func(f *engine.AssertionFailure) {
				failures = append(failures, f.Message)
			})

			expect.Expect(false, "first")
			expect.ExpectThat(1, expect.EqualTo(2), "second")

			h.AssertEq(t, len(failures), 2)
			h.AssertContains(t, failures[0], "first")
			h.AssertContains(t, failures[1], "second")
		})

		it("restores panicking for nil", func() {
			expect.RegisterFailHandler(func(*engine.AssertionFailure) {})
			expect.RegisterFailHandler(nil)

			h.AssertNotNil(t, expect.Capture(func() { expect.Expect(false) }))
		})
	})

	when("#RegisterTestingT", func() {
		it("does not fail t while expectations hold", func() {
			expect.RegisterTestingT(t)

			expect.Expect(true)
			expect.ExpectThat("pack", expect.EndsWith("ck"))
		})
	})
}
