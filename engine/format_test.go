package engine_test

import (
	"testing"

	"github.com/onsi/gomega/format"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/expect/engine"
	h "github.com/buildpacks/expect/testhelpers"
)

func TestFormat(t *testing.T) {
	spec.Run(t, "Format", testFormat, spec.Sequential(), spec.Report(report.Terminal{}))
}

func testFormat(t *testing.T, when spec.G, it spec.S) {
	var original engine.FormatOptions

	it.Before(func() {
		original = engine.CurrentFormat()
	})

	it.After(func() {
		engine.Configure(original)
	})

	when("#Configure", func() {
		it("applies the options to gomega", func() {
			engine.Configure(engine.FormatOptions{MaxLength: 10, UseStringerRepresentation: true, TruncatedDiff: false})

			h.AssertEq(t, format.MaxLength, 10)
			h.AssertTrue(t, format.UseStringerRepresentation)
			h.AssertFalse(t, format.TruncatedDiff)
			h.AssertEq(t, engine.CurrentFormat(), engine.FormatOptions{MaxLength: 10, UseStringerRepresentation: true})
		})
	})

	when("#Literal", func() {
		it("escapes template delimiters", func() {
			h.AssertEq(t, engine.Literal("a {{b}}"), "a {{`{{`}}b}}")
			h.AssertEq(t, engine.Literal("plain"), "plain")
		})
	})
}
