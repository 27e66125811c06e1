package engine_test

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/expect/engine"
	h "github.com/buildpacks/expect/testhelpers"
)

func TestListMapper(t *testing.T) {
	spec.Run(t, "ListMapper", testListMapper, spec.Parallel(), spec.Report(report.Terminal{}))
}

type buildpack struct {
	ID      string
	version string
}

func (b buildpack) Version() string { return b.version }

func testListMapper(t *testing.T, when spec.G, it spec.S) {
	var buildpacks = []buildpack{
		{ID: "some/bp", version: "1.0"},
		{ID: "other/bp", version: "2.0"},
	}

	when("#Property", func() {
		it("reads fields", func() {
			mapper, err := engine.NewListMapper(buildpacks)
			h.AssertNil(t, err)

			ids, err := mapper.Property("ID")
			h.AssertNil(t, err)
			h.AssertEq(t, ids, []any{"some/bp", "other/bp"})
		})

		it("calls zero-argument methods", func() {
			mapper, err := engine.NewListMapper(buildpacks)
			h.AssertNil(t, err)

			versions, err := mapper.Property("Version")
			h.AssertNil(t, err)
			h.AssertEq(t, versions, []any{"1.0", "2.0"})
		})

		it("reads through pointers", func() {
			mapper, err := engine.NewListMapper([]*buildpack{&buildpacks[0]})
			h.AssertNil(t, err)

			ids, err := mapper.Property("ID")
			h.AssertNil(t, err)
			h.AssertEq(t, ids, []any{"some/bp"})
		})

		it("names the item missing the property", func() {
			mapper, err := engine.NewListMapper(buildpacks)
			h.AssertNil(t, err)

			_, err = mapper.Property("Missing")
			h.AssertError(t, err, `item 0: engine_test.buildpack has no property "Missing"`)
		})

		it("fails on nil items", func() {
			mapper, err := engine.NewListMapper([]*buildpack{nil})
			h.AssertNil(t, err)

			_, err = mapper.Property("ID")
			h.AssertError(t, err, `cannot read "ID" from nil`)
		})
	})

	when("#NewListMapper", func() {
		it("rejects values that are not collections", func() {
			_, err := engine.NewListMapper("pack")
			h.AssertError(t, err, "expected a slice, array or map")
		})
	})
}
