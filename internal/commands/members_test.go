package commands_test

import (
	"bytes"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/heroku/color"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/buildpacks/expect/compat"
	"github.com/buildpacks/expect/internal/commands"
	"github.com/buildpacks/expect/internal/commands/testmocks"
	"github.com/buildpacks/expect/internal/config"
	ilogging "github.com/buildpacks/expect/internal/logging"
	"github.com/buildpacks/expect/internal/writer"
	h "github.com/buildpacks/expect/testhelpers"
)

func TestMembersCommand(t *testing.T) {
	color.Disable(true)
	defer color.Disable(false)
	spec.Run(t, "MembersCommand", testMembersCommand, spec.Parallel(), spec.Report(report.Terminal{}))
}

func testMembersCommand(t *testing.T, when spec.G, it spec.S) {
	var (
		command        *cobra.Command
		outBuf         bytes.Buffer
		cfg            config.Config
		mockController *gomock.Controller
		mockVerifier   *testmocks.MockVerifier
		assert         = h.NewAssertionManager(t)
	)

	it.Before(func() {
		mockController = gomock.NewController(t)
		mockVerifier = testmocks.NewMockVerifier(mockController)
		cfg = config.Default()

		command = commands.Members(ilogging.NewLogWithWriters(&outBuf, &outBuf), &cfg, mockVerifier, writer.NewFactory())
		mockVerifier.EXPECT().Members().Return(compat.Table{
			compat.Property("Unique", "unique"),
		}).AnyTimes()
	})

	it.After(func() {
		mockController.Finish()
	})

	it("lists members", func() {
		command.SetArgs([]string{})
		h.AssertNil(t, command.Execute())
		assert.Contains(outBuf.String(), "Unique  property  Unique() string")
		assert.Contains(outBuf.String(), "1 member\n")
	})

	it("lists members as yaml", func() {
		command.SetArgs([]string{"-o", "yaml"})
		h.AssertNil(t, command.Execute())

		var decoded []writer.MemberDisplay
		h.AssertNil(t, yaml.Unmarshal(outBuf.Bytes(), &decoded))
		h.AssertEq(t, decoded, []writer.MemberDisplay{
			{Name: "Unique", Kind: "property", Signature: "Unique() string"},
		})
	})
}
