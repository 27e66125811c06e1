package logging_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	ilogging "github.com/buildpacks/expect/internal/logging"
	h "github.com/buildpacks/expect/testhelpers"
)

const (
	timeFmt  = "2006/01/02 15:04:05.000000"
	testTime = "2019/05/15 01:01:01.000000"
)

func TestLogWriter(t *testing.T) {
	spec.Run(t, "LogWriter", testLogWriter, spec.Parallel(), spec.Report(report.Terminal{}))
}

func testLogWriter(t *testing.T, when spec.G, it spec.S) {
	var (
		writer *ilogging.LogWriter
		out    bytes.Buffer

		clockFunc = func() time.Time {
			clock, _ := time.Parse(timeFmt, testTime)
			return clock
		}
	)

	when("wantTime is true", func() {
		it("has time", func() {
			writer = ilogging.NewLogWriter(&out, clockFunc, true)
			_, _ = writer.Write([]byte("test\n"))
			h.AssertEq(t, out.String(), "2019/05/15 01:01:01.000000 test\n")
		})
	})

	when("wantTime is false", func() {
		it("doesn't have time", func() {
			writer = ilogging.NewLogWriter(&out, clockFunc, false)
			_, _ = writer.Write([]byte("test\n"))
			h.AssertEq(t, out.String(), "test\n")
		})

		it("appends a missing line feed", func() {
			writer = ilogging.NewLogWriter(&out, clockFunc, false)
			n, err := writer.Write([]byte("test"))
			h.AssertNil(t, err)
			h.AssertEq(t, n, 4)
			h.AssertEq(t, out.String(), "test\n")
		})
	})
}
