package writer

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/buildpacks/expect/compat"
	"github.com/buildpacks/expect/internal/logging"
	"github.com/buildpacks/expect/internal/style"
)

type HumanReadable struct{}

func NewHumanReadable() *HumanReadable {
	return &HumanReadable{}
}

// PrintReport lists failed and skipped members with their reasons, passed members only
// when the logger is verbose, then a summary line.
func (h *HumanReadable) PrintReport(logger logging.Logger, report compat.Report) error {
	var buf bytes.Buffer
	title := cases.Title(language.English)

	sections := []struct {
		outcome compat.Outcome
		paint   func(string, ...interface{}) string
		shown   bool
	}{
		{compat.Failed, style.Failed, true},
		{compat.Skipped, style.Warn, true},
		{compat.Passed, style.Passed, logger.IsVerbose()},
	}

	for _, s := range sections {
		results := byOutcome(report.Results, s.outcome)
		if !s.shown || len(results) == 0 {
			continue
		}

		fmt.Fprintf(&buf, "%s:\n", s.paint("%s", title.String(s.outcome.String())))
		for _, r := range results {
			fmt.Fprintf(&buf, "  %s\n", style.Key("%s", r.Member))
			if r.Resolved != "" && r.Resolved != r.Member {
				fmt.Fprintf(&buf, "    resolved to %s\n", r.Resolved)
			}
			if r.Reason != "" {
				fmt.Fprintf(&buf, "    %s\n", indent(r.Reason, "    "))
			}
		}
		buf.WriteString("\n")
	}

	fmt.Fprintf(&buf, "%s checked: %s\n",
		english.Plural(len(report.Results), "member", ""),
		english.WordSeries([]string{
			style.Passed("%d passed", report.Passed),
			style.Warn("%d skipped", report.Skipped),
			style.Failed("%d failed", report.Failed),
		}, "and"),
	)

	_, err := logger.Writer().Write(buf.Bytes())
	return err
}

// PrintMembers tabulates the table by name.
func (h *HumanReadable) PrintMembers(logger logging.Logger, members compat.Table) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tKIND\tSIGNATURE")
	for _, m := range NewMemberDisplays(members) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, m.Kind, m.Signature)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(&buf, "\n%s\n", english.Plural(len(members), "member", ""))

	_, err := logger.Writer().Write(buf.Bytes())
	return err
}

func byOutcome(results []compat.Result, outcome compat.Outcome) []compat.Result {
	var matched []compat.Result
	for _, r := range results {
		if r.Outcome == outcome {
			matched = append(matched, r)
		}
	}
	return matched
}

func indent(text, prefix string) string {
	var buf bytes.Buffer
	for i, r := range text {
		buf.WriteRune(r)
		if r == '\n' && i < len(text)-1 {
			buf.WriteString(prefix)
		}
	}
	return buf.String()
}
