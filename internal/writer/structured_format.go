package writer

import (
	"github.com/pkg/errors"

	"github.com/buildpacks/expect/compat"
	"github.com/buildpacks/expect/internal/logging"
)

type StructuredFormat struct {
	MarshalFunc func(interface{}) ([]byte, error)
}

// MemberDisplay is the structured form of a table member.
type MemberDisplay struct {
	Name      string `json:"name" yaml:"name"`
	Kind      string `json:"kind" yaml:"kind"`
	Signature string `json:"signature" yaml:"signature"`
}

func NewMemberDisplays(members compat.Table) []MemberDisplay {
	displays := make([]MemberDisplay, 0, len(members))
	for _, m := range members.Sorted() {
		displays = append(displays, MemberDisplay{
			Name:      m.Name,
			Kind:      m.Kind.String(),
			Signature: m.Signature().String(),
		})
	}
	return displays
}

func (w *StructuredFormat) PrintReport(logger logging.Logger, report compat.Report) error {
	if report.Results == nil {
		report.Results = []compat.Result{}
	}
	return w.print(logger, report)
}

func (w *StructuredFormat) PrintMembers(logger logging.Logger, members compat.Table) error {
	return w.print(logger, NewMemberDisplays(members))
}

func (w *StructuredFormat) print(logger logging.Logger, v interface{}) error {
	out, err := w.MarshalFunc(v)
	if err != nil {
		return errors.Wrap(err, "marshalling output")
	}

	_, err = logger.Writer().Write(out)
	return err
}
