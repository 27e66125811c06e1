// Package writer renders verification reports and member tables.
package writer

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/buildpacks/expect/compat"
	"github.com/buildpacks/expect/internal/logging"
	"github.com/buildpacks/expect/internal/style"
)

// ReportWriter prints to the raw output of a logger.
type ReportWriter interface {
	PrintReport(logger logging.Logger, report compat.Report) error
	PrintMembers(logger logging.Logger, members compat.Table) error
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// Writer returns the writer for an output format. An empty kind is human readable.
func (f *Factory) Writer(kind string) (ReportWriter, error) {
	switch kind {
	case "", "human", "human-readable":
		return NewHumanReadable(), nil
	case "json":
		return NewJSON(), nil
	case "yaml":
		return NewYAML(), nil
	}

	return nil, errors.Errorf("output format %s is not supported", style.Symbol(kind))
}

func NewJSON() *StructuredFormat {
	return &StructuredFormat{
		MarshalFunc: func(v interface{}) ([]byte, error) {
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return nil, err
			}
			return append(out, '\n'), nil
		},
	}
}

func NewYAML() *StructuredFormat {
	return &StructuredFormat{MarshalFunc: yaml.Marshal}
}
