package engine

import (
	"strings"

	"github.com/onsi/gomega/format"
)

// FormatOptions control how values are rendered in failure messages.
type FormatOptions struct {
	MaxLength                 int
	UseStringerRepresentation bool
	TruncatedDiff             bool
}

// CurrentFormat returns the options in effect.
func CurrentFormat() FormatOptions {
	return FormatOptions{
		MaxLength:                 format.MaxLength,
		UseStringerRepresentation: format.UseStringerRepresentation,
		TruncatedDiff:             format.TruncatedDiff,
	}
}

// Configure applies opts to every engine. A MaxLength of zero disables truncation.
func Configure(opts FormatOptions) {
	format.MaxLength = opts.MaxLength
	format.UseStringerRepresentation = opts.UseStringerRepresentation
	format.TruncatedDiff = opts.TruncatedDiff
}

// Literal escapes s for use as a gcustom matcher message, which is parsed as a
// text/template.
func Literal(s string) string {
	return strings.ReplaceAll(s, "{{", "{{`{{`}}")
}
