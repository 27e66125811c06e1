// Package style colours command line output.
package style

import (
	"github.com/heroku/color"
)

var Symbol = func(value string) string {
	return Key("'%s'", value)
}

var Key = color.MagentaString

var Tip = color.New(color.FgGreen, color.Bold).SprintfFunc()

// Warn paints members that were skipped.
var Warn = color.New(color.FgYellow, color.Bold).SprintfFunc()

var Step = func(format string, a ...interface{}) string {
	return color.CyanString("===> "+format, a...)
}

// Outcome styles for members that passed or failed verification.
var (
	Passed = color.New(color.FgGreen).SprintfFunc()
	Failed = color.New(color.FgRed, color.Bold).SprintfFunc()
)
