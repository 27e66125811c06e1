// Package logging provides the logger used by the expect command line.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/heroku/color"
)

// std time format
const timeFmt = "2006/01/02 15:04:05.000000"

// Logger is the logging surface commands write to.
type Logger interface {
	Debug(msg string)
	Debugf(fmt string, v ...interface{})

	Info(msg string)
	Infof(fmt string, v ...interface{})

	Warn(msg string)
	Warnf(fmt string, v ...interface{})

	Error(msg string)
	Errorf(fmt string, v ...interface{})

	// Writer receives raw command output, such as reports.
	Writer() io.Writer

	IsVerbose() bool
}

// Level prefixes. Info lines carry none.
var prefixes = [...]func(a ...interface{}) string{
	log.DebugLevel: color.New(color.FgHiBlack).SprintFunc(),
	log.InfoLevel:  fmt.Sprint,
	log.WarnLevel:  color.New(color.FgYellow, color.Bold).SprintFunc(),
	log.ErrorLevel: color.New(color.FgRed, color.Bold).SprintFunc(),
	log.FatalLevel: color.New(color.FgRed, color.Bold).SprintFunc(),
}

// Strings mapping.
var Strings = [...]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARN",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

func formatLevel(level log.Level) string {
	if level == log.InfoLevel {
		return ""
	}
	return prefixes[level](Strings[level]+":") + " "
}

// Handler writes entries as lines, warnings and errors to ErrWriter.
type Handler struct {
	sync.Mutex
	Writer    io.Writer
	ErrWriter io.Writer
	WantTime  bool
	timer     func() time.Time
}

// NewLogHandler creates a handler writing to out and errOut.
func NewLogHandler(out, errOut io.Writer) *Handler {
	return &Handler{
		Writer:    out,
		ErrWriter: errOut,
		timer:     time.Now,
	}
}

// HandleLog supports toggling timestamps.
func (h *Handler) HandleLog(e *log.Entry) error {
	h.Lock()
	defer h.Unlock()

	w := h.Writer
	if e.Level >= log.WarnLevel {
		w = h.ErrWriter
	}

	prefix := ""
	if h.WantTime {
		prefix = h.timer().Format(timeFmt) + " "
	}

	_, err := fmt.Fprint(w, appendMissingLineFeed(prefix+formatLevel(e.Level)+e.Message))
	return err
}

// LogWithWriters is a Logger that can be made quiet, verbose or timestamped after
// construction.
type LogWithWriters struct {
	log.Logger
	handler *Handler
	out     *LogWriter
}

// NewLogWithWriters creates a logger writing informational output to stdout and
// warnings and errors to stderr.
func NewLogWithWriters(stdout, stderr io.Writer, opts ...func(*LogWithWriters)) *LogWithWriters {
	h := NewLogHandler(stdout, stderr)
	lw := &LogWithWriters{
		handler: h,
		out:     NewLogWriter(stdout, h.timer, false),
	}
	lw.Logger.Handler = h
	lw.Logger.Level = log.InfoLevel

	for _, opt := range opts {
		opt(lw)
	}
	return lw
}

// WithClock replaces the time source for timestamps.
func WithClock(clock func() time.Time) func(*LogWithWriters) {
	return func(lw *LogWithWriters) {
		lw.handler.timer = clock
		lw.out.clock = clock
	}
}

// WantTime prefixes every line with a timestamp.
func (lw *LogWithWriters) WantTime(f bool) {
	lw.handler.Lock()
	lw.handler.WantTime = f
	lw.handler.Unlock()

	lw.out.Lock()
	lw.out.wantTime = f
	lw.out.Unlock()
}

// WantQuiet suppresses informational output.
func (lw *LogWithWriters) WantQuiet(f bool) {
	if f {
		lw.Level = log.WarnLevel
	} else if lw.Level == log.WarnLevel {
		lw.Level = log.InfoLevel
	}
}

// WantVerbose enables debug output.
func (lw *LogWithWriters) WantVerbose(f bool) {
	if f {
		lw.Level = log.DebugLevel
	} else if lw.Level == log.DebugLevel {
		lw.Level = log.InfoLevel
	}
}

func (lw *LogWithWriters) IsVerbose() bool {
	return lw.Level == log.DebugLevel
}

// Writer returns a writer for raw output. It is silent when the logger is quiet.
func (lw *LogWithWriters) Writer() io.Writer {
	if lw.Level > log.InfoLevel {
		return io.Discard
	}
	return lw.out
}
