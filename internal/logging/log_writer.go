package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// LogWriter is a writer used for raw command output
type LogWriter struct {
	sync.Mutex
	out      io.Writer
	clock    func() time.Time
	wantTime bool
}

// NewLogWriter creates a LogWriter
func NewLogWriter(writer io.Writer, clock func() time.Time, wantTime bool) *LogWriter {
	return &LogWriter{
		out:      writer,
		clock:    clock,
		wantTime: wantTime,
	}
}

// Write writes buf, each line prepended by the time when wanted, to the set io.Writer
func (tw *LogWriter) Write(buf []byte) (n int, err error) {
	tw.Lock()
	defer tw.Unlock()

	text := string(buf)
	if tw.wantTime {
		ts := tw.clock().Format(timeFmt)
		lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		for i, line := range lines {
			lines[i] = ts + " " + line
		}
		text = strings.Join(lines, "\n")
	}

	_, err = fmt.Fprint(tw.out, appendMissingLineFeed(text))
	return len(buf), err
}

func appendMissingLineFeed(msg string) string {
	if strings.HasSuffix(msg, "\n") {
		return msg
	}
	return msg + "\n"
}
