package logging

import (
	"fmt"
	"io"
	"time"
)

// Logger writes diagnostics to a side channel (stderr in the CLI) so
// the command output on stdout stays clean. The zero value discards
// everything; a non-verbose logger still accepts Infof.
type Logger struct {
	Writer  io.Writer
	Verbose bool
}

func New(writer io.Writer, verbose bool) Logger {
	return Logger{Writer: writer, Verbose: verbose}
}

func (l Logger) Infof(format string, args ...any) {
	if l.Writer == nil {
		return
	}
	fmt.Fprintf(l.Writer, format+"\n", args...)
}

// Verbosef logs only when --verbose was requested.
func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose {
		return
	}
	l.Infof(format, args...)
}

// Measure times a phase. The returned stop function reports the
// elapsed wall time under the phase name; outside verbose mode both
// ends are free.
func (l Logger) Measure(phase string) func() {
	if !l.Verbose || l.Writer == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		l.Infof("%s: %s", phase, time.Since(start).Round(time.Millisecond))
	}
}
