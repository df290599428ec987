// Package loggers wraps jwalterweatherman with the small logging surface
// the site builder needs.
package loggers

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	jww "github.com/spf13/jwalterweatherman"
)

// Logger is the logging interface used throughout the site builder.
type Logger interface {
	Printf(format string, v ...any)
	Println(v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
	Out() io.Writer
}

type logger struct {
	*jww.Notepad
	out io.Writer
}

func (l *logger) Printf(format string, v ...any) { l.FEEDBACK.Printf(format, v...) }
func (l *logger) Println(v ...any)               { l.FEEDBACK.Println(v...) }
func (l *logger) Debugf(format string, v ...any) { l.DEBUG.Printf(format, v...) }
func (l *logger) Infof(format string, v ...any)  { l.INFO.Printf(format, v...) }
func (l *logger) Warnf(format string, v ...any)  { l.WARN.Printf(format, v...) }
func (l *logger) Errorf(format string, v ...any) { l.ERROR.Printf(format, v...) }
func (l *logger) Out() io.Writer                 { return l.out }

// NewLogger creates a new Logger with the given stdout threshold.
func NewLogger(threshold jww.Threshold) Logger {
	return newLogger(threshold, os.Stdout)
}

// NewDefaultLogger returns a Logger at the INFO threshold when stdout is a
// terminal, WARN otherwise. Build tools get quieter when piped.
func NewDefaultLogger() Logger {
	threshold := jww.LevelWarn
	if isatty.IsTerminal(os.Stdout.Fd()) {
		threshold = jww.LevelInfo
	}
	return newLogger(threshold, os.Stdout)
}

// NewIgnorableLogger returns a Logger that discards everything.
// Useful in tests that don't care about build chatter.
func NewIgnorableLogger() Logger {
	return &logger{
		Notepad: jww.NewNotepad(jww.LevelCritical, jww.LevelCritical, ioutil.Discard, ioutil.Discard, "", 0),
		out:     ioutil.Discard,
	}
}

func newLogger(threshold jww.Threshold, out io.Writer) Logger {
	return &logger{
		Notepad: jww.NewNotepad(threshold, jww.LevelError, out, ioutil.Discard, "", log.Ldate|log.Ltime),
		out:     out,
	}
}
