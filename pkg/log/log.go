// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Level is a logging threshold. Messages more verbose than it are
// discarded.
type Level = logrus.Level

const (
	ErrorLevel = logrus.ErrorLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(args ...interface{})
}

// New returns a logger writing to stderr at info level.
func New() Logger {
	return NewWithOutput(os.Stderr, InfoLevel)
}

// NewWithOutput returns a logger writing to w at the given level. Colours
// are only enabled when w is a terminal.
func NewWithOutput(w io.Writer, level Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    !isTerminal(w),
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// ParseLevel returns the Level named by level, e.g. "debug".
func ParseLevel(level string) (Level, error) {
	return logrus.ParseLevel(level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
