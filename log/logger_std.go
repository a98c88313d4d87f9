package log

import (
	"fmt"
	"log"
	"os"
)

type stdLogger struct {
	l *log.Logger
}

// NewStd returns a Logger backed by the standard library, writing leveled
// lines to stderr.
func NewStd() Logger {
	return &stdLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s *stdLogger) Debugf(format string, args ...any) { s.output("DEBUG", format, args...) }
func (s *stdLogger) Warnf(format string, args ...any)  { s.output("WARN", format, args...) }
func (s *stdLogger) Errorf(format string, args ...any) { s.output("ERROR", format, args...) }

func (s *stdLogger) output(level, format string, args ...any) {
	s.l.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}
