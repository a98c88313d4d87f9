// Package log defines the logger interface used by hsize. The library only
// speaks through it for non-fatal conditions (currently big-integer precision
// loss); hosts plug in their own implementation or silence it with the nop
// logger.
package log

// Logger is the minimal leveled logging surface hsize needs.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
