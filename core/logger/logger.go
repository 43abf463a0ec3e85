// Package logger defines the logging port used by the core packages.
package logger

// Logger is a leveled logger. The *w variants attach structured fields.
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Infow(msg string, fields map[string]any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
