package logger

import (
	"fmt"
	"sync"

	corelogger "github.com/kilianp07/productionplan/core/logger"
)

// Logger is the core logging port.
type Logger = corelogger.Logger

// New returns a zerolog backed Logger tagged with component. APP_ENV=dev
// switches to console output.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Infow(string, map[string]any)  {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// Entry is a message kept by a Recorder.
type Entry struct {
	Level   string
	Message string
	Fields  map[string]any
}

// Recorder keeps log entries in memory, mostly for tests. It is safe for
// concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) add(level, msg string, fields map[string]any) {
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg, Fields: fields})
	r.mu.Unlock()
}

func (r *Recorder) Debugf(format string, args ...any)        { r.add("debug", fmt.Sprintf(format, args...), nil) }
func (r *Recorder) Debugw(msg string, fields map[string]any) { r.add("debug", msg, fields) }
func (r *Recorder) Infof(format string, args ...any)         { r.add("info", fmt.Sprintf(format, args...), nil) }
func (r *Recorder) Infow(msg string, fields map[string]any)  { r.add("info", msg, fields) }
func (r *Recorder) Warnf(format string, args ...any)         { r.add("warn", fmt.Sprintf(format, args...), nil) }
func (r *Recorder) Errorf(format string, args ...any)        { r.add("error", fmt.Sprintf(format, args...), nil) }

// Entries returns the recorded entries of the given level, or all of them
// when level is empty.
func (r *Recorder) Entries(level string) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if level == "" || e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
