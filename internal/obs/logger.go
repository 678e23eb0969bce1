package obs

import (
	"fmt"
	"log"
	"sync/atomic"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = [...]string{Debug: "DEBUG", Info: "INFO", Warn: "WARN", Error: "ERROR"}

func (l Level) String() string {
	if l < Debug || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Logger receives rejected arguments and stream failures.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

type NopLogger struct{}

func (NopLogger) Logf(Level, string, ...interface{}) {}

// StdLogger writes entries at or above Min to L, tagged with their level.
// Per-line prefixes and flags are configured on L itself.
type StdLogger struct {
	L   *log.Logger
	Min Level
}

func (s StdLogger) Logf(level Level, format string, args ...interface{}) {
	if s.L == nil || level < s.Min {
		return
	}
	s.L.Print("[" + level.String() + "] " + fmt.Sprintf(format, args...))
}

type holder struct{ Logger }

var current atomic.Value

func init() {
	current.Store(holder{NopLogger{}})
}

// SetLogger replaces the process-wide logger. A nil logger restores NopLogger.
func SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	current.Store(holder{l})
}

// Logf writes to the process-wide logger.
func Logf(level Level, format string, args ...interface{}) {
	current.Load().(holder).Logf(level, format, args...)
}
