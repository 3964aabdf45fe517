// Package termio provides the small leveled terminal logger used by go-spar
// and by self-compiling scripts built on it.
package termio

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/sparlib/go-spar/internal/pool"
)

// Level is the severity of a log message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	// LevelSilent suppresses all output when used as a minimum level.
	LevelSilent
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelSilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// Logger writes tagged, leveled messages. Informational messages go to the
// out writer, warnings and errors to the err writer. Tags are colored when
// the terminal supports it (fatih/color handles detection and NO_COLOR).
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
	min Level

	tags map[Level]string
}

// New creates a logger bound to stdout/stderr with minimum level LevelInfo.
func New() *Logger {
	return &Logger{
		out:  os.Stdout,
		err:  os.Stderr,
		min:  LevelInfo,
		tags: defaultTags(),
	}
}

func defaultTags() map[Level]string {
	return map[Level]string{
		LevelInfo:    color.New(color.FgCyan).Sprint("[INFO]"),
		LevelWarning: color.New(color.FgYellow).Sprint("[WARN]"),
		LevelError:   color.New(color.FgRed, color.Bold).Sprint("[ERROR]"),
	}
}

// SetOutput redirects the logger's writers. A nil writer keeps the current one.
func (l *Logger) SetOutput(out, err io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	if out != nil {
		l.out = out
	}
	if err != nil {
		l.err = err
	}
	return l
}

// SetMinLevel sets the minimum level that produces output. LevelSilent
// disables the logger entirely.
func (l *Logger) SetMinLevel(min Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.min = min
	return l
}

// Infof logs an informational message.
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Warnf logs a warning to the error writer.
func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarning, format, args...) }

// Errorf logs an error to the error writer.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.min || l.min == LevelSilent {
		return
	}

	buf := pool.GetBuffer()
	b := *buf
	b = append(b, l.tags[level]...)
	b = append(b, ' ')
	b = fmt.Appendf(b, format, args...)
	b = append(b, '\n')

	writer := l.out
	if level >= LevelWarning {
		writer = l.err
	}
	_, _ = writer.Write(b)

	*buf = b
	pool.PutBuffer(buf)
}

// std is the process-wide logger used by the package-level helpers, matching
// the ambient registry in the spar package.
var std = New()

// Default returns the process-wide logger.
func Default() *Logger { return std }

// SetMinLevel sets the minimum level of the process-wide logger.
func SetMinLevel(min Level) { std.SetMinLevel(min) }

// Infof logs an informational message on the process-wide logger.
func Infof(format string, args ...any) { std.Infof(format, args...) }

// Warnf logs a warning on the process-wide logger.
func Warnf(format string, args ...any) { std.Warnf(format, args...) }

// Errorf logs an error on the process-wide logger.
func Errorf(format string, args ...any) { std.Errorf(format, args...) }
