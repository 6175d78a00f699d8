// Package logger holds the process-wide structured logger used by the
// corelab commands and REPLs.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the shared logger. It writes to stderr at info level until
// Configure is called.
var Logger = newLogger(os.Stderr, log.InfoLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{ReportTimestamp: false})
	l.SetLevel(level)
	return l
}

// Configure points the logger at file (stderr when empty) and sets its
// level. Empty or unknown levels fall back to info. The returned closer
// releases the log file, if any.
func Configure(level, file string) (io.Closer, error) {
	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, err
		}
		out, closer = f, f
	}

	Logger = newLogger(out, ParseLevel(level))
	return closer, nil
}

// ParseLevel converts a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Component returns a child logger prefixed with the component name, for
// example "calc" or "guess".
func Component(name string) *log.Logger {
	styles := log.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	styles.Keys["op"] = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	l := Logger.WithPrefix(name)
	l.SetStyles(styles)
	return l
}
