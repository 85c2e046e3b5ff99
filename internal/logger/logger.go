// Package logger wraps charmbracelet/log with the project's prefix and
// debug toggling.
package logger

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

var (
	// Logger is the shared logger instance. Nil until Init runs; the
	// package-level helpers tolerate that so library code can log
	// unconditionally.
	Logger *log.Logger

	debug bool
)

func prefix() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#D63C31")).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)
	return style.Render("sponsorblock")
}

// Init sets up the logger. With debug enabled the level drops to debug
// and caller/timestamp reporting turns on.
func Init(debugMode bool) {
	debug = debugMode
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    debugMode,
		ReportTimestamp: debugMode,
		TimeFormat:      "15:04:05",
		Prefix:          prefix(),
	})
	Logger.SetColorProfile(termenv.TrueColor)
	if debugMode {
		Logger.SetLevel(log.DebugLevel)
	} else {
		Logger.SetLevel(log.InfoLevel)
	}
}

// IsDebug reports whether debug logging is enabled.
func IsDebug() bool { return debug }

// Debug logs a debug message when debug mode is on.
func Debug(msg string, keyvals ...any) {
	if debug && Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs an error message and exits.
func Fatal(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
