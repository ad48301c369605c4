// Package logging wraps charmbracelet/log with a process-wide logger that
// always writes to stderr. Stdout is reserved for the MCP stdio transport,
// so nothing in this codebase may log there.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	defaultLogger *log.Logger
	once          sync.Once
)

// Default returns the shared logger, creating it on first use. Setting the
// DEBUG environment variable lowers the level to debug.
func Default() *log.Logger {
	once.Do(func() {
		defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "vale-mcp",
		})
		if os.Getenv("DEBUG") != "" {
			defaultLogger.SetLevel(log.DebugLevel)
		} else {
			defaultLogger.SetLevel(log.InfoLevel)
		}
	})
	return defaultLogger
}

func Debug(msg string, keyvals ...interface{}) { Default().Debug(msg, keyvals...) }
func Info(msg string, keyvals ...interface{})  { Default().Info(msg, keyvals...) }
func Warn(msg string, keyvals ...interface{})  { Default().Warn(msg, keyvals...) }
func Error(msg string, keyvals ...interface{}) { Default().Error(msg, keyvals...) }
