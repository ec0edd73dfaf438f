// Package logging holds the shared stderr logger for CLI surfaces.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "weekplan",
})

// Warn logs a warning with optional key/value pairs.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error with optional key/value pairs.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}
