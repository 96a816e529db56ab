package shared

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a console logger on stderr at the given level
func SetupLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// SetupStructuredLogger configures a logfmt logger for non-interactive use
func SetupStructuredLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Formatter:       log.LogfmtFormatter,
	})
}
