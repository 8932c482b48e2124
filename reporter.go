package msysmake

import (
	"log/slog"
)

// Reporter receives user-facing diagnostics that do not abort generation.
type Reporter interface {
	Report(err error)
}

// LogReporter logs each diagnostic at error level and remembers it so the
// caller can decide on an exit status once generation is done.
type LogReporter struct {
	logger *slog.Logger
	errs   []error
}

// NewLogReporter creates a reporter writing to logger. A nil logger uses
// slog.Default().
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

// Report implements Reporter.
func (r *LogReporter) Report(err error) {
	r.errs = append(r.errs, err)
	r.logger.Error(err.Error())
}

// Errors returns the diagnostics reported so far.
func (r *LogReporter) Errors() []error {
	return append([]error(nil), r.errs...)
}

// ErrorOccurred reports whether any diagnostic was reported.
func (r *LogReporter) ErrorOccurred() bool {
	return len(r.errs) > 0
}
