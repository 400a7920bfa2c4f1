// Package leads provides capture sinks: implementations of the terminal
// lead-capture side-effect the dialogue machine fires exactly once per
// qualified lead.
package leads

import "go.uber.org/zap"

// Sink records one fully-qualified lead. Capture has the same shape as
// dialogue.CaptureFunc, so a sink method wires straight into the machine.
type Sink interface {
	Capture(name, email, platform string) error
}

// LogSink writes captured leads to the log and nowhere else. Useful for
// demos and as the fallback when no database is configured.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink returns a LogSink.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

// Capture logs the lead.
func (s *LogSink) Capture(name, email, platform string) error {
	s.logger.Info("lead captured successfully",
		zap.String("name", name),
		zap.String("email", email),
		zap.String("platform", platform))
	return nil
}
