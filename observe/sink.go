// Package observe provides the capability the core accepts from the host
// for observable warnings (transition-zone friction and Nusselt
// uncertainty, omitted Gnielinski f, correlation validity-range notices,
// Colebrook fallback). The radiation linearization emits no warning.
// The sink is injected, not a global logger.
package observe

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Sink receives non-fatal warnings emitted during correlation selection
// and solving. Implementations must be safe for concurrent use, matching
// the read-only-after-init contract of the rest of the engine.
type Sink interface {
	Warnf(format string, args ...any)
}

// discardSink silently drops every warning.
type discardSink struct{}

func (discardSink) Warnf(string, ...any) {}

// Discard is a Sink that silences every warning, for callers that chose
// not to observe them.
var Discard Sink = discardSink{}

// SlogSink adapts a *slog.Logger into a Sink.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlog wraps logger as a Sink. A nil logger falls back to slog.Default().
func NewSlog(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Warnf(format string, args ...any) {
	s.logger.Warn(fmt.Sprintf(format, args...))
}

// NewTinted builds a SlogSink writing colorized, human-readable warnings to
// w via github.com/lmittmann/tint, the sink cmd/thermaflow uses under
// --verbose.
func NewTinted(w *os.File) *SlogSink {
	handler := tint.NewHandler(w, &tint.Options{Level: slog.LevelWarn})
	return NewSlog(slog.New(handler))
}
