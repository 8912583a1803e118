package audit

import (
	"context"
	"log/slog"

	"github.com/rubytopaz-glitch/universe/internal/ports"
)

// LoggerSink writes audit entries as structured log records. Used when no
// Redis instance is configured.
type LoggerSink struct {
	logger *slog.Logger
}

func NewLoggerSink(logger *slog.Logger) *LoggerSink {
	return &LoggerSink{logger: logger}
}

func (s *LoggerSink) Record(ctx context.Context, e ports.AuditEntry) {
	s.logger.InfoContext(ctx, "taste prompt",
		"prompt", e.Prompt,
		"response_raw", e.ResponseRaw,
		"answer", e.Answer,
		"strict", e.Filter.Strict,
		"min_vote", e.Filter.MinVote,
	)
}
