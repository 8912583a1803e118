package ports

import (
	"context"
	"time"

	"github.com/rubytopaz-glitch/universe/internal/domain"
)

// AuditEntry captures one interpreter call for traceability: the prompt,
// the raw model response, and the filter it was parsed into.
type AuditEntry struct {
	Prompt      string        `json:"prompt"`
	ResponseRaw string        `json:"response_raw"`
	Answer      string        `json:"answer"`
	Filter      domain.Filter `json:"filter"`
	CreatedAt   time.Time     `json:"created_at"`
}

// AuditLog persists audit entries best-effort. Record must never block the
// request path or surface an error; a failed write is logged and dropped.
type AuditLog interface {
	Record(ctx context.Context, e AuditEntry)
}
