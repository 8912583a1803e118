package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rubytopaz-glitch/universe/internal/ports"
)

const (
	auditKey     = "audit:taste"
	auditMaxLen  = 1000
	queueSize    = 64
	writeTimeout = 5 * time.Second
)

// RedisLog persists audit entries to a capped Redis list through a
// single-worker queue. Record never blocks: when the queue is full the
// entry is dropped with a warning. Failures to persist are logged and
// swallowed; auditing is best-effort by contract.
type RedisLog struct {
	client  *redis.Client
	logger  *slog.Logger
	entries chan ports.AuditEntry
	done    chan struct{}
}

func NewRedisLog(client *redis.Client, logger *slog.Logger) *RedisLog {
	l := &RedisLog{
		client:  client,
		logger:  logger,
		entries: make(chan ports.AuditEntry, queueSize),
		done:    make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *RedisLog) Record(_ context.Context, e ports.AuditEntry) {
	select {
	case l.entries <- e:
	default:
		l.logger.Warn("audit queue full, dropping entry")
	}
}

// Close stops the worker after draining queued entries.
func (l *RedisLog) Close() {
	close(l.entries)
	<-l.done
}

func (l *RedisLog) run() {
	defer close(l.done)
	for e := range l.entries {
		l.write(e)
	}
}

func (l *RedisLog) write(e ports.AuditEntry) {
	raw, err := json.Marshal(e)
	if err != nil {
		l.logger.Warn("audit entry not serializable", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	pipe := l.client.Pipeline()
	pipe.LPush(ctx, auditKey, raw)
	pipe.LTrim(ctx, auditKey, 0, auditMaxLen-1)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Warn("audit write failed", "error", err)
	}
}
