package async

import (
	"context"

	"go.uber.org/zap"

	"studentpages/internal/domain"
)

// AuditBus writes one structured log line per domain event. It is
// purely observational: remote calls within a request stay strictly
// sequential regardless of what the bus does.
type AuditBus struct {
	pool *WorkerPool
	log  *zap.Logger
}

func NewAuditBus(ctx context.Context, poolSize int, log *zap.Logger) *AuditBus {
	return &AuditBus{
		pool: NewWorkerPool(ctx, poolSize, log),
		log:  log,
	}
}

func (b *AuditBus) Publish(ctx context.Context, e domain.Event) {
	b.pool.Submit(func(_ context.Context) {
		b.log.Info("audit_event",
			zap.String("type", e.Type),
			zap.Any("payload", e.Payload),
		)
	})
}

func (b *AuditBus) Close() {
	b.pool.Shutdown()
}
