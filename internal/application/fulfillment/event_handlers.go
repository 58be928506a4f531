package fulfillment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/sellerops/backend/internal/domain/fulfillment"
	"github.com/sellerops/backend/internal/domain/shared"
)

// PassAuditHandler writes an audit log line for every completed allocation
// pass. It is subscribed on the in-process event bus at startup.
type PassAuditHandler struct {
	logger *zap.Logger
}

// NewPassAuditHandler creates a PassAuditHandler.
func NewPassAuditHandler(logger *zap.Logger) *PassAuditHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PassAuditHandler{logger: logger.Named("fulfillment.audit")}
}

// EventTypes implements shared.EventHandler.
func (h *PassAuditHandler) EventTypes() []string {
	return []string{domain.EventTypeAllocationPassCompleted}
}

// Handle implements shared.EventHandler.
func (h *PassAuditHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	completed, ok := event.(*domain.AllocationPassCompletedEvent)
	if !ok {
		return nil
	}
	h.logger.Info("allocation pass recorded",
		zap.String("pass_id", completed.AggregateID().String()),
		zap.Int("lines", completed.LineCount),
		zap.Int("shippable", completed.ShippableCount),
		zap.Int("unresolved", completed.UnresolvedCount),
	)
	return nil
}

var _ shared.EventHandler = (*PassAuditHandler)(nil)
