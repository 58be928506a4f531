package fulfillment

import (
	"github.com/google/uuid"

	"github.com/sellerops/backend/internal/domain/shared"
)

// Event types for the fulfillment domain
const (
	EventTypeAllocationPassCompleted = "fulfillment.allocation_pass.completed"
)

// AllocationPassCompletedEvent is emitted after every allocation pass with
// the aggregate counts summary widgets and audit logs care about.
type AllocationPassCompletedEvent struct {
	shared.BaseDomainEvent
	LineCount       int `json:"line_count"`
	ShippableCount  int `json:"shippable_count"`
	UnresolvedCount int `json:"unresolved_count"`
}

// NewAllocationPassCompletedEvent creates a pass completion event.
func NewAllocationPassCompletedEvent(passID uuid.UUID, lineCount, shippableCount, unresolvedCount int) *AllocationPassCompletedEvent {
	return &AllocationPassCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeAllocationPassCompleted, "AllocationPass", passID),
		LineCount:       lineCount,
		ShippableCount:  shippableCount,
		UnresolvedCount: unresolvedCount,
	}
}
