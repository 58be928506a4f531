package fulfillment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sellerops/backend/internal/domain/shared"
)

// AllocationResult is the outcome of one allocation pass for one order
// line. Shippable is derived from the line's own apportionment: a line is
// shippable exactly when its assignments cover the full requested quantity.
// The interactive view and the document export both render from the same
// result, so the two can never disagree about what a line draws from where.
type AllocationResult struct {
	OrderID      uuid.UUID
	CanonicalKey string
	Resolved     bool
	Shippable    bool
	Requested    decimal.Decimal
	Assigned     decimal.Decimal
	Assignments  []Assignment
}

// FeasibilityReport is the aggregate view of one pass, consumed by summary
// widgets.
type FeasibilityReport struct {
	LineCount       int
	ShippableCount  int
	UnresolvedCount int
	ShortfallPerKey map[string]decimal.Decimal
}

// PassResult bundles everything one pass produces. It is the only thing
// that survives the pass boundary; all intermediate state is discarded.
type PassResult struct {
	PassID  uuid.UUID
	Results []AllocationResult
	Report  FeasibilityReport
	Events  []shared.DomainEvent
}

// ResultByOrder returns the results keyed by order line ID.
func (r *PassResult) ResultByOrder() map[uuid.UUID]AllocationResult {
	byOrder := make(map[uuid.UUID]AllocationResult, len(r.Results))
	for _, res := range r.Results {
		byOrder[res.OrderID] = res
	}
	return byOrder
}

// AllocationPass runs the full engine over one immutable snapshot: sort the
// batch once, apportion each line against a single fresh AllocationState,
// and read the shippable verdict off each line's apportionment outcome.
// The pass owns its state exclusively; nothing is shared across passes, so
// two passes over the same snapshot produce identical results.
type AllocationPass struct {
	classifier  *FeasibilityClassifier
	apportioner *LocationApportioner
}

// NewAllocationPass creates a pass engine.
func NewAllocationPass() *AllocationPass {
	return &AllocationPass{
		classifier:  NewFeasibilityClassifier(),
		apportioner: NewLocationApportioner(),
	}
}

// Run executes one allocation pass. Empty inputs complete trivially with
// empty results; resolution misses are reported per line, never as errors.
// Results come back in the pass's processing order (due date ascending,
// stable ties).
func (p *AllocationPass) Run(lines []OrderLine, snapshot *StockSnapshot) PassResult {
	passID := uuid.New()
	state := NewAllocationState()
	sorted := sortByDueDate(lines)

	result := PassResult{
		PassID:  passID,
		Results: make([]AllocationResult, 0, len(sorted)),
	}

	unresolved := 0
	shippable := 0
	for _, line := range sorted {
		assignments := p.apportioner.ApportionLine(line, snapshot, state)
		assigned := SumAssignments(assignments)

		lineResult := AllocationResult{
			OrderID:      line.ID,
			CanonicalKey: line.CanonicalKey,
			Resolved:     line.Resolved(),
			Requested:    line.Quantity,
			Assigned:     assigned,
			Assignments:  assignments,
		}
		if !line.Resolved() {
			unresolved++
		} else if line.Quantity.IsPositive() && assigned.Equal(line.Quantity) {
			lineResult.Shippable = true
			shippable++
		}
		result.Results = append(result.Results, lineResult)
	}

	classification := p.classifier.Classify(lines, snapshot.Totals())
	result.Report = FeasibilityReport{
		LineCount:       len(sorted),
		ShippableCount:  shippable,
		UnresolvedCount: unresolved,
		ShortfallPerKey: classification.ShortfallPerKey,
	}

	result.Events = append(result.Events,
		NewAllocationPassCompletedEvent(passID, len(sorted), shippable, unresolved))

	return result
}
