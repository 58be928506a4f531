package fulfillment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Assignment is one (location, quantity) pair apportioned to an order line.
type Assignment struct {
	Location string
	Quantity decimal.Decimal
}

// SumAssignments returns the total quantity across a list of assignments.
func SumAssignments(assignments []Assignment) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assignments {
		total = total.Add(a.Quantity)
	}
	return total
}

// LocationApportioner assigns concrete per-location quantities to order
// lines. It walks the batch in the same due-date order as the classifier
// and drains the fullest locations first, so each order touches as few
// locations as possible. All consumption is recorded in the caller's
// AllocationState, which is how two lines are prevented from claiming the
// same physical units.
type LocationApportioner struct{}

// NewLocationApportioner creates a new LocationApportioner.
func NewLocationApportioner() *LocationApportioner {
	return &LocationApportioner{}
}

// Apportion assigns location quantities to every line in the batch,
// consuming from state as it goes. Partial assignment lists are kept even
// when a line cannot be fully covered; a line with no resolvable key or no
// stock gets an empty list.
func (a *LocationApportioner) Apportion(lines []OrderLine, snapshot *StockSnapshot, state *AllocationState) map[uuid.UUID][]Assignment {
	out := make(map[uuid.UUID][]Assignment, len(lines))
	for _, line := range sortByDueDate(lines) {
		out[line.ID] = a.ApportionLine(line, snapshot, state)
	}
	return out
}

// ApportionLine assigns location quantities to a single line. Callers that
// walk a batch themselves must present lines in due-date order against the
// same state, or earlier lines would see stock already taken by later ones.
func (a *LocationApportioner) ApportionLine(line OrderLine, snapshot *StockSnapshot, state *AllocationState) []Assignment {
	if !line.Resolved() {
		return nil
	}

	remaining := line.Quantity
	var assignments []Assignment
	for _, rec := range snapshot.ByKey(line.CanonicalKey) {
		if !remaining.IsPositive() {
			break
		}
		available := rec.OnHand.Sub(state.Consumed(line.CanonicalKey, rec.Location))
		if !available.IsPositive() {
			continue
		}
		take := decimal.Min(available, remaining)
		assignments = append(assignments, Assignment{Location: rec.Location, Quantity: take})
		state.Consume(line.CanonicalKey, rec.Location, take)
		remaining = remaining.Sub(take)
	}
	return assignments
}
