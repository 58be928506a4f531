package fulfillment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Classification is the outcome of a feasibility check over one batch.
type Classification struct {
	// Shippable holds the IDs of lines that can be fully satisfied under
	// date-priority rules.
	Shippable map[uuid.UUID]bool

	// ShortfallPerKey is the positive difference between total requested
	// and total on-hand per barcode, for reporting only.
	ShortfallPerKey map[string]decimal.Decimal
}

// ShippableCount returns the number of shippable lines.
func (c Classification) ShippableCount() int {
	return len(c.Shippable)
}

// FeasibilityClassifier decides which lines of a due-date-ordered batch can
// be fully satisfied from current stock. The policy is greedy whole-order
// fulfillment: earliest-due lines get first claim, and a line that cannot
// be fully covered reserves nothing — partial shipments are never created
// automatically.
type FeasibilityClassifier struct{}

// NewFeasibilityClassifier creates a new FeasibilityClassifier.
func NewFeasibilityClassifier() *FeasibilityClassifier {
	return &FeasibilityClassifier{}
}

// Classify walks the batch in due-date order against per-barcode stock
// totals. Unresolved lines are skipped and never classified shippable.
// Classify reads only its arguments, so re-running it over the same inputs
// yields the same result.
func (f *FeasibilityClassifier) Classify(lines []OrderLine, stockTotals map[string]decimal.Decimal) Classification {
	result := Classification{
		Shippable:       make(map[uuid.UUID]bool),
		ShortfallPerKey: make(map[string]decimal.Decimal),
	}

	used := make(map[string]decimal.Decimal)
	requested := make(map[string]decimal.Decimal)

	for _, line := range sortByDueDate(lines) {
		if !line.Resolved() {
			continue
		}
		requested[line.CanonicalKey] = requested[line.CanonicalKey].Add(line.Quantity)

		remaining := stockTotals[line.CanonicalKey].Sub(used[line.CanonicalKey])
		if remaining.GreaterThanOrEqual(line.Quantity) {
			result.Shippable[line.ID] = true
			used[line.CanonicalKey] = used[line.CanonicalKey].Add(line.Quantity)
		}
	}

	for key, req := range requested {
		shortfall := req.Sub(stockTotals[key])
		if shortfall.IsPositive() {
			result.ShortfallPerKey[key] = shortfall
		}
	}

	return result
}
