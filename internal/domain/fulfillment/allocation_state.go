package fulfillment

import "github.com/shopspring/decimal"

// AllocationState tracks how much of each (barcode, location) bucket has
// already been handed to earlier lines within one allocation pass. It is
// the single source of truth for remaining stock during a pass: every
// consumer of the same pass must share one instance, and every pass must
// start from a fresh one. It is never package-level and never reused across
// passes.
type AllocationState struct {
	consumed map[string]map[string]decimal.Decimal
}

// NewAllocationState returns an empty state with all counters at zero.
func NewAllocationState() *AllocationState {
	return &AllocationState{consumed: make(map[string]map[string]decimal.Decimal)}
}

// Consumed returns the quantity already taken from a (barcode, location)
// bucket, zero when untouched.
func (s *AllocationState) Consumed(key, location string) decimal.Decimal {
	return s.consumed[key][location]
}

// Consume records qty as taken from a (barcode, location) bucket.
func (s *AllocationState) Consume(key, location string, qty decimal.Decimal) {
	locs, ok := s.consumed[key]
	if !ok {
		locs = make(map[string]decimal.Decimal)
		s.consumed[key] = locs
	}
	locs[location] = locs[location].Add(qty)
}
