package fulfillment

import (
	"sort"

	"github.com/shopspring/decimal"
)

// StockRecord is one (barcode, location) row from a point-in-time stock
// snapshot. The engine never writes back to source stock.
type StockRecord struct {
	CanonicalKey string
	Location     string
	OnHand       decimal.Decimal
}

// StockSnapshot is the fixed stock picture one allocation pass runs
// against. It pre-indexes the records per barcode, each list sorted by
// descending on-hand quantity (so apportionment drains the fullest location
// first) with location name as tiebreak — the ordering must not depend on
// the fetch order of the underlying rows.
type StockSnapshot struct {
	byKey  map[string][]StockRecord
	totals map[string]decimal.Decimal
}

// NewStockSnapshot indexes stock records for one pass.
func NewStockSnapshot(records []StockRecord) *StockSnapshot {
	s := &StockSnapshot{
		byKey:  make(map[string][]StockRecord),
		totals: make(map[string]decimal.Decimal),
	}
	for _, rec := range records {
		if rec.CanonicalKey == "" {
			continue
		}
		s.byKey[rec.CanonicalKey] = append(s.byKey[rec.CanonicalKey], rec)
		s.totals[rec.CanonicalKey] = s.totals[rec.CanonicalKey].Add(rec.OnHand)
	}
	for key := range s.byKey {
		recs := s.byKey[key]
		sort.Slice(recs, func(i, j int) bool {
			if !recs[i].OnHand.Equal(recs[j].OnHand) {
				return recs[i].OnHand.GreaterThan(recs[j].OnHand)
			}
			return recs[i].Location < recs[j].Location
		})
	}
	return s
}

// ByKey returns the location breakdown for a barcode, fullest location
// first. The returned slice must not be modified.
func (s *StockSnapshot) ByKey(key string) []StockRecord {
	return s.byKey[key]
}

// Totals returns the summed on-hand quantity per barcode.
func (s *StockSnapshot) Totals() map[string]decimal.Decimal {
	return s.totals
}

// Total returns the summed on-hand quantity for one barcode, zero when the
// snapshot has no rows for it.
func (s *StockSnapshot) Total(key string) decimal.Decimal {
	return s.totals[key]
}
