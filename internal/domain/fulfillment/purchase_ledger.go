package fulfillment

import "github.com/shopspring/decimal"

// PurchaseLedgerEntry is one ordering/cancellation event from the purchase
// ledger. Several entries may exist per barcode; the calculator aggregates
// them and never mutates the ledger.
type PurchaseLedgerEntry struct {
	CanonicalKey string
	Ordered      decimal.Decimal
	Cancelled    decimal.Decimal
}

// NetPurchaseCalculator nets cumulative ordered quantity against cumulative
// cancelled quantity per barcode. The result is the outstanding purchase
// volume shown alongside allocation results; it plays no part in the
// allocation decision itself.
type NetPurchaseCalculator struct{}

// NewNetPurchaseCalculator creates a new NetPurchaseCalculator.
func NewNetPurchaseCalculator() *NetPurchaseCalculator {
	return &NetPurchaseCalculator{}
}

// NetOutstanding returns max(0, sum(ordered) - sum(cancelled)) across all
// ledger entries for the given barcode.
func (c *NetPurchaseCalculator) NetOutstanding(key string, ledger []PurchaseLedgerEntry) decimal.Decimal {
	ordered := decimal.Zero
	cancelled := decimal.Zero
	for _, e := range ledger {
		if e.CanonicalKey != key {
			continue
		}
		ordered = ordered.Add(e.Ordered)
		cancelled = cancelled.Add(e.Cancelled)
	}
	return floorAtZero(ordered.Sub(cancelled))
}

// NetAll aggregates the whole ledger in one walk and returns the outstanding
// quantity per barcode. Keys whose net would be negative floor at zero.
func (c *NetPurchaseCalculator) NetAll(ledger []PurchaseLedgerEntry) map[string]decimal.Decimal {
	net := make(map[string]decimal.Decimal)
	for _, e := range ledger {
		if e.CanonicalKey == "" {
			continue
		}
		net[e.CanonicalKey] = net[e.CanonicalKey].Add(e.Ordered).Sub(e.Cancelled)
	}
	for key, q := range net {
		net[key] = floorAtZero(q)
	}
	return net
}

func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
