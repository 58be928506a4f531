package fulfillment

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is one pending order row competing for stock in an allocation
// pass. Lines are built once from the external order feed and treated as
// immutable for the duration of a pass.
type OrderLine struct {
	ID            uuid.UUID
	CanonicalKey  string // barcode; empty until resolved
	RawItemName   string
	RawOptionName string
	RawVendorCode string
	Quantity      decimal.Decimal
	DueDate       *time.Time
}

// Resolved reports whether the line has been matched to a canonical barcode.
func (l *OrderLine) Resolved() bool {
	return l.CanonicalKey != ""
}

// sortByDueDate returns a new slice ordered by due date ascending. Lines
// without a due date sort last, and ties keep the input order — every
// component that walks a batch must see the same ordering, so this is the
// single sort used anywhere in the package.
func sortByDueDate(lines []OrderLine) []OrderLine {
	sorted := make([]OrderLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].DueDate, sorted[j].DueDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return sorted
}

// QuantityFromString parses a numeric field delivered by an external feed.
// Marketplace and spreadsheet rows routinely carry garbage in numeric
// columns; an unparsable value coerces to zero so a single bad row degrades
// to under-allocation instead of aborting the pass.
func QuantityFromString(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
