package fulfillment

import "context"

// OrderLineRepository loads pending order lines for allocation.
type OrderLineRepository interface {
	// FindPending returns all order lines awaiting allocation.
	FindPending(ctx context.Context) ([]OrderLine, error)
}

// StockRecordRepository loads the point-in-time stock snapshot.
type StockRecordRepository interface {
	// FindAll returns every (barcode, location) stock row.
	FindAll(ctx context.Context) ([]StockRecord, error)
}

// CatalogRepository loads the raw-name to barcode associations.
type CatalogRepository interface {
	// FindAll returns every catalog entry.
	FindAll(ctx context.Context) ([]CatalogEntry, error)
}

// PurchaseLedgerRepository loads the purchase ledger.
type PurchaseLedgerRepository interface {
	// FindAll returns every ordering/cancellation event.
	FindAll(ctx context.Context) ([]PurchaseLedgerEntry, error)
}
