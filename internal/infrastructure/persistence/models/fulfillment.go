package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sellerops/backend/internal/domain/fulfillment"
)

// Order line status values
const (
	OrderLineStatusPending = "PENDING"
	OrderLineStatusShipped = "SHIPPED"
)

// OrderLineModel maps a row of the persisted order feed. Numeric feed
// columns are stored as text exactly as delivered by the marketplace
// collaborator and coerced on read: a garbage quantity becomes zero, never
// a failed pass.
type OrderLineModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	CanonicalKey  string     `gorm:"index"`
	RawItemName   string     `gorm:"not null"`
	RawOptionName string
	RawVendorCode string     `gorm:"index"`
	Quantity      string     `gorm:"not null"`
	DueDate       *time.Time
	Status        string     `gorm:"not null;default:'PENDING';index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName specifies the table name
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// ToDomain converts the row to a domain OrderLine.
func (m *OrderLineModel) ToDomain() fulfillment.OrderLine {
	return fulfillment.OrderLine{
		ID:            m.ID,
		CanonicalKey:  m.CanonicalKey,
		RawItemName:   m.RawItemName,
		RawOptionName: m.RawOptionName,
		RawVendorCode: m.RawVendorCode,
		Quantity:      fulfillment.QuantityFromString(m.Quantity),
		DueDate:       m.DueDate,
	}
}

// StockRecordModel maps one (barcode, location) row of the stock snapshot.
type StockRecordModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	CanonicalKey string    `gorm:"not null;index"`
	Location     string    `gorm:"not null"`
	OnHand       string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (StockRecordModel) TableName() string {
	return "stock_records"
}

// ToDomain converts the row to a domain StockRecord.
func (m *StockRecordModel) ToDomain() fulfillment.StockRecord {
	return fulfillment.StockRecord{
		CanonicalKey: m.CanonicalKey,
		Location:     m.Location,
		OnHand:       fulfillment.QuantityFromString(m.OnHand),
	}
}

// CatalogEntryModel maps one raw-name to barcode association.
type CatalogEntryModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	RawItemName   string    `gorm:"index"`
	RawOptionName string
	RawVendorCode string    `gorm:"index"`
	CanonicalKey  string    `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (CatalogEntryModel) TableName() string {
	return "catalog_entries"
}

// ToDomain converts the row to a domain CatalogEntry.
func (m *CatalogEntryModel) ToDomain() fulfillment.CatalogEntry {
	return fulfillment.CatalogEntry{
		RawItemName:   m.RawItemName,
		RawOptionName: m.RawOptionName,
		RawVendorCode: m.RawVendorCode,
		CanonicalKey:  m.CanonicalKey,
	}
}

// PurchaseLedgerModel maps one ordering/cancellation event of the purchase
// ledger.
type PurchaseLedgerModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	CanonicalKey string    `gorm:"not null;index"`
	Ordered      string    `gorm:"not null"`
	Cancelled    string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (PurchaseLedgerModel) TableName() string {
	return "purchase_ledger_entries"
}

// ToDomain converts the row to a domain PurchaseLedgerEntry.
func (m *PurchaseLedgerModel) ToDomain() fulfillment.PurchaseLedgerEntry {
	return fulfillment.PurchaseLedgerEntry{
		CanonicalKey: m.CanonicalKey,
		Ordered:      fulfillment.QuantityFromString(m.Ordered),
		Cancelled:    fulfillment.QuantityFromString(m.Cancelled),
	}
}
