package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/sellerops/backend/internal/domain/fulfillment"
	"github.com/sellerops/backend/internal/infrastructure/persistence/models"
)

// GormOrderLineRepository implements fulfillment.OrderLineRepository using GORM
type GormOrderLineRepository struct {
	db *gorm.DB
}

// NewGormOrderLineRepository creates a new GormOrderLineRepository
func NewGormOrderLineRepository(db *gorm.DB) *GormOrderLineRepository {
	return &GormOrderLineRepository{db: db}
}

// FindPending returns all order lines awaiting allocation, in insertion
// order. The engine re-sorts by due date itself; the stable fetch order is
// what makes its tiebreak deterministic.
func (r *GormOrderLineRepository) FindPending(ctx context.Context) ([]fulfillment.OrderLine, error) {
	var rows []models.OrderLineModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", models.OrderLineStatusPending).
		Order("created_at, id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]fulfillment.OrderLine, 0, len(rows))
	for i := range rows {
		lines = append(lines, rows[i].ToDomain())
	}
	return lines, nil
}

// GormStockRecordRepository implements fulfillment.StockRecordRepository using GORM
type GormStockRecordRepository struct {
	db *gorm.DB
}

// NewGormStockRecordRepository creates a new GormStockRecordRepository
func NewGormStockRecordRepository(db *gorm.DB) *GormStockRecordRepository {
	return &GormStockRecordRepository{db: db}
}

// FindAll returns every (barcode, location) stock row of the snapshot.
func (r *GormStockRecordRepository) FindAll(ctx context.Context) ([]fulfillment.StockRecord, error) {
	var rows []models.StockRecordModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]fulfillment.StockRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToDomain())
	}
	return records, nil
}

// GormCatalogRepository implements fulfillment.CatalogRepository using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// FindAll returns every catalog entry. Entries come back in insertion
// order so duplicate keys resolve the same way on every load.
func (r *GormCatalogRepository) FindAll(ctx context.Context) ([]fulfillment.CatalogEntry, error) {
	var rows []models.CatalogEntryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]fulfillment.CatalogEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToDomain())
	}
	return entries, nil
}

// GormPurchaseLedgerRepository implements fulfillment.PurchaseLedgerRepository using GORM
type GormPurchaseLedgerRepository struct {
	db *gorm.DB
}

// NewGormPurchaseLedgerRepository creates a new GormPurchaseLedgerRepository
func NewGormPurchaseLedgerRepository(db *gorm.DB) *GormPurchaseLedgerRepository {
	return &GormPurchaseLedgerRepository{db: db}
}

// FindAll returns every ordering/cancellation event in the ledger.
func (r *GormPurchaseLedgerRepository) FindAll(ctx context.Context) ([]fulfillment.PurchaseLedgerEntry, error) {
	var rows []models.PurchaseLedgerModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]fulfillment.PurchaseLedgerEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToDomain())
	}
	return entries, nil
}
