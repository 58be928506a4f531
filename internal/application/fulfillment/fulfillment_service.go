package fulfillment

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	domain "github.com/sellerops/backend/internal/domain/fulfillment"
	"github.com/sellerops/backend/internal/domain/shared"
)

// FulfillmentService orchestrates allocation passes over snapshots fetched
// through the domain repositories. Each call builds its own pass with fresh
// state, so concurrent requests and repeated requests for the same data can
// never observe each other's allocations.
type FulfillmentService struct {
	orderLines domain.OrderLineRepository
	stock      domain.StockRecordRepository
	catalog    domain.CatalogRepository
	ledger     domain.PurchaseLedgerRepository

	resolver   *domain.BarcodeResolver
	calculator *domain.NetPurchaseCalculator
	pass       *domain.AllocationPass

	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewFulfillmentService creates a FulfillmentService. The publisher may be
// nil, in which case pass events are dropped.
func NewFulfillmentService(
	orderLines domain.OrderLineRepository,
	stock domain.StockRecordRepository,
	catalog domain.CatalogRepository,
	ledger domain.PurchaseLedgerRepository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *FulfillmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FulfillmentService{
		orderLines: orderLines,
		stock:      stock,
		catalog:    catalog,
		ledger:     ledger,
		resolver:   domain.NewBarcodeResolver(),
		calculator: domain.NewNetPurchaseCalculator(),
		pass:       domain.NewAllocationPass(),
		publisher:  publisher,
		logger:     logger,
	}
}

// RunAllocation fetches the pending order batch, the stock snapshot, and
// the catalog, resolves barcodes, and runs one allocation pass. The
// returned response is the single result set every consumer of this
// request must render from.
func (s *FulfillmentService) RunAllocation(ctx context.Context) (*AllocationRunResponse, error) {
	lines, err := s.orderLines.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pending order lines: %w", err)
	}
	entries, err := s.catalog.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	records, err := s.stock.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stock snapshot: %w", err)
	}

	resolved, misses := s.resolver.ResolveBatch(lines, domain.NewCatalog(entries))
	if len(misses) > 0 {
		s.logger.Warn("order lines without canonical key",
			zap.Int("count", len(misses)))
	}

	result := s.pass.Run(resolved, domain.NewStockSnapshot(records))

	if s.publisher != nil && len(result.Events) > 0 {
		if err := s.publisher.Publish(ctx, result.Events...); err != nil {
			s.logger.Warn("publishing pass events", zap.Error(err))
		}
	}

	s.logger.Info("allocation pass completed",
		zap.String("pass_id", result.PassID.String()),
		zap.Int("lines", result.Report.LineCount),
		zap.Int("shippable", result.Report.ShippableCount),
		zap.Int("unresolved", result.Report.UnresolvedCount))

	return toAllocationRunResponse(result), nil
}

// OutstandingPurchases nets the purchase ledger and returns the
// outstanding volume per barcode, sorted by barcode for stable output.
func (s *FulfillmentService) OutstandingPurchases(ctx context.Context) ([]OutstandingPurchaseResponse, error) {
	entries, err := s.ledger.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading purchase ledger: %w", err)
	}

	net := s.calculator.NetAll(entries)
	out := make([]OutstandingPurchaseResponse, 0, len(net))
	for key, qty := range net {
		out = append(out, OutstandingPurchaseResponse{CanonicalKey: key, Outstanding: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CanonicalKey < out[j].CanonicalKey })
	return out, nil
}
