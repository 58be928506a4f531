package fulfillment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/sellerops/backend/internal/domain/fulfillment"
)

// AssignmentResponse is one (location, quantity) pair in API responses.
type AssignmentResponse struct {
	Location string          `json:"location"`
	Quantity decimal.Decimal `json:"quantity"`
}

// AllocationResultResponse is the per-line outcome of an allocation pass.
type AllocationResultResponse struct {
	OrderID      uuid.UUID            `json:"order_id"`
	CanonicalKey string               `json:"canonical_key,omitempty"`
	Resolved     bool                 `json:"resolved"`
	Shippable    bool                 `json:"shippable"`
	Requested    decimal.Decimal      `json:"requested"`
	Assigned     decimal.Decimal      `json:"assigned"`
	Assignments  []AssignmentResponse `json:"assignments"`
}

// FeasibilityReportResponse is the aggregate view of a pass.
type FeasibilityReportResponse struct {
	LineCount       int                        `json:"line_count"`
	ShippableCount  int                        `json:"shippable_count"`
	UnresolvedCount int                        `json:"unresolved_count"`
	ShortfallPerKey map[string]decimal.Decimal `json:"shortfall_per_key"`
}

// AllocationRunResponse is the full outcome of one allocation pass. Both
// the interactive table and the picklist export consume this one payload.
type AllocationRunResponse struct {
	PassID  uuid.UUID                  `json:"pass_id"`
	Results []AllocationResultResponse `json:"results"`
	Report  FeasibilityReportResponse  `json:"report"`
}

// OutstandingPurchaseResponse is the netted outstanding purchase volume for
// one barcode.
type OutstandingPurchaseResponse struct {
	CanonicalKey string          `json:"canonical_key"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

// PicklistItem is one order draw inside a picklist location section.
type PicklistItem struct {
	OrderID      uuid.UUID       `json:"order_id"`
	CanonicalKey string          `json:"canonical_key"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// PicklistLocation groups the draws against one physical location.
type PicklistLocation struct {
	Location string          `json:"location"`
	Total    decimal.Decimal `json:"total"`
	Items    []PicklistItem  `json:"items"`
}

// PicklistDocument is the export-ready decomposition of an allocation
// result set, grouped by location.
type PicklistDocument struct {
	PassID      uuid.UUID          `json:"pass_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Locations   []PicklistLocation `json:"locations"`
}

func toAllocationRunResponse(result domain.PassResult) *AllocationRunResponse {
	resp := &AllocationRunResponse{
		PassID:  result.PassID,
		Results: make([]AllocationResultResponse, 0, len(result.Results)),
		Report: FeasibilityReportResponse{
			LineCount:       result.Report.LineCount,
			ShippableCount:  result.Report.ShippableCount,
			UnresolvedCount: result.Report.UnresolvedCount,
			ShortfallPerKey: result.Report.ShortfallPerKey,
		},
	}
	for _, res := range result.Results {
		assignments := make([]AssignmentResponse, 0, len(res.Assignments))
		for _, a := range res.Assignments {
			assignments = append(assignments, AssignmentResponse{Location: a.Location, Quantity: a.Quantity})
		}
		resp.Results = append(resp.Results, AllocationResultResponse{
			OrderID:      res.OrderID,
			CanonicalKey: res.CanonicalKey,
			Resolved:     res.Resolved,
			Shippable:    res.Shippable,
			Requested:    res.Requested,
			Assigned:     res.Assigned,
			Assignments:  assignments,
		})
	}
	return resp
}
