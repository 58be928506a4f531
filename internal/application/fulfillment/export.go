package fulfillment

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sellerops/backend/internal/domain/shared"
)

// BuildPicklist assembles the document-export view from an existing
// allocation result set. It never recomputes allocations: the picklist is a
// regrouping of the same assignments the interactive table shows, which is
// what keeps the two consumers in agreement.
func BuildPicklist(run *AllocationRunResponse) (PicklistDocument, error) {
	if run == nil || run.PassID == uuid.Nil {
		return PicklistDocument{}, shared.ErrInvalidInput
	}

	byLocation := make(map[string][]PicklistItem)
	for _, res := range run.Results {
		for _, a := range res.Assignments {
			byLocation[a.Location] = append(byLocation[a.Location], PicklistItem{
				OrderID:      res.OrderID,
				CanonicalKey: res.CanonicalKey,
				Quantity:     a.Quantity,
			})
		}
	}

	doc := PicklistDocument{
		PassID:      run.PassID,
		GeneratedAt: time.Now(),
		Locations:   make([]PicklistLocation, 0, len(byLocation)),
	}
	for location, items := range byLocation {
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Quantity)
		}
		doc.Locations = append(doc.Locations, PicklistLocation{
			Location: location,
			Total:    total,
			Items:    items,
		})
	}
	sort.Slice(doc.Locations, func(i, j int) bool {
		return doc.Locations[i].Location < doc.Locations[j].Location
	})
	return doc, nil
}
