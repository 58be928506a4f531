package fulfillment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNetPurchaseCalculator_NetOutstanding(t *testing.T) {
	calc := NewNetPurchaseCalculator()

	t.Run("nets ordered against cancelled across entries", func(t *testing.T) {
		ledger := []PurchaseLedgerEntry{
			{CanonicalKey: "B1", Ordered: decimal.NewFromInt(10), Cancelled: decimal.NewFromInt(3)},
			{CanonicalKey: "B1", Ordered: decimal.NewFromInt(2), Cancelled: decimal.Zero},
		}
		assert.True(t, decimal.NewFromInt(9).Equal(calc.NetOutstanding("B1", ledger)))
	})

	t.Run("ignores entries for other keys", func(t *testing.T) {
		ledger := []PurchaseLedgerEntry{
			{CanonicalKey: "B1", Ordered: decimal.NewFromInt(10)},
			{CanonicalKey: "B2", Ordered: decimal.NewFromInt(100)},
		}
		assert.True(t, decimal.NewFromInt(10).Equal(calc.NetOutstanding("B1", ledger)))
	})

	t.Run("floors at zero when cancellations exceed orders", func(t *testing.T) {
		ledger := []PurchaseLedgerEntry{
			{CanonicalKey: "B1", Ordered: decimal.NewFromInt(2), Cancelled: decimal.NewFromInt(5)},
		}
		assert.True(t, calc.NetOutstanding("B1", ledger).IsZero())
	})

	t.Run("empty ledger yields zero", func(t *testing.T) {
		assert.True(t, calc.NetOutstanding("B1", nil).IsZero())
	})
}

func TestNetPurchaseCalculator_NetAll(t *testing.T) {
	calc := NewNetPurchaseCalculator()

	ledger := []PurchaseLedgerEntry{
		{CanonicalKey: "B1", Ordered: decimal.NewFromInt(10), Cancelled: decimal.NewFromInt(3)},
		{CanonicalKey: "B1", Ordered: decimal.NewFromInt(2)},
		{CanonicalKey: "B2", Ordered: decimal.NewFromInt(1), Cancelled: decimal.NewFromInt(4)},
		{CanonicalKey: "", Ordered: decimal.NewFromInt(7)},
	}

	net := calc.NetAll(ledger)

	assert.Len(t, net, 2)
	assert.True(t, decimal.NewFromInt(9).Equal(net["B1"]))
	assert.True(t, net["B2"].IsZero())
}
