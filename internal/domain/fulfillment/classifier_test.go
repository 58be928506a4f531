package fulfillment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeasibilityClassifier_Classify(t *testing.T) {
	classifier := NewFeasibilityClassifier()

	t.Run("earliest due line gets dibs on scarce stock", func(t *testing.T) {
		line1 := OrderLine{ID: uuid.New(), CanonicalKey: "B1", Quantity: decimal.NewFromInt(5), DueDate: datePtr(t, "2024-01-01")}
		line2 := OrderLine{ID: uuid.New(), CanonicalKey: "B1", Quantity: decimal.NewFromInt(5), DueDate: datePtr(t, "2024-01-02")}
		totals := map[string]decimal.Decimal{"B1": decimal.NewFromInt(7)}

		result := classifier.Classify([]OrderLine{line2, line1}, totals)

		assert.True(t, result.Shippable[line1.ID])
		assert.False(t, result.Shippable[line2.ID])
		assert.Equal(t, 1, result.ShippableCount())
		assert.True(t, decimal.NewFromInt(3).Equal(result.ShortfallPerKey["B1"]))
	})

	t.Run("infeasible line reserves nothing", func(t *testing.T) {
		big := OrderLine{ID: uuid.New(), CanonicalKey: "B1", Quantity: decimal.NewFromInt(10), DueDate: datePtr(t, "2024-01-01")}
		small := OrderLine{ID: uuid.New(), CanonicalKey: "B1", Quantity: decimal.NewFromInt(7), DueDate: datePtr(t, "2024-01-02")}
		totals := map[string]decimal.Decimal{"B1": decimal.NewFromInt(7)}

		result := classifier.Classify([]OrderLine{big, small}, totals)

		assert.False(t, result.Shippable[big.ID])
		assert.True(t, result.Shippable[small.ID])
	})

	t.Run("unresolved lines are never shippable", func(t *testing.T) {
		unresolved := OrderLine{ID: uuid.New(), Quantity: decimal.NewFromInt(1)}
		totals := map[string]decimal.Decimal{"B1": decimal.NewFromInt(100)}

		result := classifier.Classify([]OrderLine{unresolved}, totals)

		assert.Empty(t, result.Shippable)
		assert.Empty(t, result.ShortfallPerKey)
	})

	t.Run("lines without due date sort after dated lines", func(t *testing.T) {
		undated := OrderLine{ID: uuid.New(), CanonicalKey: "B1", Quantity: decimal.NewFromInt(5)}
		dated := OrderLine{ID: uuid.New(), CanonicalKey: "B1", Quantity: decimal.NewFromInt(5), DueDate: datePtr(t, "2024-06-01")}
		totals := map[string]decimal.Decimal{"B1": decimal.NewFromInt(5)}

		result := classifier.Classify([]OrderLine{undated, dated}, totals)

		assert.True(t, result.Shippable[dated.ID])
		assert.False(t, result.Shippable[undated.ID])
	})

	t.Run("empty batch yields empty results", func(t *testing.T) {
		result := classifier.Classify(nil, map[string]decimal.Decimal{})

		assert.Empty(t, result.Shippable)
		assert.Empty(t, result.ShortfallPerKey)
	})

	t.Run("missing stock totals default to zero", func(t *testing.T) {
		line := OrderLine{ID: uuid.New(), CanonicalKey: "B9", Quantity: decimal.NewFromInt(2)}

		result := classifier.Classify([]OrderLine{line}, map[string]decimal.Decimal{})

		assert.False(t, result.Shippable[line.ID])
		assert.True(t, decimal.NewFromInt(2).Equal(result.ShortfallPerKey["B9"]))
	})
}

func TestFeasibilityClassifier_Idempotent(t *testing.T) {
	classifier := NewFeasibilityClassifier()

	lines := []OrderLine{
		{ID: uuid.New(), CanonicalKey: "B1", Quantity: decimal.NewFromInt(4), DueDate: datePtr(t, "2024-01-01")},
		{ID: uuid.New(), CanonicalKey: "B1", Quantity: decimal.NewFromInt(4), DueDate: datePtr(t, "2024-01-03")},
		{ID: uuid.New(), CanonicalKey: "B2", Quantity: decimal.NewFromInt(9), DueDate: datePtr(t, "2024-01-02")},
	}
	totals := map[string]decimal.Decimal{
		"B1": decimal.NewFromInt(6),
		"B2": decimal.NewFromInt(3),
	}

	first := classifier.Classify(lines, totals)
	second := classifier.Classify(lines, totals)

	require.Equal(t, first.Shippable, second.Shippable)
	require.Len(t, first.ShortfallPerKey, len(second.ShortfallPerKey))
	for key, want := range first.ShortfallPerKey {
		assert.True(t, want.Equal(second.ShortfallPerKey[key]))
	}
}
