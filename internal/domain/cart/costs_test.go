// internal/domain/cart/costs_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/member"
)

func line(id uint, unitPrice int64, discountRate, quantity int) Item {
	return Item{
		ID:       id,
		Quantity: quantity,
		Product:  catalog.Product{ID: id, UnitPrice: unitPrice, DiscountRate: discountRate},
	}
}

func TestCalculateCostsNormalRank(t *testing.T) {
	selected := Snapshot{line(1, 10_000, 0, 2)}

	costs := CalculateCosts(selected, member.RankNormal, DefaultPricingRules())

	assert.Equal(t, CheckoutCosts{
		TotalItemPrice:            20_000,
		TotalItemDiscountAmount:   0,
		TotalMemberDiscountAmount: 0,
		DiscountedTotalItemPrice:  20_000,
		ShippingFee:               3_000,
		TotalPrice:                23_000,
	}, costs)
}

func TestCalculateCostsGoldRank(t *testing.T) {
	selected := Snapshot{line(1, 10_000, 0, 2)}

	costs := CalculateCosts(selected, member.RankGold, DefaultPricingRules())

	assert.Equal(t, int64(2_000), costs.TotalMemberDiscountAmount)
	assert.Equal(t, int64(18_000), costs.DiscountedTotalItemPrice)
	assert.Equal(t, int64(3_000), costs.ShippingFee)
	assert.Equal(t, int64(21_000), costs.TotalPrice)
}

func TestCalculateCostsEmptySelection(t *testing.T) {
	costs := CalculateCosts(Snapshot{}, member.RankDiamond, DefaultPricingRules())

	assert.Equal(t, CheckoutCosts{}, costs, "nothing to ship, nothing to charge")
}

func TestCalculateCostsItemDiscount(t *testing.T) {
	// 175,000 at 10% off: item discount 17,500, base for the member discount
	// is the already-discounted 157,500
	selected := Snapshot{line(1, 175_000, 10, 1)}

	costs := CalculateCosts(selected, member.RankSilver, DefaultPricingRules())

	assert.Equal(t, int64(175_000), costs.TotalItemPrice)
	assert.Equal(t, int64(17_500), costs.TotalItemDiscountAmount)
	assert.Equal(t, int64(7_875), costs.TotalMemberDiscountAmount)
	assert.Equal(t, int64(149_625), costs.DiscountedTotalItemPrice)
}

func TestCalculateCostsShippingRule(t *testing.T) {
	rules := DefaultPricingRules()

	// Above the exemption limit ships free
	over := CalculateCosts(Snapshot{line(1, 100_001, 0, 1)}, member.RankNormal, rules)
	assert.Equal(t, int64(0), over.ShippingFee)
	assert.Equal(t, int64(100_001), over.TotalPrice)

	// Exactly at the limit still pays the fee
	at := CalculateCosts(Snapshot{line(1, 100_000, 0, 1)}, member.RankNormal, rules)
	assert.Equal(t, int64(3_000), at.ShippingFee)
	assert.Equal(t, int64(103_000), at.TotalPrice)
}

func TestCalculateCostsRoundsHalfUp(t *testing.T) {
	// 3 × 50% = 1.5, rounded up to 2 at the line level
	selected := Snapshot{line(1, 3, 50, 1)}
	costs := CalculateCosts(selected, member.RankNormal, DefaultPricingRules())
	assert.Equal(t, int64(2), costs.TotalItemDiscountAmount)

	// member discount: 10 × 5% = 0.5, rounded up to 1
	selected = Snapshot{line(1, 10, 0, 1)}
	costs = CalculateCosts(selected, member.RankSilver, DefaultPricingRules())
	assert.Equal(t, int64(1), costs.TotalMemberDiscountAmount)
	assert.Equal(t, int64(9), costs.DiscountedTotalItemPrice)
}

func TestCalculateCostsNeverNegative(t *testing.T) {
	// A fully discounted line leaves nothing for the member discount to bite
	selected := Snapshot{line(1, 40_000, 100, 3)}

	costs := CalculateCosts(selected, member.RankDiamond, DefaultPricingRules())

	assert.Equal(t, int64(0), costs.DiscountedTotalItemPrice)
	assert.Equal(t, costs.ShippingFee, costs.TotalPrice)
	assert.GreaterOrEqual(t, costs.TotalPrice, int64(0))
}

func TestSnapshotSelect(t *testing.T) {
	snapshot := Snapshot{line(1, 100, 0, 1), line(2, 200, 0, 1), line(3, 300, 0, 1)}

	selected := snapshot.Select([]uint{3, 1, 99})

	// Snapshot order wins over selection order; stale ids are skipped
	assert.Equal(t, []uint{1, 3}, selected.IDs())
}
