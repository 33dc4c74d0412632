// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

func newTestService() *Service {
	repo := catalog.NewMemoryRepository([]catalog.Product{
		{ID: 1, Name: "PET보틀-납작(260ml)", UnitPrice: 10_000, DiscountRate: 0},
		{ID: 2, Name: "PET보틀-원형(500ml)", UnitPrice: 89_000, DiscountRate: 20},
	})
	return NewService(NewMemoryStore(), repo, DefaultPricingRules())
}

func TestServiceAddItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), item.ID)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, int64(10_000), item.Product.UnitPrice)
}

func TestServiceAddItemUnknownProduct(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 1, 999)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	snapshot, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, snapshot, "no line is created for an unknown product")
}

func TestServiceUpdateQuantityRejectsNonPositive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, 1, 1)
	require.NoError(t, err)

	for _, quantity := range []int{0, -1} {
		_, err := svc.UpdateQuantity(ctx, 1, item.ID, quantity)
		assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest), "quantity %d", quantity)
	}

	snapshot, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	got, ok := snapshot.Find(item.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.Quantity)
}

func TestServiceRemoveItemsPartialFailure(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.AddItem(ctx, 1, 1)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, 1, 2)
	require.NoError(t, err)

	// The removal of first succeeds before the unknown id fails; it is not
	// rolled back
	err = svc.RemoveItems(ctx, 1, []uint{first.ID, 999})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	snapshot, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{second.ID}, snapshot.IDs())
}

func TestServiceCostsSkipsStaleIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, err := svc.AddItem(ctx, 1, 1)
	require.NoError(t, err)

	costs, err := svc.Costs(ctx, 1, []uint{item.ID, 999}, member.RankNormal)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), costs.TotalItemPrice)
}
