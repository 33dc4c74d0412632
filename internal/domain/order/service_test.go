// internal/domain/order/service_test.go
package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

type fixture struct {
	carts   *cart.Service
	members *member.Service
	orders  *Service
}

func newFixture() *fixture {
	repo := catalog.NewMemoryRepository([]catalog.Product{
		{ID: 1, Name: "PET보틀-납작(260ml)", UnitPrice: 10_000, DiscountRate: 0},
		{ID: 2, Name: "PET보틀-단지(480ml)", UnitPrice: 175_000, DiscountRate: 10},
	})
	carts := cart.NewService(cart.NewMemoryStore(), repo, cart.DefaultPricingRules())
	members := member.NewService([]member.Member{{ID: 1, Username: "jude"}})
	return &fixture{
		carts:   carts,
		members: members,
		orders:  NewService(carts, members),
	}
}

func (f *fixture) addLine(t *testing.T, productID uint) cart.Item {
	t.Helper()
	item, err := f.carts.AddItem(context.Background(), 1, productID)
	require.NoError(t, err)
	return item
}

func (f *fixture) costsFor(t *testing.T, ids []uint) cart.CheckoutCosts {
	t.Helper()
	info, err := f.members.GetInformation(context.Background(), 1)
	require.NoError(t, err)
	costs, err := f.carts.Costs(context.Background(), 1, ids, info.Rank)
	require.NoError(t, err)
	return costs
}

func TestCreateRejectsEmptySelection(t *testing.T) {
	f := newFixture()

	_, err := f.orders.Create(context.Background(), 1, CreateOrderInput{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCreateRejectsDuplicateCartItemIDs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item := f.addLine(t, 1)

	// A duplicated id would price like a single line but remove twice
	costs := f.costsFor(t, []uint{item.ID})
	_, err := f.orders.Create(ctx, 1, CreateOrderInput{
		CartItemIDs:   []uint{item.ID, item.ID},
		CheckoutCosts: costs,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	// The failure leaves everything unchanged: no order, no purchase, the
	// line still in the cart
	orders, err := f.orders.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, orders)

	info, err := f.members.GetInformation(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.CumulativePurchaseAmount)

	snapshot, err := f.carts.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{item.ID}, snapshot.IDs())
}

func TestCreateRejectsUnknownCartItem(t *testing.T) {
	f := newFixture()
	f.addLine(t, 1)

	_, err := f.orders.Create(context.Background(), 1, CreateOrderInput{CartItemIDs: []uint{999}})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateRejectsCostMismatch(t *testing.T) {
	f := newFixture()
	item := f.addLine(t, 1)

	costs := f.costsFor(t, []uint{item.ID})
	costs.TotalPrice -= 1_000

	_, err := f.orders.Create(context.Background(), 1, CreateOrderInput{
		CartItemIDs:   []uint{item.ID},
		CheckoutCosts: costs,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	// Nothing changed: the line is still in the cart
	snapshot, err := f.carts.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{item.ID}, snapshot.IDs())
}

func TestCreateOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	ordered := f.addLine(t, 1)
	kept := f.addLine(t, 2)

	costs := f.costsFor(t, []uint{ordered.ID})
	o, err := f.orders.Create(ctx, 1, CreateOrderInput{
		CartItemIDs:   []uint{ordered.ID},
		CheckoutCosts: costs,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), o.ID)
	assert.NotEmpty(t, o.OrderNumber)
	require.Len(t, o.Items, 1)
	assert.Equal(t, ordered.ID, o.Items[0].CartItemID)
	assert.Equal(t, int64(13_000), o.TotalPrice, "10,000 plus shipping")

	// Ordered lines leave the cart, the rest stay
	snapshot, err := f.carts.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{kept.ID}, snapshot.IDs())

	// The purchase moves the cumulative amount
	info, err := f.members.GetInformation(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(13_000), info.CumulativePurchaseAmount)
}

func TestListNewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		item := f.addLine(t, 1)
		costs := f.costsFor(t, []uint{item.ID})
		_, err := f.orders.Create(ctx, 1, CreateOrderInput{
			CartItemIDs:   []uint{item.ID},
			CheckoutCosts: costs,
		})
		require.NoError(t, err)
	}

	orders, err := f.orders.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(2), orders[0].ID)
	assert.Equal(t, uint(1), orders[1].ID)
}

func TestGetUnknownOrder(t *testing.T) {
	f := newFixture()

	_, err := f.orders.Get(context.Background(), 1, 42)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
