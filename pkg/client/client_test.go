// pkg/client/client_test.go
package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/member"
	"github.com/your-org/storefront-backend/internal/domain/order"
	httpserver "github.com/your-org/storefront-backend/internal/interfaces/http"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newSession spins up the full server in-process and returns a logged-in
// checkout service talking to it.
func newSession(t *testing.T) *CheckoutService {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Name: "Storefront Backend", Version: "test", Environment: "development"},
		JWT: config.JWTConfig{Secret: "test-secret", AccessTokenExpiry: time.Hour},
		Security: config.SecurityConfig{
			BcryptCost:         bcrypt.MinCost,
			CORSAllowedOrigins: []string{"*"},
			CORSAllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			CORSAllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Pricing: config.PricingConfig{
			ShippingFee:            cart.DefaultShippingFee,
			ShippingFeeExemptLimit: cart.DefaultShippingFeeExemptionLimit,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "text"},
	}

	hash, err := member.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	members := member.NewService([]member.Member{{ID: 1, Username: "jude", PasswordHash: hash}})
	catalogRepo := catalog.NewMemoryRepository(catalog.SeedProducts())
	carts := cart.NewService(cart.NewMemoryStore(), catalogRepo, cart.DefaultPricingRules())
	orders := order.NewService(carts, members)

	server := httpserver.NewServer(cfg, routes.Services{
		Catalog: catalogRepo,
		Members: members,
		Carts:   carts,
		Orders:  orders,
	}, nil)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	svc := NewCheckoutService(NewAPI(ts.URL+"/api/v1", ts.Client()), cart.DefaultPricingRules())
	require.NoError(t, svc.Login(context.Background(), "jude", "secret"))
	return svc
}

func TestAddItemAppendsConfirmedLine(t *testing.T) {
	svc := newSession(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 5))
	require.NoError(t, svc.AddItem(ctx, 5))

	// Duplicate lines per product, store-minted ids
	assert.Equal(t, []uint{1, 2}, svc.Cart().Items().IDs())
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newSession(t)

	err := svc.AddItem(context.Background(), 999)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Empty(t, svc.Cart().Items())
}

func TestUpdateItemQuantity(t *testing.T) {
	svc := newSession(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 5))

	require.NoError(t, svc.UpdateItemQuantity(ctx, 1, 3))
	item, ok := svc.Cart().Items().Find(1)
	require.True(t, ok)
	assert.Equal(t, 3, item.Quantity)

	// Below 1 is a silent no-op that never reaches the wire
	require.NoError(t, svc.UpdateItemQuantity(ctx, 1, 0))
	item, _ = svc.Cart().Items().Find(1)
	assert.Equal(t, 3, item.Quantity)

	err := svc.UpdateItemQuantity(ctx, 999, 2)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestRemoveItemKeepsSelectionConsistent(t *testing.T) {
	svc := newSession(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 5))
	require.NoError(t, svc.AddItem(ctx, 1))
	svc.Cart().SelectAll()

	require.NoError(t, svc.RemoveItem(ctx, 1))

	assert.Equal(t, []uint{2}, svc.Cart().Items().IDs())
	assert.False(t, svc.Cart().IsSelected(1))
	assert.Equal(t, []uint{2}, svc.Cart().SelectedIDs())
}

func TestRemoveCheckedItems(t *testing.T) {
	svc := newSession(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 5))
	require.NoError(t, svc.AddItem(ctx, 1))
	require.NoError(t, svc.AddItem(ctx, 3))
	svc.Cart().Toggle(1)
	svc.Cart().Toggle(3)

	require.NoError(t, svc.RemoveCheckedItems(ctx))

	assert.Equal(t, []uint{2}, svc.Cart().Items().IDs())
	assert.Empty(t, svc.Cart().SelectedIDs())
}

func TestCostsMemoThroughSession(t *testing.T) {
	svc := newSession(t)
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, 5))
	require.NoError(t, svc.UpdateItemQuantity(ctx, 1, 2))
	svc.Cart().Toggle(1)

	costs, err := svc.Costs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(20_000), costs.TotalItemPrice)
	assert.Equal(t, int64(23_000), costs.TotalPrice)

	// Deselecting invalidates the memo
	svc.Cart().Toggle(1)
	costs, err = svc.Costs(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart.CheckoutCosts{}, costs)
}

func TestOrderCheckedItems(t *testing.T) {
	svc := newSession(t)
	ctx := context.Background()

	_, err := svc.OrderCheckedItems(ctx)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "empty selection never reaches the wire")

	require.NoError(t, svc.AddItem(ctx, 5))
	require.NoError(t, svc.AddItem(ctx, 1))
	svc.Cart().Toggle(1)

	before, err := svc.MemberInformation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), before.CumulativePurchaseAmount)

	o, err := svc.OrderCheckedItems(ctx)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, int64(13_000), o.TotalPrice, "10,000 plus shipping")

	// The ordered line is gone, the other stays, nothing is selected
	assert.Equal(t, []uint{2}, svc.Cart().Items().IDs())
	assert.Empty(t, svc.Cart().SelectedIDs())

	// The member cache was invalidated: the next read sees the purchase
	after, err := svc.MemberInformation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(13_000), after.CumulativePurchaseAmount)

	history, err := svc.OrderHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, o.ID, history[0].ID)
}
