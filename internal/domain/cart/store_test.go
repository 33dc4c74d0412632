// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

var testProduct = catalog.Product{ID: 5, Name: "PET보틀-납작(260ml)", UnitPrice: 10_000}

func TestMemoryStoreAppend(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Append(ctx, 1, testProduct)
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, 1, first.Quantity)

	// Adding the same product again appends a second line
	second, err := store.Append(ctx, 1, testProduct)
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.ID)

	snapshot, err := store.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, snapshot.IDs())
}

func TestMemoryStoreIDsNeverReused(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Append(ctx, 1, testProduct)
	require.NoError(t, err)
	require.NoError(t, store.Remove(ctx, 1, first.ID))

	next, err := store.Append(ctx, 1, testProduct)
	require.NoError(t, err)
	assert.Greater(t, next.ID, first.ID)
}

func TestMemoryStoreUpdateQuantity(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	item, err := store.Append(ctx, 1, testProduct)
	require.NoError(t, err)

	snapshot, err := store.UpdateQuantity(ctx, 1, item.ID, 4)
	require.NoError(t, err)
	updated, ok := snapshot.Find(item.ID)
	require.True(t, ok)
	assert.Equal(t, 4, updated.Quantity)
}

func TestMemoryStoreUpdateQuantityUnknownID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Append(ctx, 1, testProduct)
	require.NoError(t, err)
	before, err := store.List(ctx, 1)
	require.NoError(t, err)

	_, err = store.UpdateQuantity(ctx, 1, 999, 3)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	after, err := store.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed update must not touch the snapshot")
}

func TestMemoryStoreRemove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Remove(ctx, 1, 1)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound), "empty cart")

	item, err := store.Append(ctx, 1, testProduct)
	require.NoError(t, err)

	err = store.Remove(ctx, 1, 999)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	require.NoError(t, store.Remove(ctx, 1, item.ID))
	snapshot, err := store.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestMemoryStoreCartsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Append(ctx, 1, testProduct)
	require.NoError(t, err)

	other, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}
