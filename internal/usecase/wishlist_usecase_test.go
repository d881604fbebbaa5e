package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/pkg/errors"
)

func TestToggleAlternates(t *testing.T) {
	env := newTestEnv()
	env.seedUser("buyer-1", entity.RoleBuyer)
	env.seedUser("seller-1", entity.RoleSeller)
	product := env.seedProduct("seller-1", 1000, entity.ProductStatusActive)

	// Odd toggles land in the wishlist, even toggles leave it.
	for i := 0; i < 6; i++ {
		result, err := env.wishlists.Toggle(context.Background(), "buyer-1", product.ID)
		require.NoError(t, err)

		wantAdded := i%2 == 0
		assert.Equal(t, wantAdded, result.Added)

		inWishlist, err := env.wishlists.IsInWishlist(context.Background(), "buyer-1", product.ID)
		require.NoError(t, err)
		assert.Equal(t, wantAdded, inWishlist)
	}

	count, err := env.wishlists.GetWishlistCount(context.Background(), "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestToggleUnknownProduct(t *testing.T) {
	env := newTestEnv()
	env.seedUser("buyer-1", entity.RoleBuyer)

	_, err := env.wishlists.Toggle(context.Background(), "buyer-1", "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestToggleSoldProductAllowed(t *testing.T) {
	env := newTestEnv()
	env.seedUser("buyer-1", entity.RoleBuyer)
	env.seedUser("seller-1", entity.RoleSeller)
	product := env.seedProduct("seller-1", 1000, entity.ProductStatusSold)

	result, err := env.wishlists.Toggle(context.Background(), "buyer-1", product.ID)
	require.NoError(t, err)
	assert.True(t, result.Added)
}

func TestWishlistsAreIndependentPerUser(t *testing.T) {
	env := newTestEnv()
	env.seedUser("buyer-1", entity.RoleBuyer)
	env.seedUser("buyer-2", entity.RoleBuyer)
	env.seedUser("seller-1", entity.RoleSeller)
	product := env.seedProduct("seller-1", 1000, entity.ProductStatusActive)

	_, err := env.wishlists.Toggle(context.Background(), "buyer-1", product.ID)
	require.NoError(t, err)

	inWishlist, err := env.wishlists.IsInWishlist(context.Background(), "buyer-2", product.ID)
	require.NoError(t, err)
	assert.False(t, inWishlist)

	items, total, err := env.wishlists.GetUserWishlist(context.Background(), "buyer-1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
}
