package repository

import (
	"context"

	"mtaanimarket/internal/domain/entity"
)

type WishlistRepository interface {
	// Toggle atomically creates the (user, product) pair when absent
	// and deletes it when present. Concurrent toggles for the same
	// pair serialize on the storage uniqueness constraint.
	Toggle(ctx context.Context, userID, productID string) (bool, *entity.WishlistItem, error)

	IsInWishlist(ctx context.Context, userID, productID string) (bool, error)
	GetUserWishlist(ctx context.Context, userID string, limit, offset int) ([]entity.WishlistItemWithProduct, int64, error)
	GetWishlistCount(ctx context.Context, userID string) (int64, error)
}
