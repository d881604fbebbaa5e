package repository

import (
	"context"

	"mtaanimarket/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists profile fields. It must never touch the rating
	// aggregate; that goes through IncrementSellerRating only.
	Update(ctx context.Context, user *entity.User) error

	// IncrementSellerRating folds one review score into the seller's
	// running mean and count as a single atomic read-modify-write.
	// Concurrent calls for the same seller must serialize: two calls
	// always yield a count increment of two.
	IncrementSellerRating(ctx context.Context, sellerID string, score int) (*entity.User, error)
}
