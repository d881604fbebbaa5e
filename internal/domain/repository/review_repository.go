package repository

import (
	"context"

	"mtaanimarket/internal/domain/entity"
)

type ReviewRepository interface {
	// Create fails with a CONFLICT error when a review already exists
	// for the (reviewer, seller, product) triple. The uniqueness guard
	// lives in storage, not in a check-then-act sequence.
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)

	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Review, int64, error)
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, int64, error)
}
