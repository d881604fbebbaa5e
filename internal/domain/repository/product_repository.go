package repository

import (
	"context"

	"mtaanimarket/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStatus(ctx context.Context, id, status string) error
	IncrementViews(ctx context.Context, id string) error

	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error)
	ListBySeller(ctx context.Context, sellerID, status string, limit, offset int) ([]*entity.Product, int64, error)
	CountBySellerStatus(ctx context.Context, sellerID string) (map[string]int64, error)
	SellerViewTotal(ctx context.Context, sellerID string) (int64, error)
}
