package repository

import (
	"context"

	"mtaanimarket/internal/domain/entity"
)

type OrderRepository interface {
	// Create persists the order and allocates its unique order number.
	// Number collisions are resolved inside the repository; callers
	// never see a partially numbered order.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error

	// ListByUser returns orders where the user acts in the given role
	// ("buyer" or "seller"), newest first, optionally status-filtered.
	ListByUser(ctx context.Context, userID, role, status string, limit, offset int) ([]*entity.Order, int64, error)
	CountByStatus(ctx context.Context, userID, role string) (map[string]int64, error)

	// SellerSales aggregates completed orders for the seller: how many
	// and the summed agreed price.
	SellerSales(ctx context.Context, sellerID string) (int64, float64, error)
}
