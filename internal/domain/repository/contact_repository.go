package repository

import (
	"context"

	"mtaanimarket/internal/domain/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.WhatsAppContact) error
	GetByID(ctx context.Context, id string) (*entity.WhatsAppContact, error)
	Update(ctx context.Context, contact *entity.WhatsAppContact) error

	ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.WhatsAppContact, int64, error)

	// SellerResponseStats returns total contacts, how many were
	// responded to, and the mean response time in seconds over the
	// responded ones.
	SellerResponseStats(ctx context.Context, sellerID string) (int64, int64, float64, error)
}
