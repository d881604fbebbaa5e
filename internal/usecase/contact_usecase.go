package usecase

import (
	"context"
	"fmt"
	"time"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/errors"
	"mtaanimarket/pkg/utils"
)

type ContactUseCase struct {
	contactRepo   repository.ContactRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	currencyLabel string
}

func NewContactUseCase(
	contactRepo repository.ContactRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	currencyLabel string,
) *ContactUseCase {
	return &ContactUseCase{
		contactRepo:   contactRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
		currencyLabel: currencyLabel,
	}
}

type RecordContactResult struct {
	Contact     *entity.WhatsAppContact `json:"contact"`
	WhatsAppURL string                  `json:"whatsapp_url"`
}

// RecordContact logs a buyer's intent to message the seller off
// platform and hands back the wa.me deep link. The message is only
// prefilled into the link; actual delivery happens in WhatsApp, so the
// contact row exists whether or not the buyer ever sends it.
func (uc *ContactUseCase) RecordContact(ctx context.Context, buyerID, productID string) (*RecordContactResult, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	seller, err := uc.userRepo.GetByID(ctx, product.SellerID)
	if err != nil {
		return nil, err
	}

	number := seller.ContactNumber()
	if number == "" {
		return nil, errors.NoContactNumber("Seller has no contact number")
	}

	message := fmt.Sprintf("Hello! I'm interested in your product: %s (Price: %s %.0f)",
		product.Title, uc.currencyLabel, product.Price)

	contact := &entity.WhatsAppContact{
		BuyerID:     buyerID,
		SellerID:    product.SellerID,
		ProductID:   product.ID,
		ContactTime: time.Now(),
		MessageSent: message,
	}

	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return &RecordContactResult{
		Contact:     contact,
		WhatsAppURL: utils.WhatsAppURL(utils.NormalizePhoneNumber(number), message),
	}, nil
}

// RecordResponse stamps the seller's first reply on a contact. Repeat
// calls are no-ops; the stored response time is returned unchanged.
func (uc *ContactUseCase) RecordResponse(ctx context.Context, sellerID, contactID string) (*entity.WhatsAppContact, error) {
	contact, err := uc.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	if contact.SellerID != sellerID {
		return nil, errors.Forbidden("Only the contacted seller can record a response", nil)
	}

	if contact.IsResponded {
		return contact, nil
	}

	now := time.Now()
	contact.IsResponded = true
	contact.RespondedAt = &now
	contact.ResponseTimeSeconds = int64(now.Sub(contact.ContactTime).Seconds())

	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (uc *ContactUseCase) ListSellerContacts(ctx context.Context, sellerID string, page, limit int) ([]*entity.WhatsAppContact, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.contactRepo.ListBySeller(ctx, sellerID, pagination.PageSize, pagination.Offset)
}

type ResponseStats struct {
	TotalContacts      int64   `json:"total_contacts"`
	RespondedContacts  int64   `json:"responded_contacts"`
	ResponseRate       float64 `json:"response_rate"`
	AvgResponseSeconds float64 `json:"avg_response_seconds"`
}

func (uc *ContactUseCase) SellerResponseStats(ctx context.Context, sellerID string) (*ResponseStats, error) {
	total, responded, avgSeconds, err := uc.contactRepo.SellerResponseStats(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	stats := &ResponseStats{
		TotalContacts:      total,
		RespondedContacts:  responded,
		AvgResponseSeconds: avgSeconds,
	}
	if total > 0 {
		stats.ResponseRate = float64(responded) / float64(total)
	}

	return stats, nil
}
