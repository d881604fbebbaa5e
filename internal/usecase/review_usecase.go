package usecase

import (
	"context"
	"fmt"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/errors"
	"mtaanimarket/pkg/logger"
	"mtaanimarket/pkg/utils"
)

type ReviewUseCase struct {
	reviewRepo    repository.ReviewRepository
	orderRepo     repository.OrderRepository
	userRepo      repository.UserRepository
	reputation    *ReputationUseCase
	notifications *NotificationUseCase
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	reputation *ReputationUseCase,
	notifications *NotificationUseCase,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:    reviewRepo,
		orderRepo:     orderRepo,
		userRepo:      userRepo,
		reputation:    reputation,
		notifications: notifications,
	}
}

type CreateReviewInput struct {
	OrderID string `json:"order_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title"`
	Comment string `json:"comment" validate:"required"`
}

// CreateReview lets the buyer of a completed order rate its seller.
// The storage layer enforces one review per (reviewer, seller,
// product) triple, so a duplicate surfaces as a CONFLICT before the
// seller aggregate is touched.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, reviewerID string, input CreateReviewInput) (*entity.Review, error) {
	order, err := uc.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != reviewerID {
		return nil, errors.Forbidden("You can only review your own orders", nil)
	}

	if order.Status != entity.OrderStatusCompleted {
		return nil, errors.InvalidState("You can only review completed orders", nil)
	}

	review := &entity.Review{
		ReviewerID:         reviewerID,
		SellerID:           order.SellerID,
		ProductID:          order.ProductID,
		OrderID:            order.ID,
		Rating:             input.Rating,
		Title:              input.Title,
		Comment:            input.Comment,
		IsVerifiedPurchase: true,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if _, err := uc.reputation.RecordRating(ctx, order.SellerID, input.Rating); err != nil {
		logger.Error("Failed to record rating for seller %s from review %s: %v", order.SellerID, review.ID, err)
		return nil, err
	}

	reviewer, err := uc.userRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	_, err = uc.notifications.Emit(ctx, order.SellerID, EmitInput{
		Type:        entity.NotificationNewReview,
		Title:       "New Review Received",
		Message:     fmt.Sprintf("%s left you a %d-star review", reviewer.Username, input.Rating),
		RelatedID:   review.ID,
		RelatedType: entity.RelatedReview,
	})
	if err != nil {
		logger.Error("Failed to notify seller %s about review %s: %v", order.SellerID, review.ID, err)
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	return uc.reviewRepo.GetByID(ctx, id)
}

func (uc *ReviewUseCase) ListSellerReviews(ctx context.Context, sellerID string, page, limit int) ([]*entity.Review, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.reviewRepo.ListBySeller(ctx, sellerID, pagination.PageSize, pagination.Offset)
}

func (uc *ReviewUseCase) ListProductReviews(ctx context.Context, productID string, page, limit int) ([]*entity.Review, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.reviewRepo.ListByProduct(ctx, productID, pagination.PageSize, pagination.Offset)
}
