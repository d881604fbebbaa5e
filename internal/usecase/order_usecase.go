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

type OrderUseCase struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	notifications *NotificationUseCase
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	notifications *NotificationUseCase,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

type ExpressInterestInput struct {
	ProductID         string
	Quantity          int
	Message           string
	ContactNumber     string
	MeetingPreference string
}

// ExpressInterest opens an order in the "interested" state and tells
// the seller. Each call creates its own order; repeated interest in
// the same product is never merged.
func (uc *OrderUseCase) ExpressInterest(ctx context.Context, buyerID string, input ExpressInterestInput) (*entity.Order, error) {
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if product.SellerID == buyerID {
		return nil, errors.BadRequest("You cannot order your own product", nil)
	}

	if product.Status != entity.ProductStatusActive {
		return nil, errors.InvalidState("Product is not available", nil)
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	buyerContact := input.ContactNumber
	if buyerContact == "" {
		buyerContact = buyer.Phone
	}

	order := &entity.Order{
		BuyerID:           buyerID,
		SellerID:          product.SellerID,
		ProductID:         product.ID,
		Quantity:          quantity,
		AgreedPrice:       product.Price,
		Status:            entity.OrderStatusInterested,
		Message:           input.Message,
		BuyerContact:      buyerContact,
		MeetingPreference: input.MeetingPreference,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	_, err = uc.notifications.Emit(ctx, product.SellerID, EmitInput{
		Type:        entity.NotificationNewOrder,
		Title:       "New Interest in Your Product",
		Message:     fmt.Sprintf("%s is interested in your product: %s", buyer.Username, product.Title),
		RelatedID:   order.ID,
		RelatedType: entity.RelatedOrder,
	})
	if err != nil {
		logger.Error("Failed to notify seller %s about order %s: %v", product.SellerID, order.ID, err)
		return nil, err
	}

	return order, nil
}

type UpdateStatusInput struct {
	Status string
	Notes  string
}

// UpdateStatus moves an order to any of the defined states. Only the
// order's seller may call it, and the buyer is always notified, even
// when the status did not change.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, sellerID, orderID string, input UpdateStatusInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.SellerID != sellerID {
		return nil, errors.Forbidden("Only the seller can update this order", nil)
	}

	if !entity.IsValidOrderStatus(input.Status) {
		return nil, errors.Validation("Invalid order status", nil)
	}

	oldStatus := order.Status
	order.Status = input.Status
	if input.Notes != "" {
		order.Notes = input.Notes
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if input.Status == entity.OrderStatusCompleted && oldStatus != entity.OrderStatusCompleted {
		if err := uc.productRepo.UpdateStatus(ctx, order.ProductID, entity.ProductStatusSold); err != nil {
			// The order update already committed; a dangling product
			// status is recoverable by the seller, so log and move on.
			logger.Error("Failed to mark product %s sold for order %s: %v", order.ProductID, order.ID, err)
		}
	}

	_, err = uc.notifications.Emit(ctx, order.BuyerID, EmitInput{
		Type:        entity.NotificationOrderUpdate,
		Title:       "Order Status Updated",
		Message:     fmt.Sprintf("Your order #%s status changed from %s to %s", order.OrderNumber, oldStatus, order.Status),
		RelatedID:   order.ID,
		RelatedType: entity.RelatedOrder,
	})
	if err != nil {
		logger.Error("Failed to notify buyer %s about order %s: %v", order.BuyerID, order.ID, err)
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != userID && order.SellerID != userID {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, userID, role, status string, page, limit int) ([]*entity.Order, int64, error) {
	if role != entity.RoleBuyer && role != entity.RoleSeller {
		role = entity.RoleBuyer
	}

	if status != "" && !entity.IsValidOrderStatus(status) {
		return nil, 0, errors.Validation("Invalid order status filter", nil)
	}

	pagination := utils.NewPaginationParams(page, limit)

	return uc.orderRepo.ListByUser(ctx, userID, role, status, pagination.PageSize, pagination.Offset)
}

// StatusCounts returns per-status totals for the dashboard tabs.
func (uc *OrderUseCase) StatusCounts(ctx context.Context, userID, role string) (map[string]int64, error) {
	if role != entity.RoleBuyer && role != entity.RoleSeller {
		role = entity.RoleBuyer
	}

	counts, err := uc.orderRepo.CountByStatus(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	for _, status := range entity.OrderStatuses {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}

	return counts, nil
}
