package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/errors"
	"mtaanimarket/pkg/logger"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

// newOrderNumber draws 5 random bytes from a fresh UUID, giving the
// ORD-XXXXXXXXXX shape with 10 uppercase hex characters.
func newOrderNumber() string {
	u := uuid.New()
	return fmt.Sprintf("ORD-%X", u[:5])
}

const orderNumberAttempts = 5

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	orderRef := r.client.Collection("orders").Doc(order.ID)

	// The marker document keyed by the order number is the uniqueness
	// guard; tx.Create fails with AlreadyExists if another request won
	// the same number, and we retry with a fresh one.
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order.OrderNumber = newOrderNumber()
		numberRef := r.client.Collection("order_numbers").Doc(order.OrderNumber)

		err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
			if err := tx.Create(numberRef, map[string]interface{}{
				"orderId":   order.ID,
				"createdAt": now,
			}); err != nil {
				return err
			}
			return tx.Create(orderRef, order)
		})
		if err == nil {
			return nil
		}
		if isAlreadyExists(err) {
			logger.Warn("Order number collision on %s, retrying", order.OrderNumber)
			continue
		}
		return errors.Internal("Failed to create order", err)
	}

	return errors.Conflict("Could not allocate a unique order number", nil)
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}

	return nil
}

func roleField(role string) (string, error) {
	switch role {
	case entity.RoleBuyer:
		return "buyerId", nil
	case entity.RoleSeller:
		return "sellerId", nil
	}
	return "", errors.BadRequest("Invalid role", nil)
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID, role, status string, limit, offset int) ([]*entity.Order, int64, error) {
	field, err := roleField(role)
	if err != nil {
		return nil, 0, err
	}

	query := r.client.Collection("orders").Where(field, "==", userID)
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count orders", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, 0, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, total, nil
}

func (r *firestoreOrderRepository) CountByStatus(ctx context.Context, userID, role string) (map[string]int64, error) {
	field, err := roleField(role)
	if err != nil {
		return nil, err
	}

	docs, err := r.client.Collection("orders").
		Where(field, "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to count orders", err)
	}

	counts := make(map[string]int64)
	for _, doc := range docs {
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			continue
		}
		counts[order.Status]++
	}

	return counts, nil
}

func (r *firestoreOrderRepository) SellerSales(ctx context.Context, sellerID string) (int64, float64, error) {
	docs, err := r.client.Collection("orders").
		Where("sellerId", "==", sellerID).
		Where("status", "==", entity.OrderStatusCompleted).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, 0, errors.Internal("Failed to aggregate seller sales", err)
	}

	var count int64
	var revenue float64
	for _, doc := range docs {
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			continue
		}
		count++
		revenue += order.TotalPrice()
	}

	return count, revenue, nil
}
