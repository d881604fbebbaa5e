package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/errors"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

// wishlistDocID keys the document by the unique (user, product) pair.
func wishlistDocID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

func (r *firestoreWishlistRepository) Toggle(ctx context.Context, userID, productID string) (bool, *entity.WishlistItem, error) {
	ref := r.client.Collection("wishlists").Doc(wishlistDocID(userID, productID))

	item := entity.WishlistItem{
		ID:        ref.ID,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	var added bool
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil && !isNotFound(err) {
			return err
		}

		if err == nil && doc.Exists() {
			added = false
			return tx.Delete(ref)
		}

		// tx.Create (not Set) keeps a concurrent double-click from both
		// succeeding: the loser aborts on AlreadyExists and retries the
		// transaction against the winner's row.
		added = true
		return tx.Create(ref, item)
	})
	if err != nil {
		return false, nil, errors.Internal("Failed to toggle wishlist", err)
	}

	if !added {
		return false, nil, nil
	}
	return true, &item, nil
}

func (r *firestoreWishlistRepository) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	doc, err := r.client.Collection("wishlists").Doc(wishlistDocID(userID, productID)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check wishlist", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreWishlistRepository) GetUserWishlist(ctx context.Context, userID string, limit, offset int) ([]entity.WishlistItemWithProduct, int64, error) {
	docs, err := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to get wishlist", err)
	}

	total := int64(len(docs))

	items := []entity.WishlistItemWithProduct{}
	for i, doc := range docs {
		if i < offset {
			continue
		}
		if limit > 0 && len(items) >= limit {
			break
		}

		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			continue
		}

		// The product reference is weak: a listing removed since the
		// item was saved shows up with a nil product.
		var product *entity.Product
		productDoc, err := r.client.Collection("products").Doc(item.ProductID).Get(ctx)
		if err == nil {
			var p entity.Product
			if err := productDoc.DataTo(&p); err == nil {
				product = &p
			}
		}

		items = append(items, entity.WishlistItemWithProduct{
			ID:        item.ID,
			UserID:    item.UserID,
			ProductID: item.ProductID,
			Product:   product,
			CreatedAt: item.CreatedAt,
		})
	}

	return items, total, nil
}

func (r *firestoreWishlistRepository) GetWishlistCount(ctx context.Context, userID string) (int64, error) {
	docs, err := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to get wishlist count", err)
	}

	return int64(len(docs)), nil
}
