package entity

import (
	"time"
)

const (
	NotificationNewOrder          = "new_order"
	NotificationOrderUpdate       = "order_update"
	NotificationNewMessage        = "new_message"
	NotificationNewReview         = "new_review"
	NotificationPriceDrop         = "price_drop"
	NotificationWishlistAvailable = "wishlist_available"
	NotificationSystem            = "system"
)

// Related-entity type tags carried next to RelatedID. The reference is
// lookup-only: the target may have been deleted since the notification
// was produced.
const (
	RelatedOrder   = "order"
	RelatedProduct = "product"
	RelatedReview  = "review"
	RelatedContact = "whatsapp_contact"
)

type Notification struct {
	ID      string `json:"id" firestore:"id"`
	UserID  string `json:"user_id" firestore:"userId"`
	Type    string `json:"type" firestore:"type"`
	Title   string `json:"title" firestore:"title"`
	Message string `json:"message" firestore:"message"`

	RelatedID   string `json:"related_id,omitempty" firestore:"relatedId,omitempty"`
	RelatedType string `json:"related_type,omitempty" firestore:"relatedType,omitempty"`

	IsRead      bool `json:"is_read" firestore:"isRead"`
	IsImportant bool `json:"is_important" firestore:"isImportant"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func IsValidNotificationType(t string) bool {
	switch t {
	case NotificationNewOrder, NotificationOrderUpdate, NotificationNewMessage,
		NotificationNewReview, NotificationPriceDrop, NotificationWishlistAvailable,
		NotificationSystem:
		return true
	}
	return false
}
