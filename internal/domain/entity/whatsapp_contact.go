package entity

import (
	"time"
)

// WhatsAppContact records a buyer's off-platform contact attempt and
// how long the seller took to respond. Response fields are set exactly
// once; ResponseTimeSeconds is derived from the two timestamps and
// never recomputed.
type WhatsAppContact struct {
	ID        string `json:"id" firestore:"id"`
	BuyerID   string `json:"buyer_id" firestore:"buyerId"`
	SellerID  string `json:"seller_id" firestore:"sellerId"`
	ProductID string `json:"product_id" firestore:"productId"`
	OrderID   string `json:"order_id,omitempty" firestore:"orderId,omitempty"`

	ContactTime time.Time `json:"contact_time" firestore:"contactTime"`
	MessageSent string    `json:"message_sent,omitempty" firestore:"messageSent,omitempty"`

	IsResponded         bool       `json:"is_responded" firestore:"isResponded"`
	RespondedAt         *time.Time `json:"responded_at,omitempty" firestore:"respondedAt,omitempty"`
	ResponseTimeSeconds int64      `json:"response_time_seconds" firestore:"responseTimeSeconds"`
}
