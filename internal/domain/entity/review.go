package entity

import (
	"time"
)

// Review is left by a buyer for a seller after a completed order.
// At most one review exists per (reviewer, seller, product) triple no
// matter how many orders ran between the pair.
type Review struct {
	ID         string `json:"id" firestore:"id"`
	ReviewerID string `json:"reviewer_id" firestore:"reviewerId"`
	SellerID   string `json:"seller_id" firestore:"sellerId"`
	ProductID  string `json:"product_id" firestore:"productId"`
	OrderID    string `json:"order_id,omitempty" firestore:"orderId,omitempty"`

	Rating  int    `json:"rating" firestore:"rating"` // 1-5
	Title   string `json:"title,omitempty" firestore:"title,omitempty"`
	Comment string `json:"comment" firestore:"comment"`

	IsVerifiedPurchase bool `json:"is_verified_purchase" firestore:"isVerifiedPurchase"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
