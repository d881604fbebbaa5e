package entity

import (
	"time"
)

const (
	ProductStatusActive   = "active"
	ProductStatusSold     = "sold"
	ProductStatusPending  = "pending"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

const (
	ConditionNew     = "new"
	ConditionLikeNew = "like_new"
	ConditionGood    = "good"
	ConditionFair    = "fair"
	ConditionPoor    = "poor"
)

type Product struct {
	ID           string  `json:"id" firestore:"id"`
	SellerID     string  `json:"seller_id" firestore:"sellerId"`
	Title        string  `json:"title" firestore:"title"`
	Description  string  `json:"description" firestore:"description"`
	Price        float64 `json:"price" firestore:"price"`
	Condition    string  `json:"condition" firestore:"condition"`
	Brand        string  `json:"brand,omitempty" firestore:"brand,omitempty"`
	Status       string  `json:"status" firestore:"status"`
	Location     string  `json:"location" firestore:"location"`
	Quantity     int     `json:"quantity" firestore:"quantity"`
	Views        int     `json:"views" firestore:"views"`
	IsNegotiable bool    `json:"is_negotiable" firestore:"isNegotiable"`
	IsFeatured   bool    `json:"is_featured" firestore:"isFeatured"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// IsAvailable reports whether the product can still be ordered.
func (p *Product) IsAvailable() bool {
	return p.Status == ProductStatusActive && p.Quantity > 0
}

func IsValidProductStatus(status string) bool {
	switch status {
	case ProductStatusActive, ProductStatusSold, ProductStatusPending,
		ProductStatusInactive, ProductStatusDraft:
		return true
	}
	return false
}
