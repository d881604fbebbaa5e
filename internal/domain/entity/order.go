package entity

import (
	"time"
)

const (
	OrderStatusInterested  = "interested"
	OrderStatusContacted   = "contacted"
	OrderStatusNegotiating = "negotiating"
	OrderStatusConfirmed   = "confirmed"
	OrderStatusCompleted   = "completed"
	OrderStatusCancelled   = "cancelled"
	OrderStatusRejected    = "rejected"
)

type Order struct {
	ID          string `json:"id" firestore:"id"`
	OrderNumber string `json:"order_number" firestore:"orderNumber"`
	BuyerID     string `json:"buyer_id" firestore:"buyerId"`
	SellerID    string `json:"seller_id" firestore:"sellerId"`
	ProductID   string `json:"product_id" firestore:"productId"`
	Quantity    int    `json:"quantity" firestore:"quantity"`

	// AgreedPrice is frozen to the product price at creation time and
	// never mutated by status updates.
	AgreedPrice float64 `json:"agreed_price" firestore:"agreedPrice"`

	Status            string `json:"status" firestore:"status"`
	Message           string `json:"message,omitempty" firestore:"message,omitempty"`
	BuyerContact      string `json:"buyer_contact,omitempty" firestore:"buyerContact,omitempty"`
	WhatsAppContacted bool   `json:"whatsapp_contacted" firestore:"whatsappContacted"`
	MeetingPreference string `json:"meeting_preference,omitempty" firestore:"meetingPreference,omitempty"`
	Notes             string `json:"notes,omitempty" firestore:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (o *Order) TotalPrice() float64 {
	return o.AgreedPrice * float64(o.Quantity)
}

// OrderStatuses lists every reachable order state.
var OrderStatuses = []string{
	OrderStatusInterested,
	OrderStatusContacted,
	OrderStatusNegotiating,
	OrderStatusConfirmed,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusRejected,
}

// IsValidOrderStatus checks enum membership only. The transition graph
// is deliberately unconstrained: sellers may move an order between any
// two states, matching negotiation flows that happen off-platform. A
// legal-transition table would live here if that ever tightens.
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
