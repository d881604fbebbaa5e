package entity

import (
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type User struct {
	ID             string `json:"id" firestore:"id"`
	Email          string `json:"email" firestore:"email"`
	Username       string `json:"username" firestore:"username"`
	Role           string `json:"role" firestore:"role"`
	Phone          string `json:"phone,omitempty" firestore:"phone,omitempty"`
	WhatsAppNumber string `json:"whatsapp_number,omitempty" firestore:"whatsappNumber,omitempty"`
	Location       string `json:"location,omitempty" firestore:"location,omitempty"`
	Bio            string `json:"bio,omitempty" firestore:"bio,omitempty"`

	// Rating and TotalRatings form the seller reputation aggregate.
	// They are written only through UserRepository.IncrementSellerRating.
	Rating       float64 `json:"rating" firestore:"rating"`
	TotalRatings int     `json:"total_ratings" firestore:"totalRatings"`

	IsVerified bool      `json:"is_verified" firestore:"isVerified"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ContactNumber returns the number buyers should reach the user on,
// preferring a dedicated WhatsApp number over the general phone.
func (u *User) ContactNumber() string {
	if u.WhatsAppNumber != "" {
		return u.WhatsAppNumber
	}
	return u.Phone
}

func IsValidRole(role string) bool {
	switch role {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}
