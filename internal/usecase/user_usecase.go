package usecase

import (
	"context"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type RegisterProfileInput struct {
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,min=3,max=30"`
	Role           string `json:"role" validate:"required"`
	Phone          string `json:"phone"`
	WhatsAppNumber string `json:"whatsapp_number"`
	Location       string `json:"location"`
}

// RegisterProfile creates the marketplace profile behind a Firebase
// identity. The uid comes from the verified token, never the body.
func (uc *UserUseCase) RegisterProfile(ctx context.Context, uid string, input RegisterProfileInput) (*entity.User, error) {
	if !entity.IsValidRole(input.Role) {
		return nil, errors.Validation("Role must be buyer, seller, or admin", nil)
	}

	if existing, err := uc.userRepo.GetByID(ctx, uid); err == nil && existing != nil {
		return nil, errors.Conflict("Profile already exists", nil)
	} else if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	user := &entity.User{
		ID:             uid,
		Email:          input.Email,
		Username:       input.Username,
		Role:           input.Role,
		Phone:          input.Phone,
		WhatsAppNumber: input.WhatsAppNumber,
		Location:       input.Location,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

type UpdateProfileInput struct {
	Username       *string `json:"username" validate:"omitempty,min=3,max=30"`
	Phone          *string `json:"phone"`
	WhatsAppNumber *string `json:"whatsapp_number"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.WhatsAppNumber != nil {
		user.WhatsAppNumber = *input.WhatsAppNumber
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type SellerPublicProfile struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Location     string  `json:"location,omitempty"`
	Bio          string  `json:"bio,omitempty"`
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"total_ratings"`
	IsVerified   bool    `json:"is_verified"`
}

// GetSellerProfile returns the public view of a seller, without
// contact details or email.
func (uc *UserUseCase) GetSellerProfile(ctx context.Context, sellerID string) (*SellerPublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	return &SellerPublicProfile{
		ID:           user.ID,
		Username:     user.Username,
		Location:     user.Location,
		Bio:          user.Bio,
		Rating:       user.Rating,
		TotalRatings: user.TotalRatings,
		IsVerified:   user.IsVerified,
	}, nil
}
