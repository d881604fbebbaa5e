package usecase

import (
	"context"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/errors"
)

// ReputationUseCase owns the seller rating aggregate. Every rating
// flows through RecordRating; nothing else in the codebase writes
// Rating or TotalRatings, so the running mean can only drift if this
// one path breaks.
type ReputationUseCase struct {
	userRepo repository.UserRepository
}

func NewReputationUseCase(userRepo repository.UserRepository) *ReputationUseCase {
	return &ReputationUseCase{
		userRepo: userRepo,
	}
}

// RecordRating folds a review score into the seller's running mean:
// new = (old*count + score) / (count+1). The repository serializes the
// read-modify-write per seller, so concurrent reviews never lose an
// increment.
func (uc *ReputationUseCase) RecordRating(ctx context.Context, sellerID string, score int) (*entity.User, error) {
	if score < 1 || score > 5 {
		return nil, errors.Validation("Rating must be between 1 and 5", nil)
	}

	return uc.userRepo.IncrementSellerRating(ctx, sellerID, score)
}
