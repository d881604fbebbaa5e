package usecase

import (
	"context"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/utils"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

type ToggleResult struct {
	Added bool                 `json:"added"`
	Item  *entity.WishlistItem `json:"item,omitempty"`
}

// Toggle flips the (user, product) wishlist membership. The product
// must exist but may be in any status; sold or inactive products can
// still sit on a wishlist.
func (uc *WishlistUseCase) Toggle(ctx context.Context, userID, productID string) (*ToggleResult, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	added, item, err := uc.wishlistRepo.Toggle(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	return &ToggleResult{Added: added, Item: item}, nil
}

func (uc *WishlistUseCase) IsInWishlist(ctx context.Context, userID, productID string) (bool, error) {
	return uc.wishlistRepo.IsInWishlist(ctx, userID, productID)
}

func (uc *WishlistUseCase) GetUserWishlist(ctx context.Context, userID string, page, limit int) ([]entity.WishlistItemWithProduct, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.wishlistRepo.GetUserWishlist(ctx, userID, pagination.PageSize, pagination.Offset)
}

func (uc *WishlistUseCase) GetWishlistCount(ctx context.Context, userID string) (int64, error) {
	return uc.wishlistRepo.GetWishlistCount(ctx, userID)
}
