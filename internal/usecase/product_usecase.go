package usecase

import (
	"context"

	"mtaanimarket/internal/domain/entity"
	"mtaanimarket/internal/domain/repository"
	"mtaanimarket/pkg/errors"
	"mtaanimarket/pkg/logger"
	"mtaanimarket/pkg/utils"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	wishlistRepo repository.WishlistRepository
}

func NewProductUseCase(productRepo repository.ProductRepository, wishlistRepo repository.WishlistRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		wishlistRepo: wishlistRepo,
	}
}

type CreateProductInput struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Condition    string  `json:"condition" validate:"required,oneof=new like_new good fair poor"`
	Brand        string  `json:"brand"`
	Location     string  `json:"location"`
	Quantity     int     `json:"quantity" validate:"min=0"`
	IsNegotiable bool    `json:"is_negotiable"`
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerID string, input CreateProductInput) (*entity.Product, error) {
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	product := &entity.Product{
		SellerID:     sellerID,
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Condition:    input.Condition,
		Brand:        input.Brand,
		Status:       entity.ProductStatusActive,
		Location:     input.Location,
		Quantity:     quantity,
		IsNegotiable: input.IsNegotiable,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct fetches a product for display and bumps its view counter.
// The bump is best effort; a lost view never fails the read.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.IncrementViews(ctx, id); err != nil {
		logger.Error("Failed to increment views for product %s: %v", id, err)
	} else {
		product.Views++
	}

	return product, nil
}

type UpdateProductInput struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	Condition    *string  `json:"condition" validate:"omitempty,oneof=new like_new good fair poor"`
	Brand        *string  `json:"brand"`
	Status       *string  `json:"status"`
	Location     *string  `json:"location"`
	Quantity     *int     `json:"quantity" validate:"omitempty,min=0"`
	IsNegotiable *bool    `json:"is_negotiable"`
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, sellerID, productID string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}

	if input.Status != nil && !entity.IsValidProductStatus(*input.Status) {
		return nil, errors.Validation("Invalid product status", nil)
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Condition != nil {
		product.Condition = *input.Condition
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Status != nil {
		product.Status = *input.Status
	}
	if input.Location != nil {
		product.Location = *input.Location
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.IsNegotiable != nil {
		product.IsNegotiable = *input.IsNegotiable
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

type ListProductsInput struct {
	Status    string
	Condition string
	SellerID  string
	Page      int
	Limit     int
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, int64, error) {
	filter := map[string]interface{}{}
	if input.Status != "" {
		filter["status"] = input.Status
	} else {
		filter["status"] = entity.ProductStatusActive
	}
	if input.Condition != "" {
		filter["condition"] = input.Condition
	}
	if input.SellerID != "" {
		filter["sellerId"] = input.SellerID
	}

	pagination := utils.NewPaginationParams(input.Page, input.Limit)

	return uc.productRepo.List(ctx, filter, pagination.PageSize, pagination.Offset)
}

func (uc *ProductUseCase) ListSellerProducts(ctx context.Context, sellerID, status string, page, limit int) ([]*entity.Product, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.productRepo.ListBySeller(ctx, sellerID, status, pagination.PageSize, pagination.Offset)
}
