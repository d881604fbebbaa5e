package usecase

import (
	"context"

	"mtaanimarket/internal/domain/repository"
)

// AnalyticsUseCase assembles the seller dashboard from the aggregate
// queries each repository exposes. It holds no state of its own.
type AnalyticsUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	contactRepo repository.ContactRepository
	userRepo    repository.UserRepository
}

func NewAnalyticsUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	contactRepo repository.ContactRepository,
	userRepo repository.UserRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		contactRepo: contactRepo,
		userRepo:    userRepo,
	}
}

type SellerDashboard struct {
	TotalSales    int64            `json:"total_sales"`
	TotalRevenue  float64          `json:"total_revenue"`
	TotalViews    int64            `json:"total_views"`
	ProductCounts map[string]int64 `json:"product_counts"`
	Rating        float64          `json:"rating"`
	TotalRatings  int              `json:"total_ratings"`
	ContactStats  ResponseStats    `json:"contact_stats"`
}

func (uc *AnalyticsUseCase) SellerDashboard(ctx context.Context, sellerID string) (*SellerDashboard, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	sales, revenue, err := uc.orderRepo.SellerSales(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	views, err := uc.productRepo.SellerViewTotal(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	productCounts, err := uc.productRepo.CountBySellerStatus(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	total, responded, avgSeconds, err := uc.contactRepo.SellerResponseStats(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	contactStats := ResponseStats{
		TotalContacts:      total,
		RespondedContacts:  responded,
		AvgResponseSeconds: avgSeconds,
	}
	if total > 0 {
		contactStats.ResponseRate = float64(responded) / float64(total)
	}

	return &SellerDashboard{
		TotalSales:    sales,
		TotalRevenue:  revenue,
		TotalViews:    views,
		ProductCounts: productCounts,
		Rating:        seller.Rating,
		TotalRatings:  seller.TotalRatings,
		ContactStats:  contactStats,
	}, nil
}
