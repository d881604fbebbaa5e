package usecase

import (
	"context"

	"mtaanimarket/internal/domain/entity"
)

type testEnv struct {
	userRepo         *fakeUserRepo
	productRepo      *fakeProductRepo
	orderRepo        *fakeOrderRepo
	reviewRepo       *fakeReviewRepo
	notificationRepo *fakeNotificationRepo
	wishlistRepo     *fakeWishlistRepo
	contactRepo      *fakeContactRepo
	pusher           *fakePusher

	users         *UserUseCase
	products      *ProductUseCase
	orders        *OrderUseCase
	reviews       *ReviewUseCase
	reputation    *ReputationUseCase
	notifications *NotificationUseCase
	wishlists     *WishlistUseCase
	contacts      *ContactUseCase
	analytics     *AnalyticsUseCase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		userRepo:         newFakeUserRepo(),
		productRepo:      newFakeProductRepo(),
		orderRepo:        newFakeOrderRepo(),
		reviewRepo:       newFakeReviewRepo(),
		notificationRepo: newFakeNotificationRepo(),
		wishlistRepo:     newFakeWishlistRepo(),
		contactRepo:      newFakeContactRepo(),
		pusher:           newFakePusher(),
	}

	env.notifications = NewNotificationUseCase(env.notificationRepo, env.userRepo, env.pusher)
	env.reputation = NewReputationUseCase(env.userRepo)
	env.users = NewUserUseCase(env.userRepo)
	env.products = NewProductUseCase(env.productRepo, env.wishlistRepo)
	env.orders = NewOrderUseCase(env.orderRepo, env.productRepo, env.userRepo, env.notifications)
	env.reviews = NewReviewUseCase(env.reviewRepo, env.orderRepo, env.userRepo, env.reputation, env.notifications)
	env.wishlists = NewWishlistUseCase(env.wishlistRepo, env.productRepo)
	env.contacts = NewContactUseCase(env.contactRepo, env.productRepo, env.userRepo, "Ksh")
	env.analytics = NewAnalyticsUseCase(env.orderRepo, env.productRepo, env.contactRepo, env.userRepo)

	return env
}

func (env *testEnv) seedUser(id, role string) *entity.User {
	user := &entity.User{
		ID:       id,
		Email:    id + "@example.com",
		Username: id,
		Role:     role,
		Phone:    "+254712345678",
	}
	if err := env.userRepo.Create(context.Background(), user); err != nil {
		panic(err)
	}
	return user
}

func (env *testEnv) seedProduct(sellerID string, price float64, status string) *entity.Product {
	product := &entity.Product{
		SellerID:  sellerID,
		Title:     "Samsung Galaxy A54",
		Price:     price,
		Condition: entity.ConditionGood,
		Status:    status,
		Quantity:  1,
	}
	if err := env.productRepo.Create(context.Background(), product); err != nil {
		panic(err)
	}
	return product
}

func (env *testEnv) seedOrder(buyerID, sellerID, productID, status string, price float64) *entity.Order {
	order := &entity.Order{
		BuyerID:     buyerID,
		SellerID:    sellerID,
		ProductID:   productID,
		Quantity:    1,
		AgreedPrice: price,
		Status:      status,
	}
	if err := env.orderRepo.Create(context.Background(), order); err != nil {
		panic(err)
	}
	return order
}
