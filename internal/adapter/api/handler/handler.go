package handler

import (
	"mtaanimarket/internal/usecase"
)

var (
	userHandler         *UserHandler
	productHandler      *ProductHandler
	orderHandler        *OrderHandler
	reviewHandler       *ReviewHandler
	notificationHandler *NotificationHandler
	wishlistHandler     *WishlistHandler
	contactHandler      *ContactHandler
	analyticsHandler    *AnalyticsHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	contactUseCase *usecase.ContactUseCase,
	analyticsUseCase *usecase.AnalyticsUseCase,
) {
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	contactHandler = NewContactHandler(contactUseCase)
	analyticsHandler = NewAnalyticsHandler(analyticsUseCase)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}

func GetAnalyticsHandler() *AnalyticsHandler {
	return analyticsHandler
}
