package router

import (
	"mtaanimarket/internal/adapter/api/handler"
	"mtaanimarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.POST("", reviewHandler.Create, authMiddleware.Authenticate)

	// Listings are public; ratings are part of the seller's storefront.
	e.GET("/v1/sellers/:sellerId/reviews", reviewHandler.ListBySeller)
	e.GET("/v1/products/:productId/reviews", reviewHandler.ListByProduct)
}
