package router

import (
	"mtaanimarket/internal/adapter/api/handler"
	"mtaanimarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	wishlist := e.Group("/v1/wishlist")
	wishlist.Use(authMiddleware.Authenticate)

	wishlist.POST("/:productId/toggle", wishlistHandler.Toggle)
	wishlist.GET("/:productId/status", wishlistHandler.CheckStatus)
	wishlist.GET("", wishlistHandler.GetUserWishlist)
	wishlist.GET("/count", wishlistHandler.GetCount)
}
