package router

import (
	"mtaanimarket/internal/adapter/api/handler"
	"mtaanimarket/internal/adapter/api/middleware"
	"mtaanimarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func SetupContactRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	contactHandler := handler.GetContactHandler()

	contacts := e.Group("/v1/contacts")
	contacts.Use(authMiddleware.Authenticate)

	contacts.POST("/products/:productId", contactHandler.RecordContact)

	sellerOnly := roleMiddleware.Require(entity.RoleSeller)
	contacts.POST("/:id/respond", contactHandler.RecordResponse, sellerOnly)
	contacts.GET("", contactHandler.ListSellerContacts, sellerOnly)
	contacts.GET("/stats", contactHandler.ResponseStats, sellerOnly)
}
