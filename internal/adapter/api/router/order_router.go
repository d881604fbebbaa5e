package router

import (
	"mtaanimarket/internal/adapter/api/handler"
	"mtaanimarket/internal/adapter/api/middleware"
	"mtaanimarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)

	orders.POST("", orderHandler.ExpressInterest)
	orders.GET("", orderHandler.List)
	orders.GET("/counts", orderHandler.StatusCounts)
	orders.GET("/:id", orderHandler.Get)

	// Only sellers drive the status forward; ownership is checked in
	// the usecase.
	orders.PATCH("/:id/status", orderHandler.UpdateStatus, roleMiddleware.Require(entity.RoleSeller))
}
