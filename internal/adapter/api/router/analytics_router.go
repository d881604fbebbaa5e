package router

import (
	"mtaanimarket/internal/adapter/api/handler"
	"mtaanimarket/internal/adapter/api/middleware"
	"mtaanimarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func SetupAnalyticsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	analyticsHandler := handler.GetAnalyticsHandler()

	analytics := e.Group("/v1/analytics")
	analytics.Use(authMiddleware.Authenticate)
	analytics.Use(roleMiddleware.Require(entity.RoleSeller))

	analytics.GET("/dashboard", analyticsHandler.SellerDashboard)
}
