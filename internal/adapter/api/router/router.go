package router

import (
	"mtaanimarket/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupHealthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, roleMiddleware)
	SetupOrderRouter(e, authMiddleware, roleMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupContactRouter(e, authMiddleware, roleMiddleware)
	SetupAnalyticsRouter(e, authMiddleware, roleMiddleware)
}
