package router

import (
	"mtaanimarket/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupBadgeStreamRouter(e *echo.Echo, badgeStreamHandler *handler.BadgeStreamHandler) {
	e.GET("/ws/notifications", badgeStreamHandler.Stream)
}
