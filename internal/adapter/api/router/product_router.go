package router

import (
	"mtaanimarket/internal/adapter/api/handler"
	"mtaanimarket/internal/adapter/api/middleware"
	"mtaanimarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()

	// Public catalog.
	products := e.Group("/v1/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)

	myProducts := e.Group("/v1/my-products")
	myProducts.Use(authMiddleware.Authenticate)
	myProducts.Use(roleMiddleware.Require(entity.RoleSeller))
	myProducts.GET("", productHandler.MyProducts)
	myProducts.POST("", productHandler.Create)
	myProducts.PATCH("/:id", productHandler.Update)
}
