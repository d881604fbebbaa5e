package handler

import (
	"mtaanimarket/internal/usecase"
	"mtaanimarket/pkg/response"

	"github.com/labstack/echo/v4"
)

type AnalyticsHandler struct {
	analyticsUseCase *usecase.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
	}
}

func (h *AnalyticsHandler) SellerDashboard(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	dashboard, err := h.analyticsUseCase.SellerDashboard(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, dashboard)
}
