package handler

import (
	"mtaanimarket/internal/usecase"
	"mtaanimarket/pkg/errors"
	"mtaanimarket/pkg/response"
	"mtaanimarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type expressInterestRequest struct {
	ProductID         string `json:"product_id" validate:"required"`
	Quantity          int    `json:"quantity" validate:"min=0"`
	Message           string `json:"message"`
	ContactNumber     string `json:"contact_number"`
	MeetingPreference string `json:"meeting_preference"`
}

func (h *OrderHandler) ExpressInterest(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	var req expressInterestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.ExpressInterest(c.Request().Context(), buyerID, usecase.ExpressInterestInput{
		ProductID:         req.ProductID,
		Quantity:          req.Quantity,
		Message:           req.Message,
		ContactNumber:     req.ContactNumber,
		MeetingPreference: req.MeetingPreference,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	sellerID := c.Get("uid").(string)
	orderID := c.Param("id")

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), sellerID, orderID, usecase.UpdateStatusInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) Get(c echo.Context) error {
	userID := c.Get("uid").(string)
	orderID := c.Param("id")

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(
		c.Request().Context(),
		userID,
		c.QueryParam("role"),
		c.QueryParam("status"),
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) StatusCounts(c echo.Context) error {
	userID := c.Get("uid").(string)

	counts, err := h.orderUseCase.StatusCounts(c.Request().Context(), userID, c.QueryParam("role"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, counts)
}
