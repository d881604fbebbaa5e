package handler

import (
	"mtaanimarket/internal/usecase"
	"mtaanimarket/pkg/errors"
	"mtaanimarket/pkg/response"
	"mtaanimarket/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
}

func NewContactHandler(contactUseCase *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

func (h *ContactHandler) RecordContact(c echo.Context) error {
	buyerID := c.Get("uid").(string)
	productID := c.Param("productId")

	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	result, err := h.contactUseCase.RecordContact(c.Request().Context(), buyerID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ContactHandler) RecordResponse(c echo.Context) error {
	sellerID := c.Get("uid").(string)
	contactID := c.Param("id")

	contact, err := h.contactUseCase.RecordResponse(c.Request().Context(), sellerID, contactID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contact)
}

func (h *ContactHandler) ListSellerContacts(c echo.Context) error {
	sellerID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	contacts, total, err := h.contactUseCase.ListSellerContacts(
		c.Request().Context(),
		sellerID,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, contacts, total, pagination.Page, pagination.PageSize)
}

func (h *ContactHandler) ResponseStats(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	stats, err := h.contactUseCase.SellerResponseStats(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
