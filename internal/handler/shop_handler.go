package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ballgenius/ballgenius-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ShopHandler struct {
	svc service.ShopService
}

func NewShopHandler(svc service.ShopService) *ShopHandler {
	return &ShopHandler{svc: svc}
}

func (h *ShopHandler) ListItems(c echo.Context) error {
	items, err := h.svc.ListItems(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *ShopHandler) Purchase(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid item id"))
	}

	inv, err := h.svc.Purchase(c.Request().Context(), uid, itemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
		case errors.Is(err, service.ErrInsufficientPoints):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("insufficient_points", "not enough points for this item"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "purchase failed"))
		}
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *ShopHandler) Inventory(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	inv, err := h.svc.Inventory(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch inventory"))
	}
	return c.JSON(http.StatusOK, map[string]any{"inventory": inv})
}
