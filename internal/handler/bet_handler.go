package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type BetHandler struct {
	svc service.BetService
}

func NewBetHandler(svc service.BetService) *BetHandler {
	return &BetHandler{svc: svc}
}

type PlaceBetRequest struct {
	GameID          string `json:"gameId"`
	Amount          int64  `json:"amount"`
	PredictedWinner string `json:"predictedWinner"`
}

func (h *BetHandler) Place(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}

	var req PlaceBetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}

	b, err := h.svc.Place(c.Request().Context(), uid, service.PlaceBetInput{
		GameID:          req.GameID,
		Amount:          req.Amount,
		PredictedWinner: model.PredictedResult(req.PredictedWinner),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "game not found"))
		case errors.Is(err, service.ErrNotPredictable):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("not_predictable", "game is closed for betting"))
		case errors.Is(err, service.ErrBetAmountOutOfRange):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_amount", "bet amount out of range"))
		case errors.Is(err, service.ErrInsufficientPoints):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("insufficient_points", "not enough points for this stake"))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusCreated, b)
}

type BetListResponse struct {
	Bets   []model.Bet `json:"bets"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *BetHandler) ListMine(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	list, total, err := h.svc.ListMine(c.Request().Context(), uid, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch bets"))
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return c.JSON(http.StatusOK, BetListResponse{Bets: list, Total: total, Limit: limit, Offset: offset})
}
