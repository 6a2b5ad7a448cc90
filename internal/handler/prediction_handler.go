package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PredictionHandler struct {
	svc service.PredictionService
}

func NewPredictionHandler(svc service.PredictionService) *PredictionHandler {
	return &PredictionHandler{svc: svc}
}

type CreatePredictionRequest struct {
	GameID             string `json:"gameId"`
	PredictedWinner    string `json:"predictedWinner"`
	PredictedHomeScore *int   `json:"predictedHomeScore"`
	PredictedAwayScore *int   `json:"predictedAwayScore"`
}

func (h *PredictionHandler) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}

	var req CreatePredictionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}

	p, err := h.svc.Create(c.Request().Context(), uid, service.CreatePredictionInput{
		GameID:             req.GameID,
		PredictedWinner:    model.PredictedResult(req.PredictedWinner),
		PredictedHomeScore: req.PredictedHomeScore,
		PredictedAwayScore: req.PredictedAwayScore,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "game not found"))
		case errors.Is(err, service.ErrAlreadyPredicted):
			return c.JSON(http.StatusConflict, NewErrorResponse("already_predicted", "you already predicted this game"))
		case errors.Is(err, service.ErrNotPredictable):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("not_predictable", "game is closed for predictions"))
		default:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
	}
	return c.JSON(http.StatusCreated, p)
}

type PredictionListResponse struct {
	Predictions []model.Prediction `json:"predictions"`
	Total       int64              `json:"total"`
	Limit       int                `json:"limit"`
	Offset      int                `json:"offset"`
}

func (h *PredictionHandler) ListMine(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}

	status := model.PredictionStatus(c.QueryParam("status"))
	switch status {
	case "", model.PredictionStatusPending, model.PredictionStatusWin, model.PredictionStatusLose, model.PredictionStatusVoid:
	default:
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid status filter"))
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	list, total, err := h.svc.ListMine(c.Request().Context(), uid, status, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch predictions"))
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return c.JSON(http.StatusOK, PredictionListResponse{Predictions: list, Total: total, Limit: limit, Offset: offset})
}

func (h *PredictionHandler) Stats(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	stats, err := h.svc.Stats(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to compute stats"))
	}
	return c.JSON(http.StatusOK, stats)
}
