package handler

import (
	"errors"
	"net/http"

	"github.com/ballgenius/ballgenius-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// AdminHandler exposes the operational surface: recording results (which
// settles every pending prediction and bet on the game), cancelling games,
// and forcing a schedule sync.
type AdminHandler struct {
	settlement service.SettlementService
	games      service.GameService
	sync       service.SyncService
}

func NewAdminHandler(settlementSvc service.SettlementService, gameSvc service.GameService, syncSvc service.SyncService) *AdminHandler {
	return &AdminHandler{settlement: settlementSvc, games: gameSvc, sync: syncSvc}
}

// RecordResultRequest uses pointer fields so an absent score is distinguishable
// from a legitimate 0; settling a half-specified result as 0-0 would be
// irreversible.
type RecordResultRequest struct {
	HomeScore *int `json:"homeScore"`
	AwayScore *int `json:"awayScore"`
}

func (h *AdminHandler) RecordResult(c echo.Context) error {
	gameID := c.Param("id")

	var req RecordResultRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.HomeScore == nil || req.AwayScore == nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_score", "homeScore and awayScore are required"))
	}

	summary, err := h.settlement.SettleGame(c.Request().Context(), gameID, *req.HomeScore, *req.AwayScore)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "game not found"))
		case errors.Is(err, service.ErrInvalidScore):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_score", err.Error()))
		case errors.Is(err, service.ErrGameCancelled):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("game_cancelled", "cancelled games cannot be settled"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "settlement failed"))
		}
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *AdminHandler) CancelGame(c echo.Context) error {
	gameID := c.Param("id")

	summary, err := h.games.Cancel(c.Request().Context(), gameID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "game not found"))
		case errors.Is(err, service.ErrGameCompleted):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("game_completed", "completed games cannot be cancelled"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "cancellation failed"))
		}
	}
	return c.JSON(http.StatusOK, summary)
}

type SyncRequest struct {
	Date string `json:"date"`
}

func (h *AdminHandler) Sync(c echo.Context) error {
	var req SyncRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.Date == "" {
		req.Date = c.QueryParam("date")
	}

	summary, err := h.sync.SyncDate(c.Request().Context(), req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusOK, summary)
}
