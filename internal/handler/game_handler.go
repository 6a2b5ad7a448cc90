package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/service"
	"github.com/ballgenius/ballgenius-backend/internal/settlement"
	"github.com/labstack/echo/v4"
)

type GameHandler struct {
	svc service.GameService
	bet service.BetService
}

func NewGameHandler(svc service.GameService, bet service.BetService) *GameHandler {
	return &GameHandler{svc: svc, bet: bet}
}

type GameResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	Stadium      string  `json:"stadium"`
	HomeTeamID   string  `json:"homeTeamId"`
	HomeTeamName string  `json:"homeTeamName"`
	AwayTeamID   string  `json:"awayTeamId"`
	AwayTeamName string  `json:"awayTeamName"`
	Status       string  `json:"status"`
	HomeScore    *int    `json:"homeScore"`
	AwayScore    *int    `json:"awayScore"`
	HomeOdds     float64 `json:"homeOdds"`
	AwayOdds     float64 `json:"awayOdds"`
	HomePool     int64   `json:"homePool"`
	AwayPool     int64   `json:"awayPool"`

	MyPrediction *model.Prediction `json:"myPrediction,omitempty"`
	MyBet        *model.Bet        `json:"myBet,omitempty"`
}

type GameListResponse struct {
	Date  string         `json:"date"`
	Games []GameResponse `json:"games"`
}

func (h *GameHandler) List(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().Format("20060102")
	}
	uid, _ := c.Get("uid").(string)

	games, err := h.svc.ListByDate(c.Request().Context(), date, uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "no games for date"))
		}
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}

	resp := GameListResponse{Date: date, Games: make([]GameResponse, 0, len(games))}
	for i := range games {
		resp.Games = append(resp.Games, toGameResponse(&games[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) Get(c echo.Context) error {
	id := c.Param("id")
	g, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "game not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch game"))
	}
	pool, err := h.bet.Odds(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch odds"))
	}
	gc := service.GameWithContext{Game: *g, Pool: pool}
	return c.JSON(http.StatusOK, toGameResponse(&gc))
}

func toGameResponse(gc *service.GameWithContext) GameResponse {
	g := gc.Game
	resp := GameResponse{
		ID:           g.ID,
		Date:         g.Date,
		StartTime:    g.StartTime.Format(time.RFC3339),
		Stadium:      g.Stadium,
		HomeTeamID:   g.HomeTeamID,
		HomeTeamName: g.HomeTeamName,
		AwayTeamID:   g.AwayTeamID,
		AwayTeamName: g.AwayTeamName,
		Status:       string(g.Status),
		HomeScore:    g.HomeScore,
		AwayScore:    g.AwayScore,
		HomeOdds:     settlement.DefaultOdds,
		AwayOdds:     settlement.DefaultOdds,
		MyPrediction: gc.Prediction,
		MyBet:        gc.Bet,
	}
	if gc.Pool != nil {
		resp.HomeOdds = gc.Pool.HomeOdds
		resp.AwayOdds = gc.Pool.AwayOdds
		resp.HomePool = gc.Pool.HomePool
		resp.AwayPool = gc.Pool.AwayPool
	}
	return resp
}
