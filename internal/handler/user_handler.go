package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	users  service.UserService
	points service.PointService
}

func NewUserHandler(users service.UserService, points service.PointService) *UserHandler {
	return &UserHandler{users: users, points: points}
}

type MeResponse struct {
	UID                   string `json:"uid"`
	Nickname              string `json:"nickname"`
	Points                int64  `json:"points"`
	TotalPredictions      int    `json:"totalPredictions"`
	SuccessfulPredictions int    `json:"successfulPredictions"`
	CurrentStreak         int    `json:"currentStreak"`
	MaxStreak             int    `json:"maxStreak"`
	TotalBets             int    `json:"totalBets"`
	SuccessfulBets        int    `json:"successfulBets"`
	DailyBonusGranted     bool   `json:"dailyBonusGranted"`
}

func (h *UserHandler) Me(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	u, bonus, err := h.users.EnsureUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to load user"))
	}
	return c.JSON(http.StatusOK, MeResponse{
		UID:                   u.UID,
		Nickname:              u.Nickname,
		Points:                u.Points,
		TotalPredictions:      u.TotalPredictions,
		SuccessfulPredictions: u.SuccessfulPredictions,
		CurrentStreak:         u.CurrentStreak,
		MaxStreak:             u.MaxStreak,
		TotalBets:             u.TotalBets,
		SuccessfulBets:        u.SuccessfulBets,
		DailyBonusGranted:     bonus,
	})
}

type PointsResponse struct {
	Balance int64                `json:"balance"`
	History []model.PointHistory `json:"history"`
}

func (h *UserHandler) Points(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	balance, err := h.points.Balance(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch balance"))
	}
	history, err := h.points.History(c.Request().Context(), uid, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch history"))
	}
	return c.JSON(http.StatusOK, PointsResponse{Balance: balance, History: history})
}

type PublicUserResponse struct {
	UID                   string `json:"uid"`
	Nickname              string `json:"nickname"`
	Points                int64  `json:"points"`
	TotalPredictions      int    `json:"totalPredictions"`
	SuccessfulPredictions int    `json:"successfulPredictions"`
	MaxStreak             int    `json:"maxStreak"`
}

func toPublicUserResponse(u *model.User) PublicUserResponse {
	return PublicUserResponse{
		UID:                   u.UID,
		Nickname:              u.Nickname,
		Points:                u.Points,
		TotalPredictions:      u.TotalPredictions,
		SuccessfulPredictions: u.SuccessfulPredictions,
		MaxStreak:             u.MaxStreak,
	}
}

func (h *UserHandler) GetPublic(c echo.Context) error {
	uid := c.Param("uid")
	u, err := h.users.GetPublic(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to load user"))
	}
	return c.JSON(http.StatusOK, toPublicUserResponse(u))
}

type LeaderboardResponse struct {
	Users []PublicUserResponse `json:"users"`
}

func (h *UserHandler) Leaderboard(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	users, err := h.users.Leaderboard(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch leaderboard"))
	}
	resp := LeaderboardResponse{Users: make([]PublicUserResponse, 0, len(users))}
	for i := range users {
		resp.Users = append(resp.Users, toPublicUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
