package server

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ballgenius/ballgenius-backend/internal/config"
	"github.com/ballgenius/ballgenius-backend/internal/handler"
	"github.com/ballgenius/ballgenius-backend/internal/kbo"
	appmw "github.com/ballgenius/ballgenius-backend/internal/middleware"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"github.com/ballgenius/ballgenius-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e     *echo.Echo
	Sync  service.SyncService
	sha   string
	build string
}

func New(db *gorm.DB, cfg *config.Config, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)
	predRepo := repository.NewPredictionRepository(db)
	betRepo := repository.NewBetRepository(db)
	pointRepo := repository.NewPointRepository(db)
	settRepo := repository.NewSettlementRepository(db)
	shopRepo := repository.NewShopRepository(db)

	userSvc := service.NewUserService(userRepo, cfg.Game)
	pointSvc := service.NewPointService(pointRepo)
	gameSvc := service.NewGameService(gameRepo, predRepo, betRepo)
	predSvc := service.NewPredictionService(predRepo, gameRepo, userRepo, cfg.Game)
	betSvc := service.NewBetService(betRepo, gameRepo, cfg.Game)
	settlementSvc := service.NewSettlementService(gameRepo, predRepo, betRepo, settRepo, cfg.Game)
	shopSvc := service.NewShopService(shopRepo)
	syncSvc := service.NewSyncService(kbo.NewClient(cfg.KBOAPIURL), gameRepo, settlementSvc, gameSvc)

	userHandler := handler.NewUserHandler(userSvc, pointSvc)
	gameHandler := handler.NewGameHandler(gameSvc, betSvc)
	predHandler := handler.NewPredictionHandler(predSvc)
	betHandler := handler.NewBetHandler(betSvc)
	shopHandler := handler.NewShopHandler(shopSvc)
	adminHandler := handler.NewAdminHandler(settlementSvc, gameSvc, syncSvc)

	authMw, err := appmw.NewAuthMiddleware(context.Background(), cfg.AdminUIDs)
	if err != nil {
		e.Logger.Fatalf("failed to init firebase auth: %v", err)
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api")

	api.GET("/games", gameHandler.List, authMw.OptionalAuth)
	api.GET("/games/:id", gameHandler.Get, authMw.OptionalAuth)
	api.GET("/users/:uid/public", userHandler.GetPublic)
	api.GET("/leaderboard", userHandler.Leaderboard)
	api.GET("/shop/items", shopHandler.ListItems)

	api.GET("/me", userHandler.Me, authMw.RequireAuth)
	api.GET("/me/points", userHandler.Points, authMw.RequireAuth)
	api.GET("/me/inventory", shopHandler.Inventory, authMw.RequireAuth)
	api.POST("/predictions", predHandler.Create, authMw.RequireAuth)
	api.GET("/predictions", predHandler.ListMine, authMw.RequireAuth)
	api.GET("/predictions/stats", predHandler.Stats, authMw.RequireAuth)
	api.POST("/bets", betHandler.Place, authMw.RequireAuth)
	api.GET("/bets", betHandler.ListMine, authMw.RequireAuth)
	api.POST("/shop/items/:id/purchase", shopHandler.Purchase, authMw.RequireAuth)

	api.POST("/admin/games/:id/results", adminHandler.RecordResult, authMw.RequireAdmin)
	api.POST("/admin/games/:id/cancel", adminHandler.CancelGame, authMw.RequireAdmin)
	api.POST("/admin/sync", adminHandler.Sync, authMw.RequireAdmin)

	return &Server{e: e, Sync: syncSvc, sha: sha, build: buildTime}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
