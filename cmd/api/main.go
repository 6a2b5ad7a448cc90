package main

import (
	"log"

	"github.com/ballgenius/ballgenius-backend/internal/config"
	"github.com/ballgenius/ballgenius-backend/internal/db"
	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/server"
	"github.com/joho/godotenv"
)

var (
	gitSHA    = "dev"
	buildTime = "unknown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(
		&model.User{},
		&model.Game{},
		&model.Prediction{},
		&model.Bet{},
		&model.BetPool{},
		&model.PointHistory{},
		&model.ShopItem{},
		&model.UserInventory{},
	); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv := server.New(conn, cfg, gitSHA, buildTime)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
