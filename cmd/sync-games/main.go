package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/config"
	"github.com/ballgenius/ballgenius-backend/internal/db"
	"github.com/ballgenius/ballgenius-backend/internal/kbo"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"github.com/ballgenius/ballgenius-backend/internal/service"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	once := flag.Bool("once", false, "run a single sync and exit")
	date := flag.String("date", "", "date to sync as YYYYMMDD (default today, KST)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	gameRepo := repository.NewGameRepository(conn)
	predRepo := repository.NewPredictionRepository(conn)
	betRepo := repository.NewBetRepository(conn)
	settRepo := repository.NewSettlementRepository(conn)

	gameSvc := service.NewGameService(gameRepo, predRepo, betRepo)
	settlementSvc := service.NewSettlementService(gameRepo, predRepo, betRepo, settRepo, cfg.Game)
	syncSvc := service.NewSyncService(kbo.NewClient(cfg.KBOAPIURL), gameRepo, settlementSvc, gameSvc)

	runSync := func() {
		d := *date
		if d == "" {
			d = todayKST()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		summary, err := syncSvc.SyncDate(ctx, d)
		if err != nil {
			log.Printf("sync %s failed: %v", d, err)
			return
		}
		log.Printf("sync %s: fetched=%d upserted=%d settled=%d cancelled=%d failed=%d",
			summary.Date, summary.Fetched, summary.Upserted, summary.Settled, summary.Cancelled, summary.Failed)
	}

	if *once {
		runSync()
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.SyncSchedule, runSync); err != nil {
		log.Fatalf("invalid SYNC_SCHEDULE %q: %v", cfg.SyncSchedule, err)
	}
	log.Printf("sync worker started, schedule %q", cfg.SyncSchedule)
	c.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Printf("shutting down")
	<-c.Stop().Done()
}

func todayKST() string {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}
	return time.Now().In(loc).Format("20060102")
}
