package service

import (
	"context"
	"errors"
	"log"
	"regexp"

	"github.com/ballgenius/ballgenius-backend/internal/kbo"
	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"gorm.io/gorm"
)

var syncDateRe = regexp.MustCompile(`^\d{8}$`)

type SyncSummary struct {
	Date      string `json:"date"`
	Fetched   int    `json:"fetched"`
	Upserted  int    `json:"upserted"`
	Settled   int    `json:"settled"`
	Cancelled int    `json:"cancelled"`
	Failed    int    `json:"failed"`
}

// SyncService pulls the provider schedule into the games table and triggers
// settlement or cancellation when a game newly reaches a terminal state. This
// is the external trigger the settlement core waits on.
type SyncService interface {
	SyncDate(ctx context.Context, date string) (*SyncSummary, error)
}

type syncService struct {
	client     *kbo.Client
	gameRepo   repository.GameRepository
	settlement SettlementService
	games      GameService
}

func NewSyncService(client *kbo.Client, gameRepo repository.GameRepository, settlementSvc SettlementService, gameSvc GameService) SyncService {
	return &syncService{
		client:     client,
		gameRepo:   gameRepo,
		settlement: settlementSvc,
		games:      gameSvc,
	}
}

func (s *syncService) SyncDate(ctx context.Context, date string) (*SyncSummary, error) {
	if !syncDateRe.MatchString(date) {
		return nil, errors.New("date must be YYYYMMDD")
	}

	fetched, err := s.client.FetchDay(ctx, date)
	if err != nil {
		return nil, err
	}

	summary := &SyncSummary{Date: date, Fetched: len(fetched)}
	for _, sg := range fetched {
		if err := s.apply(ctx, sg, summary); err != nil {
			summary.Failed++
			log.Printf("sync game %s: %v", sg.ID, err)
		}
	}
	return summary, nil
}

func (s *syncService) apply(ctx context.Context, sg kbo.ScheduledGame, summary *SyncSummary) error {
	existing, err := s.gameRepo.FindByID(ctx, sg.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	wasTerminal := existing != nil && existing.Status.IsTerminal()

	g := &model.Game{
		ID:           sg.ID,
		Date:         sg.Date,
		StartTime:    sg.StartTime,
		Stadium:      sg.Stadium,
		HomeTeamID:   sg.HomeTeamID,
		HomeTeamName: sg.HomeTeamName,
		AwayTeamID:   sg.AwayTeamID,
		AwayTeamName: sg.AwayTeamName,
		Status:       sg.Status,
		HomeScore:    sg.HomeScore,
		AwayScore:    sg.AwayScore,
	}

	// Terminal transitions run through settlement/cancellation so every child
	// row gets resolved; the plain upsert covers the rest.
	switch {
	case !wasTerminal && sg.Status == model.GameStatusCompleted && sg.HomeScore != nil && sg.AwayScore != nil:
		g.Status = model.GameStatusLive // settlement flips it to COMPLETED
		g.HomeScore, g.AwayScore = nil, nil
		if err := s.gameRepo.Upsert(ctx, g); err != nil {
			return err
		}
		if _, err := s.settlement.SettleGame(ctx, sg.ID, *sg.HomeScore, *sg.AwayScore); err != nil {
			return err
		}
		summary.Settled++
	case !wasTerminal && sg.Status == model.GameStatusCancelled:
		g.Status = model.GameStatusScheduled
		if err := s.gameRepo.Upsert(ctx, g); err != nil {
			return err
		}
		if _, err := s.games.Cancel(ctx, sg.ID); err != nil {
			return err
		}
		summary.Cancelled++
	default:
		if err := s.gameRepo.Upsert(ctx, g); err != nil {
			return err
		}
	}
	summary.Upserted++
	return nil
}
