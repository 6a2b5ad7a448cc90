package service

import (
	"context"
	"errors"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/config"
	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"github.com/ballgenius/ballgenius-backend/internal/settlement"
	"gorm.io/gorm"
)

type PlaceBetInput struct {
	GameID          string
	Amount          int64
	PredictedWinner model.PredictedResult
}

type BetService interface {
	// Place debits the stake and books the bet with the current pool quote.
	Place(ctx context.Context, uid string, in PlaceBetInput) (*model.Bet, error)
	ListMine(ctx context.Context, uid string, limit, offset int) ([]model.Bet, int64, error)
	// Odds returns the current quote for a game, for display before placing.
	Odds(ctx context.Context, gameID string) (*model.BetPool, error)
}

type betService struct {
	betRepo  repository.BetRepository
	gameRepo repository.GameRepository
	cfg      config.GameConfig
	now      func() time.Time
}

func NewBetService(betRepo repository.BetRepository, gameRepo repository.GameRepository, cfg config.GameConfig) BetService {
	return &betService{betRepo: betRepo, gameRepo: gameRepo, cfg: cfg, now: time.Now}
}

func (s *betService) Place(ctx context.Context, uid string, in PlaceBetInput) (*model.Bet, error) {
	if uid == "" {
		return nil, ErrForbidden
	}
	if in.GameID == "" {
		return nil, errors.New("gameId is required")
	}
	if in.PredictedWinner != model.ResultHome && in.PredictedWinner != model.ResultAway {
		return nil, errors.New("bets accept HOME or AWAY only")
	}
	if in.Amount < s.cfg.MinimumBetAmount || in.Amount > s.cfg.MaximumBetAmount {
		return nil, ErrBetAmountOutOfRange
	}

	game, err := s.gameRepo.FindByID(ctx, in.GameID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !settlement.IsPredictable(game, s.now()) {
		return nil, ErrNotPredictable
	}

	b := &model.Bet{
		UserUID:         uid,
		GameID:          in.GameID,
		Amount:          in.Amount,
		PredictedWinner: in.PredictedWinner,
	}
	oddsCfg := settlement.OddsConfig{
		HouseEdge: s.cfg.HouseEdge,
		MinOdds:   s.cfg.MinOdds,
		MaxOdds:   s.cfg.MaxOdds,
	}
	err = s.betRepo.Place(ctx, b, func(homePool, awayPool int64) (float64, float64) {
		return settlement.ComputeOdds(homePool, awayPool, oddsCfg)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *betService) ListMine(ctx context.Context, uid string, limit, offset int) ([]model.Bet, int64, error) {
	if uid == "" {
		return nil, 0, ErrForbidden
	}
	return s.betRepo.ListByUser(ctx, uid, limit, offset)
}

func (s *betService) Odds(ctx context.Context, gameID string) (*model.BetPool, error) {
	pool, err := s.betRepo.GetPool(ctx, gameID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No bets yet: an empty pool quoting the defaults.
		return &model.BetPool{GameID: gameID, HomeOdds: settlement.DefaultOdds, AwayOdds: settlement.DefaultOdds}, nil
	}
	return pool, err
}
