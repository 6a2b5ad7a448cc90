package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ballgenius/ballgenius-backend/internal/config"
	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"github.com/ballgenius/ballgenius-backend/internal/settlement"
	"gorm.io/gorm"
)

// BatchCounts reports what happened to one class of rows during settlement.
// Skipped rows were already resolved (an earlier run, or a concurrent one);
// failed rows hit a store error and can be retried by re-running settlement.
type BatchCounts struct {
	Processed int `json:"processed"`
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type SettlementSummary struct {
	GameID             string                `json:"gameId"`
	Winner             model.PredictedResult `json:"winner"`
	HomeScore          int                   `json:"homeScore"`
	AwayScore          int                   `json:"awayScore"`
	Predictions        BatchCounts           `json:"predictions"`
	Bets               BatchCounts           `json:"bets"`
	TotalPointsAwarded int64                 `json:"totalPointsAwarded"`
	TotalBetPayout     int64                 `json:"totalBetPayout"`
}

// Complete reports whether every row was either processed or skipped.
func (s *SettlementSummary) Complete() bool {
	return s.Predictions.Failed == 0 && s.Bets.Failed == 0
}

type SettlementService interface {
	// SettleGame records the final score and resolves every pending
	// prediction and bet on the game. Row failures never abort the batch;
	// re-running picks up exactly the rows that are still PENDING.
	SettleGame(ctx context.Context, gameID string, homeScore, awayScore int) (*SettlementSummary, error)
}

type settlementService struct {
	gameRepo repository.GameRepository
	predRepo repository.PredictionRepository
	betRepo  repository.BetRepository
	settRepo repository.SettlementRepository
	cfg      config.GameConfig
}

func NewSettlementService(
	gameRepo repository.GameRepository,
	predRepo repository.PredictionRepository,
	betRepo repository.BetRepository,
	settRepo repository.SettlementRepository,
	cfg config.GameConfig,
) SettlementService {
	return &settlementService{
		gameRepo: gameRepo,
		predRepo: predRepo,
		betRepo:  betRepo,
		settRepo: settRepo,
		cfg:      cfg,
	}
}

func (s *settlementService) SettleGame(ctx context.Context, gameID string, homeScore, awayScore int) (*SettlementSummary, error) {
	if homeScore < 0 || awayScore < 0 {
		return nil, ErrInvalidScore
	}

	game, err := s.gameRepo.FindByID(ctx, gameID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.recordResult(ctx, game, homeScore, awayScore); err != nil {
		return nil, err
	}

	winner := settlement.DetermineWinner(homeScore, awayScore)
	summary := &SettlementSummary{
		GameID:    gameID,
		Winner:    winner,
		HomeScore: homeScore,
		AwayScore: awayScore,
	}

	if err := s.settlePredictions(ctx, gameID, homeScore, awayScore, summary); err != nil {
		return nil, err
	}
	if err := s.settleBets(ctx, gameID, winner, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// recordResult flips the game to COMPLETED with the given score. A game that
// is already COMPLETED with the same score is a resume, not an error; a
// different score or a cancelled game is rejected before any row is touched.
func (s *settlementService) recordResult(ctx context.Context, game *model.Game, homeScore, awayScore int) error {
	if game.Status == model.GameStatusCancelled {
		return ErrGameCancelled
	}
	if game.Status == model.GameStatusCompleted {
		if game.HomeScore == nil || game.AwayScore == nil ||
			*game.HomeScore != homeScore || *game.AwayScore != awayScore {
			return fmt.Errorf("%w: game already completed with a different score", ErrInvalidScore)
		}
		return nil
	}

	transitioned, err := s.gameRepo.RecordResult(ctx, game.ID, homeScore, awayScore)
	if err != nil {
		return err
	}
	if transitioned {
		return nil
	}
	// Lost the race to another settler; re-read and validate its result.
	fresh, err := s.gameRepo.FindByID(ctx, game.ID)
	if err != nil {
		return err
	}
	*game = *fresh
	return s.recordResult(ctx, game, homeScore, awayScore)
}

func (s *settlementService) settlePredictions(ctx context.Context, gameID string, homeScore, awayScore int, summary *SettlementSummary) error {
	pending, err := s.predRepo.ListPendingByGame(ctx, gameID)
	if err != nil {
		return err
	}

	rules := settlement.PredictionRules{
		WinPoints:     s.cfg.PredictionWinPoints,
		PerfectPoints: s.cfg.PerfectPredictionPoints,
	}

	for i := range pending {
		id := pending[i].ID
		applied, outcome, err := s.settRepo.ApplyPrediction(ctx, id, func(p *model.Prediction, u *model.User) settlement.PredictionOutcome {
			return settlement.ResolvePrediction(p, homeScore, awayScore, u.CurrentStreak, u.MaxStreak, rules)
		})
		if err != nil {
			summary.Predictions.Failed++
			log.Printf("settle prediction %s on game %s: %v", id, gameID, err)
			continue
		}
		if !applied {
			summary.Predictions.Skipped++
			continue
		}
		summary.Predictions.Processed++
		if outcome.Won() {
			summary.Predictions.Wins++
			summary.TotalPointsAwarded += outcome.TotalPoints()
		} else {
			summary.Predictions.Losses++
		}
	}
	return nil
}

func (s *settlementService) settleBets(ctx context.Context, gameID string, winner model.PredictedResult, summary *SettlementSummary) error {
	pending, err := s.betRepo.ListPendingByGame(ctx, gameID)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	pool, err := s.betRepo.GetPool(ctx, gameID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pool = &model.BetPool{GameID: gameID}
	} else if err != nil {
		return err
	}
	totals := settlement.SideTotals(pool, winner)

	for i := range pending {
		id := pending[i].ID
		applied, outcome, err := s.settRepo.ApplyBet(ctx, id, func(b *model.Bet) settlement.BetOutcome {
			return settlement.ResolveBet(b, winner, totals, s.cfg.HouseEdge)
		})
		if err != nil {
			summary.Bets.Failed++
			log.Printf("settle bet %s on game %s: %v", id, gameID, err)
			continue
		}
		if !applied {
			summary.Bets.Skipped++
			continue
		}
		summary.Bets.Processed++
		if outcome.Status == model.BetStatusWin {
			summary.Bets.Wins++
			summary.TotalBetPayout += outcome.Payout
		} else {
			summary.Bets.Losses++
		}
	}
	return nil
}
