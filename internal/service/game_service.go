package service

import (
	"context"
	"errors"
	"log"
	"regexp"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"gorm.io/gorm"
)

var dateRe = regexp.MustCompile(`^\d{8}$`)

// GameWithContext bundles a game with its pool snapshot and, for an
// authenticated caller, the caller's own rows.
type GameWithContext struct {
	Game       model.Game
	Pool       *model.BetPool
	Prediction *model.Prediction
	Bet        *model.Bet
}

type GameService interface {
	Get(ctx context.Context, id string) (*model.Game, error)
	// ListByDate returns the day's games. uid may be empty; when set, each
	// entry carries that user's prediction and latest bet.
	ListByDate(ctx context.Context, date, uid string) ([]GameWithContext, error)
	// Cancel voids every pending prediction and refunds every pending bet,
	// then the game row itself goes terminal. Safe to call twice.
	Cancel(ctx context.Context, id string) (*CancelSummary, error)
}

type CancelSummary struct {
	GameID            string `json:"gameId"`
	AlreadyCancelled  bool   `json:"alreadyCancelled"`
	VoidedPredictions int64  `json:"voidedPredictions"`
	RefundedBets      int64  `json:"refundedBets"`
}

type gameService struct {
	gameRepo repository.GameRepository
	predRepo repository.PredictionRepository
	betRepo  repository.BetRepository
}

func NewGameService(gameRepo repository.GameRepository, predRepo repository.PredictionRepository, betRepo repository.BetRepository) GameService {
	return &gameService{gameRepo: gameRepo, predRepo: predRepo, betRepo: betRepo}
}

func (s *gameService) Get(ctx context.Context, id string) (*model.Game, error) {
	g, err := s.gameRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return g, err
}

func (s *gameService) ListByDate(ctx context.Context, date, uid string) ([]GameWithContext, error) {
	if !dateRe.MatchString(date) {
		return nil, errors.New("date must be YYYYMMDD")
	}
	games, err := s.gameRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]GameWithContext, 0, len(games))
	for i := range games {
		g := GameWithContext{Game: games[i]}
		if pool, err := s.betRepo.GetPool(ctx, games[i].ID); err == nil {
			g.Pool = pool
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if uid != "" {
			if p, err := s.predRepo.FindByUserAndGame(ctx, uid, games[i].ID); err == nil {
				g.Prediction = p
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if b, err := s.betRepo.FindLatestByUserAndGame(ctx, uid, games[i].ID); err == nil {
				g.Bet = b
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		out = append(out, g)
	}
	return out, nil
}

func (s *gameService) Cancel(ctx context.Context, id string) (*CancelSummary, error) {
	g, err := s.gameRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if g.Status == model.GameStatusCompleted {
		return nil, ErrGameCompleted
	}

	transitioned, err := s.gameRepo.MarkCancelled(ctx, id)
	if err != nil {
		return nil, err
	}

	// Children are cleaned up even on a repeat call: the first run may have
	// died between the status flip and the voids.
	voided, err := s.predRepo.VoidPending(ctx, id)
	if err != nil {
		return nil, err
	}
	refunded, err := s.betRepo.VoidPendingWithRefund(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitioned {
		log.Printf("game %s already cancelled; cleaned up %d predictions, %d bets", id, voided, refunded)
	}
	return &CancelSummary{
		GameID:            id,
		AlreadyCancelled:  !transitioned,
		VoidedPredictions: voided,
		RefundedBets:      refunded,
	}, nil
}
