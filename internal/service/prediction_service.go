package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/config"
	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"github.com/ballgenius/ballgenius-backend/internal/settlement"
	"gorm.io/gorm"
)

const maxPredictedScore = 50

type CreatePredictionInput struct {
	GameID             string
	PredictedWinner    model.PredictedResult
	PredictedHomeScore *int
	PredictedAwayScore *int
}

type PredictionStats struct {
	TotalPredictions      int     `json:"totalPredictions"`
	SuccessfulPredictions int     `json:"successfulPredictions"`
	PendingPredictions    int64   `json:"pendingPredictions"`
	WinRate               float64 `json:"winRate"`
	CurrentStreak         int     `json:"currentStreak"`
	MaxStreak             int     `json:"maxStreak"`
	TotalPointsEarned     int64   `json:"totalPointsEarned"`
}

type PredictionService interface {
	Create(ctx context.Context, uid string, in CreatePredictionInput) (*model.Prediction, error)
	ListMine(ctx context.Context, uid string, status model.PredictionStatus, limit, offset int) ([]model.Prediction, int64, error)
	Stats(ctx context.Context, uid string) (*PredictionStats, error)
}

type predictionService struct {
	predRepo repository.PredictionRepository
	gameRepo repository.GameRepository
	userRepo repository.UserRepository
	cfg      config.GameConfig
	now      func() time.Time
}

func NewPredictionService(predRepo repository.PredictionRepository, gameRepo repository.GameRepository, userRepo repository.UserRepository, cfg config.GameConfig) PredictionService {
	return &predictionService{
		predRepo: predRepo,
		gameRepo: gameRepo,
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *predictionService) Create(ctx context.Context, uid string, in CreatePredictionInput) (*model.Prediction, error) {
	if uid == "" {
		return nil, ErrForbidden
	}
	if err := validatePredictionInput(in); err != nil {
		return nil, err
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

	if _, err := s.predRepo.FindByUserAndGame(ctx, uid, in.GameID); err == nil {
		return nil, ErrAlreadyPredicted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &model.Prediction{
		UserUID:            uid,
		GameID:             in.GameID,
		PredictedWinner:    in.PredictedWinner,
		PredictedHomeScore: in.PredictedHomeScore,
		PredictedAwayScore: in.PredictedAwayScore,
	}
	if err := s.predRepo.Create(ctx, p); err != nil {
		// The unique (user, game) index is the authority under concurrency.
		if strings.Contains(strings.ToLower(err.Error()), "unique") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return nil, ErrAlreadyPredicted
		}
		return nil, err
	}
	return p, nil
}

func (s *predictionService) ListMine(ctx context.Context, uid string, status model.PredictionStatus, limit, offset int) ([]model.Prediction, int64, error) {
	if uid == "" {
		return nil, 0, ErrForbidden
	}
	return s.predRepo.ListByUser(ctx, uid, status, limit, offset)
}

func (s *predictionService) Stats(ctx context.Context, uid string) (*PredictionStats, error) {
	u, err := s.userRepo.FindByUID(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	pending, err := s.predRepo.CountPendingByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	stats := &PredictionStats{
		TotalPredictions:      u.TotalPredictions,
		SuccessfulPredictions: u.SuccessfulPredictions,
		PendingPredictions:    pending,
		CurrentStreak:         u.CurrentStreak,
		MaxStreak:             u.MaxStreak,
	}
	resolved := u.TotalPredictions - int(pending)
	if resolved > 0 {
		stats.WinRate = float64(u.SuccessfulPredictions) / float64(resolved)
	}
	return stats, nil
}

func validatePredictionInput(in CreatePredictionInput) error {
	if in.GameID == "" {
		return errors.New("gameId is required")
	}
	switch in.PredictedWinner {
	case model.ResultHome, model.ResultAway, model.ResultDraw:
	default:
		return errors.New("predictedWinner must be HOME, AWAY or DRAW")
	}
	// Exact-score guesses come as a pair or not at all.
	if (in.PredictedHomeScore == nil) != (in.PredictedAwayScore == nil) {
		return errors.New("predicted scores must be provided together")
	}
	for _, v := range []*int{in.PredictedHomeScore, in.PredictedAwayScore} {
		if v != nil && (*v < 0 || *v > maxPredictedScore) {
			return errors.New("predicted scores must be between 0 and 50")
		}
	}
	return nil
}
