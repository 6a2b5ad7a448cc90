package service

import (
	"context"
	"errors"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"gorm.io/gorm"
)

type PointService interface {
	Credit(ctx context.Context, uid string, amount int64, ptype model.PointType, description string, relatedID *string) error
	Debit(ctx context.Context, uid string, amount int64, ptype model.PointType, description string, relatedID *string) error
	Balance(ctx context.Context, uid string) (int64, error)
	History(ctx context.Context, uid string, limit int) ([]model.PointHistory, error)
}

type pointService struct {
	repo repository.PointRepository
}

func NewPointService(repo repository.PointRepository) PointService {
	return &pointService{repo: repo}
}

func (s *pointService) Credit(ctx context.Context, uid string, amount int64, ptype model.PointType, description string, relatedID *string) error {
	if amount <= 0 {
		return errors.New("amount must be positive")
	}
	return s.translate(s.repo.Credit(ctx, uid, amount, ptype, description, relatedID))
}

func (s *pointService) Debit(ctx context.Context, uid string, amount int64, ptype model.PointType, description string, relatedID *string) error {
	if amount <= 0 {
		return errors.New("amount must be positive")
	}
	return s.translate(s.repo.Debit(ctx, uid, amount, ptype, description, relatedID))
}

func (s *pointService) Balance(ctx context.Context, uid string) (int64, error) {
	balance, err := s.repo.Balance(ctx, uid)
	if err != nil {
		return 0, s.translate(err)
	}
	return balance, nil
}

func (s *pointService) History(ctx context.Context, uid string, limit int) ([]model.PointHistory, error) {
	return s.repo.History(ctx, uid, limit)
}

func (s *pointService) translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
