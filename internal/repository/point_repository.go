package repository

import (
	"context"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"gorm.io/gorm"
)

type PointRepository interface {
	// Credit adds amount (> 0) to the user's balance and appends one +amount
	// ledger row, atomically.
	Credit(ctx context.Context, uid string, amount int64, ptype model.PointType, description string, relatedID *string) error
	// Debit removes amount (> 0); fails with ErrInsufficientPoints when the
	// balance cannot cover it, leaving no ledger row behind.
	Debit(ctx context.Context, uid string, amount int64, ptype model.PointType, description string, relatedID *string) error
	Balance(ctx context.Context, uid string) (int64, error)
	History(ctx context.Context, uid string, limit int) ([]model.PointHistory, error)
}

type pointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db: db}
}

func (r *pointRepository) Credit(ctx context.Context, uid string, amount int64, ptype model.PointType, description string, relatedID *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyPointDelta(tx, uid, amount, ptype, description, relatedID)
	})
}

func (r *pointRepository) Debit(ctx context.Context, uid string, amount int64, ptype model.PointType, description string, relatedID *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return applyPointDelta(tx, uid, -amount, ptype, description, relatedID)
	})
}

func (r *pointRepository) Balance(ctx context.Context, uid string) (int64, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Select("points").Where("uid = ?", uid).First(&user).Error; err != nil {
		return 0, err
	}
	return user.Points, nil
}

func (r *pointRepository) History(ctx context.Context, uid string, limit int) ([]model.PointHistory, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var entries []model.PointHistory
	if err := r.db.WithContext(ctx).
		Where("user_uid = ?", uid).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
