package repository

import (
	"context"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PredictionRepository interface {
	// Create inserts the prediction and bumps the owner's total_predictions in
	// one transaction, so the counter never drifts from the rows.
	Create(ctx context.Context, p *model.Prediction) error
	FindByUserAndGame(ctx context.Context, uid, gameID string) (*model.Prediction, error)
	ListByUser(ctx context.Context, uid string, status model.PredictionStatus, limit, offset int) ([]model.Prediction, int64, error)
	ListPendingByGame(ctx context.Context, gameID string) ([]model.Prediction, error)
	CountPendingByUser(ctx context.Context, uid string) (int64, error)
	// VoidPending flags every remaining PENDING prediction on the game as
	// VOID. Already-resolved rows keep their outcome.
	VoidPending(ctx context.Context, gameID string) (int64, error)
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Create(ctx context.Context, p *model.Prediction) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Status = model.PredictionStatusPending
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("uid = ?", p.UserUID).
			Update("total_predictions", gorm.Expr("total_predictions + 1")).Error
	})
}

func (r *predictionRepository) FindByUserAndGame(ctx context.Context, uid, gameID string) (*model.Prediction, error) {
	var p model.Prediction
	if err := r.db.WithContext(ctx).
		Where("user_uid = ? AND game_id = ?", uid, gameID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *predictionRepository) ListByUser(ctx context.Context, uid string, status model.PredictionStatus, limit, offset int) ([]model.Prediction, int64, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	q := r.db.WithContext(ctx).Model(&model.Prediction{}).Where("user_uid = ?", uid)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Prediction
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *predictionRepository) ListPendingByGame(ctx context.Context, gameID string) ([]model.Prediction, error) {
	var list []model.Prediction
	if err := r.db.WithContext(ctx).
		Where("game_id = ? AND status = ?", gameID, model.PredictionStatusPending).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *predictionRepository) CountPendingByUser(ctx context.Context, uid string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Prediction{}).
		Where("user_uid = ? AND status = ?", uid, model.PredictionStatusPending).
		Count(&count).Error
	return count, err
}

func (r *predictionRepository) VoidPending(ctx context.Context, gameID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Prediction{}).
		Where("game_id = ? AND status = ?", gameID, model.PredictionStatusPending).
		Updates(map[string]interface{}{
			"status":        model.PredictionStatusVoid,
			"points_earned": 0,
		})
	return res.RowsAffected, res.Error
}
