package repository

import (
	"context"
	"fmt"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuoteFunc computes the odds snapshot for the given pool totals. Passed in by
// the service so the pricing policy stays out of the storage layer.
type QuoteFunc func(homePool, awayPool int64) (homeOdds, awayOdds float64)

type BetRepository interface {
	// Place debits the stake, inserts the bet with a fresh odds snapshot, and
	// folds the stake into the game's pool, all in one transaction. The bet's
	// odds reflect the pool including this stake.
	Place(ctx context.Context, b *model.Bet, quote QuoteFunc) error
	ListByUser(ctx context.Context, uid string, limit, offset int) ([]model.Bet, int64, error)
	// FindLatestByUserAndGame returns the user's most recent bet on the game.
	FindLatestByUserAndGame(ctx context.Context, uid, gameID string) (*model.Bet, error)
	ListPendingByGame(ctx context.Context, gameID string) ([]model.Bet, error)
	GetPool(ctx context.Context, gameID string) (*model.BetPool, error)
	// VoidPendingWithRefund voids every remaining PENDING bet on the game and
	// refunds each stake through the ledger, one transaction per bet.
	VoidPendingWithRefund(ctx context.Context, gameID string) (int64, error)
}

type betRepository struct {
	db *gorm.DB
}

func NewBetRepository(db *gorm.DB) BetRepository {
	return &betRepository{db: db}
}

func (r *betRepository) Place(ctx context.Context, b *model.Bet, quote QuoteFunc) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.Status = model.BetStatusPending

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		relatedID := b.ID
		desc := fmt.Sprintf("bet placed on %s", b.GameID)
		if err := applyPointDelta(tx, b.UserUID, -b.Amount, model.PointTypeBetPlace, desc, &relatedID); err != nil {
			return err
		}

		var pool model.BetPool
		if err := tx.Where("game_id = ?", b.GameID).
			FirstOrCreate(&pool, &model.BetPool{GameID: b.GameID}).Error; err != nil {
			return err
		}
		if b.PredictedWinner == model.ResultHome {
			pool.HomePool += b.Amount
		} else {
			pool.AwayPool += b.Amount
		}
		pool.HomeOdds, pool.AwayOdds = quote(pool.HomePool, pool.AwayPool)

		if err := tx.Model(&model.BetPool{}).
			Where("game_id = ?", b.GameID).
			Updates(map[string]interface{}{
				"home_pool": pool.HomePool,
				"away_pool": pool.AwayPool,
				"home_odds": pool.HomeOdds,
				"away_odds": pool.AwayOdds,
			}).Error; err != nil {
			return err
		}

		if b.PredictedWinner == model.ResultHome {
			b.Odds = pool.HomeOdds
		} else {
			b.Odds = pool.AwayOdds
		}

		if err := tx.Create(b).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("uid = ?", b.UserUID).
			Update("total_bets", gorm.Expr("total_bets + 1")).Error
	})
}

func (r *betRepository) ListByUser(ctx context.Context, uid string, limit, offset int) ([]model.Bet, int64, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	q := r.db.WithContext(ctx).Model(&model.Bet{}).Where("user_uid = ?", uid)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Bet
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *betRepository) FindLatestByUserAndGame(ctx context.Context, uid, gameID string) (*model.Bet, error) {
	var b model.Bet
	if err := r.db.WithContext(ctx).
		Where("user_uid = ? AND game_id = ?", uid, gameID).
		Order("created_at DESC").
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *betRepository) ListPendingByGame(ctx context.Context, gameID string) ([]model.Bet, error) {
	var list []model.Bet
	if err := r.db.WithContext(ctx).
		Where("game_id = ? AND status = ?", gameID, model.BetStatusPending).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *betRepository) GetPool(ctx context.Context, gameID string) (*model.BetPool, error) {
	var pool model.BetPool
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).First(&pool).Error; err != nil {
		return nil, err
	}
	return &pool, nil
}

func (r *betRepository) VoidPendingWithRefund(ctx context.Context, gameID string) (int64, error) {
	pending, err := r.ListPendingByGame(ctx, gameID)
	if err != nil {
		return 0, err
	}

	var voided int64
	for i := range pending {
		b := pending[i]
		claimed := false
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&model.Bet{}).
				Where("id = ? AND status = ?", b.ID, model.BetStatusPending).
				Update("status", model.BetStatusVoid)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return nil
			}
			claimed = true
			relatedID := b.ID
			desc := fmt.Sprintf("stake refund, game %s cancelled", b.GameID)
			return applyPointDelta(tx, b.UserUID, b.Amount, model.PointTypeBetRefund, desc, &relatedID)
		})
		if err != nil {
			return voided, err
		}
		if claimed {
			voided++
		}
	}
	return voided, nil
}
