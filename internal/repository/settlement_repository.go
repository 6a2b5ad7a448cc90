package repository

import (
	"context"
	"fmt"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/settlement"
	"gorm.io/gorm"
)

// PredictionResolver maps a pending prediction and its owner to an outcome.
// BetResolver does the same for bets. Both are pure; the repository supplies
// the rows read inside the transaction and applies whatever comes back.
type (
	PredictionResolver func(p *model.Prediction, u *model.User) settlement.PredictionOutcome
	BetResolver        func(b *model.Bet) settlement.BetOutcome
)

type SettlementRepository interface {
	// ApplyPrediction settles one prediction in its own transaction. The row
	// is claimed with a conditional PENDING update; a claim miss (already
	// settled by an earlier or concurrent run) returns applied=false and is
	// never an error, which is what makes re-running settlement safe.
	ApplyPrediction(ctx context.Context, predictionID string, resolve PredictionResolver) (applied bool, outcome settlement.PredictionOutcome, err error)
	// ApplyBet settles one bet in its own transaction, same claim discipline.
	ApplyBet(ctx context.Context, betID string, resolve BetResolver) (applied bool, outcome settlement.BetOutcome, err error)
}

type settlementRepository struct {
	db *gorm.DB
}

func NewSettlementRepository(db *gorm.DB) SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) ApplyPrediction(ctx context.Context, predictionID string, resolve PredictionResolver) (bool, settlement.PredictionOutcome, error) {
	var outcome settlement.PredictionOutcome
	applied := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Prediction
		if err := tx.Where("id = ?", predictionID).First(&p).Error; err != nil {
			return err
		}
		if p.Status != model.PredictionStatusPending {
			return nil
		}

		var u model.User
		if err := tx.Where("uid = ?", p.UserUID).First(&u).Error; err != nil {
			return err
		}

		outcome = resolve(&p, &u)

		res := tx.Model(&model.Prediction{}).
			Where("id = ? AND status = ?", predictionID, model.PredictionStatusPending).
			Updates(map[string]interface{}{
				"status":        outcome.Status,
				"points_earned": outcome.PointsEarned,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		applied = true

		userUpdates := map[string]interface{}{
			"current_streak": outcome.NewStreak,
			"max_streak":     outcome.NewMaxStreak,
		}
		if outcome.Won() {
			userUpdates["successful_predictions"] = gorm.Expr("successful_predictions + 1")
		}
		if err := tx.Model(&model.User{}).Where("uid = ?", p.UserUID).Updates(userUpdates).Error; err != nil {
			return err
		}

		if outcome.PointsEarned > 0 {
			relatedID := p.ID
			desc := fmt.Sprintf("prediction on game %s", p.GameID)
			if err := applyPointDelta(tx, p.UserUID, outcome.PointsEarned, outcome.PointType, desc, &relatedID); err != nil {
				return err
			}
		}
		if outcome.StreakBonus > 0 {
			relatedID := p.ID
			desc := fmt.Sprintf("%d-win streak bonus", outcome.NewStreak)
			if err := applyPointDelta(tx, p.UserUID, outcome.StreakBonus, model.PointTypeStreakBonus, desc, &relatedID); err != nil {
				return err
			}
		}
		return nil
	})

	return applied, outcome, err
}

func (r *settlementRepository) ApplyBet(ctx context.Context, betID string, resolve BetResolver) (bool, settlement.BetOutcome, error) {
	var outcome settlement.BetOutcome
	applied := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b model.Bet
		if err := tx.Where("id = ?", betID).First(&b).Error; err != nil {
			return err
		}
		if b.Status != model.BetStatusPending {
			return nil
		}

		outcome = resolve(&b)

		res := tx.Model(&model.Bet{}).
			Where("id = ? AND status = ?", betID, model.BetStatusPending).
			Updates(map[string]interface{}{
				"status":     outcome.Status,
				"actual_win": outcome.Payout,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		applied = true

		if outcome.Status != model.BetStatusWin {
			return nil
		}
		if err := tx.Model(&model.User{}).
			Where("uid = ?", b.UserUID).
			Update("successful_bets", gorm.Expr("successful_bets + 1")).Error; err != nil {
			return err
		}
		relatedID := b.ID
		desc := fmt.Sprintf("bet won on game %s", b.GameID)
		return applyPointDelta(tx, b.UserUID, outcome.Payout, model.PointTypeBetWin, desc, &relatedID)
	})

	return applied, outcome, err
}
