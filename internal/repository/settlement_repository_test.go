package repository

import (
	"context"
	"testing"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func winResolver(points, bonus int64) PredictionResolver {
	return func(p *model.Prediction, u *model.User) settlement.PredictionOutcome {
		return settlement.PredictionOutcome{
			Status:       model.PredictionStatusWin,
			PointsEarned: points,
			PointType:    model.PointTypePredictionWin,
			StreakBonus:  bonus,
			NewStreak:    u.CurrentStreak + 1,
			NewMaxStreak: u.MaxStreak + 1,
		}
	}
}

func TestApplyPredictionClaimsExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettlementRepository(db)
	ctx := context.Background()

	seedUser(t, db, "u1", 0)
	p := &model.Prediction{
		ID:              "pred-1",
		UserUID:         "u1",
		GameID:          "g1",
		PredictedWinner: model.ResultHome,
		Status:          model.PredictionStatusPending,
	}
	require.NoError(t, db.Create(p).Error)

	applied, outcome, err := repo.ApplyPrediction(ctx, "pred-1", winResolver(50, 25))
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, model.PredictionStatusWin, outcome.Status)

	assert.Equal(t, int64(75), balanceOf(t, db, "u1"))
	assert.Equal(t, int64(2), historyCount(t, db, "u1")) // win + streak bonus

	var u model.User
	require.NoError(t, db.Where("uid = ?", "u1").First(&u).Error)
	assert.Equal(t, 1, u.CurrentStreak)
	assert.Equal(t, 1, u.SuccessfulPredictions)

	// Re-applying is a no-op: the claim misses and nothing moves.
	applied, _, err = repo.ApplyPrediction(ctx, "pred-1", winResolver(50, 25))
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, int64(75), balanceOf(t, db, "u1"))
	assert.Equal(t, int64(2), historyCount(t, db, "u1"))
}

func TestApplyPredictionLoss(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettlementRepository(db)

	seedUser(t, db, "u1", 0)
	require.NoError(t, db.Create(&model.Prediction{
		ID: "pred-1", UserUID: "u1", GameID: "g1",
		PredictedWinner: model.ResultAway, Status: model.PredictionStatusPending,
	}).Error)

	applied, _, err := repo.ApplyPrediction(context.Background(), "pred-1", func(p *model.Prediction, u *model.User) settlement.PredictionOutcome {
		return settlement.PredictionOutcome{
			Status:       model.PredictionStatusLose,
			NewStreak:    0,
			NewMaxStreak: u.MaxStreak,
		}
	})
	require.NoError(t, err)
	assert.True(t, applied)

	assert.Equal(t, int64(0), balanceOf(t, db, "u1"))
	assert.Equal(t, int64(0), historyCount(t, db, "u1"))

	var p model.Prediction
	require.NoError(t, db.First(&p, "id = ?", "pred-1").Error)
	assert.Equal(t, model.PredictionStatusLose, p.Status)
}

func TestApplyBetWinAndLose(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettlementRepository(db)
	ctx := context.Background()

	seedUser(t, db, "winner", 0)
	seedUser(t, db, "loser", 0)
	require.NoError(t, db.Create(&model.Bet{
		ID: "bet-w", UserUID: "winner", GameID: "g1", Amount: 100,
		PredictedWinner: model.ResultHome, Status: model.BetStatusPending,
	}).Error)
	require.NoError(t, db.Create(&model.Bet{
		ID: "bet-l", UserUID: "loser", GameID: "g1", Amount: 100,
		PredictedWinner: model.ResultAway, Status: model.BetStatusPending,
	}).Error)

	resolve := func(b *model.Bet) settlement.BetOutcome {
		if b.PredictedWinner == model.ResultHome {
			return settlement.BetOutcome{Status: model.BetStatusWin, Payout: 195}
		}
		return settlement.BetOutcome{Status: model.BetStatusLose}
	}

	applied, outcome, err := repo.ApplyBet(ctx, "bet-w", resolve)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, int64(195), outcome.Payout)
	assert.Equal(t, int64(195), balanceOf(t, db, "winner"))

	applied, outcome, err = repo.ApplyBet(ctx, "bet-l", resolve)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, model.BetStatusLose, outcome.Status)
	assert.Equal(t, int64(0), balanceOf(t, db, "loser"))
	assert.Equal(t, int64(0), historyCount(t, db, "loser"))

	// A settled bet never pays twice.
	applied, _, err = repo.ApplyBet(ctx, "bet-w", resolve)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, int64(195), balanceOf(t, db, "winner"))
}
