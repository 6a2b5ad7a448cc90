package repository

import (
	"context"
	"testing"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPointRepositoryCreditAndDebit(t *testing.T) {
	db := newTestDB(t)
	repo := NewPointRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u1", 0)

	require.NoError(t, repo.Credit(ctx, "u1", 1000, model.PointTypeSignupBonus, "welcome bonus", nil))
	balance, err := repo.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	require.NoError(t, repo.Debit(ctx, "u1", 300, model.PointTypePurchase, "badge", nil))
	balance, err = repo.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(700), balance)

	history, err := repo.History(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestDebitInsufficientLeavesNoTrace(t *testing.T) {
	db := newTestDB(t)
	repo := NewPointRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u1", 100)

	err := repo.Debit(ctx, "u1", 101, model.PointTypeBetPlace, "stake", nil)
	require.ErrorIs(t, err, ErrInsufficientPoints)

	assert.Equal(t, int64(100), balanceOf(t, db, "u1"))
	assert.Equal(t, int64(0), historyCount(t, db, "u1"))

	// Exactly the balance is allowed; zero is a valid floor.
	require.NoError(t, repo.Debit(ctx, "u1", 100, model.PointTypeBetPlace, "stake", nil))
	assert.Equal(t, int64(0), balanceOf(t, db, "u1"))
}

func TestDebitUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewPointRepository(db)

	err := repo.Debit(context.Background(), "ghost", 10, model.PointTypePurchase, "", nil)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestLedgerSumMatchesBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewPointRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u1", 0)

	require.NoError(t, repo.Credit(ctx, "u1", 1000, model.PointTypeSignupBonus, "", nil))
	require.NoError(t, repo.Credit(ctx, "u1", 10, model.PointTypeDailyLogin, "", nil))
	require.NoError(t, repo.Debit(ctx, "u1", 250, model.PointTypeBetPlace, "", nil))
	require.NoError(t, repo.Credit(ctx, "u1", 475, model.PointTypeBetWin, "", nil))
	assert.ErrorIs(t, repo.Debit(ctx, "u1", 10000, model.PointTypePurchase, "", nil), ErrInsufficientPoints)

	var sum int64
	require.NoError(t, db.Model(&model.PointHistory{}).
		Where("user_uid = ?", "u1").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error)
	assert.Equal(t, balanceOf(t, db, "u1"), sum)
}
