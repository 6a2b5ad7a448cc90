package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWithSignupBonus(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	u := &model.User{UID: "u1", Nickname: "player-u1"}
	require.NoError(t, repo.CreateWithSignupBonus(context.Background(), u, 1000))

	assert.Equal(t, int64(1000), u.Points)
	assert.Equal(t, int64(1000), balanceOf(t, db, "u1"))

	var entry model.PointHistory
	require.NoError(t, db.Where("user_uid = ?", "u1").First(&entry).Error)
	assert.Equal(t, model.PointTypeSignupBonus, entry.Type)
	assert.Equal(t, int64(1000), entry.Amount)
}

func TestApplyDailyBonusOncePerDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u1", 0)

	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	granted, err := repo.ApplyDailyBonus(ctx, "u1", day1, 10)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, int64(10), balanceOf(t, db, "u1"))

	// Same calendar day, later hour: no second grant.
	granted, err = repo.ApplyDailyBonus(ctx, "u1", day1.Add(8*time.Hour), 10)
	require.NoError(t, err)
	assert.False(t, granted)
	assert.Equal(t, int64(10), balanceOf(t, db, "u1"))

	// Next day it fires again.
	granted, err = repo.ApplyDailyBonus(ctx, "u1", day1.AddDate(0, 0, 1), 10)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, int64(20), balanceOf(t, db, "u1"))
}
