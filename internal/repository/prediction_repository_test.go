package repository

import (
	"context"
	"testing"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBumpsTotalPredictionsAtomically(t *testing.T) {
	db := newTestDB(t)
	repo := NewPredictionRepository(db)
	ctx := context.Background()
	seedUser(t, db, "u1", 1000)

	require.NoError(t, repo.Create(ctx, &model.Prediction{
		UserUID: "u1", GameID: "g1", PredictedWinner: model.ResultHome,
	}))

	var u model.User
	require.NoError(t, db.Where("uid = ?", "u1").First(&u).Error)
	assert.Equal(t, 1, u.TotalPredictions)

	// The unique (user, game) index rejects the duplicate and the whole
	// transaction rolls back: the counter must not move.
	err := repo.Create(ctx, &model.Prediction{
		UserUID: "u1", GameID: "g1", PredictedWinner: model.ResultAway,
	})
	require.Error(t, err)

	require.NoError(t, db.Where("uid = ?", "u1").First(&u).Error)
	assert.Equal(t, 1, u.TotalPredictions)

	var rows int64
	require.NoError(t, db.Model(&model.Prediction{}).Where("user_uid = ?", "u1").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}
