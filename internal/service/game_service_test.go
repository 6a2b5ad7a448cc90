package service

import (
	"context"
	"testing"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/ballgenius/ballgenius-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGameService(t *testing.T, db *gorm.DB) GameService {
	t.Helper()
	return NewGameService(
		repository.NewGameRepository(db),
		repository.NewPredictionRepository(db),
		repository.NewBetRepository(db),
	)
}

func TestListByDateCarriesCallerRows(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(t, db)
	ctx := context.Background()

	start := time.Date(2025, 4, 1, 18, 30, 0, 0, time.UTC)
	seedTestGame(t, db, "g1", model.GameStatusScheduled, start)
	seedTestUser(t, db, "u1", 1000)

	require.NoError(t, db.Create(&model.Prediction{
		ID: "p1", UserUID: "u1", GameID: "g1",
		PredictedWinner: model.ResultHome, Status: model.PredictionStatusPending,
	}).Error)
	require.NoError(t, db.Create(&model.Bet{
		ID: "b-old", UserUID: "u1", GameID: "g1", Amount: 100,
		PredictedWinner: model.ResultHome, Status: model.BetStatusPending,
		CreatedAt: start.Add(-2 * time.Hour),
	}).Error)
	require.NoError(t, db.Create(&model.Bet{
		ID: "b-new", UserUID: "u1", GameID: "g1", Amount: 50,
		PredictedWinner: model.ResultAway, Status: model.BetStatusPending,
		CreatedAt: start.Add(-90 * time.Minute),
	}).Error)
	require.NoError(t, db.Create(&model.BetPool{
		GameID: "g1", HomePool: 100, AwayPool: 50, HomeOdds: 1.425, AwayOdds: 2.85,
	}).Error)

	games, err := svc.ListByDate(ctx, "20250401", "u1")
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	require.NotNil(t, g.Prediction)
	assert.Equal(t, "p1", g.Prediction.ID)
	require.NotNil(t, g.Bet)
	assert.Equal(t, "b-new", g.Bet.ID)
	require.NotNil(t, g.Pool)
	assert.Equal(t, int64(100), g.Pool.HomePool)

	// Anonymous callers get the game and pool only.
	games, err = svc.ListByDate(ctx, "20250401", "")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Nil(t, games[0].Prediction)
	assert.Nil(t, games[0].Bet)
	assert.NotNil(t, games[0].Pool)
}
