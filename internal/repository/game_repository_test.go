package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedGame(t *testing.T, db *gorm.DB, id string, status model.GameStatus) *model.Game {
	t.Helper()
	g := &model.Game{
		ID:           id,
		Date:         "20250401",
		StartTime:    time.Date(2025, 4, 1, 18, 30, 0, 0, time.UTC),
		Stadium:      "잠실",
		HomeTeamID:   "LG",
		HomeTeamName: "LG 트윈스",
		AwayTeamID:   "OB",
		AwayTeamName: "두산 베어스",
		Status:       status,
	}
	require.NoError(t, db.Create(g).Error)
	return g
}

func TestRecordResultIsOneShot(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepository(db)
	ctx := context.Background()
	seedGame(t, db, "g1", model.GameStatusLive)

	transitioned, err := repo.RecordResult(ctx, "g1", 5, 3)
	require.NoError(t, err)
	assert.True(t, transitioned)

	g, err := repo.FindByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, model.GameStatusCompleted, g.Status)
	require.NotNil(t, g.HomeScore)
	assert.Equal(t, 5, *g.HomeScore)

	// A second result, even a different one, bounces off the terminal row.
	transitioned, err = repo.RecordResult(ctx, "g1", 7, 1)
	require.NoError(t, err)
	assert.False(t, transitioned)

	g, err = repo.FindByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 5, *g.HomeScore)
}

func TestUpsertSkipsTerminalRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepository(db)
	ctx := context.Background()
	g := seedGame(t, db, "g1", model.GameStatusScheduled)

	g.Stadium = "고척"
	g.Status = model.GameStatusLive
	require.NoError(t, repo.Upsert(ctx, g))

	fresh, err := repo.FindByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "고척", fresh.Stadium)
	assert.Equal(t, model.GameStatusLive, fresh.Status)

	_, err = repo.MarkCancelled(ctx, "g1")
	require.NoError(t, err)

	g.Stadium = "문학"
	g.Status = model.GameStatusScheduled
	require.NoError(t, repo.Upsert(ctx, g))

	fresh, err = repo.FindByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "고척", fresh.Stadium)
	assert.Equal(t, model.GameStatusCancelled, fresh.Status)
}

func TestMarkCancelled(t *testing.T) {
	db := newTestDB(t)
	repo := NewGameRepository(db)
	ctx := context.Background()
	seedGame(t, db, "g1", model.GameStatusScheduled)

	transitioned, err := repo.MarkCancelled(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, transitioned)

	transitioned, err = repo.MarkCancelled(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, transitioned)
}
