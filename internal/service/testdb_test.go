package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ballgenius/ballgenius-backend/internal/config"
	"github.com/ballgenius/ballgenius-backend/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Game{},
		&model.Prediction{},
		&model.Bet{},
		&model.BetPool{},
		&model.PointHistory{},
		&model.ShopItem{},
		&model.UserInventory{},
	))
	return db
}

func testGameConfig() config.GameConfig {
	return config.GameConfig{
		InitialUserPoints:       1000,
		DailyLoginPoints:        10,
		PredictionWinPoints:     50,
		PerfectPredictionPoints: 100,
		MinimumBetAmount:        10,
		MaximumBetAmount:        1000,
		HouseEdge:               0.05,
		MinOdds:                 1.1,
		MaxOdds:                 10.0,
	}
}

func seedTestUser(t *testing.T, db *gorm.DB, uid string, points int64) *model.User {
	t.Helper()
	u := &model.User{UID: uid, Nickname: "player-" + uid, Points: points}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedTestGame(t *testing.T, db *gorm.DB, id string, status model.GameStatus, start time.Time) *model.Game {
	t.Helper()
	g := &model.Game{
		ID:           id,
		Date:         start.Format("20060102"),
		StartTime:    start,
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

func countHistory(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.PointHistory{}).Count(&n).Error)
	return n
}

func userBalance(t *testing.T, db *gorm.DB, uid string) int64 {
	t.Helper()
	var u model.User
	require.NoError(t, db.Where("uid = ?", uid).First(&u).Error)
	return u.Points
}
