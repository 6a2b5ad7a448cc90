package repository

import (
	"fmt"
	"strings"
	"testing"

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

func seedUser(t *testing.T, db *gorm.DB, uid string, points int64) *model.User {
	t.Helper()
	u := &model.User{UID: uid, Nickname: "player-" + uid, Points: points}
	require.NoError(t, db.Create(u).Error)
	return u
}

func historyCount(t *testing.T, db *gorm.DB, uid string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.PointHistory{}).Where("user_uid = ?", uid).Count(&n).Error)
	return n
}

func balanceOf(t *testing.T, db *gorm.DB, uid string) int64 {
	t.Helper()
	var u model.User
	require.NoError(t, db.Where("uid = ?", uid).First(&u).Error)
	return u.Points
}
