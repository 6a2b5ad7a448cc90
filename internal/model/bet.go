package model

import "time"

type BetStatus string

const (
	BetStatusPending BetStatus = "PENDING"
	BetStatusWin     BetStatus = "WIN"
	BetStatusLose    BetStatus = "LOSE"
	BetStatusVoid    BetStatus = "VOID"
)

// Bet stakes points on HOME or AWAY. Multiple bets per (user, game) are
// allowed. Odds hold the quote snapshot taken at placement time; the payout is
// recomputed from realized pools at settlement.
type Bet struct {
	ID              string          `gorm:"primaryKey;size:36"`
	UserUID         string          `gorm:"column:user_uid;size:128;not null;index"`
	GameID          string          `gorm:"column:game_id;size:32;not null;index"`
	Amount          int64           `gorm:"not null"`
	PredictedWinner PredictedResult `gorm:"size:8;not null"`
	Odds            float64         `gorm:"not null"`
	Status          BetStatus       `gorm:"size:16;not null;default:PENDING;index"`
	ActualWin       int64           `gorm:"column:actual_win;not null;default:0"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

func (Bet) TableName() string {
	return "bets"
}
