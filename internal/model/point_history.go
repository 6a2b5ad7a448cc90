package model

import "time"

// PointType is the closed set of ledger categories. Keeping it an enum (rather
// than free-form strings) prevents typos from minting unrecognized categories.
type PointType string

const (
	PointTypeSignupBonus       PointType = "SIGNUP_BONUS"
	PointTypeDailyLogin        PointType = "DAILY_LOGIN"
	PointTypePredictionWin     PointType = "PREDICTION_WIN"
	PointTypePredictionPerfect PointType = "PREDICTION_PERFECT"
	PointTypeStreakBonus       PointType = "STREAK_BONUS"
	PointTypeBetPlace          PointType = "BET_PLACE"
	PointTypeBetWin            PointType = "BET_WIN"
	PointTypeBetRefund         PointType = "BET_REFUND"
	PointTypePurchase          PointType = "PURCHASE"
)

// PointHistory is the append-only ledger. Rows are never updated or deleted;
// the sum of a user's amounts equals the user's current balance.
type PointHistory struct {
	ID          string    `gorm:"primaryKey;size:36"`
	UserUID     string    `gorm:"column:user_uid;size:128;not null;index"`
	Amount      int64     `gorm:"not null"` // signed: credit > 0, debit < 0
	Type        PointType `gorm:"size:32;not null"`
	Description string    `gorm:"size:255"`
	RelatedID   *string   `gorm:"column:related_id;size:36"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (PointHistory) TableName() string {
	return "point_histories"
}
