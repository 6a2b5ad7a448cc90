package model

import "time"

// PredictedResult is the side a user picked (or the realized game result).
type PredictedResult string

const (
	ResultHome PredictedResult = "HOME"
	ResultAway PredictedResult = "AWAY"
	ResultDraw PredictedResult = "DRAW"
)

type PredictionStatus string

const (
	PredictionStatusPending PredictionStatus = "PENDING"
	PredictionStatusWin     PredictionStatus = "WIN"
	PredictionStatusLose    PredictionStatus = "LOSE"
	PredictionStatusVoid    PredictionStatus = "VOID"
)

// Prediction is a free pick; at most one per (user, game). The exact-score
// fields are optional and only pay out when both match the final score.
type Prediction struct {
	ID                 string           `gorm:"primaryKey;size:36"`
	UserUID            string           `gorm:"column:user_uid;size:128;not null;uniqueIndex:idx_predictions_user_game"`
	GameID             string           `gorm:"column:game_id;size:32;not null;uniqueIndex:idx_predictions_user_game;index"`
	PredictedWinner    PredictedResult  `gorm:"size:8;not null"`
	PredictedHomeScore *int             `gorm:"column:predicted_home_score"`
	PredictedAwayScore *int             `gorm:"column:predicted_away_score"`
	Status             PredictionStatus `gorm:"size:16;not null;default:PENDING;index"`
	PointsEarned       int64            `gorm:"column:points_earned;not null;default:0"`
	CreatedAt          time.Time        `gorm:"autoCreateTime"`
	UpdatedAt          time.Time        `gorm:"autoUpdateTime"`
}

func (Prediction) TableName() string {
	return "predictions"
}
