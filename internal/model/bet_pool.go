package model

import "time"

// BetPool aggregates the total stake per side for one game. It is written on
// every bet placement and read-only during settlement, which makes re-runs use
// the same pool denominators.
type BetPool struct {
	GameID    string    `gorm:"column:game_id;primaryKey;size:32"`
	HomePool  int64     `gorm:"column:home_pool;not null;default:0"`
	AwayPool  int64     `gorm:"column:away_pool;not null;default:0"`
	HomeOdds  float64   `gorm:"column:home_odds;not null;default:2.0"`
	AwayOdds  float64   `gorm:"column:away_odds;not null;default:2.0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (BetPool) TableName() string {
	return "bet_pools"
}
