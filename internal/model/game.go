package model

import "time"

type GameStatus string

const (
	GameStatusScheduled GameStatus = "SCHEDULED"
	GameStatusLive      GameStatus = "LIVE"
	GameStatusCompleted GameStatus = "COMPLETED"
	GameStatusCancelled GameStatus = "CANCELLED"
)

// IsTerminal reports whether the status admits no further transition.
func (s GameStatus) IsTerminal() bool {
	return s == GameStatusCompleted || s == GameStatusCancelled
}

// Game uses the provider-issued game ID (yyyymmdd + away + home + header) as
// its primary key. Scores stay nil until the game completes.
type Game struct {
	ID           string     `gorm:"primaryKey;size:32"`
	Date         string     `gorm:"size:8;index;not null"` // YYYYMMDD
	StartTime    time.Time  `gorm:"column:start_time;not null"`
	Stadium      string     `gorm:"size:64"`
	HomeTeamID   string     `gorm:"column:home_team_id;size:8;not null"`
	HomeTeamName string     `gorm:"column:home_team_name;size:32;not null"`
	AwayTeamID   string     `gorm:"column:away_team_id;size:8;not null"`
	AwayTeamName string     `gorm:"column:away_team_name;size:32;not null"`
	Status       GameStatus `gorm:"size:16;not null;default:SCHEDULED"`
	HomeScore    *int       `gorm:"column:home_score"`
	AwayScore    *int       `gorm:"column:away_score"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (Game) TableName() string {
	return "games"
}
