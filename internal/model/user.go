package model

import "time"

// User is keyed by the Firebase UID. Points are mutated only through the
// ledger helpers in the repository layer; the balance never goes negative.
type User struct {
	UID                   string     `gorm:"column:uid;primaryKey;size:128"`
	Nickname              string     `gorm:"size:64;not null"`
	Points                int64      `gorm:"not null;default:0"`
	TotalPredictions      int        `gorm:"not null;default:0"`
	SuccessfulPredictions int        `gorm:"not null;default:0"`
	CurrentStreak         int        `gorm:"not null;default:0"`
	MaxStreak             int        `gorm:"not null;default:0"`
	TotalBets             int        `gorm:"not null;default:0"`
	SuccessfulBets        int        `gorm:"not null;default:0"`
	LastLoginAt           *time.Time `gorm:"column:last_login_at"`
	CreatedAt             time.Time  `gorm:"autoCreateTime"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
