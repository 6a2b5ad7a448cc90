package model

import "time"

type UserInventory struct {
	ID         string    `gorm:"primaryKey;size:36"`
	UserUID    string    `gorm:"column:user_uid;size:128;not null;index"`
	ItemID     uint64    `gorm:"column:item_id;not null;index"`
	AcquiredAt time.Time `gorm:"column:acquired_at;autoCreateTime"`
}

func (UserInventory) TableName() string {
	return "user_inventories"
}
