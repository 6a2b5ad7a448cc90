package model

import "time"

type ShopItem struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:120;not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null"`
	Category    string    `gorm:"size:32;not null"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ShopItem) TableName() string {
	return "shop_items"
}
