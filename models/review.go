package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	GuestID   uint      `json:"guestId"`
	Comment   string    `json:"comment"`
	Star      int       `json:"star"` // 1..5
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Guest     Guest     `json:"guest" gorm:"foreignKey:GuestID"`
}
