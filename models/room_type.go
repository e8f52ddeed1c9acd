package models

import "time"

type RoomType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Price     int       `json:"price"` // per night
	NumBed    int       `json:"numBed"`
	People    int       `json:"people"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
