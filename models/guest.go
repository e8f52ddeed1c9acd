package models

import "time"

type Guest struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Email         string    `json:"email" gorm:"uniqueIndex"`
	PhoneNumber   string    `json:"phoneNumber"`
	Password      string    `json:"-"`
	Role          int       `json:"role" gorm:"default:0"`
	Status        int       `json:"status" gorm:"default:1"`
	Avatar        string    `json:"avatar"`
	Gender        int       `json:"gender"`
	DateOfBirth   string    `json:"dateOfBirth"`
	IsVerified    bool      `json:"isVerified" gorm:"default:false"`
	Code          string    `json:"-"`
	CodeCreatedAt time.Time `json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
