package models

import (
	"encoding/json"
	"fmt"
	"time"

	"stayhub/constants"
)

type Room struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name"`
	Note       string          `json:"note"`
	State      string          `json:"state" gorm:"default:READY_TO_SERVE;index"`
	RoomTypeID uint            `json:"roomTypeId"`
	FloorID    uint            `json:"floorId"`
	Avatar     string          `json:"avatar"`
	Img        json.RawMessage `json:"img" gorm:"type:json"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomType   RoomType        `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Floor      Floor           `json:"floor" gorm:"foreignKey:FloorID"`
}

var roomStates = map[string]bool{
	constants.RoomStateReadyToServe: true,
	constants.RoomStateBeingCleaned: true,
	constants.RoomStateMaintenance:  true,
	constants.RoomStateOccupied:     true,
}

func (r *Room) ValidateState() error {
	if !roomStates[r.State] {
		return fmt.Errorf("invalid room state: %q", r.State)
	}
	return nil
}

// ReadyToServe reports whether the room may appear in availability results
func (r *Room) ReadyToServe() bool {
	return r.State == constants.RoomStateReadyToServe
}
