package dto

import (
	"encoding/json"
	"time"
)

// AvailableRoom is a room enriched with type, floor and rating metadata,
// recomputed on every availability query.
type AvailableRoom struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Note          string  `json:"note,omitempty"`
	State         string  `json:"state"`
	RoomTypeID    uint    `json:"roomTypeId"`
	RoomTypeName  string  `json:"roomTypeName"`
	RoomTypePrice int     `json:"roomTypePrice"`
	FloorID       uint    `json:"floorId"`
	FloorName     string  `json:"floorName"`
	Avatar        string  `json:"avatar,omitempty"`
	RatingCount   int     `json:"ratingCount"`
	RatingAverage float64 `json:"ratingAverage"`
	StarRating    int     `json:"starRating"` // rounded average, 0 when unrated
}

// SearchOptions narrows and orders an availability query. Zero values mean
// "no filter". Today is injected so results are reproducible in tests.
type SearchOptions struct {
	Today      time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	RoomTypeID *uint
	PriceRange string
	SortOrder  string
	StarRating *int
}

type RoomRequest struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Note       string          `json:"note"`
	State      string          `json:"state"`
	RoomTypeID uint            `json:"roomTypeId"`
	FloorID    uint            `json:"floorId"`
	Avatar     string          `json:"avatar"`
	Img        json.RawMessage `json:"img"`
}

type RoomStateRequest struct {
	ID    uint   `json:"id"`
	State string `json:"state"`
}

// RoomCalendarDay is one day of the per-room occupancy calendar
type RoomCalendarDay struct {
	Date     string        `json:"date"`
	Occupied bool          `json:"occupied"`
	Guest    *GuestContact `json:"guest,omitempty"`
}

type GuestContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
