package dto

import "time"

type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatFilters is the search context a chat session accumulates across turns
type ChatFilters struct {
	RoomTypeID *uint      `json:"roomTypeId,omitempty"`
	PriceRange string     `json:"priceRange,omitempty"`
	StarRating *int       `json:"starRating,omitempty"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
}

// RoomSummary is the compact room card the bot answers searches with
type RoomSummary struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	RoomTypeName  string `json:"roomTypeName"`
	RoomTypePrice int    `json:"roomTypePrice"`
	StarRating    int    `json:"starRating"`
	Avatar        string `json:"avatar,omitempty"`
}

type ChatReply struct {
	Answer string        `json:"answer,omitempty"`
	Rooms  []RoomSummary `json:"rooms,omitempty"`
}
