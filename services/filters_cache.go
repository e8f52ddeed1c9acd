package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"stayhub/dto"
)

// A chat session's filters survive across turns so a guest can refine a
// search ("under 1000" after "double room") instead of restating it.

const lastFiltersPrefix = "last_filters:"

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.ChatFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, lastFiltersPrefix+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.ChatFilters, error) {
	val, err := rdb.Get(ctx, lastFiltersPrefix+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.ChatFilters
	if err := json.Unmarshal([]byte(val), &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, lastFiltersPrefix+key).Err()
}

// MergeFilters overlays a turn's filters on the previous ones. New values win;
// setting a check-in after the remembered check-out (or the reverse) drops the
// stale bound instead of producing an impossible window.
func MergeFilters(old, next *dto.ChatFilters) *dto.ChatFilters {
	next.RoomTypeID = orUintPointer(next.RoomTypeID, old.RoomTypeID)
	next.PriceRange = orString(next.PriceRange, old.PriceRange)
	next.StarRating = orIntPointer(next.StarRating, old.StarRating)

	if next.CheckIn != nil && old.CheckOut != nil && !next.CheckIn.Before(*old.CheckOut) {
		next.CheckOut = orTimePointer(next.CheckOut, nil)
	} else {
		next.CheckOut = orTimePointer(next.CheckOut, old.CheckOut)
	}

	if next.CheckOut != nil && old.CheckIn != nil && !next.CheckOut.After(*old.CheckIn) {
		next.CheckIn = orTimePointer(next.CheckIn, nil)
	} else {
		next.CheckIn = orTimePointer(next.CheckIn, old.CheckIn)
	}

	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orUintPointer(newVal, oldVal *uint) *uint {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orTimePointer(newVal, oldVal *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
