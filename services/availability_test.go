package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func booking(roomID uint, start time.Time, days int, state string) models.Booking {
	return models.Booking{
		RoomID:      roomID,
		BookingDate: start,
		RentalDays:  days,
		State:       state,
	}
}

func testRooms() []dto.AvailableRoom {
	return []dto.AvailableRoom{
		{ID: 1, Name: "101", RoomTypeID: 1, RoomTypePrice: 400, StarRating: 3},
		{ID: 2, Name: "102", RoomTypeID: 1, RoomTypePrice: 500, StarRating: 4},
		{ID: 3, Name: "201", RoomTypeID: 2, RoomTypePrice: 1000, StarRating: 4},
		{ID: 4, Name: "301", RoomTypeID: 3, RoomTypePrice: 2500, StarRating: 5},
	}
}

func TestComputeRentalDays(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"one night", day(2026, 9, 10), day(2026, 9, 11), 1},
		{"three nights", day(2026, 9, 10), day(2026, 9, 13), 3},
		{"same day is one night", day(2026, 9, 10), day(2026, 9, 10), 1},
		{"partial day rounds up", time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC), time.Date(2026, 9, 11, 18, 0, 0, 0, time.UTC), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeRentalDays(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeRentalDaysRoundTrip(t *testing.T) {
	// a booking built from the computed days always covers the request
	checkIn := day(2026, 9, 10)
	for days := 1; days <= 14; days++ {
		checkOut := checkIn.AddDate(0, 0, days)
		got := ComputeRentalDays(checkIn, checkOut)
		require.Equal(t, days, got)

		b := booking(1, checkIn, got, constants.BookingStatePending)
		assert.False(t, b.End().Before(checkOut))
	}
}

func TestListAvailableRoomsOccupiedToday(t *testing.T) {
	today := day(2026, 9, 10)
	bookings := []models.Booking{
		// covers today, excludes room 1
		booking(1, day(2026, 9, 9), 3, constants.BookingStateCommited),
		// ends today, half-open interval frees the room
		booking(2, day(2026, 9, 8), 2, constants.BookingStateCommited),
		// cancelled and expired bookings never block
		booking(3, day(2026, 9, 9), 3, constants.BookingStateCancelled),
		booking(4, day(2026, 9, 9), 3, constants.BookingStateExpired),
	}

	got := ListAvailableRooms(testRooms(), bookings, dto.SearchOptions{Today: today})

	ids := roomIDs(got)
	assert.NotContains(t, ids, uint(1))
	assert.Contains(t, ids, uint(2))
	assert.Contains(t, ids, uint(3))
	assert.Contains(t, ids, uint(4))
}

func TestListAvailableRoomsWindowConflict(t *testing.T) {
	today := day(2026, 9, 1)
	bookings := []models.Booking{
		booking(1, day(2026, 9, 10), 3, constants.BookingStatePending), // 10..13
	}

	t.Run("overlapping window excludes the room", func(t *testing.T) {
		got := ListAvailableRooms(testRooms(), bookings, dto.SearchOptions{
			Today:    today,
			CheckIn:  timePtr(day(2026, 9, 12)),
			CheckOut: timePtr(day(2026, 9, 14)),
		})
		assert.NotContains(t, roomIDs(got), uint(1))
	})

	t.Run("back to back stay does not conflict", func(t *testing.T) {
		got := ListAvailableRooms(testRooms(), bookings, dto.SearchOptions{
			Today:    today,
			CheckIn:  timePtr(day(2026, 9, 13)),
			CheckOut: timePtr(day(2026, 9, 15)),
		})
		assert.Contains(t, roomIDs(got), uint(1))
	})

	t.Run("window ending at start does not conflict", func(t *testing.T) {
		got := ListAvailableRooms(testRooms(), bookings, dto.SearchOptions{
			Today:    today,
			CheckIn:  timePtr(day(2026, 9, 8)),
			CheckOut: timePtr(day(2026, 9, 10)),
		})
		assert.Contains(t, roomIDs(got), uint(1))
	})
}

func TestListAvailableRoomsFilters(t *testing.T) {
	today := day(2026, 9, 1)

	t.Run("room type", func(t *testing.T) {
		typeID := uint(1)
		got := ListAvailableRooms(testRooms(), nil, dto.SearchOptions{Today: today, RoomTypeID: &typeID})
		assert.Equal(t, []uint{1, 2}, roomIDs(got))
	})

	t.Run("star rating", func(t *testing.T) {
		star := 4
		got := ListAvailableRooms(testRooms(), nil, dto.SearchOptions{Today: today, StarRating: &star})
		assert.Equal(t, []uint{2, 3}, roomIDs(got))
	})

	t.Run("price bucket", func(t *testing.T) {
		got := ListAvailableRooms(testRooms(), nil, dto.SearchOptions{Today: today, PriceRange: constants.PriceRangeMid})
		// 500 sits in the low bucket, 1000 in the mid bucket
		assert.Equal(t, []uint{3}, roomIDs(got))
	})
}

func TestListAvailableRoomsSort(t *testing.T) {
	today := day(2026, 9, 1)

	got := ListAvailableRooms(testRooms(), nil, dto.SearchOptions{Today: today, SortOrder: constants.SortPriceHighLow})
	assert.Equal(t, []uint{4, 3, 2, 1}, roomIDs(got))

	got = ListAvailableRooms(testRooms(), nil, dto.SearchOptions{Today: today, SortOrder: constants.SortPriceLowHigh})
	assert.Equal(t, []uint{1, 2, 3, 4}, roomIDs(got))
}

func TestListAvailableRoomsIdempotent(t *testing.T) {
	today := day(2026, 9, 10)
	bookings := []models.Booking{
		booking(1, day(2026, 9, 9), 3, constants.BookingStateCommited),
	}
	opts := dto.SearchOptions{Today: today, SortOrder: constants.SortPriceLowHigh}

	first := ListAvailableRooms(testRooms(), bookings, opts)
	second := ListAvailableRooms(testRooms(), bookings, opts)
	assert.Equal(t, first, second)
}

func TestListAvailableRoomsCombined(t *testing.T) {
	// an end-to-end query with occupancy, window, filters and sorting at once
	today := day(2026, 9, 10)
	rooms := []dto.AvailableRoom{
		{ID: 1, RoomTypeID: 1, RoomTypePrice: 600, StarRating: 4},
		{ID: 2, RoomTypeID: 1, RoomTypePrice: 900, StarRating: 4},
		{ID: 3, RoomTypeID: 1, RoomTypePrice: 800, StarRating: 4},
		{ID: 4, RoomTypeID: 2, RoomTypePrice: 700, StarRating: 4},
		{ID: 5, RoomTypeID: 1, RoomTypePrice: 750, StarRating: 2},
	}
	bookings := []models.Booking{
		booking(1, day(2026, 9, 10), 2, constants.BookingStateCommited), // occupied today
		booking(3, day(2026, 9, 20), 2, constants.BookingStatePending),  // conflicts with window
	}

	typeID := uint(1)
	star := 4
	got := ListAvailableRooms(rooms, bookings, dto.SearchOptions{
		Today:      today,
		CheckIn:    timePtr(day(2026, 9, 19)),
		CheckOut:   timePtr(day(2026, 9, 21)),
		RoomTypeID: &typeID,
		PriceRange: constants.PriceRangeMid,
		StarRating: &star,
		SortOrder:  constants.SortPriceLowHigh,
	})

	// room 1 occupied, room 3 conflicting, room 4 wrong type, room 5 wrong stars
	assert.Equal(t, []uint{2}, roomIDs(got))
}

func TestMatchPriceRange(t *testing.T) {
	tests := []struct {
		price      int
		priceRange string
		want       bool
	}{
		{400, constants.PriceRangeLow, true},
		{500, constants.PriceRangeLow, true},
		{500, constants.PriceRangeMid, false},
		{501, constants.PriceRangeMid, true},
		{1000, constants.PriceRangeMid, true},
		{1000, constants.PriceRangeHigh, false},
		{1500, constants.PriceRangeHigh, true},
		{2000, constants.PriceRangeHigh, true},
		{2000, constants.PriceRangePremium, false},
		{2001, constants.PriceRangePremium, true},
		{0, constants.PriceRangeLow, true},
		{100, "garbage", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchPriceRange(tt.price, tt.priceRange),
			"price %d in %q", tt.price, tt.priceRange)
	}
}

func TestValidateBookingWindow(t *testing.T) {
	today := day(2026, 9, 10)
	bookings := []models.Booking{
		booking(1, day(2026, 9, 15), 3, constants.BookingStateCommited), // 15..18
		booking(1, day(2026, 9, 20), 2, constants.BookingStateCancelled),
		booking(2, day(2026, 9, 15), 3, constants.BookingStateCommited),
	}

	tests := []struct {
		name     string
		roomID   uint
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{"past check-in", 1, day(2026, 9, 9), day(2026, 9, 11), errors.ErrDateInPast},
		{"check-out before check-in", 1, day(2026, 9, 12), day(2026, 9, 11), errors.ErrInvalidWindow},
		{"zero-length window", 1, day(2026, 9, 12), day(2026, 9, 12), errors.ErrInvalidWindow},
		{"conflict with live booking", 1, day(2026, 9, 16), day(2026, 9, 19), errors.ErrBookingConflict},
		{"cancelled booking does not conflict", 1, day(2026, 9, 20), day(2026, 9, 22), nil},
		{"other room does not conflict", 3, day(2026, 9, 15), day(2026, 9, 18), nil},
		{"back to back after live booking", 1, day(2026, 9, 18), day(2026, 9, 20), nil},
		{"ends exactly at live start", 1, day(2026, 9, 12), day(2026, 9, 15), nil},
		{"starts today", 1, day(2026, 9, 10), day(2026, 9, 12), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookingWindow(tt.roomID, tt.checkIn, tt.checkOut, bookings, today)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBuildAvailableRooms(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Name: "101", RoomTypeID: 10, FloorID: 5, State: constants.RoomStateReadyToServe},
		{ID: 2, Name: "102", RoomTypeID: 10, FloorID: 5, State: constants.RoomStateReadyToServe},
	}
	types := []models.RoomType{{ID: 10, Name: "Double", Price: 800}}
	floors := []models.Floor{{ID: 5, Name: "First"}}
	reviews := []models.Review{
		{RoomID: 1, Star: 5},
		{RoomID: 1, Star: 4},
		{RoomID: 1, Star: 4},
	}

	got := BuildAvailableRooms(rooms, types, floors, reviews)
	require.Len(t, got, 2)

	assert.Equal(t, "Double", got[0].RoomTypeName)
	assert.Equal(t, 800, got[0].RoomTypePrice)
	assert.Equal(t, "First", got[0].FloorName)
	assert.Equal(t, 3, got[0].RatingCount)
	assert.InDelta(t, 13.0/3.0, got[0].RatingAverage, 1e-9)
	assert.Equal(t, 4, got[0].StarRating)

	// unrated room carries zero rating, not a random one
	assert.Equal(t, 0, got[1].RatingCount)
	assert.Equal(t, 0, got[1].StarRating)
}

func TestBuildAvailableRoomsDropsRoomsNotReadyToServe(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Name: "101", RoomTypeID: 10, State: constants.RoomStateMaintenance},
		{ID: 2, Name: "102", RoomTypeID: 10, State: constants.RoomStateBeingCleaned},
		{ID: 3, Name: "103", RoomTypeID: 10, State: constants.RoomStateOccupied},
		{ID: 4, Name: "104", RoomTypeID: 10, State: constants.RoomStateReadyToServe},
	}
	types := []models.RoomType{{ID: 10, Name: "Double", Price: 800}}

	built := BuildAvailableRooms(rooms, types, nil, nil)
	require.Len(t, built, 1)
	assert.Equal(t, uint(4), built[0].ID)

	// the full listing path never surfaces them either
	got := ListAvailableRooms(built, nil, dto.SearchOptions{Today: day(2026, 9, 10)})
	ids := roomIDs(got)
	assert.NotContains(t, ids, uint(1))
	assert.NotContains(t, ids, uint(2))
	assert.NotContains(t, ids, uint(3))
	assert.Equal(t, []uint{4}, ids)
}

func TestCanCancel(t *testing.T) {
	b := booking(1, day(2026, 9, 10), 5, constants.BookingStateCommited)

	assert.True(t, CanCancel(&b, day(2026, 9, 9)))
	assert.True(t, CanCancel(&b, day(2026, 9, 12)))
	assert.True(t, CanCancel(&b, time.Date(2026, 9, 12, 23, 59, 0, 0, time.UTC)))
	assert.False(t, CanCancel(&b, day(2026, 9, 13)))
	assert.False(t, CanCancel(&b, day(2026, 9, 20)))
}

func TestBookingLive(t *testing.T) {
	for state, want := range map[string]bool{
		constants.BookingStatePending:   true,
		constants.BookingStateCommited:  true,
		constants.BookingStateCancelled: false,
		constants.BookingStateExpired:   false,
	} {
		b := booking(1, day(2026, 9, 10), 1, state)
		assert.Equal(t, want, b.Live(), "state %s", state)
	}
}

func roomIDs(rooms []dto.AvailableRoom) []uint {
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}
