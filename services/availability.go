package services

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

// dateOnly drops the time-of-day component
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeRentalDays converts a check-in/check-out pair into a whole number of
// nights. Partial days round up and a same-day stay still counts as one day,
// so a booking built from the result covers the requested window.
func ComputeRentalDays(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		return 1
	}
	return days
}

// overlaps reports whether the half-open window [checkIn, checkOut) intersects
// the booking's occupancy interval. Back-to-back stays sharing a boundary day
// do not overlap.
func overlaps(checkIn, checkOut time.Time, b *models.Booking) bool {
	return checkIn.Before(b.End()) && checkOut.After(b.Start())
}

// occupiedToday reports whether the booking covers today
func occupiedToday(today time.Time, b *models.Booking) bool {
	return !today.Before(b.Start()) && today.Before(b.End())
}

// ListAvailableRooms filters the room snapshot down to rooms a guest can book
// under opts. Rooms occupied today by a live booking are dropped first, then
// rooms whose live bookings conflict with the requested window, then the
// attribute filters, then the price sort. Cancelled and expired bookings never
// block a room.
func ListAvailableRooms(rooms []dto.AvailableRoom, bookings []models.Booking, opts dto.SearchOptions) []dto.AvailableRoom {
	today := dateOnly(opts.Today)

	// index live bookings by room so the scan is linear in the input
	liveByRoom := make(map[uint][]*models.Booking, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		if b.Live() {
			liveByRoom[b.RoomID] = append(liveByRoom[b.RoomID], b)
		}
	}

	var checkIn, checkOut time.Time
	hasWindow := opts.CheckIn != nil && opts.CheckOut != nil
	if hasWindow {
		checkIn = dateOnly(*opts.CheckIn)
		checkOut = dateOnly(*opts.CheckOut)
	}

	out := make([]dto.AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		if isOccupied(today, liveByRoom[room.ID]) {
			continue
		}
		if hasWindow && hasConflict(checkIn, checkOut, liveByRoom[room.ID]) {
			continue
		}
		if opts.RoomTypeID != nil && room.RoomTypeID != *opts.RoomTypeID {
			continue
		}
		if opts.PriceRange != "" && !matchPriceRange(room.RoomTypePrice, opts.PriceRange) {
			continue
		}
		if opts.StarRating != nil && room.StarRating != *opts.StarRating {
			continue
		}
		out = append(out, room)
	}

	switch opts.SortOrder {
	case constants.SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RoomTypePrice < out[j].RoomTypePrice
		})
	case constants.SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RoomTypePrice > out[j].RoomTypePrice
		})
	}

	return out
}

func isOccupied(today time.Time, bookings []*models.Booking) bool {
	for _, b := range bookings {
		if occupiedToday(today, b) {
			return true
		}
	}
	return false
}

func hasConflict(checkIn, checkOut time.Time, bookings []*models.Booking) bool {
	for _, b := range bookings {
		if overlaps(checkIn, checkOut, b) {
			return true
		}
	}
	return false
}

// matchPriceRange tests a per-night price against a bucket such as "500-1000"
// or "2000+". Bounded buckets exclude the lower bound and include the upper,
// so adjacent buckets never claim the same price. Unknown buckets match
// nothing.
func matchPriceRange(price int, priceRange string) bool {
	if strings.HasSuffix(priceRange, "+") {
		min, err := strconv.Atoi(strings.TrimSuffix(priceRange, "+"))
		if err != nil {
			return false
		}
		return price > min
	}

	parts := strings.SplitN(priceRange, "-", 2)
	if len(parts) != 2 {
		return false
	}
	min, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	max, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if min == 0 {
		return price >= 0 && price <= max
	}
	return price > min && price <= max
}

// ValidateBookingWindow checks a requested stay on a room against the booking
// list before a booking is created. It returns ErrDateInPast for a check-in
// before today, ErrInvalidWindow for a non-positive window and
// ErrBookingConflict when a live booking on the same room overlaps.
func ValidateBookingWindow(roomID uint, checkIn, checkOut time.Time, bookings []models.Booking, today time.Time) error {
	checkIn = dateOnly(checkIn)
	checkOut = dateOnly(checkOut)
	today = dateOnly(today)

	if checkIn.Before(today) {
		return errors.ErrDateInPast
	}
	if !checkOut.After(checkIn) {
		return errors.ErrInvalidWindow
	}

	for i := range bookings {
		b := &bookings[i]
		if b.RoomID != roomID || !b.Live() {
			continue
		}
		if overlaps(checkIn, checkOut, b) {
			return errors.ErrBookingConflict
		}
	}
	return nil
}

// BuildAvailableRooms joins rooms with their type, floor and review data into
// the enriched shape the search works on. Rooms not in READY_TO_SERVE are
// dropped here so they never reach a guest-facing listing. The star rating is
// the rounded average of persisted review stars, zero when the room has no
// reviews.
func BuildAvailableRooms(rooms []models.Room, types []models.RoomType, floors []models.Floor, reviews []models.Review) []dto.AvailableRoom {
	typeByID := make(map[uint]*models.RoomType, len(types))
	for i := range types {
		typeByID[types[i].ID] = &types[i]
	}
	floorByID := make(map[uint]*models.Floor, len(floors))
	for i := range floors {
		floorByID[floors[i].ID] = &floors[i]
	}

	type ratingAgg struct {
		count int
		sum   int
	}
	ratings := make(map[uint]*ratingAgg)
	for i := range reviews {
		r := &reviews[i]
		agg := ratings[r.RoomID]
		if agg == nil {
			agg = &ratingAgg{}
			ratings[r.RoomID] = agg
		}
		agg.count++
		agg.sum += r.Star
	}

	out := make([]dto.AvailableRoom, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]
		if !room.ReadyToServe() {
			continue
		}
		ar := dto.AvailableRoom{
			ID:         room.ID,
			Name:       room.Name,
			Note:       room.Note,
			State:      room.State,
			RoomTypeID: room.RoomTypeID,
			FloorID:    room.FloorID,
			Avatar:     room.Avatar,
		}
		if rt := typeByID[room.RoomTypeID]; rt != nil {
			ar.RoomTypeName = rt.Name
			ar.RoomTypePrice = rt.Price
		}
		if fl := floorByID[room.FloorID]; fl != nil {
			ar.FloorName = fl.Name
		}
		if agg := ratings[room.ID]; agg != nil && agg.count > 0 {
			ar.RatingCount = agg.count
			ar.RatingAverage = float64(agg.sum) / float64(agg.count)
			ar.StarRating = int(math.Round(ar.RatingAverage))
		}
		out = append(out, ar)
	}
	return out
}

// CanCancel reports whether a booking may still be cancelled at now. The
// cancel window closes a fixed number of days after the booking start.
func CanCancel(b *models.Booking, now time.Time) bool {
	deadline := b.Start().AddDate(0, 0, constants.CancelWindowDays)
	return now.Before(deadline)
}
