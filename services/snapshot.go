package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/services/logger"
)

const (
	roomSnapshotKey = "rooms:available"
	roomSnapshotTTL = 10 * time.Minute
)

var svcLog logger.Logger = logger.NewDefaultLogger(logger.InfoLevel)

// FetchRoomSnapshot returns the enriched room list and the live bookings an
// availability query works on. The enriched rooms are cached in Redis; on a
// miss the catalog tables are loaded in parallel and rebuilt. Bookings are
// always read fresh so occupancy never goes stale.
func FetchRoomSnapshot(ctx context.Context) ([]dto.AvailableRoom, []models.Booking, error) {
	var rooms []dto.AvailableRoom
	if config.RedisClient != nil {
		if err := GetFromRedis(ctx, config.RedisClient, roomSnapshotKey, &rooms); err != nil {
			rooms = nil
		}
	}

	if len(rooms) == 0 {
		var err error
		rooms, err = rebuildRoomSnapshot(ctx)
		if err != nil {
			return nil, nil, err
		}
		svcLog.Debug("room snapshot rebuilt with %d rooms", len(rooms))
		if config.RedisClient != nil && len(rooms) > 0 {
			_ = SetToRedis(ctx, config.RedisClient, roomSnapshotKey, rooms, roomSnapshotTTL)
		}
	}

	bookings, err := fetchLiveBookings()
	if err != nil {
		return nil, nil, err
	}
	return rooms, bookings, nil
}

func rebuildRoomSnapshot(ctx context.Context) ([]dto.AvailableRoom, error) {
	var (
		roomRows   []models.Room
		typeRows   []models.RoomType
		floorRows  []models.Floor
		reviewRows []models.Review
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return config.DB.Where("state = ?", constants.RoomStateReadyToServe).Find(&roomRows).Error
	})
	g.Go(func() error {
		return config.DB.Find(&typeRows).Error
	})
	g.Go(func() error {
		return config.DB.Find(&floorRows).Error
	})
	g.Go(func() error {
		return config.DB.Find(&reviewRows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return BuildAvailableRooms(roomRows, typeRows, floorRows, reviewRows), nil
}

func fetchLiveBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := config.DB.
		Where("state IN ?", []string{constants.BookingStatePending, constants.BookingStateCommited}).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// SnapshotWarmer rebuilds and caches the room snapshot, used by the cron
// scheduler so the first search of the day is served warm
type SnapshotWarmer struct{}

func (SnapshotWarmer) WarmRoomSnapshot(ctx context.Context) error {
	rooms, err := rebuildRoomSnapshot(ctx)
	if err != nil {
		return err
	}
	if config.RedisClient != nil && len(rooms) > 0 {
		return SetToRedis(ctx, config.RedisClient, roomSnapshotKey, rooms, roomSnapshotTTL)
	}
	return nil
}

// InvalidateRoomSnapshot drops the cached room list and every remembered chat
// filter set, since bot answers are derived from the snapshot. Called after
// any catalog or review mutation that would change the enriched rooms.
func InvalidateRoomSnapshot(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}
	_ = DeleteFromRedis(ctx, config.RedisClient, roomSnapshotKey)
	_ = DeleteKeysByPattern(ctx, config.RedisClient, lastFiltersPrefix+"*")
}
