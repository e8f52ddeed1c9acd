package jobs

import (
	"context"
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// PendingExpirer closes stale unconfirmed bookings
type PendingExpirer interface {
	ExpireStalePending(ctx context.Context, now time.Time) (int, error)
}

var pendingExpirer PendingExpirer

func SetPendingExpirer(expirer PendingExpirer) {
	pendingExpirer = expirer
}

// SnapshotWarmer rebuilds the cached room snapshot
type SnapshotWarmer interface {
	WarmRoomSnapshot(ctx context.Context) error
}

var snapshotWarmer SnapshotWarmer

func SetSnapshotWarmer(warmer SnapshotWarmer) {
	snapshotWarmer = warmer
}

// InitCronJobs registers the scheduled jobs and starts the scheduler
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// expire stale PENDING bookings every hour
	_, err := c.AddFunc("0 * * * *", func() {
		if pendingExpirer == nil {
			log.Println("pending expirer not configured, skipping run")
			return
		}
		expired, err := pendingExpirer.ExpireStalePending(context.Background(), time.Now())
		if err != nil {
			log.Printf("expire stale bookings: %v", err)
			return
		}
		if expired > 0 {
			log.Printf("expired %d stale bookings", expired)
		}
	})
	if err != nil {
		return err
	}

	// rewarm the room snapshot nightly so the first morning search is warm
	_, err = c.AddFunc("0 4 * * *", func() {
		if snapshotWarmer == nil {
			return
		}
		if err := snapshotWarmer.WarmRoomSnapshot(context.Background()); err != nil {
			log.Printf("warm room snapshot: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
