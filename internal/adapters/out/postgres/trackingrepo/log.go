package trackingrepo

import (
	"context"

	"parceltrack/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingLog implements TrackingLog using GORM. The write surface is
// appends only; query handlers read the tables directly with their own
// recency windows.
type GormTrackingLog struct {
	db *gorm.DB
}

// NewGormTrackingLog creates a new GORM tracking log.
func NewGormTrackingLog(db *gorm.DB) *GormTrackingLog {
	return &GormTrackingLog{db: db}
}

// AppendEvent adds one tracking event to a parcel's log.
func (l *GormTrackingLog) AppendEvent(ctx context.Context, event tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := eventFromDomain(event)
	return l.db.WithContext(ctx).Create(&dto).Error
}

// AppendPing adds one location ping to a delivery's trail.
func (l *GormTrackingLog) AppendPing(ctx context.Context, ping tracking.Ping) error {
	if err := ping.Validate(); err != nil {
		return err
	}

	dto := pingFromDomain(ping)
	return l.db.WithContext(ctx).Create(&dto).Error
}
