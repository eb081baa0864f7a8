package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OverdueDeliveryJob periodically scans for parcels past their estimated
// delivery date that have not reached a terminal status, and logs them for
// the operations team. It is read-only.
type OverdueDeliveryJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOverdueDeliveryJob creates the overdue parcel monitor.
func NewOverdueDeliveryJob(db *gorm.DB, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the monitor, running at the top of every minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the monitor.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}

type overdueParcel struct {
	ID                string
	TrackingNumber    string
	Status            string
	EstimatedDelivery time.Time
}

func (j *OverdueDeliveryJob) run(ctx context.Context) error {
	var overdue []overdueParcel
	err := j.db.WithContext(ctx).Raw(`
		SELECT id, tracking_number, status, estimated_delivery
		FROM parcels
		WHERE estimated_delivery IS NOT NULL
		  AND estimated_delivery < ?
		  AND status NOT IN ('DELIVERED', 'FAILED', 'CANCELLED')
		ORDER BY estimated_delivery`,
		time.Now().UTC(),
	).Scan(&overdue).Error
	if err != nil {
		return err
	}

	for _, parcel := range overdue {
		j.logger.WarnContext(ctx, "Parcel past estimated delivery",
			"parcelId", parcel.ID,
			"trackingNumber", parcel.TrackingNumber,
			"status", parcel.Status,
			"estimatedDelivery", parcel.EstimatedDelivery,
		)
	}

	if len(overdue) > 0 {
		j.logger.InfoContext(ctx, "Overdue delivery scan finished", "overdueCount", len(overdue))
	}

	return nil
}
