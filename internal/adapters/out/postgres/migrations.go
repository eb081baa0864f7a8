package postgres

import (
	"parceltrack/internal/adapters/out/postgres/deliveryrepo"
	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/trackingrepo"
	"parceltrack/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all postgres adapters. The
// tracking tables get cascading foreign keys so a removed parcel takes its
// event log with it and a removed delivery takes its ping trail.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&parcelrepo.ParcelDTO{},
		&deliveryrepo.DeliveryDTO{},
		&trackingrepo.EventDTO{},
		&trackingrepo.PingDTO{},
	); err != nil {
		return err
	}

	constraints := []string{
		`ALTER TABLE deliveries DROP CONSTRAINT IF EXISTS fk_deliveries_parcel`,
		`ALTER TABLE deliveries ADD CONSTRAINT fk_deliveries_parcel
			FOREIGN KEY (parcel_id) REFERENCES parcels (id) ON DELETE CASCADE`,
		`ALTER TABLE tracking_events DROP CONSTRAINT IF EXISTS fk_tracking_events_parcel`,
		`ALTER TABLE tracking_events ADD CONSTRAINT fk_tracking_events_parcel
			FOREIGN KEY (parcel_id) REFERENCES parcels (id) ON DELETE CASCADE`,
		`ALTER TABLE location_pings DROP CONSTRAINT IF EXISTS fk_location_pings_delivery`,
		`ALTER TABLE location_pings ADD CONSTRAINT fk_location_pings_delivery
			FOREIGN KEY (delivery_id) REFERENCES deliveries (id) ON DELETE CASCADE`,
	}
	for _, statement := range constraints {
		if err := db.Exec(statement).Error; err != nil {
			return err
		}
	}

	return nil
}
