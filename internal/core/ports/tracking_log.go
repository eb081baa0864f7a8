package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/tracking"
)

// TrackingLog is the write-side contract for the append-only audit trail.
// It deliberately offers no update or delete operations; reads go through
// the query handlers, which enforce the recency windows.
type TrackingLog interface {
	// AppendEvent adds one tracking event to a parcel's log.
	AppendEvent(ctx context.Context, event tracking.Event) error

	// AppendPing adds one location ping to a delivery's trail.
	AppendPing(ctx context.Context, ping tracking.Ping) error
}
