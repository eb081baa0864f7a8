package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// Lifecycle graph:
//
//	PENDING ──> PICKED_UP ──> IN_TRANSIT ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │             │             │                 │
//	   └─────────────┴─────────────┴────────┬────────┘
//	                                        ├──> FAILED
//	                                        └──> CANCELLED
//
// DELIVERED, FAILED and CANCELLED are terminal. Status is deliberately not a
// guarded transition table: administrators and drivers may set any valid
// value to correct state, and every change is recorded in the append-only
// tracking log (see the UpdateParcelStatus handler).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: created, awaiting pickup.
	StatusPending

	// StatusPickedUp indicates the parcel has been collected from the sender.
	StatusPickedUp

	// StatusInTransit indicates a delivery with an assigned driver exists.
	StatusInTransit

	// StatusOutForDelivery indicates the assigned driver has started the run.
	StatusOutForDelivery

	// StatusDelivered is the successful terminal status.
	StatusDelivered

	// StatusFailed is the unsuccessful terminal status.
	StatusFailed

	// StatusCancelled is the terminal status for withdrawn parcels.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusPickedUp:       "PICKED_UP",
		StatusInTransit:      "IN_TRANSIT",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusFailed:         "FAILED",
		StatusCancelled:      "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns a ValueIsInvalidError for unknown values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire name of the status, implementing fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Status value is one of the seven lifecycle states.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further lifecycle progress is possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusCancelled
}
