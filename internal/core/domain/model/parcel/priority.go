package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Priority represents the service level requested for a parcel.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityStandard is the default service level.
	PriorityStandard

	// PriorityExpress is the accelerated service level.
	PriorityExpress

	// PriorityUrgent is the highest service level.
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown:  "UNKNOWN",
		PriorityStandard: "STANDARD",
		PriorityExpress:  "EXPRESS",
		PriorityUrgent:   "URGENT",
	}
}

// PriorityFromString parses the wire representation of a priority. The empty
// string maps to PriorityStandard, matching the creation default.
func PriorityFromString(s string) (Priority, error) {
	if s == "" {
		return PriorityStandard, nil
	}
	for priority, str := range getPriorityStrings() {
		if priority != PriorityUnknown && str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

// String returns the wire name of the priority, implementing fmt.Stringer.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Priority is one of the three service levels.
func (p Priority) Validate() error {
	if p != PriorityStandard && p != PriorityExpress && p != PriorityUrgent {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}
