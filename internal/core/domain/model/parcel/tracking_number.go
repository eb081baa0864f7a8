package parcel

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"parceltrack/internal/pkg/errs"
)

// TrackingNumberLength is the fixed length of public tracking numbers.
const TrackingNumberLength = 12

const trackingNumberPrefix = "TRK"

const trackingNumberCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TrackingNumber is the 12-character public identifier printed on labels and
// used for customer-facing lookups. Format: "TRK" followed by a base36
// timestamp and random tail, truncated to 12 characters. Uniqueness is
// collision-checked at creation and backed by a unique index in the store.
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber produces a fresh candidate tracking number.
// Callers must collision-check the candidate against the store before use.
func GenerateTrackingNumber(now time.Time) TrackingNumber {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	tail := make([]byte, TrackingNumberLength)
	for i := range tail {
		tail[i] = trackingNumberCharset[rand.IntN(len(trackingNumberCharset))]
	}

	candidate := trackingNumberPrefix + ts + string(tail)
	return TrackingNumber{value: candidate[:TrackingNumberLength]}
}

// TrackingNumberFromString validates and wraps an externally supplied
// tracking number.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if len(s) != TrackingNumberLength {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("length must be %d, got %d", TrackingNumberLength, len(s)))
	}
	return TrackingNumber{value: s}, nil
}

// String returns the tracking number text, implementing fmt.Stringer.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers by value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks that the value was constructed and has the fixed length.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if len(t.value) != TrackingNumberLength {
		return errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("length must be %d, got %d", TrackingNumberLength, len(t.value)))
	}
	return nil
}
