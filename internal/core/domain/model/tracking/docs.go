// Package tracking provides the immutable records that make up a parcel's
// audit trail: tracking events (one per status change) and location pings
// (the driver position stream).
//
// Both types are append-only by construction: they expose no mutators, and
// the write port (ports.TrackingLog) offers only append operations, so the
// invariant is enforced structurally rather than by convention. The event
// log is the authoritative history; the parcel's status field is merely the
// latest cached value.
package tracking
