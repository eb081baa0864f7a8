// Package parcel provides domain entities and business logic for parcel
// management in the tracking system. It implements the Parcel aggregate root
// with lifecycle management and status handling.
//
// The package includes:
//   - Parcel: the aggregate root owning identity, attributes, parties and status
//   - Status: the parcel lifecycle enum (PENDING through DELIVERED/FAILED/CANCELLED)
//   - Priority: the service-level enum (STANDARD, EXPRESS, URGENT)
//   - TrackingNumber: the 12-character public identifier assigned at creation
//
// Key business rules:
//   - Parcels must have valid identity, parties, addresses and a positive weight
//   - Status changes stamp pickupDate on PICKED_UP and deliveryDate on DELIVERED
//   - DELIVERED, FAILED and CANCELLED are terminal statuses
//   - Only the sender may delete a parcel, and only while it is PENDING
//   - Customers only see parcels where they are sender or receiver
//
// Every status change must be accompanied by a tracking event append in the
// same transaction; that pairing is owned by the command handlers, not here.
package parcel
