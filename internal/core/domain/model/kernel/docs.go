// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: an immutable identifier wrapping github.com/google/uuid
//   - Coordinates: a validated latitude/longitude pair
//
// Both types are value objects in the Domain-Driven Design sense: immutable,
// compared by value, and only constructible through validating factory
// functions. Their zero values are invalid and rejected by Validate.
package kernel
