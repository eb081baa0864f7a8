// Package delivery provides the Delivery aggregate: the work order assigning
// a driver to physically move a parcel.
//
// The package includes:
//   - Delivery: the aggregate root with assignment, start and completion
//   - Phase: a derived, read-only view of the delivery's progress
//
// Key business rules:
//   - At most one delivery exists per parcel (enforced by the store's unique
//     constraint and checked before creation)
//   - startedAt and completedAt are each set at most once, ordered
//     assigned <= started <= completed
//   - The driver may be replaced while the delivery has not started;
//     afterwards reassignment conflicts
//   - Only the assigned driver may start, complete or report positions
//   - The denormalized current coordinates always reflect the most recently
//     appended location ping
//
// There is deliberately no delivery status field: the phase is computed from
// the nullable timestamps so it can never drift from them.
package delivery
