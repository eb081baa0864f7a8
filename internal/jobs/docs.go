// Package jobs provides scheduled background tasks for the parcel tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Runs every minute and logs parcels whose estimated
// delivery date has passed without reaching a terminal status.
//
// # Mutation Policy
//
// Background jobs here are observability aids only. All parcel and delivery
// state changes flow through command handlers on behalf of an authenticated
// actor; no job writes to the store.
package jobs
