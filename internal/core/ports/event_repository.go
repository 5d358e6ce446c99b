package ports

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
)

// EventRepository defines the persistence contract for the append-only
// package history. Events are written in the same unit of work as the status
// change they describe and are never updated or deleted.
type EventRepository interface {
	// Add appends a history event.
	Add(ctx context.Context, event *parcel.Event) error

	// ListByPackage returns all events for a package in chronological order.
	ListByPackage(ctx context.Context, packageID kernel.UUID) ([]*parcel.Event, error)
}
