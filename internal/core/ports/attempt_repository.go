package ports

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
)

// AttemptRepository defines the persistence contract for delivery attempts
// and their proof-of-delivery photos. Attempts are append-only.
type AttemptRepository interface {
	// Add persists an attempt together with its photos.
	Add(ctx context.Context, attempt *parcel.DeliveryAttempt) error

	// ListByPackage returns a package's attempts ordered by attempt number.
	ListByPackage(ctx context.Context, packageID kernel.UUID) ([]*parcel.DeliveryAttempt, error)
}
