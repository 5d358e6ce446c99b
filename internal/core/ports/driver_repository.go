package ports

import (
	"context"

	"lastmile/internal/core/domain/model/driver"
	"lastmile/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for the fleet directory.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such driver exists.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll returns all drivers ordered by name.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// Delete removes a driver. Returns errs.ReferentialIntegrityError when
	// assignment rules still reference the driver.
	Delete(ctx context.Context, id kernel.UUID) error
}
