package ports

import (
	"context"

	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
)

// PackageRepository defines the persistence contract for package aggregates.
// All reads return fully rehydrated aggregates; all writes expect aggregates
// that pass Validate.
type PackageRepository interface {
	// Add persists a new package. The tracking number must be unique;
	// a duplicate surfaces as a storage error.
	Add(ctx context.Context, aggregate *parcel.Package) error

	// Update persists changes to an existing package.
	Update(ctx context.Context, aggregate *parcel.Package) error

	// Get retrieves a package by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such package exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	// GetByIDs retrieves the packages with the given identifiers.
	// Returns errs.ObjectNotFoundError when any ID is missing, so bulk
	// operations fail whole rather than partially.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Package, error)

	// GetByTrackingNumber retrieves a package by its tracking number.
	// Returns errs.ObjectNotFoundError when no such package exists.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Package, error)

	// GetUnassignedMatching retrieves unassigned packages in an assignable
	// status (received or in_warehouse), narrowed by the given filter and
	// ordered by priority descending then creation time. Used as the
	// candidate set for assignment runs.
	GetUnassignedMatching(ctx context.Context, filter assignment.Filter) ([]*parcel.Package, error)

	// GetStartableByDriver retrieves the driver's assigned packages still in
	// a pre-route status (received or in_warehouse).
	GetStartableByDriver(ctx context.Context, driverID kernel.UUID) ([]*parcel.Package, error)

	// CountByStatus returns the number of packages per lifecycle status.
	CountByStatus(ctx context.Context) (map[parcel.Status]int, error)
}
