package queries

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/guard"
)

var ErrPackageHistoryQueryIsNotConstructed = errors.New(
	"PackageHistoryQuery must be created via NewPackageHistoryQuery constructor",
)

// PackageHistoryQuery retrieves the full event timeline of a single package,
// newest first. Used by support tooling to answer "where is my parcel".
type PackageHistoryQuery struct {
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPackageHistoryQuery creates a history query for the given package.
func NewPackageHistoryQuery(packageID kernel.UUID) (PackageHistoryQuery, error) {
	if err := packageID.Validate(); err != nil {
		return PackageHistoryQuery{}, err
	}

	return PackageHistoryQuery{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q PackageHistoryQuery) Validate() error {
	return q.guard.Validate(ErrPackageHistoryQueryIsNotConstructed)
}

// PackageID returns the package whose timeline is requested.
func (q PackageHistoryQuery) PackageID() kernel.UUID {
	return q.packageID
}

// PackageHistoryRow is one entry of a package timeline.
type PackageHistoryRow struct {
	EventID    kernel.UUID
	EventType  parcel.EventType
	StatusFrom parcel.Status
	StatusTo   parcel.Status
	At         time.Time
	DriverID   *kernel.UUID
	DriverName string
	Location   *kernel.GeoPoint
	Notes      string
}
