package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/parcel"
	"lastmile/internal/pkg/guard"
)

var ErrInventoryByStatusQueryIsNotConstructed = errors.New(
	"InventoryByStatusQuery must be created via NewInventoryByStatusQuery constructor",
)

// InventoryByStatusQuery counts packages grouped by lifecycle status.
// This is a parameterless snapshot query used by the operations dashboard.
type InventoryByStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewInventoryByStatusQuery creates an inventory snapshot query.
func NewInventoryByStatusQuery() InventoryByStatusQuery {
	return InventoryByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q InventoryByStatusQuery) Validate() error {
	return q.guard.Validate(ErrInventoryByStatusQueryIsNotConstructed)
}

// InventoryByStatusRow holds the package count for one status.
type InventoryByStatusRow struct {
	Status parcel.Status
	Count  int
}
