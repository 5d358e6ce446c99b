package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/assignment"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
)

// AssignByAreaCommandHandler handles bulk assignment of a delivery area.
// Matching zero packages is success with a count of zero, so dispatch scripts
// can run it idempotently.
type AssignByAreaCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignByAreaCommandHandler creates a handler for area assignment.
func NewAssignByAreaCommandHandler(uowFactory AssignmentUoWFactory) AssignByAreaCommandHandler {
	return AssignByAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns every unassigned package in the area to the driver and
// returns the number assigned. Only packages still in an assignable status
// (received or in_warehouse) are considered.
func (h AssignByAreaCommandHandler) Handle(ctx context.Context, cmd AssignByAreaCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	filter, err := assignment.NewFilter("", cmd.Zip(), cmd.City())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return 0, err
	}

	packageRepo := uow.PackageRepository()
	eventRepo := uow.EventRepository()

	packages, err := packageRepo.GetUnassignedMatching(ctx, filter)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	driverID := cmd.DriverID()

	for _, pkg := range packages {
		if err = pkg.Assign(driverID, now); err != nil {
			return 0, err
		}

		event, err := parcel.NewEvent(
			kernel.NewUUID(), pkg.ID(), parcel.EventAssigned,
			pkg.Status(), pkg.Status(), now, &driverID, nil, "")
		if err != nil {
			return 0, err
		}

		if err = packageRepo.Update(ctx, pkg); err != nil {
			return 0, err
		}
		if err = eventRepo.Add(ctx, event); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(packages), nil
}
