package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/domain/model/parcel"
)

// AssignPackagesCommandHandler handles explicit driver assignment. It
// verifies the driver exists, assigns every requested package and appends one
// "assigned" event per package, all in a single transaction.
type AssignPackagesCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignPackagesCommandHandler creates a handler for explicit assignment.
func NewAssignPackagesCommandHandler(uowFactory AssignmentUoWFactory) AssignPackagesCommandHandler {
	return AssignPackagesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the requested packages to the driver and returns how many
// were assigned. An unknown driver or package ID fails the whole command;
// the status of each package is left untouched.
func (h AssignPackagesCommandHandler) Handle(ctx context.Context, cmd AssignPackagesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return 0, err
	}

	packageRepo := uow.PackageRepository()
	eventRepo := uow.EventRepository()

	packages, err := packageRepo.GetByIDs(ctx, cmd.PackageIDs())
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
